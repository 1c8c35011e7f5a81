package config

import (
	"path/filepath"
	"strings"

	"github.com/gameserverhooks/starthook/lib/util/logger"
	"github.com/spf13/viper"
)

var (
	// CfgFile is an optional explicit settings file, set from the CLI.
	// When empty the hook runs on defaults plus environment overrides.
	CfgFile string
	log     = logger.GetLogger()
)

// HookConfig is an immutable snapshot of the hook settings, taken once
// at process start.
type HookConfig struct {
	// WorkingDir is the directory the hook insists on running in.
	WorkingDir string `mapstructure:"working_dir"`

	// RulesPath is the location of the rule document.
	RulesPath string `mapstructure:"rules_path"`

	// MarkerPath records that the install phase has already run.
	// Relative paths are resolved against WorkingDir.
	MarkerPath string `mapstructure:"marker_path"`

	// InstallCommand is an optional one-time initialization command,
	// run before the install phase on first launch. Empty disables it.
	InstallCommand string `mapstructure:"install_command"`

	// EULASource is the license file checked for acceptance. Empty
	// disables relocation.
	EULASource string `mapstructure:"eula_source"`

	// EULATargetDir is the subdirectory the accepted license file is
	// moved into.
	EULATargetDir string `mapstructure:"eula_target_dir"`
}

// InitConfig wires viper: defaults, STARTHOOK_* environment overrides,
// and an optional explicit settings file.
func InitConfig() {
	if CfgFile != "" {
		viper.SetConfigFile(CfgFile)
	}

	setDefaults()

	viper.SetEnvPrefix("STARTHOOK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	handleConfigFile()
}

// CurrentConfig builds a HookConfig from the current viper settings.
// This is the preferred way to get config instead of reading viper keys
// ad hoc throughout the codebase.
func CurrentConfig() *HookConfig {
	return &HookConfig{
		WorkingDir:     viper.GetString("working_dir"),
		RulesPath:      viper.GetString("rules_path"),
		MarkerPath:     viper.GetString("marker_path"),
		InstallCommand: viper.GetString("install_command"),
		EULASource:     viper.GetString("eula_source"),
		EULATargetDir:  viper.GetString("eula_target_dir"),
	}
}

// MarkerFile returns the marker location with relative paths resolved
// against the working directory.
func (c *HookConfig) MarkerFile() string {
	if filepath.IsAbs(c.MarkerPath) {
		return c.MarkerPath
	}
	return filepath.Join(c.WorkingDir, c.MarkerPath)
}

func handleConfigFile() {
	if CfgFile == "" {
		return
	}
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Error reading settings file %s: %s", CfgFile, err)
	}
	log.Debugf("Using settings file: %s", viper.ConfigFileUsed())
}
