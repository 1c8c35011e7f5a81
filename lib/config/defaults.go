package config

import (
	"github.com/spf13/viper"
)

// Default hook settings. The working directory and rule document path
// follow the image convention: the server's files live in
// /home/container and the rule document ships in the image root.
const (
	DefaultWorkingDir     = "/home/container"
	DefaultRulesPath      = "/start_hook.yml"
	DefaultMarkerPath     = ".start_hook_installed"
	DefaultInstallCommand = ""
	DefaultEULASource     = "eula.txt"
	DefaultEULATargetDir  = ""
)

// Defaults returns the built-in hook settings as a HookConfig.
func Defaults() *HookConfig {
	return &HookConfig{
		WorkingDir:     DefaultWorkingDir,
		RulesPath:      DefaultRulesPath,
		MarkerPath:     DefaultMarkerPath,
		InstallCommand: DefaultInstallCommand,
		EULASource:     DefaultEULASource,
		EULATargetDir:  DefaultEULATargetDir,
	}
}

func setDefaults() {
	d := Defaults()
	viper.SetDefault("working_dir", d.WorkingDir)
	viper.SetDefault("rules_path", d.RulesPath)
	viper.SetDefault("marker_path", d.MarkerPath)
	viper.SetDefault("install_command", d.InstallCommand)
	viper.SetDefault("eula_source", d.EULASource)
	viper.SetDefault("eula_target_dir", d.EULATargetDir)
}
