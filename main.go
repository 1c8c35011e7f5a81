package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gameserverhooks/starthook/lib/config"
	"github.com/gameserverhooks/starthook/lib/expand"
	"github.com/gameserverhooks/starthook/lib/hook"
)

// version is stamped by the image build via -ldflags.
var version = "dev"

var rulesPath string

var rootCmd = &cobra.Command{
	Use:   "starthook",
	Short: "Patch game server configuration files before the server starts",
	Long: `starthook rewrites YAML, .properties, and plain text configuration
files from a declarative rule document, injecting ports, memory limits,
and other values the container runtime provides through the environment.
It runs the install phase once per container and the pre_start phase on
every boot. Set DEBUG_START_HOOK=true for diagnostic output.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		config.InitConfig()
		cfg := config.CurrentConfig()
		if rulesPath != "" {
			cfg.RulesPath = rulesPath
		}
		runner := hook.NewRunner(cfg, expand.New(expand.SnapshotEnv()))
		return runner.Run()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the starthook version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&config.CfgFile, "config", "", "hook settings file")
	rootCmd.Flags().StringVar(&rulesPath, "rules", "", "rule document path (overrides settings)")
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "starthook:", err)
		os.Exit(1)
	}
}
