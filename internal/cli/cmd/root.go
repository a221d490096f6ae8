// Package cmd provides Cobra CLI commands for dumber-addons.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/dumber-addons/internal/cli"
	"github.com/bnema/dumber-addons/internal/domain/build"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configFile string
	rootCmd    = &cobra.Command{
		Use:   "dumber-addons",
		Short: "Extension prompts for the dumber browser",
		Long: `dumber-addons drives the extension prompt dialogs of the dumber browser:
permission requests, post-installation confirmation and installation failures.

Use 'dumber-addons simulate' to replay a scenario file through the dialogs,
'dumber-addons addons private' to list extensions allowed in private browsing.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "version", "schema":
				return nil
			}

			var err error
			app, err = cli.NewApp(configFile, buildInfo)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "dumber-addons %s\n", buildInfo.Version)
		fmt.Fprintf(out, "commit: %s\n", buildInfo.Commit)
		fmt.Fprintf(out, "built: %s\n", buildInfo.BuildDate)
		fmt.Fprintf(out, "go: %s\n", buildInfo.GoVersion)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/dumber-addons/config.toml)")
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
