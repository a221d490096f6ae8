package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/dumber-addons/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := config.Schema()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file, database and schema version in use",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s\n", app.Theme.Subtle.Render("config:  "), app.ConfigManager.GetConfigFile())
		fmt.Fprintf(out, "%s %s\n", app.Theme.Subtle.Render("database:"), app.Config.Database.Path)

		version, err := app.SchemaVersion()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s %d\n", app.Theme.Subtle.Render("schema:  "), version)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSchemaCmd)
	configCmd.AddCommand(configPathCmd)
}
