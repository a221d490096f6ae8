package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/bnema/dumber-addons/internal/cli/styles"
	"github.com/bnema/dumber-addons/internal/domain/entity"
)

var addonsCmd = &cobra.Command{
	Use:   "addons",
	Short: "Inspect recorded extensions",
}

var addonsPrivateCmd = &cobra.Command{
	Use:   "private",
	Short: "List extensions allowed in private browsing",
	RunE:  runAddonsPrivate,
}

var addonsRevokeCmd = &cobra.Command{
	Use:   "revoke <addon-id>",
	Short: "Remove an extension from the private browsing allow-list",
	Args:  cobra.ExactArgs(1),
	RunE:  runAddonsRevoke,
}

func init() {
	rootCmd.AddCommand(addonsCmd)
	addonsCmd.AddCommand(addonsPrivateCmd)
	addonsCmd.AddCommand(addonsRevokeCmd)
}

func runAddonsPrivate(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	addons, err := app.AddonsUC.ListAllowedInPrivateBrowsing(app.Ctx())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(addons) == 0 {
		_, err = fmt.Fprintln(out, app.Theme.Subtle.Render("No extensions are allowed in private browsing."))
		return err
	}

	rows := make([]table.Row, 0, len(addons))
	for _, a := range addons {
		rows = append(rows, styles.AddonRow(a))
	}
	cols := styles.AddonTableColumns()
	tbl := styles.NewStyledTable(app.Theme, cols, rows, styles.TableWidth(cols), len(rows)+2)

	_, err = fmt.Fprintln(out, tbl.View())
	return err
}

func runAddonsRevoke(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	var revokeErr error
	app.AddonsUC.SetAllowedInPrivateBrowsing(app.Ctx(), entity.Addon{ID: args[0]}, false,
		func(a entity.Addon) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", app.Theme.Highlight.Render("revoked"), a.ID)
		},
		func(err error) { revokeErr = err },
	)
	return revokeErr
}
