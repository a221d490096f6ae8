package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/bnema/dumber-addons/internal/cli"
	"github.com/bnema/dumber-addons/internal/cli/scenario"
	"github.com/bnema/dumber-addons/internal/cli/styles"
	"github.com/bnema/dumber-addons/internal/infrastructure/config"
	"github.com/bnema/dumber-addons/internal/infrastructure/extensionstore"
	"github.com/bnema/dumber-addons/internal/ui/component"
)

var (
	simulateInteractive   bool
	simulateSettleTimeout time.Duration
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <scenario.json>",
	Short: "Replay a scenario of extension events through the prompt dialogs",
	Long: `Replay a scenario file through the extension prompt coordinator.

By default dialogs are printed and answered by the scenario's "answer" steps.
With --interactive each dialog opens in the terminal and waits for you.

Example scenario:
  {
    "extensions": [{"id": "ublock@example.com", "name": "uBlock", "permissions": ["tabs"]}],
    "steps": [
      {"action": "required_permissions", "extension": "ublock@example.com"},
      {"action": "answer", "positive": true},
      {"action": "post_installation", "extension": "ublock@example.com"},
      {"action": "answer", "positive": true, "toggle": true}
    ]
  }`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().BoolVarP(&simulateInteractive, "interactive", "i", false, "answer dialogs in the terminal")
	simulateCmd.Flags().DurationVar(&simulateSettleTimeout, "settle-timeout", 2*time.Second,
		"how long to wait for a prompt to be handled (0 waits forever)")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	sc, err := scenario.Load(args[0])
	if err != nil {
		return err
	}

	ctx := app.Ctx()
	out := cmd.OutOrStdout()

	runCfg := scenario.Config{
		Store:         extensionstore.New(),
		Addons:        app.AddonsUC,
		AppInfo:       app.AppInfo(),
		SettleTimeout: simulateSettleTimeout,
	}

	if simulateInteractive {
		surface := component.NewTerminalSurface(ctx, component.TerminalOptions{
			Theme:     app.Theme,
			AltScreen: app.Config.Dialogs.AltScreen,
			Output:    os.Stderr,
		})
		defer surface.Close()

		watchTheme(app, surface)
		runCfg.Surface = surface
		runCfg.SettleTimeout = 0
	} else {
		surface := component.NewScriptedSurface(app.Theme, out)
		runCfg.Surface = surface
		runCfg.Answerer = surface
	}

	report, err := scenario.NewRunner(runCfg).Run(ctx, sc)
	if err != nil {
		return err
	}

	return renderReport(out, app.Theme, report)
}

// watchTheme applies accent color edits to dialogs opened later in the session.
func watchTheme(app *cli.App, surface *component.TerminalSurface) {
	app.ConfigManager.OnConfigChange(func(cfg *config.Config) {
		surface.SetTheme(styles.NewTheme(cfg))
		app.Logger.Info().Str("accent_color", cfg.Dialogs.AccentColor).Msg("configuration reloaded")
	})
	if err := app.ConfigManager.Watch(app.Ctx()); err != nil {
		app.Logger.Warn().Err(err).Msg("config watch unavailable")
	}
}

func renderReport(w io.Writer, t *styles.Theme, report *scenario.Report) error {
	lines := []string{
		t.Title.Render("Simulation finished"),
		"",
		fmt.Sprintf("%s %d published, %d rejected, %d restarts", t.Subtle.Render("prompts:"), report.Published, report.Rejected, report.Restarts),
	}

	for _, d := range report.Decisions {
		verdict := t.ErrorStyle.Render("denied ")
		if d.Granted {
			verdict = t.Highlight.Render("granted")
		}
		lines = append(lines, fmt.Sprintf("  %s %s %s", verdict, d.ExtensionID, t.Subtle.Render(d.Kind)))
	}

	if len(report.PrivateBrowsing) > 0 {
		lines = append(lines, "", t.Subtle.Render("allowed in private browsing:"))
		for _, id := range report.PrivateBrowsing {
			lines = append(lines, "  "+t.Badge.Render(id))
		}
	}

	if report.Pending {
		lines = append(lines, "", t.ErrorStyle.Render("a prompt request is still pending"))
	}

	_, err := fmt.Fprintln(w, t.Box.Render(lipgloss.JoinVertical(lipgloss.Left, strings.Join(lines, "\n"))))
	return err
}
