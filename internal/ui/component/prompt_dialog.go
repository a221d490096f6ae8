// Package component renders addon dialogs in the terminal.
package component

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dumber-addons/internal/cli/styles"
	"github.com/bnema/dumber-addons/internal/ui/dialog"
)

const dialogWidth = 56

// PromptKeyMap defines keybindings for addon dialogs.
type PromptKeyMap struct {
	Positive key.Binding
	Negative key.Binding
	Left     key.Binding
	Right    key.Binding
	Toggle   key.Binding
	Confirm  key.Binding
	Cancel   key.Binding
}

// DefaultPromptKeyMap returns the default keybindings.
func DefaultPromptKeyMap() PromptKeyMap {
	return PromptKeyMap{
		Positive: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "accept")),
		Negative: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "decline")),
		Left:     key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←/h", "left")),
		Right:    key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/l", "right")),
		Toggle:   key.NewBinding(key.WithKeys(" ", "space", "x"), key.WithHelp("space", "toggle")),
		Confirm:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel:   key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "dismiss")),
	}
}

// PromptModel is a bubbletea model for one addon dialog.
type PromptModel struct {
	view  dialog.View
	theme *styles.Theme
	keys  PromptKeyMap

	// Positive is the focused button.
	Positive bool
	ToggleOn bool
	Answered bool
	Canceled bool
}

// NewPromptModel creates a dialog model. Focus starts on the positive button
// for single-button dialogs and on the negative one otherwise.
func NewPromptModel(theme *styles.Theme, view dialog.View) PromptModel {
	if theme == nil {
		theme = styles.NewTheme(nil)
	}
	return PromptModel{
		view:     view,
		theme:    theme,
		keys:     DefaultPromptKeyMap(),
		Positive: view.NegativeLabel == "",
	}
}

// Init implements tea.Model.
func (m PromptModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	twoButtons := m.view.NegativeLabel != ""

	switch {
	case key.Matches(keyMsg, m.keys.Cancel):
		// ctrl+c always ends the program; esc only where the dialog allows it.
		if m.view.Cancelable || keyMsg.String() == "ctrl+c" {
			m.Canceled = true
			return m, tea.Quit
		}
	case key.Matches(keyMsg, m.keys.Toggle):
		if m.view.ToggleLabel != "" {
			m.ToggleOn = !m.ToggleOn
		}
	case key.Matches(keyMsg, m.keys.Positive):
		m.Positive = true
	case key.Matches(keyMsg, m.keys.Negative):
		if twoButtons {
			m.Positive = false
		}
	case key.Matches(keyMsg, m.keys.Left):
		if twoButtons {
			m.Positive = false
		}
	case key.Matches(keyMsg, m.keys.Right):
		m.Positive = true
	case key.Matches(keyMsg, m.keys.Confirm):
		m.Answered = true
		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model.
func (m PromptModel) View() string {
	return RenderView(m.theme, m.view, m.Positive, m.ToggleOn)
}

// Done returns true once the dialog has been answered or dismissed.
func (m PromptModel) Done() bool {
	return m.Answered || m.Canceled
}

// Response returns the answer. A dismissed dialog is a negative answer.
func (m PromptModel) Response() dialog.Response {
	return dialog.Response{
		Positive: m.Answered && m.Positive,
		ToggleOn: m.ToggleOn,
	}
}

// RenderView draws a dialog box for view with the given button focus.
func RenderView(theme *styles.Theme, view dialog.View, focusPositive, toggleOn bool) string {
	t := theme
	var sections []string

	if view.Title != "" {
		sections = append(sections, t.Title.Width(dialogWidth).Render(view.Title), "")
	}
	if view.Message != "" {
		sections = append(sections, t.Normal.Width(dialogWidth).Render(view.Message))
	}
	if len(view.Items) > 0 {
		items := make([]string, 0, len(view.Items))
		for _, item := range view.Items {
			items = append(items, t.ListItem.Render("• "+item))
		}
		sections = append(sections, strings.Join(items, "\n"))
	}
	if view.ToggleLabel != "" {
		box := "[ ]"
		if toggleOn {
			box = "[x]"
		}
		sections = append(sections, "", t.Highlight.Render(box)+" "+t.Normal.Render(view.ToggleLabel))
	}

	sections = append(sections, "", renderButtons(t, view, focusPositive), "", renderHelp(t, view))

	return t.Box.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func renderButtons(t *styles.Theme, view dialog.View, focusPositive bool) string {
	positiveStyle, negativeStyle := t.InactiveButton, t.InactiveButton
	if focusPositive {
		positiveStyle = t.ActiveButton
	} else {
		negativeStyle = t.ActiveButton
	}

	buttons := positiveStyle.Render(view.PositiveLabel)
	if view.NegativeLabel != "" {
		buttons = lipgloss.JoinHorizontal(lipgloss.Center, negativeStyle.Render(view.NegativeLabel), "  ", buttons)
	}

	align := lipgloss.Right
	if view.CenteredButtons {
		align = lipgloss.Center
	}
	return lipgloss.PlaceHorizontal(dialogWidth, align, buttons)
}

func renderHelp(t *styles.Theme, view dialog.View) string {
	parts := []string{}
	if view.NegativeLabel != "" {
		parts = append(parts, helpEntry(t, "←/→", "select"))
	}
	if view.ToggleLabel != "" {
		parts = append(parts, helpEntry(t, "space", "toggle"))
	}
	parts = append(parts, helpEntry(t, "enter", "confirm"))
	if view.Cancelable {
		parts = append(parts, helpEntry(t, "esc", "dismiss"))
	}
	return strings.Join(parts, t.Subtle.Render(" • "))
}

func helpEntry(t *styles.Theme, k, desc string) string {
	return t.HelpKey.Render(k) + " " + t.HelpDesc.Render(desc)
}
