package capture

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

var (
	colorBanner = lipgloss.Color("4") // blue
	colorHint   = lipgloss.Color("6") // cyan
	colorStats  = lipgloss.Color("2") // green

	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBanner)

	hintStyle = lipgloss.NewStyle().
			Foreground(colorHint)

	statsStyle = lipgloss.NewStyle().
			Foreground(colorStats)
)

// keyMap holds the bindings the capture loop reacts to outside of a paste.
type keyMap struct {
	Finish key.Binding
	Abort  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Finish, k.Abort}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Finish: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "finish"),
	),
	Abort: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "abort"),
	),
}

// Banner renders a section heading such as "═══ Diff ═══".
func Banner(title string) string {
	return bannerStyle.Render("═══ " + title + " ═══")
}

// hint renders the usage line printed under the prompt.
func hint() string {
	h := help.New()
	h.ShortSeparator = ", "
	h.Styles.ShortKey = hintStyle
	h.Styles.ShortDesc = hintStyle
	h.Styles.ShortSeparator = hintStyle
	return hintStyle.Render("(Paste content, repeat to paste more; ") +
		h.ShortHelpView(keys.ShortHelp()) +
		hintStyle.Render(")")
}
