package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette, checkbox symbols and the panel border.
// Plain output and the TUI both render through Current().
type Theme struct {
	Title, Muted, Accent     lipgloss.Style
	Success, Pending, Error  lipgloss.Style
	Selected, DoneText       lipgloss.Style
	Border                   lipgloss.Border
	BorderColor              lipgloss.TerminalColor
	BoxChecked, BoxUnchecked string
	SymDone, SymPending      string
}

var current = classic()

func classic() Theme {
	return Theme{
		Title:        lipgloss.NewStyle().Bold(true),
		Muted:        lipgloss.NewStyle().Faint(true),
		Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Pending:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Selected:     lipgloss.NewStyle().Bold(true).Reverse(true),
		DoneText:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Border:       lipgloss.RoundedBorder(),
		BorderColor:  lipgloss.Color("8"),
		BoxChecked:   "☑",
		BoxUnchecked: "☐",
		SymDone:      "✔",
		SymPending:   "•",
	}
}

func neon() Theme {
	t := classic()
	t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	t.Pending = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	t.BorderColor = lipgloss.Color("13")
	t.BoxChecked, t.BoxUnchecked = "◼", "◻"
	return t
}

func mono() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Title: plain, Muted: plain, Accent: plain,
		Success: plain, Pending: plain, Error: plain,
		Selected: plain, DoneText: plain,
		Border: lipgloss.Border{
			Top: "-", Bottom: "-", Left: "|", Right: "|",
			TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
		},
		BorderColor:  lipgloss.NoColor{},
		BoxChecked:   "[x]",
		BoxUnchecked: "[ ]",
		SymDone:      "x",
		SymPending:   "-",
	}
}

// SetTheme switches to classic, neon or mono. Unknown names fall back to
// classic and report false.
func SetTheme(name string) bool {
	switch strings.ToLower(name) {
	case "neon":
		current = neon()
	case "mono":
		current = mono()
	case "", "classic":
		current = classic()
	default:
		current = classic()
		return false
	}
	return true
}

func Current() Theme { return current }
