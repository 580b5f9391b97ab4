package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles the palette and border used by every renderer.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Selected, Done                                lipgloss.Style

	Border lipgloss.Border
	Frame  lipgloss.TerminalColor
}

var current = newTheme("classic")

// SetTheme switches the active theme. Unknown names fall back to classic.
func SetTheme(name string) { current = newTheme(name) }

// Current returns the active theme.
func Current() Theme { return current }

func newTheme(name string) Theme {
	plain := lipgloss.NewStyle()
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:     "neon",
			Title:    plain.Bold(true).Foreground(lipgloss.Color("13")),
			Muted:    plain.Foreground(lipgloss.Color("8")),
			Accent:   plain.Foreground(lipgloss.Color("14")),
			Success:  plain.Foreground(lipgloss.Color("10")),
			Error:    plain.Foreground(lipgloss.Color("9")).Bold(true),
			Pending:  plain.Foreground(lipgloss.Color("11")),
			Selected: plain.Bold(true).Foreground(lipgloss.Color("13")),
			Done:     plain.Faint(true).Strikethrough(true),
			Border:   lipgloss.RoundedBorder(),
			Frame:    lipgloss.Color("13"),
		}
	case "mono":
		return Theme{
			Name:     "mono",
			Title:    plain,
			Muted:    plain,
			Accent:   plain,
			Success:  plain,
			Error:    plain,
			Pending:  plain,
			Selected: plain,
			Done:     plain,
			Border:   lipgloss.ASCIIBorder(),
			Frame:    lipgloss.NoColor{},
		}
	default:
		return Theme{
			Name:     "classic",
			Title:    plain.Bold(true),
			Muted:    plain.Faint(true),
			Accent:   plain.Foreground(lipgloss.Color("12")),
			Success:  plain.Foreground(lipgloss.Color("42")),
			Error:    plain.Foreground(lipgloss.Color("9")).Bold(true),
			Pending:  plain.Foreground(lipgloss.Color("214")),
			Selected: plain.Bold(true).Reverse(true),
			Done:     plain.Faint(true).Strikethrough(true),
			Border:   lipgloss.NormalBorder(),
			Frame:    lipgloss.Color("8"),
		}
	}
}
