package tui

import (
	"github.com/charmbracelet/lipgloss"

	"csvview/internal/config"
	"csvview/internal/table"
)

type styleConfig struct {
	base       lipgloss.Style
	header     lipgloss.Style
	selected   lipgloss.Style
	border     lipgloss.Style
	title      lipgloss.Style
	dim        lipgloss.Style
	status     lipgloss.Style
	err        lipgloss.Style
	panel      lipgloss.Style
	kindColors map[table.Kind]lipgloss.Color
}

func kindColors(c config.ColorConfig) map[table.Kind]lipgloss.Color {
	return map[table.Kind]lipgloss.Color{
		table.KindString: lipgloss.Color(c.String),
		table.KindInt:    lipgloss.Color(c.Int),
		table.KindFloat:  lipgloss.Color(c.Float),
		table.KindBool:   lipgloss.Color(c.Bool),
		table.KindEmpty:  lipgloss.Color(c.Empty),
	}
}

func newStyles(renderer *lipgloss.Renderer, colors config.ColorConfig) styleConfig {
	base := renderer.NewStyle().Padding(0, 1)
	return styleConfig{
		base:       base,
		header:     base.Foreground(lipgloss.Color("252")).Bold(true),
		selected:   base.Foreground(lipgloss.Color("#01BE85")).Background(lipgloss.Color("#00432F")),
		border:     renderer.NewStyle().Foreground(lipgloss.Color("238")),
		title:      renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		dim:        renderer.NewStyle().Foreground(lipgloss.Color("245")),
		status:     renderer.NewStyle().Foreground(lipgloss.Color("14")),
		err:        renderer.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		panel:      renderer.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1),
		kindColors: kindColors(colors),
	}
}

// cell returns the style of a data cell of the given kind; odd rows are
// drawn faint so stripes stay readable with per-kind colours.
func (s styleConfig) cell(kind table.Kind, row int) lipgloss.Style {
	st := s.base
	if c, ok := s.kindColors[kind]; ok && c != "" {
		st = st.Foreground(c)
	}
	if row%2 == 1 {
		st = st.Faint(true)
	}
	return st
}
