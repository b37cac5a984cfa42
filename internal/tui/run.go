// Package tui is the terminal front end: a Bubble Tea program that turns key
// presses into controller events and redraws the projected table on every
// message.
package tui

import (
	"context"
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"csvview/internal/config"
	"csvview/internal/controller"
	"csvview/internal/logx"
)

// Run starts the viewer in the alternate screen and blocks until the user
// quits or ctx is cancelled.
func Run(ctx context.Context, cfg config.Config) error {
	ctrl := controller.New(cfg.RowsPerPage)
	m := newModel(cfg, ctrl, lipgloss.NewRenderer(os.Stdout))

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			logx.Infof("interrupted")
			return nil
		}
		return err
	}
	return nil
}
