// Package tui is a terminal front-end for the clipboard history.
//
// It holds no business logic: every change goes through the message
// contract of the client core and the screen is redrawn from the history
// the core returns.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/clip-keeper/internal/logger"
	"github.com/MKhiriev/clip-keeper/models"
)

// MessageHandler is the client core as seen by the UI.
type MessageHandler interface {
	Handle(ctx context.Context, msg models.Message) models.MessageResponse
}

type TUI struct {
	handler MessageHandler
	build   models.AppBuildInfo
	logger  *logger.Logger
}

func New(handler MessageHandler, build models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{handler: handler, build: build, logger: logger}
}

// Run shows the history screen until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newHistoryModel(ctx, t.handler, t.build)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	if err != nil {
		return err
	}

	if _, ok := finalModel.(historyModel); !ok {
		return tea.ErrProgramKilled
	}
	t.logger.Info().Str("func", "*TUI.Run").Msg("ui closed")
	return nil
}
