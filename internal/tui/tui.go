// Package tui implements the interactive document browser started by
// "rmcloud browse".
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-rm-cloud/internal/logger"
	"github.com/MKhiriev/go-rm-cloud/internal/service"
	"github.com/MKhiriev/go-rm-cloud/models"
)

var ErrNoDocumentService = errors.New("document service is nil")

type TUI struct {
	docs   service.ClientDocumentService
	info   models.AppBuildInfo
	logger *logger.Logger
}

func New(docs service.ClientDocumentService, info models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if docs == nil {
		return nil, ErrNoDocumentService
	}
	return &TUI{docs: docs, info: info, logger: logger}, nil
}

// Browse runs the browser until the user quits or ctx is cancelled.
func (t *TUI) Browse(ctx context.Context) error {
	model := newBrowseModel(ctx, t.docs, t.info)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(browseModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	t.logger.Debug().
		Str("func", "TUI.Browse").
		Int("documents", result.idx.Len()).
		Msg("browser closed")
	return nil
}
