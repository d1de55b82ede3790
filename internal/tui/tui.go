package tui

import (
	"context"

	"github.com/MKhiriev/go-artist-guesser/internal/logger"
	"github.com/MKhiriev/go-artist-guesser/internal/service"
	"github.com/MKhiriev/go-artist-guesser/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	return &TUI{services: services, buildInfo: buildInfo, logger: log}, nil
}

// Run shows the game screen and blocks until the player quits or ctx is
// cancelled.
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(NewGameModel(ctx, t.services.GameService, t.logger), t.buildInfo)

	_, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
