package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-artist-guesser/internal/logger"
	"github.com/MKhiriev/go-artist-guesser/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

// UI is the interactive front end driven by App.
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, log *logger.Logger) (*App, error) {
	if services == nil || services.GameService == nil {
		return nil, errors.New("client services are not initialised")
	}
	if ui == nil {
		return nil, errors.New("ui is not initialised")
	}
	return &App{services: services, ui: ui, logger: log}, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.logger.Info().Msg("client started")

	err := a.ui.Run(ctx)
	switch {
	case err == nil:
	case errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil:
		a.logger.Info().Msg("client interrupted")
		return nil
	default:
		return fmt.Errorf("run ui: %w", err)
	}

	a.logger.Info().
		Str("phase", a.services.GameService.Snapshot().Phase.String()).
		Msg("client stopped")
	return nil
}
