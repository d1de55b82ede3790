package service

import (
	"github.com/MKhiriev/go-artist-guesser/internal/adapter"
	"github.com/MKhiriev/go-artist-guesser/internal/logger"
	"github.com/MKhiriev/go-artist-guesser/internal/validators"
	"github.com/jonboulle/clockwork"
)

type ClientServices struct {
	GameService ClientGameService
}

func NewClientServices(gameAdapter adapter.GameAdapter, log *logger.Logger) *ClientServices {
	return &ClientServices{
		GameService: NewClientGameService(gameAdapter, validators.NewGameValidator(), clockwork.NewRealClock(), log),
	}
}
