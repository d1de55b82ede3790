package service

import (
	"context"

	"github.com/MKhiriev/go-artist-guesser/models"
)

// ClientGameService defines the client-side contract for one guessing
// session. It owns the session state and the busy flag of every control.
// All methods are safe for concurrent use.
type ClientGameService interface {
	// Start asks the backend for a new session. It is allowed only while no
	// session is active. On success the phase becomes models.PhaseActive and
	// guess cards, the outcome card and the guess counter are cleared.
	// On error the state is left unchanged.
	Start(ctx context.Context) error

	// SubmitGuess sends text as the next guess. Empty text returns
	// ErrEmptyInput and guessing outside an active session returns
	// ErrGuessingDisabled; neither sends a request. On success a guess card
	// is prepended and, if the session ended, the outcome card is set and
	// the phase becomes models.PhaseFinished.
	SubmitGuess(ctx context.Context, text string) error

	// Search looks up artist metadata for query and prepends a search card
	// on success. Search is available in every phase.
	Search(ctx context.Context, query string) error

	// SelectCandidate submits the artist name of card, as the player saw
	// it, as a guess through the guess control. A card without a name
	// returns ErrEmptyInput.
	SelectCandidate(ctx context.Context, card models.SearchCard) error

	// Snapshot returns a copy of the current state for rendering.
	Snapshot() State
}
