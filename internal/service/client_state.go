package service

import (
	"time"

	"github.com/MKhiriev/go-artist-guesser/models"
)

// Control identifies one user-triggerable action with its own busy flag.
type Control int

const (
	ControlStart Control = iota
	ControlGuess
	ControlSearch

	controlCount
)

func (c Control) String() string {
	switch c {
	case ControlStart:
		return "start"
	case ControlGuess:
		return "guess"
	case ControlSearch:
		return "search"
	default:
		return "unknown"
	}
}

// State is a point-in-time copy of the session state.
type State struct {
	Phase models.Phase

	// GuessNumber and MaxGuesses are the last values reported by the backend.
	GuessNumber int
	MaxGuesses  int

	// Guesses and Searches are ordered newest first.
	Guesses  []models.GuessCard
	Searches []models.SearchCard

	// Outcome is set once the session ended.
	Outcome *models.OutcomeCard

	StartedAt time.Time

	busy [controlCount]bool
}

// GuessingEnabled reports whether a guess may be submitted.
func (s State) GuessingEnabled() bool {
	return s.Phase == models.PhaseActive
}

// CanStart reports whether a new session may be started.
func (s State) CanStart() bool {
	return s.Phase != models.PhaseActive
}

// Busy reports whether a request of control c is in flight.
func (s State) Busy(c Control) bool {
	if c < 0 || c >= controlCount {
		return false
	}
	return s.busy[c]
}

func (s State) clone() State {
	out := s
	out.Guesses = append([]models.GuessCard(nil), s.Guesses...)
	out.Searches = append([]models.SearchCard(nil), s.Searches...)
	if s.Outcome != nil {
		outcome := *s.Outcome
		out.Outcome = &outcome
	}
	return out
}
