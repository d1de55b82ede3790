// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-artist-guesser/internal/adapter"
	"github.com/MKhiriev/go-artist-guesser/internal/logger"
	"github.com/MKhiriev/go-artist-guesser/internal/validators"
	"github.com/MKhiriev/go-artist-guesser/models"
	"github.com/jonboulle/clockwork"
)

type clientGameService struct {
	adapter   adapter.GameAdapter
	validator validators.Validator
	clock     clockwork.Clock
	logger    *logger.Logger

	mu    sync.Mutex
	state State
}

// NewClientGameService returns a ClientGameService in the idle phase.
func NewClientGameService(gameAdapter adapter.GameAdapter, validator validators.Validator, clock clockwork.Clock, log *logger.Logger) ClientGameService {
	return &clientGameService{
		adapter:   gameAdapter,
		validator: validator,
		clock:     clock,
		logger:    log,
		state:     State{Phase: models.PhaseIdle},
	}
}

func (s *clientGameService) Start(ctx context.Context) error {
	if err := s.acquire(ControlStart, func(st State) error {
		if !st.CanStart() {
			return ErrGameInProgress
		}
		return nil
	}); err != nil {
		return err
	}
	defer s.release(ControlStart)

	if err := s.adapter.NewGame(ctx); err != nil {
		s.logger.Err(err).Msg("error starting a new game")
		return mapAdapterError(err, startAlerts)
	}

	s.mu.Lock()
	s.state.Phase = models.PhaseActive
	s.state.Guesses = nil
	s.state.Outcome = nil
	s.state.GuessNumber = 0
	s.state.MaxGuesses = 0
	s.state.StartedAt = s.clock.Now()
	s.mu.Unlock()

	s.logger.Info().Msg("new game started")
	return nil
}

func (s *clientGameService) SubmitGuess(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyInput
	}

	if err := s.acquire(ControlGuess, func(st State) error {
		if !st.GuessingEnabled() {
			return ErrGuessingDisabled
		}
		return nil
	}); err != nil {
		return err
	}
	defer s.release(ControlGuess)

	resp, err := s.adapter.Guess(ctx, text)
	if err != nil {
		s.logger.Err(err).Str("guess", text).Msg("error making guess")
		return mapAdapterError(err, guessAlerts)
	}

	if err = s.validator.Validate(ctx, resp); err != nil {
		s.logger.Err(err).Str("guess", text).Msg("invalid guess response")
		return mapAdapterError(fmt.Errorf("%w: %w", adapter.ErrMalformedResponse, err), guessAlerts)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if resp.GuessNumber < s.state.GuessNumber {
		s.logger.Error().
			Int("reported", resp.GuessNumber).
			Int("previous", s.state.GuessNumber).
			Msg("guess counter went backwards")
		return mapAdapterError(fmt.Errorf("%w: %w", adapter.ErrMalformedResponse, ErrCounterWentBack), guessAlerts)
	}

	card := models.GuessCard{
		Artist:      *resp.Comparison.GuessArtist,
		Fields:      resp.Comparison.Fields,
		GuessNumber: resp.GuessNumber,
		MaxGuesses:  resp.MaxGuesses,
	}
	s.state.Guesses = append([]models.GuessCard{card}, s.state.Guesses...)
	s.state.GuessNumber = resp.GuessNumber
	s.state.MaxGuesses = resp.MaxGuesses

	s.logger.Info().
		Str("guess", text).
		Str("status", string(resp.Status)).
		Int("guess_number", resp.GuessNumber).
		Int("max_guesses", resp.MaxGuesses).
		Msg("guess evaluated")

	if resp.Status.IsTerminal() {
		var answer models.Answer
		if resp.Answer != nil {
			answer = *resp.Answer
		}
		s.state.Outcome = &models.OutcomeCard{
			Won:     resp.Status == models.StatusWon,
			Answer:  answer,
			Guesses: resp.GuessNumber,
			Elapsed: s.clock.Since(s.state.StartedAt),
		}
		s.state.Phase = models.PhaseFinished
	}

	return nil
}

func (s *clientGameService) Search(ctx context.Context, query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return ErrEmptyInput
	}

	if err := s.acquire(ControlSearch, nil); err != nil {
		return err
	}
	defer s.release(ControlSearch)

	artist, err := s.adapter.Search(ctx, query)
	if err != nil {
		s.logger.Err(err).Str("query", query).Msg("error searching for artist")
		return mapAdapterError(err, searchAlerts)
	}

	card := models.SearchCard{Query: query, Artist: artist, At: s.clock.Now()}

	s.mu.Lock()
	s.state.Searches = append([]models.SearchCard{card}, s.state.Searches...)
	s.mu.Unlock()

	s.logger.Debug().Str("query", query).Str("artist", artist.Name).Msg("search result added")
	return nil
}

func (s *clientGameService) SelectCandidate(ctx context.Context, card models.SearchCard) error {
	artist := card.Artist
	if err := s.validator.Validate(ctx, artist, validators.FieldArtistName); err != nil {
		if errors.Is(err, validators.ErrEmptyArtistName) {
			return ErrEmptyInput
		}
		return err
	}

	return s.SubmitGuess(ctx, artist.Name)
}

func (s *clientGameService) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// acquire marks control c busy. check runs under the same lock and can
// reject the call based on the current state.
func (s *clientGameService) acquire(c Control, check func(State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.busy[c] {
		return ErrControlBusy
	}
	if check != nil {
		if err := check(s.state); err != nil {
			return err
		}
	}
	s.state.busy[c] = true
	return nil
}

func (s *clientGameService) release(c Control) {
	s.mu.Lock()
	s.state.busy[c] = false
	s.mu.Unlock()
}
