// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-artist-guesser/models"
)

// Field name constants used to scope validation to a subset of fields.
const (
	// FieldComparison targets the comparison block and its guessed artist.
	FieldComparison = "comparison"

	// FieldGuessNumber targets the backend guess counter.
	FieldGuessNumber = "guess_number"

	// FieldMaxGuesses targets the guess limit and its relation to the counter.
	FieldMaxGuesses = "max_guesses"

	// FieldStatus targets the session status.
	FieldStatus = "status"

	// FieldArtistName targets the name of an artist record.
	FieldArtistName = "name"
)

var knownStatuses = []models.GameStatus{
	models.StatusInProgress,
	models.StatusOngoing,
	models.StatusWon,
	models.StatusLost,
}

// GameValidator implements [Validator] for backend game payloads:
// models.GuessResponse and models.Artist, by value or pointer.
type GameValidator struct {
}

// NewGameValidator constructs a new GameValidator and returns it as the
// Validator interface.
func NewGameValidator() Validator {
	return &GameValidator{}
}

// Validate dispatches on the dynamic type of obj. Returns ErrUnsupportedType
// for any other type. When fields is empty every field of the type is
// checked.
func (v *GameValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.GuessResponse:
		return v.validateGuessResponse(ctx, value, fields...)
	case *models.GuessResponse:
		return v.validateGuessResponse(ctx, *value, fields...)

	case models.Artist:
		return v.validateArtist(ctx, value, fields...)
	case *models.Artist:
		return v.validateArtist(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func isKnownStatus(s models.GameStatus) bool {
	for _, known := range knownStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// validateGuessResponse checks that a successful /guess response carries
// everything needed to render a guess card and decide the next phase.
func (v *GameValidator) validateGuessResponse(ctx context.Context, resp models.GuessResponse, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldComparison, FieldGuessNumber, FieldMaxGuesses, FieldStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldComparison:
			if resp.Comparison == nil {
				return ErrMissingComparison
			}
			if resp.Comparison.GuessArtist == nil {
				return ErrMissingGuessArtist
			}
			if err := v.validateArtist(ctx, *resp.Comparison.GuessArtist, FieldArtistName); err != nil {
				return fmt.Errorf("guess artist: %w", err)
			}
		case FieldGuessNumber:
			if resp.GuessNumber < 1 {
				return ErrInvalidGuessNumber
			}
		case FieldMaxGuesses:
			if resp.MaxGuesses < 1 || resp.GuessNumber > resp.MaxGuesses {
				return ErrInvalidMaxGuesses
			}
		case FieldStatus:
			if !isKnownStatus(resp.Status) {
				return fmt.Errorf("%w: %q", ErrUnknownStatus, resp.Status)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *GameValidator) validateArtist(_ context.Context, artist models.Artist, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldArtistName}
	}

	for _, f := range fields {
		switch f {
		case FieldArtistName:
			if artist.Name == "" {
				return ErrEmptyArtistName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
