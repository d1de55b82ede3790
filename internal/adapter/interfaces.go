// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for communicating with the
// artist guesser game backend.
//
// The primary abstraction is [GameAdapter], which decouples the session
// service from the HTTP JSON contract. Failures are reported with the
// sentinel values in errors.go and the [*APIError] type so callers can use
// [errors.Is] and [errors.As] regardless of the failure category:
//   - [ErrNetwork]: the request never produced a response;
//   - [ErrMalformedResponse]: the body could not be decoded;
//   - [*APIError]: a non-2xx status or an error flagged in the body.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-artist-guesser/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/game_adapter_mock.go -package=mock

// GameAdapter defines communication with the game backend. The backend
// correlates requests into one game session through a cookie, so a single
// adapter instance represents a single player.
type GameAdapter interface {
	// NewGame asks the backend to start a new session with a fresh secret
	// artist. GET /new-game. The response body is ignored on success.
	NewGame(ctx context.Context) error

	// Guess submits guess for the current session. POST /guess.
	// Returns the decoded response when the status is 2xx and the body does
	// not flag an error.
	Guess(ctx context.Context, guess string) (models.GuessResponse, error)

	// Search looks up a single artist by name against the metadata backend.
	// GET /musicbrain/search?q=<query>.
	Search(ctx context.Context, query string) (models.Artist, error)
}
