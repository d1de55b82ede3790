// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer message constants.
//
// Msg* constants are the messages the game backend writes into error
// payloads; the client matches them to map failures onto typed errors.
// Alert* constants are the fallback texts shown to the player when the
// backend did not supply a more specific message.
package app

// Backend messages.
const (
	// MsgGameSessionInvalid is returned by /guess when no game is associated
	// with the session cookie (e.g. the backend restarted).
	MsgGameSessionInvalid = "Game session invalid"

	// MsgArtistNotFoundForGuess is returned by /guess when the guess text
	// does not resolve to any artist.
	MsgArtistNotFoundForGuess = "Could not find that artist"

	// MsgArtistNotFound is the error string returned by the search endpoint.
	MsgArtistNotFound = "Artist not found"
)

// Client alert fallbacks.
const (
	AlertStartFailed      = "Error starting a new game."
	AlertGuessFailed      = "Error making guess."
	AlertGuessMalformed   = "Server error while processing guess."
	AlertGuessNetwork     = "Network error making guess."
	AlertSearchFailed     = "Problem searching for that artist."
	AlertSearchNetwork    = "Network error searching for artist."
	AlertStartNetwork     = "Network error starting a new game."
	AlertGameInProgress   = "A game is already in progress."
	AlertGuessingDisabled = "Start a new game to make guesses."
	AlertBusy             = "Please wait for the current request to finish."
)
