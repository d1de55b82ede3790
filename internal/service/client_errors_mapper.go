// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-artist-guesser/internal/adapter"
	"github.com/MKhiriev/go-artist-guesser/internal/app"
)

// alertTexts holds the fallback texts of one operation.
type alertTexts struct {
	network   string
	malformed string
	failed    string
}

var (
	startAlerts  = alertTexts{network: app.AlertStartNetwork, malformed: app.AlertStartFailed, failed: app.AlertStartFailed}
	guessAlerts  = alertTexts{network: app.AlertGuessNetwork, malformed: app.AlertGuessMalformed, failed: app.AlertGuessFailed}
	searchAlerts = alertTexts{network: app.AlertSearchNetwork, malformed: app.AlertSearchFailed, failed: app.AlertSearchFailed}
)

// mapAdapterError translates the adapter's transport error into an *Alert
// whose text is the most specific one available: the backend message, then
// the backend error string, then the operation fallback.
func mapAdapterError(err error, texts alertTexts) error {
	if err == nil {
		return nil
	}

	text := texts.failed
	switch {
	case errors.Is(err, adapter.ErrNetwork):
		text = texts.network
	case errors.Is(err, adapter.ErrMalformedResponse):
		text = texts.malformed
	}

	typed := err
	var apiErr *adapter.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Message != "":
			text = apiErr.Message
		case isDescriptive(apiErr.ErrorText):
			text = apiErr.ErrorText
		}

		switch detail(apiErr) {
		case app.MsgGameSessionInvalid:
			typed = fmt.Errorf("%w: %w", ErrSessionInvalid, err)
		case app.MsgArtistNotFound, app.MsgArtistNotFoundForGuess:
			typed = fmt.Errorf("%w: %w", ErrArtistNotFound, err)
		}
	}

	return &Alert{Text: text, Err: typed}
}

func detail(apiErr *adapter.APIError) string {
	if apiErr.Message != "" {
		return apiErr.Message
	}
	return apiErr.ErrorText
}

// isDescriptive filters out placeholder error strings like "ERROR".
func isDescriptive(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && !strings.EqualFold(s, "error") && !strings.EqualFold(s, "true")
}

// AlertMessage returns the text to show the player for err.
func AlertMessage(err error) string {
	if err == nil {
		return ""
	}

	var alert *Alert
	if errors.As(err, &alert) {
		return alert.Text
	}

	switch {
	case errors.Is(err, ErrGameInProgress):
		return app.AlertGameInProgress
	case errors.Is(err, ErrGuessingDisabled):
		return app.AlertGuessingDisabled
	case errors.Is(err, ErrControlBusy):
		return app.AlertBusy
	}

	return err.Error()
}
