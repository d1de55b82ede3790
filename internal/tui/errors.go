// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-artist-guesser/internal/service"
)

// alertText returns the overlay text for err, or "" when err should not
// interrupt the player.
func alertText(err error) string {
	if err == nil || errors.Is(err, service.ErrEmptyInput) {
		return ""
	}
	return service.AlertMessage(err)
}
