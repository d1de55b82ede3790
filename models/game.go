// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// GameStatus is the backend-reported status of the current session.
type GameStatus string

const (
	StatusInProgress GameStatus = "IN_PROGRESS"
	// StatusOngoing is an alias some backend revisions send instead of
	// StatusInProgress.
	StatusOngoing GameStatus = "ONGOING"
	StatusWon     GameStatus = "WON"
	StatusLost    GameStatus = "LOST"
)

// IsTerminal reports whether the status ends guess submission.
func (s GameStatus) IsTerminal() bool {
	return s == StatusWon || s == StatusLost
}

// Phase is the client-side view of the session lifecycle.
type Phase int

const (
	// PhaseIdle is the state before the first successful start.
	PhaseIdle Phase = iota
	// PhaseActive means a session is running and guesses are accepted.
	PhaseActive
	// PhaseFinished means the last session ended with WON or LOST.
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "IDLE"
	case PhaseActive:
		return "ACTIVE"
	case PhaseFinished:
		return "FINISHED"
	default:
		return "UNKNOWN"
	}
}

// Answer is the secret artist revealed once the session is over.
type Answer struct {
	Name       string `json:"name"`
	Genre      string `json:"genre,omitempty"`
	Area       string `json:"area,omitempty"`
	Popularity *int   `json:"popularity,omitempty"`
	Gender     string `json:"gender,omitempty"`
}
