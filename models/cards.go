// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// GuessCard is the rendered result of one evaluated guess.
type GuessCard struct {
	Artist      Artist
	Fields      ComparisonFields
	GuessNumber int
	MaxGuesses  int
}

// OutcomeCard is the terminal card shown when a session ends.
type OutcomeCard struct {
	Won     bool
	Answer  Answer
	Guesses int
	Elapsed time.Duration
}

// SearchCard is one metadata lookup result. Selecting it submits the artist
// name as the next guess.
type SearchCard struct {
	Query  string
	Artist Artist
	At     time.Time
}
