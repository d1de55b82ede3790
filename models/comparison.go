// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FieldMatch classifies how one attribute of a guessed artist relates to the
// secret answer. The classifier is used for display styling only.
type FieldMatch string

const (
	// MatchExact means the attribute equals the answer's attribute.
	MatchExact FieldMatch = "match"
	// MatchPartial means the attribute overlaps the answer (e.g. related genre).
	MatchPartial FieldMatch = "partial"
	// MatchNone means the attribute does not match.
	MatchNone FieldMatch = "no_match"
	// MatchHigher means the guessed numeric value is above the answer.
	MatchHigher FieldMatch = "higher"
	// MatchLower means the guessed numeric value is below the answer.
	MatchLower FieldMatch = "lower"
)

// ComparisonFields holds one classifier per compared attribute.
type ComparisonFields struct {
	Gender     FieldMatch `json:"gender"`
	Genre      FieldMatch `json:"genre"`
	Area       FieldMatch `json:"area"`
	Popularity FieldMatch `json:"popularity"`
}

// Comparison is the server-computed evaluation of a single guess.
type Comparison struct {
	// GuessArtist is the artist record the guess text resolved to.
	GuessArtist *Artist `json:"guess_artist"`
	// Fields holds the per-attribute classifiers.
	Fields ComparisonFields `json:"fields"`
	// IsCorrect reports whether the guess is the secret artist.
	IsCorrect bool `json:"is_correct"`
}
