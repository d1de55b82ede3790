// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Artist is the filtered artist record produced by the metadata backend. The
// same shape is returned by the search endpoint and embedded into every guess
// comparison. Every field is optional on the wire.
type Artist struct {
	// Name is the canonical MusicBrainz artist name.
	Name string `json:"name"`

	// Type is the MusicBrainz artist type (e.g. "Person", "Group").
	Type string `json:"type,omitempty"`

	// Gender is the artist gender as reported by MusicBrainz. Empty for
	// groups and unknown values.
	Gender string `json:"gender,omitempty"`

	// LifeSpan holds the begin/end dates of the artist career.
	LifeSpan *LifeSpan `json:"life-span,omitempty"`

	// Area is the country or region the artist is associated with.
	Area *Area `json:"area,omitempty"`

	// Popularity is the Spotify popularity score in the 0..100 range.
	// Nil when the backend could not resolve it.
	Popularity *int `json:"spotify popularity,omitempty"`

	// Tag is the highest-voted MusicBrainz tag, used as the genre.
	Tag string `json:"tag,omitempty"`
}

// Area names a MusicBrainz area.
type Area struct {
	Name string `json:"name"`
}

// LifeSpan is the MusicBrainz life-span block. Dates are kept as the raw
// strings the backend returns ("1989", "1989-12-13").
type LifeSpan struct {
	Begin string `json:"begin,omitempty"`
	End   string `json:"end,omitempty"`
}

// AreaName returns the area name or an empty string when no area is set.
func (a Artist) AreaName() string {
	if a.Area == nil {
		return ""
	}
	return a.Area.Name
}

// Begin returns the life-span begin date or an empty string.
func (a Artist) Begin() string {
	if a.LifeSpan == nil {
		return ""
	}
	return a.LifeSpan.Begin
}
