package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingComparison  = errors.New("comparison is required")
	ErrMissingGuessArtist = errors.New("comparison guess artist is required")
	ErrEmptyArtistName    = errors.New("artist name is required")
	ErrInvalidGuessNumber = errors.New("invalid guess number")
	ErrInvalidMaxGuesses  = errors.New("invalid max guesses")
	ErrUnknownStatus      = errors.New("unknown game status")
)
