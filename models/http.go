package models

import (
	"encoding/json"
	"fmt"
)

// GuessRequest is the body of POST /guess.
type GuessRequest struct {
	Guess string `json:"guess"`
}

// GuessResponse is the body returned by POST /guess.
type GuessResponse struct {
	// Comparison describes the evaluated guess.
	Comparison *Comparison `json:"comparison"`

	// GuessNumber is the backend's guess counter after this guess. The
	// client never computes it locally.
	GuessNumber int `json:"guess_number"`

	// MaxGuesses is the number of guesses allowed in one session.
	MaxGuesses int `json:"max_guesses"`

	// Status is the session status after this guess.
	Status GameStatus `json:"status"`

	// Answer carries the secret artist once Status is terminal.
	Answer *Answer `json:"answer,omitempty"`

	ErrorPayload
}

// ErrorPayload is the application-level error part shared by every backend
// response. It may appear on a 2xx response as well.
type ErrorPayload struct {
	Error   ErrorFlag `json:"error,omitempty"`
	Message string    `json:"message,omitempty"`
}

// Failed reports whether the payload flags an application error.
func (p ErrorPayload) Failed() bool {
	return p.Error.Set
}

// ErrorFlag decodes the "error" field, which the backend sends either as a
// boolean or as a string ("ERROR", "Artist not found").
type ErrorFlag struct {
	// Set is true when the response flags an error.
	Set bool
	// Text holds the string form of the flag, if the backend sent one.
	Text string
}

// UnmarshalJSON implements [json.Unmarshaler].
func (f *ErrorFlag) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		*f = ErrorFlag{}
	case bool:
		*f = ErrorFlag{Set: value}
	case string:
		*f = ErrorFlag{Set: value != "", Text: value}
	default:
		return fmt.Errorf("unsupported error flag value: %s", string(b))
	}

	return nil
}
