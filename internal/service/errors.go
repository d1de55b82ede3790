package service

import "errors"

var (
	ErrEmptyInput       = errors.New("empty input")
	ErrGuessingDisabled = errors.New("guessing is disabled")
	ErrGameInProgress   = errors.New("game already in progress")
	ErrControlBusy      = errors.New("control is busy")

	ErrSessionInvalid  = errors.New("game session invalid")
	ErrArtistNotFound  = errors.New("artist not found")
	ErrCounterWentBack = errors.New("guess counter went backwards")
)

// Alert is an error that carries the text shown to the player.
type Alert struct {
	Text string
	Err  error
}

func (a *Alert) Error() string {
	if a.Err == nil {
		return a.Text
	}
	return a.Text + ": " + a.Err.Error()
}

func (a *Alert) Unwrap() error {
	return a.Err
}
