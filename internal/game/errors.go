package game

import "errors"

var (
	// ErrInvalidGuess is returned for input that is not an integer in the session bounds.
	ErrInvalidGuess = errors.New("invalid guess")
	// ErrInvalidAction is returned for a hint requested before any guess.
	ErrInvalidAction = errors.New("invalid action")
	// ErrGameFinished is returned for any move after the secret was found.
	ErrGameFinished = errors.New("game is already finished")
)
