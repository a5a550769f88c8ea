package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrInvalidGameSetup = errors.New("invalid game setup")
	ErrPlayerNotFound   = errors.New("player not found")
	ErrInvalidPins      = errors.New("invalid pin count")
)
