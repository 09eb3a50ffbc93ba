package apperror

import "errors"

var (
	ErrGameOver      = errors.New("game is already finished")
	ErrCoordOccupied = errors.New("coordinate is already occupied")
)
