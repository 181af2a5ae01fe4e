package apperror

import "errors"

var (
	ErrOutOfBounds       = errors.New("position is out of bounds")
	ErrPositionOccupied  = errors.New("position is already occupied")
	ErrPositionEmpty     = errors.New("position is empty")
	ErrInvalidDimensions = errors.New("invalid board dimensions")
	ErrInvalidBoard      = errors.New("invalid board layout")
	ErrGameFinished      = errors.New("game is already finished")
	ErrNoAvailableMoves  = errors.New("no available moves")
	ErrInvalidInput      = errors.New("invalid input")
	ErrTooManyRetries    = errors.New("too many invalid inputs")
	ErrUnknownAgent      = errors.New("unknown agent kind")
)
