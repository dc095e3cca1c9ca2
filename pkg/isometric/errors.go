package isometric

import "errors"

// Coordinate errors.
var (
	ErrNotAdjacent          = errors.New("not adjacent")
	ErrInvalidArgumentCount = errors.New("exactly two of (b, s, d) must be provided")
	ErrInvalidKey           = errors.New("invalid isometric direction")
	ErrInvalidOperand       = errors.New("invalid operand")
	ErrNotSupported         = errors.New("not supported")
	ErrZeroLength           = errors.New("zero-length vector")
)
