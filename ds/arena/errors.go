package arena

import "errors"

var (
	// ErrNoSpace indicates that no free block large enough was found.
	ErrNoSpace = errors.New("arena: no free block large enough")

	// ErrBadOffset indicates an offset that does not refer to a live block.
	ErrBadOffset = errors.New("arena: bad block offset")

	// ErrBadSize indicates a zero or negative allocation size.
	ErrBadSize = errors.New("arena: size must be positive")

	// ErrLeak indicates Destroy was called with blocks still allocated.
	ErrLeak = errors.New("arena: blocks still allocated at destroy")
)
