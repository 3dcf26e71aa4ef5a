package engine

import "errors"

var (
	// ErrIllegalMove is returned by mutating operations whose legality check failed
	ErrIllegalMove = errors.New("illegal move")
	// ErrFormat marks configuration content that could not be parsed
	ErrFormat = errors.New("malformed content")
	// ErrIO marks configuration resources that could not be read
	ErrIO = errors.New("could not read")
	// ErrGame marks broken engine invariants
	ErrGame = errors.New("game error")
)
