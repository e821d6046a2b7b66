package engine

import "errors"

// Configuration errors. These signal programmer mistakes made while wiring
// an engine together; they are reported synchronously and never leave the
// engine in a partially updated state.
var (
	// ErrInvalidSide is returned when an engine's side designation is
	// neither SideWhite nor SideBlack.
	ErrInvalidSide = errors.New("engine: side must be SideWhite or SideBlack")

	// ErrDepthTooShallow is returned for search depths below one ply.
	ErrDepthTooShallow = errors.New("engine: search depth must be at least 1")
)
