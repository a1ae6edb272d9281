package anime

import (
	"errors"
	"fmt"

	"github.com/azybler/anime/pkg/interp"
	"github.com/azybler/anime/pkg/match"
)

// Sentinel errors for the engine's four-kind error taxonomy. All four are
// recoverable from the caller's perspective; none are logged internally.
var (
	// ErrMatchesNotFound is returned when interpolation or export is
	// invoked on an engine that has not run FindMatches yet.
	ErrMatchesNotFound = errors.New("anime: matches not found; call FindMatches first")

	// ErrIncorrectLength is returned when an interpolation input vector's
	// length does not equal the number of source features.
	ErrIncorrectLength = errors.New("anime: incorrect length for interpolation input")

	// ErrContainsNull is returned when an interpolation input vector
	// contains a non-numeric (±Inf) value.
	ErrContainsNull = errors.New("anime: interpolation input contains a null value")
)

// AlreadyMatchedError is returned by FindMatches on a second attempt. It
// carries the existing match store so a caller that raced itself can still
// recover the first run's result instead of losing it.
type AlreadyMatchedError struct {
	Existing *match.Store
}

func (e *AlreadyMatchedError) Error() string {
	return "anime: engine has already been matched"
}

// adaptInterpError maps pkg/interp's own sentinel errors onto this
// package's exported ones, so callers only ever need to compare against
// anime.ErrIncorrectLength / anime.ErrContainsNull regardless of which
// internal package raised the underlying error.
func adaptInterpError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, interp.ErrIncorrectLength):
		return ErrIncorrectLength
	case errors.Is(err, interp.ErrContainsNull):
		return ErrContainsNull
	default:
		return fmt.Errorf("anime: %w", err)
	}
}
