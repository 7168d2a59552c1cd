package vorinterp

import "github.com/pkg/errors"

var (
	// ErrInvalidInput reports a contract violation at the boundary of the pipeline:
	// a malformed pixel buffer, bad dimensions or unusable site coordinates.
	// Use errors.Is(err, ErrInvalidInput) to check for it.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnresolvedSite is returned by Resolve under FallbackStrict when a mesh
	// vertex did not collect any pixel.
	ErrUnresolvedSite = errors.New("site has no pixels")
)

// invalidError marks a lower level error as ErrInvalidInput while keeping it reachable
// through errors.Unwrap.
type invalidError struct {
	err error
}

func (e invalidError) Error() string        { return ErrInvalidInput.Error() + ": " + e.err.Error() }
func (e invalidError) Unwrap() error        { return e.err }
func (e invalidError) Is(target error) bool { return target == ErrInvalidInput }

func wrapInvalid(err error) error {
	if err == nil {
		return nil
	}
	return invalidError{err}
}
