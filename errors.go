package kdgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/kdgo/index"
)

var (
	// ErrInvalidArgument is returned when a required point or rectangle is
	// missing or a point has a NaN coordinate. No state is changed.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidBounds is returned when the configured bounds are inverted or NaN.
	ErrInvalidBounds = errors.New("invalid bounds")

	// ErrNotFound is returned when an item is not found.
	ErrNotFound = errors.New("not found")

	// ErrUnsupported is returned when the backend does not support an operation.
	ErrUnsupported = errors.New("operation not supported by index")

	// ErrClosed is returned for operations on a closed DB.
	ErrClosed = errors.New("db is closed")
)

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, index.ErrInvalidArgument) {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	if errors.Is(err, index.ErrInvalidBounds) {
		return fmt.Errorf("%w: %w", ErrInvalidBounds, err)
	}

	return err
}
