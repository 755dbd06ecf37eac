package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the only failure kind a split can produce.
// All errors below wrap it.
var ErrInvalidArgument = errors.New("cablesplit: invalid argument")

// Cable construction errors.
var (
	// ErrInvalidLength is returned when a cable length is zero or negative.
	ErrInvalidLength = fmt.Errorf("%w: cable length must be positive", ErrInvalidArgument)

	// ErrEmptyName is returned when a cable has no name.
	ErrEmptyName = fmt.Errorf("%w: cable name cannot be empty", ErrInvalidArgument)
)

// Split input errors, listed in the order they are checked.
var (
	// ErrNilCable is returned when no cable is given.
	ErrNilCable = fmt.Errorf("%w: cable cannot be nil", ErrInvalidArgument)

	// ErrTimesNotInteger is returned when the split count is missing or not a whole number.
	ErrTimesNotInteger = fmt.Errorf("%w: cannot split non-integer times", ErrInvalidArgument)

	// ErrTooFewSplits is returned when the split count is below 1.
	ErrTooFewSplits = fmt.Errorf("%w: cannot split less than once", ErrInvalidArgument)

	// ErrTooManySplits is returned when the split count is above MaxSplits.
	ErrTooManySplits = fmt.Errorf("%w: cannot split more than 64 times", ErrInvalidArgument)

	// ErrSplitsExceedLength is returned when the split count is larger than the cable length.
	ErrSplitsExceedLength = fmt.Errorf("%w: cannot split more times than length of cable", ErrInvalidArgument)

	// ErrSplitsEqualLength is returned when the split count equals the cable length.
	// Such a split would need length+1 pieces of positive length.
	ErrSplitsEqualLength = fmt.Errorf("%w: cannot split as many times as length of cable", ErrInvalidArgument)
)

// MaxSplits is the largest accepted split count.
const MaxSplits = 64
