package pagesim

import "github.com/pkg/errors"

type constError string

const (
	// ErrInvalidCapacity may be returned from [NewStepper], [Run] and [RunMany].
	ErrInvalidCapacity = constError("invalid capacity")
	// ErrEmptySequence may be returned from [NewStepper], [Run] and [RunMany].
	ErrEmptySequence = constError("empty reference sequence")
	// ErrNoPoliciesSelected may be returned from [RunMany] and [NewSteppers].
	ErrNoPoliciesSelected = constError("no policies selected")
	// ErrUnknownPolicy may be returned when a [Policy]
	// value or name does not identify a supported policy.
	ErrUnknownPolicy = constError("unknown policy")

	// ErrCapacity is the panic value raised when a page is
	// inserted into a full frame set without an eviction first.
	ErrCapacity = constError("frame set is full")
	// ErrNotResident is the panic value raised when a page
	// that does not occupy a frame is evicted or accessed.
	ErrNotResident = constError("page is not resident")
)

func (errStr constError) Error() string { return string(errStr) }

func minCapacityError(capacity int) error {
	return errors.Wrapf(ErrInvalidCapacity,
		"must be >=%d but %d was requested",
		MinimumCapacity, capacity)
}

func emptySequenceError() error {
	return errors.WithStack(ErrEmptySequence)
}

func unknownPolicyError(policy any) error {
	return errors.Wrapf(ErrUnknownPolicy, "%v", policy)
}

// contractPanic signals a policy bug; these
// cannot occur for valid policy implementations.
func contractPanic[Page comparable](err constError, page Page) {
	panic(errors.Wrapf(err, "page %v", page))
}

func noPoliciesError() error {
	return errors.WithStack(ErrNoPoliciesSelected)
}
