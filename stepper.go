package pagesim

import "iter"

type (
	// evictor is the single capability shared by all policies:
	// process the reference to page at step, reporting whether it faulted.
	evictor[Page comparable] interface {
		access(step int, page Page) (fault bool)
	}
	// Stepper drives one policy across a reference sequence,
	// one reference at a time.
	// Concurrent access must be guarded by the caller.
	// Constructed by [NewStepper].
	Stepper[Page comparable] struct {
		evictor      evictor[Page]
		frames       *frames[Page]
		policy       Policy
		step, faults int
	}
	// Result is the outcome of running a policy over a whole sequence.
	Result struct {
		// Trace holds the cumulative fault count
		// immediately after each reference.
		Trace  []int
		Faults int
	}
)

// MinimumCapacity defines the lowest frame count supported by [NewStepper].
const MinimumCapacity = 1

// NewStepper creates a [Stepper] for policy with capacity frames.
// Only [Optimal] consults sequence, as its look-ahead;
// the slice must not be modified while the Stepper is in use.
func NewStepper[Page comparable](policy Policy, capacity int, sequence []Page) (*Stepper[Page], error) {
	if err := validate(capacity, sequence); err != nil {
		return nil, err
	}
	var (
		frames = newFrames[Page](capacity)
		impl   evictor[Page]
	)
	switch policy {
	case FIFO:
		impl = fifo[Page]{frames: frames}
	case LRU:
		impl = lru[Page]{frames: frames}
	case Optimal:
		impl = newOptimal(frames, sequence)
	case Clock:
		impl = &clock[Page]{frames: frames}
	default:
		return nil, unknownPolicyError(policy)
	}
	return &Stepper[Page]{
		evictor: impl,
		frames:  frames,
		policy:  policy,
	}, nil
}

func validate[Page any](capacity int, sequence []Page) error {
	if capacity < MinimumCapacity {
		return minCapacityError(capacity)
	}
	if len(sequence) == 0 {
		return emptySequenceError()
	}
	return nil
}

// Advance processes the next reference.
// It reports whether the reference faulted,
// and the cumulative fault count after it.
func (s *Stepper[Page]) Advance(page Page) (fault bool, faults int) {
	if fault = s.evictor.access(s.step, page); fault {
		s.faults++
	}
	if debugging {
		assert(s.frames.len() <= s.frames.capacity,
			"frame set exceeds capacity")
	}
	s.step++
	return fault, s.faults
}

// Policy returns the policy the stepper was constructed with.
func (s *Stepper[_]) Policy() Policy { return s.policy }

// Faults returns the number of faults so far.
func (s *Stepper[_]) Faults() int { return s.faults }

// Steps returns the number of references processed so far.
func (s *Stepper[_]) Steps() int { return s.step }

// Residents returns an iterator over the pages currently occupying frames.
// [FIFO] and [LRU] yield them eviction candidate first.
func (s *Stepper[Page]) Residents() iter.Seq[Page] {
	return s.frames.residents()
}

// Run simulates policy over the whole sequence.
func Run[Page comparable](policy Policy, capacity int, sequence []Page) (Result, error) {
	return run(policy, capacity, sequence, nil)
}

func run[Page comparable](policy Policy, capacity int, sequence []Page, observe Observer) (Result, error) {
	stepper, err := NewStepper(policy, capacity, sequence)
	if err != nil {
		return Result{}, err
	}
	trace := make([]int, len(sequence))
	for i, page := range sequence {
		fault, faults := stepper.Advance(page)
		trace[i] = faults
		if observe != nil {
			observe(policy, Step{
				Index:  i,
				Fault:  fault,
				Faults: faults,
			})
		}
	}
	return Result{
		Trace:  trace,
		Faults: stepper.Faults(),
	}, nil
}

// Hits returns the number of references that did not fault.
func (r Result) Hits() int { return len(r.Trace) - r.Faults }

// FaultRate returns faults per reference, in the range [0,1].
func (r Result) FaultRate() float64 {
	if len(r.Trace) == 0 {
		return 0
	}
	return float64(r.Faults) / float64(len(r.Trace))
}
