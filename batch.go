package pagesim

import (
	"maps"
	"slices"
	"sync"
)

type (
	// Step describes the outcome of one reference.
	Step struct {
		// Index is the position of the reference in the sequence.
		Index int
		// Faults is the cumulative fault count after the reference.
		Faults int
		// Fault is true if the reference faulted.
		Fault bool
	}
	// Observer is called after every reference of a batch run.
	// Calls for one policy are ordered; calls for
	// different policies may happen concurrently.
	Observer func(Policy, Step)
	// Option configures [RunMany].
	Option func(*settings)

	settings struct {
		observe    Observer
		sequential bool
	}
)

// Sequential runs the selected policies one
// after another on the calling goroutine.
func Sequential() Option {
	return func(s *settings) { s.sequential = true }
}

// Observe installs a per-reference callback.
func Observe(observer Observer) Option {
	return func(s *settings) { s.observe = observer }
}

// RunMany runs each selected policy over the same sequence.
// Duplicate selections are run once.
// Policies run concurrently unless [Sequential] is provided;
// the result does not depend on it.
func RunMany[Page comparable](policies []Policy, capacity int, sequence []Page, options ...Option) (map[Policy]Result, error) {
	selected, err := selection(policies, capacity, sequence)
	if err != nil {
		return nil, err
	}
	var config settings
	for _, apply := range options {
		apply(&config)
	}
	results := make([]Result, len(selected))
	if config.sequential || len(selected) == 1 {
		for i, policy := range selected {
			// Inputs were validated by selection.
			results[i], _ = run(policy, capacity, sequence, config.observe)
		}
	} else {
		var wg sync.WaitGroup
		for i, policy := range selected {
			wg.Go(func() {
				results[i], _ = run(policy, capacity, sequence, config.observe)
			})
		}
		wg.Wait()
	}
	mapping := make(map[Policy]Result, len(selected))
	for i, policy := range selected {
		mapping[policy] = results[i]
	}
	return mapping, nil
}

// NewSteppers returns one [Stepper] per selected policy,
// for callers that advance references themselves.
func NewSteppers[Page comparable](policies []Policy, capacity int, sequence []Page) (map[Policy]*Stepper[Page], error) {
	selected, err := selection(policies, capacity, sequence)
	if err != nil {
		return nil, err
	}
	steppers := make(map[Policy]*Stepper[Page], len(selected))
	for _, policy := range selected {
		if steppers[policy], err = NewStepper(policy, capacity, sequence); err != nil {
			return nil, err
		}
	}
	return steppers, nil
}

// selection validates the inputs of a batch
// and returns the distinct policies in order.
func selection[Page any](policies []Policy, capacity int, sequence []Page) ([]Policy, error) {
	if len(policies) == 0 {
		return nil, noPoliciesError()
	}
	if err := validate(capacity, sequence); err != nil {
		return nil, err
	}
	set := make(map[Policy]struct{}, len(policies))
	for _, policy := range policies {
		if !policy.valid() {
			return nil, unknownPolicyError(policy)
		}
		set[policy] = struct{}{}
	}
	return slices.Sorted(maps.Keys(set)), nil
}
