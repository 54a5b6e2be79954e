package pagesim

import (
	"iter"
	"strconv"
	"strings"
)

// Policy identifies a page replacement algorithm.
type Policy uint8

const (
	// FIFO evicts the page that was faulted in first.
	FIFO Policy = iota + 1
	// LRU evicts the page that was referenced least recently.
	LRU
	// Optimal evicts the page whose next reference is furthest away
	// (Belady's algorithm). It requires the full reference sequence.
	Optimal
	// Clock is the second-chance algorithm.
	Clock
)

var policyNames = [...]string{
	FIFO:    "FIFO",
	LRU:     "LRU",
	Optimal: "Optimal",
	Clock:   "Clock",
}

func (p Policy) String() string {
	if p.valid() {
		return policyNames[p]
	}
	return "Policy(" + strconv.Itoa(int(p)) + ")"
}

func (p Policy) valid() bool { return p >= FIFO && p <= Clock }

// Policies returns an iterator over every supported policy,
// in declaration order.
func Policies() iter.Seq[Policy] {
	return func(yield func(Policy) bool) {
		for policy := FIFO; policy <= Clock; policy++ {
			if !yield(policy) {
				return
			}
		}
	}
}

// ParsePolicy returns the [Policy] named by name (case-insensitive).
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fifo":
		return FIFO, nil
	case "lru":
		return LRU, nil
	case "optimal", "opt", "belady", "min":
		return Optimal, nil
	case "clock", "second-chance":
		return Clock, nil
	}
	return 0, unknownPolicyError(name)
}

// MarshalText implements [encoding.TextMarshaler].
func (p Policy) MarshalText() ([]byte, error) {
	if !p.valid() {
		return nil, unknownPolicyError(p)
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] via [ParsePolicy].
func (p *Policy) UnmarshalText(text []byte) error {
	policy, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = policy
	return nil
}
