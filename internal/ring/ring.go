// Package ring is a specialized adaption of `container/ring`
// used as the slot layout of a bounded frame set.
package ring

import "iter"

type (
	// A Ring is one frame of a circular frame list.
	// A pointer to any element serves as reference to the entire ring.
	// The zero value is a one-element ring holding the zero Page.
	Ring[Page comparable] struct {
		next, prev *Ring[Page]
		Frame[Page]
	}
	// Frame is the state of a single physical frame.
	Frame[Page comparable] struct {
		// Page is the identifier currently occupying the frame.
		Page Page
		// Referenced is the second-chance bit.
		// Set on access and cleared when a clock hand passes over the frame.
		Referenced bool
	}
)

func (r *Ring[Page]) init() *Ring[Page] {
	r.next = r
	r.prev = r
	return r
}

// Next returns the next ring element. r must not be empty.
func (r *Ring[Page]) Next() *Ring[Page] {
	if r.next == nil {
		return r.init()
	}
	return r.next
}

// Prev returns the previous ring element. r must not be empty.
func (r *Ring[Page]) Prev() *Ring[Page] {
	if r.next == nil {
		return r.init()
	}
	return r.prev
}

// Move moves n % r.Len() elements backward (n < 0) or forward (n >= 0)
// in the ring and returns that ring element. r must not be empty.
func (r *Ring[Page]) Move(n int) *Ring[Page] {
	if r.next == nil {
		return r.init()
	}
	for ; n < 0; n++ {
		r = r.prev
	}
	for ; n > 0; n-- {
		r = r.next
	}
	return r
}

// Link connects ring r with ring s such that r.Next()
// becomes s and returns the original value for r.Next().
// r must not be empty.
//
// If r and s are different rings, the elements of s
// are spliced in after r. If they are the same ring,
// the elements between r and s are cut out and
// returned as a subring.
func (r *Ring[Page]) Link(s *Ring[Page]) *Ring[Page] {
	n := r.Next()
	if s != nil {
		p := s.Prev()
		// Note: Cannot use multiple assignment because
		// evaluation order of LHS is not specified.
		r.next = s
		s.prev = r
		n.prev = p
		p.next = n
	}
	return n
}

// Unlink removes n % r.Len() elements from the ring r, starting
// at r.Next(). If n % r.Len() == 0, r remains unchanged.
// The result is the removed subring. r must not be empty.
func (r *Ring[Page]) Unlink(n int) *Ring[Page] {
	if n <= 0 {
		return nil
	}
	return r.Link(r.Move(n + 1))
}

// Len computes the number of elements in ring r.
// It executes in time proportional to the number of elements.
func (r *Ring[Page]) Len() int {
	n := 0
	if r != nil {
		n = 1
		for p := r.Next(); p != r; p = p.next {
			n++
		}
	}
	return n
}

// All returns an iterator over the elements of the ring,
// starting at r and proceeding forward.
// The ring must not be modified during iteration.
func (r *Ring[Page]) All() iter.Seq[*Ring[Page]] {
	return func(yield func(*Ring[Page]) bool) {
		if r == nil ||
			!yield(r) {
			return
		}
		for p := r.Next(); p != r; p = p.next {
			if !yield(p) {
				return
			}
		}
	}
}
