package pagesim

import (
	"iter"

	"github.com/djdv/go-pagesim/internal/ring"
)

type (
	frame[Page comparable] = ring.Ring[Page]
	// frames is the bounded set of resident pages.
	// Enumeration order starts at head and follows
	// insertion order; [frames.touch] re-stamps a page
	// to the tail, [frames.replace] reuses a slot in place.
	frames[Page comparable] struct {
		index    map[Page]*frame[Page]
		head     *frame[Page]
		capacity int
	}
)

func newFrames[Page comparable](capacity int) *frames[Page] {
	return &frames[Page]{
		index:    make(map[Page]*frame[Page], capacity),
		capacity: capacity,
	}
}

func (f *frames[Page]) contains(page Page) bool {
	_, ok := f.index[page]
	return ok
}

func (f *frames[_]) full() bool { return len(f.index) == f.capacity }

func (f *frames[_]) len() int { return len(f.index) }

// lookup returns the frame holding page.
func (f *frames[Page]) lookup(page Page) *frame[Page] {
	slot, ok := f.index[page]
	if !ok {
		contractPanic(ErrNotResident, page)
	}
	return slot
}

// insert links page at the tail of the enumeration order.
func (f *frames[Page]) insert(page Page) *frame[Page] {
	if f.full() {
		contractPanic(ErrCapacity, page)
	}
	slot := &frame[Page]{
		Frame: ring.Frame[Page]{Page: page},
	}
	if f.head == nil {
		f.head = slot.Next()
	} else {
		f.head.Prev().Link(slot)
	}
	f.index[page] = slot
	return slot
}

func (f *frames[Page]) evict(page Page) {
	slot := f.lookup(page)
	switch {
	case len(f.index) == 1:
		f.head = nil
	case slot == f.head:
		f.head = slot.Next()
	}
	slot.Prev().Unlink(1)
	delete(f.index, page)
}

// replace puts page into the frame of victim,
// keeping the frame's position in the enumeration order.
func (f *frames[Page]) replace(victim, page Page) *frame[Page] {
	slot := f.lookup(victim)
	if f.contains(page) {
		contractPanic(ErrCapacity, page)
	}
	delete(f.index, victim)
	slot.Page = page
	slot.Referenced = false
	f.index[page] = slot
	return slot
}

// touch moves page to the tail of the enumeration order.
func (f *frames[Page]) touch(page Page) {
	slot := f.lookup(page)
	if slot == f.head {
		// Rotating the head moves it to the tail.
		f.head = slot.Next()
		return
	}
	if slot == f.head.Prev() {
		return
	}
	slot.Prev().Unlink(1)
	f.head.Prev().Link(slot)
}

// oldest returns the page at the head of the enumeration order.
func (f *frames[Page]) oldest() Page {
	if f.head == nil {
		var zero Page
		contractPanic(ErrNotResident, zero)
	}
	return f.head.Page
}

func (f *frames[Page]) residents() iter.Seq[Page] {
	return func(yield func(Page) bool) {
		for slot := range f.head.All() {
			if !yield(slot.Page) {
				return
			}
		}
	}
}
