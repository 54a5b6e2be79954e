package pagesim

import "math"

// never is the next use of a page that does not recur.
const never = math.MaxInt

// optimal implements Belady's algorithm: on a fault
// with no free frame, evict the resident whose next
// reference lies furthest in the future.
type optimal[Page comparable] struct {
	frames   *frames[Page]
	sequence []Page
	nextUse  map[Page]int // Scratch space, reused across faults.
}

func newOptimal[Page comparable](frames *frames[Page], sequence []Page) *optimal[Page] {
	return &optimal[Page]{
		frames:   frames,
		sequence: sequence,
		nextUse:  make(map[Page]int, frames.capacity),
	}
}

func (p *optimal[Page]) access(step int, page Page) bool {
	if p.frames.contains(page) {
		return false
	}
	if p.frames.full() {
		p.frames.evict(p.victim(step))
	}
	p.frames.insert(page)
	return true
}

// victim returns the resident with the largest next use after step.
// Ties go to the resident enumerated first.
func (p *optimal[Page]) victim(step int) Page {
	var (
		nextUse = p.nextUse
		pending = p.frames.len()
		future  []Page
	)
	clear(nextUse)
	for page := range p.frames.residents() {
		nextUse[page] = never
	}
	if step+1 < len(p.sequence) {
		future = p.sequence[step+1:]
	}
	for i, page := range future {
		if use, ok := nextUse[page]; ok && use == never {
			nextUse[page] = i
			if pending--; pending == 0 {
				break
			}
		}
	}
	var (
		victim   Page
		furthest = -1
	)
	for page := range p.frames.residents() {
		if use := nextUse[page]; use > furthest {
			victim, furthest = page, use
		}
	}
	return victim
}
