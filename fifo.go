package pagesim

// fifo evicts the page that has been resident the longest.
// Hits never reorder residents.
type fifo[Page comparable] struct{ frames *frames[Page] }

func (p fifo[Page]) access(_ int, page Page) bool {
	if p.frames.contains(page) {
		return false
	}
	if p.frames.full() {
		p.frames.evict(p.frames.oldest())
	}
	p.frames.insert(page)
	return true
}
