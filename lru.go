package pagesim

// lru evicts the least recently referenced page.
// The head of the frame order is the least recently used
// end, every reference moves its page to the tail.
type lru[Page comparable] struct{ frames *frames[Page] }

func (p lru[Page]) access(_ int, page Page) bool {
	if p.frames.contains(page) {
		p.frames.touch(page)
		return false
	}
	if p.frames.full() {
		p.frames.evict(p.frames.oldest())
	}
	p.frames.insert(page)
	return true
}
