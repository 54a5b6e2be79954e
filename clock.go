package pagesim

// clock is the second-chance approximation of LRU.
// Frames form a circle swept by a hand; a set
// reference bit buys a page one more revolution.
type clock[Page comparable] struct {
	frames *frames[Page]
	hand   *frame[Page]
}

func (p *clock[Page]) access(_ int, page Page) bool {
	if p.frames.contains(page) {
		p.frames.lookup(page).Referenced = true
		return false
	}
	if !p.frames.full() {
		slot := p.frames.insert(page)
		slot.Referenced = true
		p.hand = slot.Next()
		return true
	}
	p.sweep(page)
	return true
}

// sweep advances the hand to the first frame with a clear
// reference bit (clearing bits along the way) and replaces it.
func (p *clock[Page]) sweep(page Page) {
	var (
		hand     = p.hand
		revolved = 0
	)
	for hand.Referenced {
		hand.Referenced = false
		hand = hand.Next()
		if debugging {
			revolved++
			assert(revolved <= 2*p.frames.capacity,
				"clock hand swept more than two revolutions")
		}
	}
	slot := p.frames.replace(hand.Page, page)
	slot.Referenced = true
	p.hand = slot.Next()
}
