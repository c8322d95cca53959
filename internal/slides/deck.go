package slides

// slot is an explicitly tagged cache cell.
type slot struct {
	content   Content
	present   bool
	attempted bool
}

// Deck is a fixed-size ordered collection of slots. It is not safe for
// concurrent use; callers serialize access.
type Deck struct {
	slots []slot
}

// NewDeck returns a deck with n empty slots.
func NewDeck(n int) *Deck {
	if n < 0 {
		n = 0
	}
	return &Deck{slots: make([]slot, n)}
}

// Len returns the number of slots.
func (d *Deck) Len() int { return len(d.slots) }

func (d *Deck) inRange(i int) bool { return i >= 0 && i < len(d.slots) }

// Get returns the content in slot i and whether it is present.
func (d *Deck) Get(i int) (Content, bool) {
	if !d.inRange(i) || !d.slots[i].present {
		return Content{}, false
	}
	return d.slots[i].content.Clone(), true
}

// Present reports whether slot i holds content.
func (d *Deck) Present(i int) bool {
	return d.inRange(i) && d.slots[i].present
}

// Set stores c in slot i. Out-of-range indexes are ignored.
func (d *Deck) Set(i int, c Content) bool {
	if !d.inRange(i) {
		return false
	}
	d.slots[i].content = c.Clone()
	d.slots[i].present = true
	d.slots[i].attempted = true
	return true
}

// MarkAttempted records that automatic generation ran for slot i.
func (d *Deck) MarkAttempted(i int) {
	if d.inRange(i) {
		d.slots[i].attempted = true
	}
}

// Attempted reports whether automatic generation already ran for slot i.
func (d *Deck) Attempted(i int) bool {
	return d.inRange(i) && d.slots[i].attempted
}

// Any reports whether at least one slot holds content.
func (d *Deck) Any() bool {
	for _, s := range d.slots {
		if s.present {
			return true
		}
	}
	return false
}

// Count returns the number of filled slots.
func (d *Deck) Count() int {
	n := 0
	for _, s := range d.slots {
		if s.present {
			n++
		}
	}
	return n
}

// Filled returns the present slides in outline order.
func (d *Deck) Filled() []Content {
	out := make([]Content, 0, len(d.slots))
	for _, s := range d.slots {
		if s.present {
			out = append(out, s.content.Clone())
		}
	}
	return out
}

// Status describes one slot for listings.
type Status struct {
	Index     int  `json:"index"`
	Present   bool `json:"present"`
	Attempted bool `json:"attempted"`
}

// Statuses returns the per-slot state in order.
func (d *Deck) Statuses() []Status {
	out := make([]Status, len(d.slots))
	for i, s := range d.slots {
		out[i] = Status{Index: i, Present: s.present, Attempted: s.attempted}
	}
	return out
}
