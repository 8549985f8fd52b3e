package aggregator

// Tally accumulates integer counts per key and remembers the order in
// which keys were first seen.
type Tally struct {
	order  []string
	counts map[string]int
}

func NewTally() *Tally {
	return &Tally{counts: map[string]int{}}
}

// Increment adds amount to key, creating it at zero first.
func (t *Tally) Increment(key string, amount int) {
	if _, ok := t.counts[key]; !ok {
		t.order = append(t.order, key)
	}
	t.counts[key] += amount
}

func (t *Tally) Get(key string) int {
	return t.counts[key]
}

func (t *Tally) Len() int {
	return len(t.order)
}

// Keys returns keys in first-seen order.
func (t *Tally) Keys() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Map returns a copy of the counts.
func (t *Tally) Map() map[string]int {
	out := make(map[string]int, len(t.counts))
	for k, v := range t.counts {
		out[k] = v
	}
	return out
}
