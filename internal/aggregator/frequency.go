package aggregator

import "review-insights-go/internal/tokenizer"

// WordFrequencies tokenizes every text and counts tokens longer than one
// character.
func WordFrequencies(texts []string) map[string]int {
	t := NewTally()
	for _, text := range texts {
		for _, w := range tokenizer.Tokenize(text) {
			if len(w) <= 1 {
				continue
			}
			t.Increment(w, 1)
		}
	}
	return t.Map()
}
