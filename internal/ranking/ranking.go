package ranking

import (
	"errors"

	"review-insights-go/internal/types"
)

// ErrEmptyInput is returned when a ranking is asked of an empty collection.
var ErrEmptyInput = errors.New("ranking: empty input")

// TopByMax returns the entry with the largest key. The first entry wins ties.
func TopByMax[T any](entries []T, key func(T) float64) (T, error) {
	var best T
	if len(entries) == 0 {
		return best, ErrEmptyInput
	}
	best = entries[0]
	bestKey := key(best)
	for _, e := range entries[1:] {
		if k := key(e); k > bestKey {
			best, bestKey = e, k
		}
	}
	return best, nil
}

// ToRankedRecords keeps source order and decodes every name exactly once.
func ToRankedRecords[T any](entries []T, dec Decoder, name func(T) string, count func(T) float64) []types.RankedRecord {
	if dec == nil {
		dec = HTMLDecoder{}
	}
	out := make([]types.RankedRecord, 0, len(entries))
	for _, e := range entries {
		out = append(out, types.RankedRecord{
			DisplayName: dec.Decode(name(e)),
			Count:       count(e),
		})
	}
	return out
}
