package aggregator

import "review-insights-go/internal/types"

// ToBuckets maps each entry to one bucket, keeping input order.
func ToBuckets[T any](entries []T, label func(T) string, value func(T) float64) []types.Bucket {
	out := make([]types.Bucket, 0, len(entries))
	for _, e := range entries {
		out = append(out, types.Bucket{Label: label(e), Value: value(e)})
	}
	return out
}

// TallyBuckets turns a tally into buckets in first-seen key order.
func TallyBuckets(t *Tally) []types.Bucket {
	out := make([]types.Bucket, 0, t.Len())
	for _, k := range t.Keys() {
		out = append(out, types.Bucket{Label: k, Value: float64(t.Get(k))})
	}
	return out
}

func CategoryBuckets(durations []types.CategoryDuration) []types.Bucket {
	return ToBuckets(durations,
		func(c types.CategoryDuration) string { return c.CategoryName },
		func(c types.CategoryDuration) float64 { return c.WatchMinutes },
	)
}

func DurationBuckets(d types.DurationBuckets) []types.Bucket {
	return []types.Bucket{
		{Label: "< 1 min", Value: float64(d.BelowOneMin)},
		{Label: "1-5 min", Value: float64(d.OneToFive)},
		{Label: "5-10 min", Value: float64(d.FiveToTen)},
		{Label: "> 10 min", Value: float64(d.AboveTen)},
	}
}
