package processor

import (
	"errors"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"review-insights-go/internal/aggregator"
	"review-insights-go/internal/language"
	"review-insights-go/internal/ranking"
	"review-insights-go/internal/types"
)

// ErrNotReady is returned for envelopes the upstream has not finished.
var ErrNotReady = errors.New("document is not ready yet")

// MalformedDocumentError reports a ready document with an empty required field.
type MalformedDocumentError struct {
	Field string
}

func (e *MalformedDocumentError) Error() string {
	return fmt.Sprintf("malformed document: required field %q is empty", e.Field)
}

// Builder turns one raw document into a display-ready bundle. It holds no
// per-request state and is safe for concurrent use.
type Builder struct {
	decoder  ranking.Decoder
	resolver *language.Resolver
}

func New(decoder ranking.Decoder, namer language.Namer, log *logrus.Entry) *Builder {
	if decoder == nil {
		decoder = ranking.HTMLDecoder{}
	}
	return &Builder{
		decoder:  decoder,
		resolver: language.NewResolver(namer, log),
	}
}

// BuildEnvelope checks readiness and then builds the takeout document.
func (b *Builder) BuildEnvelope(env types.Envelope) (types.Bundle, error) {
	if !env.Ready {
		return types.Bundle{}, ErrNotReady
	}
	if env.Takeout == nil {
		return types.Bundle{}, &MalformedDocumentError{Field: "takeout"}
	}
	return b.Build(*env.Takeout)
}

// Build derives every aggregate from doc. It either returns a complete
// bundle or an error, never a partial bundle.
func (b *Builder) Build(doc types.RawDocument) (types.Bundle, error) {
	if err := validate(doc); err != nil {
		return types.Bundle{}, err
	}

	favorite, err := ranking.TopByMax(doc.CategoryDurations, func(c types.CategoryDuration) float64 {
		return c.WatchMinutes
	})
	if err != nil {
		return types.Bundle{}, fmt.Errorf("favorite category: %w", err)
	}
	totalHours := aggregator.TotalHours(doc.CategoryDurations)
	activeDays := doc.Stats.ActiveDays.Value

	bundle := types.Bundle{
		RankedRecords: types.RankedRecords{
			Videos: ranking.ToRankedRecords(doc.TopVideos, b.decoder,
				func(v types.TopVideo) string { return v.Title },
				func(v types.TopVideo) float64 { return float64(v.WatchCount) }),
			Channels: ranking.ToRankedRecords(doc.Channels, b.decoder,
				func(c types.ChannelCount) string { return c.ChannelTitle },
				func(c types.ChannelCount) float64 { return float64(c.WatchCount) }),
			Topics: ranking.ToRankedRecords(doc.Topics, b.decoder,
				func(t types.TopicCount) string { return t.CategoryName },
				func(t types.TopicCount) float64 { return float64(t.WatchCount) }),
		},
		ProportionBuckets: types.ProportionBuckets{
			Languages:  aggregator.TallyBuckets(b.resolver.Resolve(doc.Languages)),
			Categories: aggregator.CategoryBuckets(doc.CategoryDurations),
			Durations:  aggregator.DurationBuckets(doc.DurationBuckets),
		},
		WordClouds: types.WordClouds{
			Videos:   aggregator.WordFrequencies(doc.TextCorpora.VideoTitles),
			Comments: aggregator.WordFrequencies(doc.TextCorpora.Comments),
			Searches: aggregator.WordFrequencies(doc.TextCorpora.SearchTerms),
		},
		Summary: types.SummaryMetrics{
			TotalHours:           totalHours,
			TotalDays:            activeDays,
			HoursPerDay:          aggregator.HoursPerDay(totalHours, activeDays),
			TopCategoryShare:     aggregator.TopCategoryShare(favorite, totalHours),
			FavoriteCategoryName: favorite.CategoryName,
			FavoriteVideoTitle:   b.decoder.Decode(doc.TopVideos[0].Title),
		},
		Stats: types.StatsSummary{
			Watched:      doc.Stats.Watched.Value,
			Searches:     doc.Stats.Searches.Value,
			Likes:        doc.Stats.Likes.Value,
			Comments:     doc.Stats.Comments.Value,
			ActiveDays:   activeDays,
			Uptime:       doc.Stats.Uptime.Value,
			VideosPerDay: doc.Stats.VideosPerDay.Value,
		},
		Heatmap: heatmapCells(doc.Heatmap),
	}
	return bundle, nil
}

func validate(doc types.RawDocument) error {
	required := []struct {
		field string
		n     int
	}{
		{"topics", len(doc.Topics)},
		{"categoryDurations", len(doc.CategoryDurations)},
		{"channels", len(doc.Channels)},
		{"languages", len(doc.Languages)},
		{"topVideos", len(doc.TopVideos)},
	}
	for _, r := range required {
		if r.n == 0 {
			return &MalformedDocumentError{Field: r.field}
		}
	}
	return nil
}

func heatmapCells(m map[string]int) []types.HeatCell {
	out := make([]types.HeatCell, 0, len(m))
	for k, v := range m {
		out = append(out, types.HeatCell{Key: k, Count: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
