package ranking

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"review-insights-go/internal/types"
)

type keyed struct {
	id string
	k  float64
}

func TestTopByMaxFirstOccurrenceWins(t *testing.T) {
	entries := []keyed{{"a", 3}, {"b", 5}, {"c", 5}, {"d", 1}}
	got, err := TopByMax(entries, func(e keyed) float64 { return e.k })
	require.NoError(t, err)
	require.Equal(t, "b", got.id)
}

func TestTopByMaxSingleAndNegative(t *testing.T) {
	got, err := TopByMax([]keyed{{"only", -2}}, func(e keyed) float64 { return e.k })
	require.NoError(t, err)
	require.Equal(t, "only", got.id)

	got, err = TopByMax([]keyed{{"x", -5}, {"y", -1}}, func(e keyed) float64 { return e.k })
	require.NoError(t, err)
	require.Equal(t, "y", got.id)
}

func TestTopByMaxEmpty(t *testing.T) {
	_, err := TopByMax([]keyed{}, func(e keyed) float64 { return e.k })
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestToRankedRecordsDecodesOnceInOrder(t *testing.T) {
	videos := []types.TopVideo{
		{Title: "Foo &amp; Bar", WatchCount: 2},
		{Title: "Tom &amp;amp; Jerry", WatchCount: 9},
		{Title: "It&#39;s &quot;live&quot;", WatchCount: 4},
	}
	got := ToRankedRecords(videos, HTMLDecoder{},
		func(v types.TopVideo) string { return v.Title },
		func(v types.TopVideo) float64 { return float64(v.WatchCount) },
	)
	require.Equal(t, []types.RankedRecord{
		{DisplayName: "Foo & Bar", Count: 2},
		{DisplayName: "Tom &amp; Jerry", Count: 9},
		{DisplayName: `It's "live"`, Count: 4},
	}, got)
}

func TestToRankedRecordsInjectedDecoder(t *testing.T) {
	calls := 0
	dec := DecoderFunc(func(s string) string {
		calls++
		return strings.ToUpper(s)
	})
	got := ToRankedRecords([]string{"a", "b"}, dec,
		func(s string) string { return s },
		func(string) float64 { return 1 },
	)
	require.Equal(t, 2, calls)
	require.Equal(t, "A", got[0].DisplayName)
	require.Equal(t, "B", got[1].DisplayName)
}

func TestToRankedRecordsNilDecoderDefaultsToHTML(t *testing.T) {
	got := ToRankedRecords([]string{"R&amp;B"}, nil,
		func(s string) string { return s },
		func(string) float64 { return 0 },
	)
	require.Equal(t, "R&B", got[0].DisplayName)
}
