package aggregator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"review-insights-go/internal/types"
)

func TestTotalHours(t *testing.T) {
	require.Equal(t, 2.0, TotalHours([]types.CategoryDuration{
		{CategoryName: "Music", WatchMinutes: 90},
		{CategoryName: "News", WatchMinutes: 30},
	}))
	require.Equal(t, 0.0, TotalHours(nil))
}

func TestHoursPerDay(t *testing.T) {
	t.Run("zero active days is undefined", func(t *testing.T) {
		total := TotalHours([]types.CategoryDuration{{WatchMinutes: 120}})
		require.Nil(t, HoursPerDay(total, 0))
	})
	t.Run("divides", func(t *testing.T) {
		got := HoursPerDay(10, 4)
		require.NotNil(t, got)
		require.InDelta(t, 2.5, *got, 1e-9)
	})
}

func TestTopCategoryShare(t *testing.T) {
	top := types.CategoryDuration{CategoryName: "Music", WatchMinutes: 90}
	got := TopCategoryShare(top, 2)
	require.NotNil(t, got)
	require.InDelta(t, 45.0, *got, 1e-9)

	require.Nil(t, TopCategoryShare(types.CategoryDuration{}, 0))
}

func TestRatioRejectsNonFinite(t *testing.T) {
	require.Nil(t, Ratio(1, 0))
	require.Nil(t, Ratio(0, 0))
	got := Ratio(0, 5)
	require.NotNil(t, got)
	require.Equal(t, 0.0, *got)
}
