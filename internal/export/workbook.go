package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
	"review-insights-go/internal/types"
)

const defaultSheet = "Sheet1"

// WriteWorkbook renders the bundle as an XLSX workbook, one sheet per
// aggregate. Undefined metrics are left as empty cells.
func WriteWorkbook(w io.Writer, b types.Bundle) error {
	f := excelize.NewFile()
	defer f.Close()

	sheets := []struct {
		name string
		rows [][]any
	}{
		{"Summary", summaryRows(b)},
		{"Videos", recordRows(b.RankedRecords.Videos)},
		{"Channels", recordRows(b.RankedRecords.Channels)},
		{"Topics", recordRows(b.RankedRecords.Topics)},
		{"Languages", bucketRows(b.ProportionBuckets.Languages)},
		{"Categories", bucketRows(b.ProportionBuckets.Categories)},
		{"Durations", bucketRows(b.ProportionBuckets.Durations)},
		{"Words", wordRows(b.WordClouds)},
		{"Heatmap", heatmapRows(b.Heatmap)},
	}

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, s.name); err != nil {
				return fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return fmt.Errorf("new sheet %s: %w", s.name, err)
		}
		for r, row := range s.rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(s.name, cell, &row); err != nil {
				return fmt.Errorf("write %s row %d: %w", s.name, r+1, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func summaryRows(b types.Bundle) [][]any {
	s := b.Summary
	return [][]any{
		{"metric", "value"},
		{"total_hours", s.TotalHours},
		{"total_days", s.TotalDays},
		{"hours_per_day", optional(s.HoursPerDay)},
		{"top_category_share", optional(s.TopCategoryShare)},
		{"favorite_category", s.FavoriteCategoryName},
		{"favorite_video", s.FavoriteVideoTitle},
		{"watched", b.Stats.Watched},
		{"searches", b.Stats.Searches},
		{"likes", b.Stats.Likes},
		{"comments", b.Stats.Comments},
		{"uptime", b.Stats.Uptime},
		{"videos_per_day", b.Stats.VideosPerDay},
	}
}

func optional(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func recordRows(records []types.RankedRecord) [][]any {
	rows := [][]any{{"name", "counts"}}
	for _, r := range records {
		rows = append(rows, []any{r.DisplayName, r.Count})
	}
	return rows
}

func bucketRows(buckets []types.Bucket) [][]any {
	rows := [][]any{{"name", "value"}}
	for _, b := range buckets {
		rows = append(rows, []any{b.Label, b.Value})
	}
	return rows
}

func wordRows(c types.WordClouds) [][]any {
	rows := [][]any{{"corpus", "text", "value"}}
	for _, corpus := range []struct {
		name  string
		cloud types.WordCloud
	}{
		{"videos", c.Videos},
		{"comments", c.Comments},
		{"searches", c.Searches},
	} {
		for _, e := range corpus.cloud.Entries() {
			rows = append(rows, []any{corpus.name, e.Text, e.Value})
		}
	}
	return rows
}

func heatmapRows(cells []types.HeatCell) [][]any {
	rows := [][]any{{"key", "count"}}
	for _, c := range cells {
		rows = append(rows, []any{c.Key, c.Count})
	}
	return rows
}
