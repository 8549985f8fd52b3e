package types

import "sort"

// --------------------------------------------
// Display-ready output handed to the rendering layer
// --------------------------------------------
type Bundle struct {
	RankedRecords     RankedRecords     `json:"ranked_records"`
	ProportionBuckets ProportionBuckets `json:"proportion_buckets"`
	WordClouds        WordClouds        `json:"word_clouds"`
	Summary           SummaryMetrics    `json:"summary"`
	Stats             StatsSummary      `json:"stats"`
	Heatmap           []HeatCell        `json:"heatmap"`
}

type RankedRecord struct {
	DisplayName string  `json:"name"`
	Count       float64 `json:"counts"`
}

type RankedRecords struct {
	Videos   []RankedRecord `json:"videos"`
	Channels []RankedRecord `json:"channels"`
	Topics   []RankedRecord `json:"topics"`
}

type Bucket struct {
	Label string  `json:"name"`
	Value float64 `json:"value"`
}

type ProportionBuckets struct {
	Languages  []Bucket `json:"languages"`
	Categories []Bucket `json:"categories"`
	Durations  []Bucket `json:"durations"`
}

type WordClouds struct {
	Videos   WordCloud `json:"videos"`
	Comments WordCloud `json:"comments"`
	Searches WordCloud `json:"searches"`
}

// WordCloud maps a token to the number of times it occurred.
type WordCloud map[string]int

type WordEntry struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

// Entries lists the cloud by descending frequency, ties broken alphabetically.
func (w WordCloud) Entries() []WordEntry {
	out := make([]WordEntry, 0, len(w))
	for text, v := range w {
		out = append(out, WordEntry{Text: text, Value: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Text < out[j].Text
	})
	return out
}

// SummaryMetrics holds the headline figures. Nil pointers mean there was
// not enough data to compute the value.
type SummaryMetrics struct {
	TotalHours           float64  `json:"total_hours"`
	TotalDays            int      `json:"total_days"`
	HoursPerDay          *float64 `json:"hours_per_day"`
	TopCategoryShare     *float64 `json:"top_category_share"`
	FavoriteCategoryName string   `json:"favorite_category"`
	FavoriteVideoTitle   string   `json:"favorite_video"`
}

type StatsSummary struct {
	Watched      int    `json:"watched"`
	Searches     int    `json:"searches"`
	Likes        int    `json:"likes"`
	Comments     int    `json:"comments"`
	ActiveDays   int    `json:"active_days"`
	Uptime       string `json:"uptime"`
	VideosPerDay string `json:"videos_per_day"`
}

type HeatCell struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}
