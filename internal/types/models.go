package types

// --------------------------------------------
// Upstream envelope: {id, takeout, ready} or {error}
// --------------------------------------------
type Envelope struct {
	ID      string       `json:"id,omitempty"`
	Takeout *RawDocument `json:"takeout,omitempty"`
	Ready   bool         `json:"ready"`
	Error   string       `json:"error,omitempty"`
}

// RawDocument is the precomputed analytics snapshot for one user.
type RawDocument struct {
	Topics            []TopicCount       `json:"topic"`
	CategoryDurations []CategoryDuration `json:"category_duration_detail"`
	Channels          []ChannelCount     `json:"channel"`
	Languages         []LanguageCount    `json:"lang"`
	TopVideos         []TopVideo         `json:"top5"`
	Stats             Stats              `json:"stat"`
	Heatmap           map[string]int     `json:"heatmap"`
	TextCorpora       TextCorpora        `json:"wordcloud"`
	DurationBuckets   DurationBuckets    `json:"duration"`
}

type TopicCount struct {
	CategoryName string `json:"categoryName"`
	WatchCount   int    `json:"watchTimes1"`
}

type CategoryDuration struct {
	CategoryName string  `json:"categoryName"`
	WatchMinutes float64 `json:"watchTime_min"`
}

type ChannelCount struct {
	ChannelTitle string `json:"channelTitle"`
	WatchCount   int    `json:"watchTimes2"`
	ChannelLink  string `json:"channelLink"`
}

type LanguageCount struct {
	LanguageCode string `json:"language"`
	Count        int    `json:"lanCounts"`
}

type TopVideo struct {
	Rank       string `json:"watch_time_rank"`
	VideoID    string `json:"video_id"`
	VideoLink  string `json:"video_link"`
	WatchCount int    `json:"watch_times"`
	Title      string `json:"video_title"` // HTML-entity encoded
}

// Stats counters arrive wrapped as {"0": value}.
type Stats struct {
	Watched      IntStat    `json:"watched"`
	Searches     IntStat    `json:"searches"`
	Likes        IntStat    `json:"likes"`
	Comments     IntStat    `json:"comments"`
	ActiveDays   IntStat    `json:"active_total_day"`
	Uptime       StringStat `json:"uptime"`
	VideosPerDay StringStat `json:"video_watched_per_day"`
}

type IntStat struct {
	Value int `json:"0"`
}

type StringStat struct {
	Value string `json:"0"`
}

type TextCorpora struct {
	VideoTitles []string `json:"videos"`
	Comments    []string `json:"comments"`
	SearchTerms []string `json:"searches"`
}

// DurationBuckets partitions every watched video by length.
type DurationBuckets struct {
	BelowOneMin int `json:"below_one_minute"`
	OneToFive   int `json:"one_to_five"`
	FiveToTen   int `json:"five_to_ten"`
	AboveTen    int `json:"above_ten"`
}
