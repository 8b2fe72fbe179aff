package model

import "time"

// Post is a raw social post as delivered by the acquisition side.
// Content is nil when the source had no body text at all, which is
// distinct from an empty body.
type Post struct {
	Subreddit string    `json:"subreddit"`
	Title     string    `json:"title"`
	Content   *string   `json:"content"`
	Upvotes   int       `json:"upvotes"`
	Comments  int       `json:"comments"`
	Created   time.Time `json:"created"`
	Author    string    `json:"author"`
	URL       string    `json:"url"`
}

// HasDate reports whether the post carries a usable creation date.
// Posts whose timestamp failed to parse keep a zero Created.
func (p Post) HasDate() bool {
	return !p.Created.IsZero()
}

// EnrichedPost is a Post plus the derived analytics fields for one run.
type EnrichedPost struct {
	Post
	CleanTitle   string  `json:"clean_title"`
	CleanContent string  `json:"clean_content"`
	Sentiment    float64 `json:"sentiment"`
	Popularity   int     `json:"popularity"`
}

// Topic is one latent topic from a model fit. Index is stable only within
// the fit that produced it. Label is an optional human-readable name
// assigned after the fit (e.g. by the AI labeler); it never affects the fit.
type Topic struct {
	Index    int      `json:"index"`
	TopTerms []string `json:"top_terms"`
	Label    string   `json:"label,omitempty"`
}

// DailyStat summarises one calendar day (UTC) of enriched posts.
type DailyStat struct {
	Date          time.Time `json:"date"`
	MeanSentiment float64   `json:"mean_sentiment"`
	PostCount     int       `json:"post_count"`
}

// DateRange is a closed [From, To] calendar interval.
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}
