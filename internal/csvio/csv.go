// Package csvio reads and writes the flat tabular post format shared with
// the acquisition and presentation collaborators. The column set is part
// of the external contract and must not drift.
package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"reddit-pulse/internal/model"
)

// Columns is the exact enriched-file column order.
var Columns = []string{
	"subreddit", "title", "content", "upvotes", "comments", "created",
	"author", "url", "clean_content", "clean_title", "sentiment", "popularity",
}

// createdFormats are the timestamp shapes seen in post files, tried in
// order. A value matching none of them leaves the post with a zero
// Created; the pipeline reports those as invalid-date records.
var createdFormats = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ReadPosts loads raw or enriched post files; derived columns, when
// present, are ignored since the pipeline recomputes them. An empty
// content cell means the post had no body (absent), not an empty body.
func ReadPosts(path string) ([]model.Post, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	col := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		col[name] = i
	}
	for _, required := range Columns[:8] {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("%s: missing column %q", path, required)
		}
	}

	cell := func(row []string, name string) string {
		i := col[name]
		if i >= len(row) {
			return ""
		}
		return row[i]
	}

	posts := make([]model.Post, 0, len(rows)-1)
	for _, row := range rows[1:] {
		p := model.Post{
			Subreddit: cell(row, "subreddit"),
			Title:     cell(row, "title"),
			Upvotes:   atoi(cell(row, "upvotes")),
			Comments:  atoi(cell(row, "comments")),
			Created:   parseCreated(cell(row, "created")),
			Author:    cell(row, "author"),
			URL:       cell(row, "url"),
		}
		if c := cell(row, "content"); c != "" {
			p.Content = &c
		}
		posts = append(posts, p)
	}
	return posts, nil
}

// WriteEnriched writes the full enriched batch with the exact contract
// column set.
func WriteEnriched(path string, posts []model.EnrichedPost) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Columns); err != nil {
		return err
	}
	for _, p := range posts {
		content := ""
		if p.Content != nil {
			content = *p.Content
		}
		created := ""
		if p.HasDate() {
			created = p.Created.UTC().Format(createdFormats[0])
		}
		row := []string{
			p.Subreddit,
			p.Title,
			content,
			strconv.Itoa(p.Upvotes),
			strconv.Itoa(p.Comments),
			created,
			p.Author,
			p.URL,
			p.CleanContent,
			p.CleanTitle,
			strconv.FormatFloat(p.Sentiment, 'f', -1, 64),
			strconv.Itoa(p.Popularity),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func parseCreated(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range createdFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
