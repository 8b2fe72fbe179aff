// Package report renders one pipeline run as a plain markdown document:
// summary counts, topics, the daily series, and the sentiment extremes.
package report

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"
	"time"

	"reddit-pulse/internal/model"
)

type topicView struct {
	Index int
	Label string
	Terms string
}

type dailyView struct {
	Date  string
	Count int
	Mean  string
}

type postView struct {
	Title     string
	Subreddit string
	Sentiment string
}

// Data is the flattened view handed to the template.
type Data struct {
	Title          string
	Generated      string
	PostCount      int
	MeanSentiment  string
	MeanPopularity string
	Notices        []string
	Topics         []topicView
	Daily          []dailyView
	TopPositive    []postView
	TopNegative    []postView
}

//go:embed report.tmpl
var reportTpl string

var compiled = template.Must(template.New("report").Parse(reportTpl))

// Render produces the markdown report for a run.
func Render(res *model.Result) (string, error) {
	var buf bytes.Buffer
	if err := compiled.Execute(&buf, build(res)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func build(res *model.Result) Data {
	d := Data{
		Title:     fmt.Sprintf("Post analytics %s", res.GeneratedAt.UTC().Format("2006-01-02")),
		Generated: res.GeneratedAt.UTC().Format("2006-01-02 15:04"),
		PostCount: len(res.Enriched),
	}
	var sentSum, popSum float64
	for _, e := range res.Enriched {
		sentSum += e.Sentiment
		popSum += float64(e.Popularity)
	}
	if n := float64(len(res.Enriched)); n > 0 {
		d.MeanSentiment = fmt.Sprintf("%.3f", sentSum/n)
		d.MeanPopularity = fmt.Sprintf("%.1f", popSum/n)
	} else {
		d.MeanSentiment = "0.000"
		d.MeanPopularity = "0.0"
	}
	for _, n := range res.Notices {
		s := string(n.Kind)
		if n.Count > 0 {
			s = fmt.Sprintf("%s (%d records)", s, n.Count)
		}
		if n.Detail != "" {
			s = fmt.Sprintf("%s: %s", s, n.Detail)
		}
		d.Notices = append(d.Notices, s)
	}
	for _, t := range res.Topics {
		d.Topics = append(d.Topics, topicView{
			Index: t.Index + 1,
			Label: t.Label,
			Terms: strings.Join(t.TopTerms, ", "),
		})
	}
	for _, s := range res.Daily {
		d.Daily = append(d.Daily, dailyView{
			Date:  s.Date.Format(time.DateOnly),
			Count: s.PostCount,
			Mean:  fmt.Sprintf("%.3f", s.MeanSentiment),
		})
	}
	d.TopPositive = postViews(res.TopPositive)
	d.TopNegative = postViews(res.TopNegative)
	return d
}

func postViews(posts []model.EnrichedPost) []postView {
	out := make([]postView, 0, len(posts))
	for _, p := range posts {
		out = append(out, postView{
			Title:     p.Title,
			Subreddit: p.Subreddit,
			Sentiment: fmt.Sprintf("%.3f", p.Sentiment),
		})
	}
	return out
}
