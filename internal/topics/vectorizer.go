package topics

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// maxDocFreq drops terms appearing in more than this share of documents;
// minDocCount drops terms seen in fewer than this many documents. Together
// they filter the noise floor of singleton misspellings and stop-like
// terms the stop list missed.
const (
	maxDocFreq  = 0.95
	minDocCount = 2
)

// tokenize splits normalized text into candidate terms: whitespace-split
// tokens of at least two characters that are not stop words.
func tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) < 2 {
			continue
		}
		if _, stop := stopwords[f]; stop {
			continue
		}
		out = append(out, f)
	}
	return out
}

// vectorize builds the bounded vocabulary over the corpus and re-expresses
// each document as a sequence of vocabulary indices. The vocabulary is
// sorted so term indices are stable for a given corpus.
func vectorize(corpus []string) (vocab []string, docs [][]int) {
	tokenized := make([][]string, len(corpus))
	df := make(map[string]int)
	for i, doc := range corpus {
		tokenized[i] = tokenize(doc)
		seen := make(map[string]struct{})
		for _, t := range tokenized[i] {
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				df[t]++
			}
		}
	}
	n := float64(len(corpus))
	for term, count := range df {
		if count < minDocCount || float64(count) > maxDocFreq*n {
			continue
		}
		vocab = append(vocab, term)
	}
	sort.Strings(vocab)
	index := make(map[string]int, len(vocab))
	for i, t := range vocab {
		index[t] = i
	}
	docs = make([][]int, len(corpus))
	for i, toks := range tokenized {
		for _, t := range toks {
			if id, ok := index[t]; ok {
				docs[i] = append(docs[i], id)
			}
		}
	}
	return vocab, docs
}
