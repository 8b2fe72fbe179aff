// Package topics fits a latent-topic decomposition over a corpus of
// cleaned documents and reports the top-weighted terms per topic. The fit
// uses collapsed Gibbs sampling with an explicit seed, so the same corpus,
// topic count, and seed always produce the same topics.
package topics

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"reddit-pulse/internal/model"
)

// ErrDegenerateCorpus is reported when topic modeling preconditions are
// unmet: fewer than two non-empty documents, or a vocabulary that filters
// down to nothing. Callers treat it as "topic modeling unavailable", not
// as a crash.
var ErrDegenerateCorpus = errors.New("degenerate corpus")

const (
	alpha = 0.1  // document-topic prior
	beta  = 0.01 // topic-term prior
)

// Options tune a single fit. Zero values fall back to the defaults below.
type Options struct {
	TopTerms   int   // terms reported per topic (default 5)
	Seed       int64 // sampler seed (default 42)
	Iterations int   // Gibbs sweeps (default 200)
}

func (o *Options) fillDefaults() {
	if o.TopTerms <= 0 {
		o.TopTerms = 5
	}
	if o.Seed == 0 {
		o.Seed = 42
	}
	if o.Iterations <= 0 {
		o.Iterations = 200
	}
}

// Fit decomposes the corpus into topicCount topics. Empty documents are
// excluded before fitting. Runtime scales with corpus size, vocabulary
// size, and topic count; this is the slow step of the pipeline.
func Fit(corpus []string, topicCount int, opts Options) ([]model.Topic, error) {
	if topicCount < 1 {
		return nil, fmt.Errorf("topic count must be >= 1, got %d", topicCount)
	}
	opts.fillDefaults()

	nonEmpty := make([]string, 0, len(corpus))
	for _, doc := range corpus {
		if doc != "" {
			nonEmpty = append(nonEmpty, doc)
		}
	}
	if len(nonEmpty) < 2 {
		return nil, fmt.Errorf("%w: %d usable documents", ErrDegenerateCorpus, len(nonEmpty))
	}
	vocab, docs := vectorize(nonEmpty)
	if len(vocab) == 0 {
		return nil, fmt.Errorf("%w: empty vocabulary", ErrDegenerateCorpus)
	}

	termWeights := sample(docs, len(vocab), topicCount, opts)

	out := make([]model.Topic, topicCount)
	for k := 0; k < topicCount; k++ {
		out[k] = model.Topic{
			Index:    k,
			TopTerms: topTerms(termWeights[k], vocab, opts.TopTerms),
		}
	}
	return out, nil
}

// sample runs collapsed Gibbs sampling and returns the smoothed
// topic-term counts.
func sample(docs [][]int, vocabSize, topicCount int, opts Options) [][]float64 {
	rng := rand.New(rand.NewSource(opts.Seed))

	docTopic := make([][]int, len(docs))     // per-document topic counts
	topicTerm := make([][]int, topicCount)   // per-topic term counts
	topicTotal := make([]int, topicCount)    // tokens assigned per topic
	assign := make([][]int, len(docs))       // current topic of each token
	for k := range topicTerm {
		topicTerm[k] = make([]int, vocabSize)
	}
	for d, doc := range docs {
		docTopic[d] = make([]int, topicCount)
		assign[d] = make([]int, len(doc))
		for i, w := range doc {
			k := rng.Intn(topicCount)
			assign[d][i] = k
			docTopic[d][k]++
			topicTerm[k][w]++
			topicTotal[k]++
		}
	}

	probs := make([]float64, topicCount)
	betaV := beta * float64(vocabSize)
	for it := 0; it < opts.Iterations; it++ {
		for d, doc := range docs {
			for i, w := range doc {
				k := assign[d][i]
				docTopic[d][k]--
				topicTerm[k][w]--
				topicTotal[k]--

				var total float64
				for t := 0; t < topicCount; t++ {
					p := (float64(docTopic[d][t]) + alpha) *
						(float64(topicTerm[t][w]) + beta) /
						(float64(topicTotal[t]) + betaV)
					probs[t] = p
					total += p
				}
				target := rng.Float64() * total
				next := topicCount - 1
				for t := 0; t < topicCount; t++ {
					target -= probs[t]
					if target < 0 {
						next = t
						break
					}
				}

				assign[d][i] = next
				docTopic[d][next]++
				topicTerm[next][w]++
				topicTotal[next]++
			}
		}
	}

	weights := make([][]float64, topicCount)
	for k := 0; k < topicCount; k++ {
		weights[k] = make([]float64, vocabSize)
		for w := 0; w < vocabSize; w++ {
			weights[k][w] = float64(topicTerm[k][w]) + beta
		}
	}
	return weights
}

// topTerms returns the n heaviest terms for one topic, descending by
// weight with ties broken by vocabulary order for reproducibility.
func topTerms(weights []float64, vocab []string, n int) []string {
	idx := make([]int, len(vocab))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		if weights[idx[a]] != weights[idx[b]] {
			return weights[idx[a]] > weights[idx[b]]
		}
		return idx[a] < idx[b]
	})
	if n > len(idx) {
		n = len(idx)
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = vocab[idx[i]]
	}
	return out
}
