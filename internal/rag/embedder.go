// Package rag implements retrieval for the product catalog: a small TF-IDF
// embedder plus an in-memory vector store. It trades model quality for zero
// external services, which is plenty for keyword-driven product queries.
package rag

import (
	"math"
	"sort"
	"strings"
)

// Embedder builds TF-IDF vectors over a fitted document corpus.
type Embedder struct {
	idf   map[string]float64
	vocab []string // sorted for stable vector ordering
}

// NewEmbedder returns an unfitted embedder. Call Fit before Embed.
func NewEmbedder() *Embedder {
	return &Embedder{idf: map[string]float64{}}
}

// tokenize lowercases, strips punctuation and drops tokens shorter than
// three characters.
func tokenize(text string) []string {
	var sb strings.Builder
	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		} else {
			sb.WriteRune(' ')
		}
	}

	var tokens []string
	for _, t := range strings.Fields(sb.String()) {
		if len(t) > 2 {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// Fit computes IDF scores and the vocabulary from the corpus.
func (e *Embedder) Fit(documents []string) {
	docCount := len(documents)
	docFreq := map[string]int{}

	for _, doc := range documents {
		seen := map[string]bool{}
		for _, tok := range tokenize(doc) {
			if !seen[tok] {
				seen[tok] = true
				docFreq[tok]++
			}
		}
	}

	e.idf = make(map[string]float64, len(docFreq))
	e.vocab = e.vocab[:0]
	for word, df := range docFreq {
		e.idf[word] = math.Log(float64(docCount) / float64(df))
		e.vocab = append(e.vocab, word)
	}
	sort.Strings(e.vocab)
}

// Embed returns an L2-normalized TF-IDF vector for text over the fitted
// vocabulary. Unknown words contribute nothing.
func (e *Embedder) Embed(text string) []float64 {
	tokens := tokenize(text)

	counts := map[string]int{}
	for _, t := range tokens {
		counts[t]++
	}

	vector := make([]float64, len(e.vocab))
	if len(tokens) == 0 {
		return vector
	}

	var sumSquares float64
	for i, word := range e.vocab {
		tf := float64(counts[word]) / float64(len(tokens))
		v := tf * e.idf[word]
		vector[i] = v
		sumSquares += v * v
	}

	if mag := math.Sqrt(sumSquares); mag > 0 {
		for i := range vector {
			vector[i] /= mag
		}
	}
	return vector
}

// Similarity is the cosine similarity of two normalized vectors, clamped
// to [0, 1]. Mismatched lengths yield 0.
func Similarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot float64
	for i := range a {
		dot += a[i] * b[i]
	}
	return math.Max(0, math.Min(1, dot))
}
