// Package scorer ranks documents against a reference corpus using
// TF-IDF weighting over normalized tokens.
//
// A Corpus is built fresh from the reference documents, pre-calculating
// per-document term frequencies and the document-frequency table. Score
// then aggregates TF·IDF over the distinct terms of a candidate
// document. Scores are plain floats: positive means informative overlap
// with the corpus, negative means the candidate carries terms the
// corpus saturates on (or nothing at all).
//
// The scorer never returns NaN or an infinity. Degenerate candidates
// (empty, whitespace-only, or fully filtered by normalization) get a
// defined negative sentinel instead, and a zero-document corpus is an
// error rather than a division by zero.
package scorer

import (
	"errors"
	"log/slog"
	"math"
	"sort"
)

// ErrEmptyCorpus is returned when scoring against a corpus with no
// documents.
var ErrEmptyCorpus = errors.New("empty corpus")

// Corpus holds pre-calculated TF-IDF statistics for a document
// collection. A Corpus is immutable after construction and safe for
// concurrent use.
type Corpus struct {
	termFreqs []map[string]float64 // per-document relative term frequency
	docFreq   map[string]int       // term -> number of documents containing it
	docCount  int
}

// NewCorpus builds a corpus index from a collection of documents. Every
// entry counts toward the document total, including entries that
// normalize to zero tokens; callers wanting the alternative policy
// filter blank entries before calling.
func NewCorpus(documents []string) *Corpus {
	c := &Corpus{
		termFreqs: make([]map[string]float64, len(documents)),
		docFreq:   make(map[string]int),
		docCount:  len(documents),
	}

	for i, doc := range documents {
		c.termFreqs[i] = termFrequency(Tokenize(doc))
		for term := range c.termFreqs[i] {
			c.docFreq[term]++
		}
	}

	slog.Debug("built corpus index", "documents", c.docCount, "terms", len(c.docFreq))
	return c
}

// DocumentCount returns the number of documents in the corpus,
// including entries that normalized to zero tokens.
func (c *Corpus) DocumentCount() int {
	return c.docCount
}

// Score computes the aggregate TF-IDF relevance of a candidate document
// against the corpus.
//
// For each distinct token t of the candidate, TF(t) is its relative
// frequency within the candidate and IDF(t) = ln(n/(1+df(t))) with n
// the corpus document count. The aggregate is the arithmetic mean of
// TF·IDF over distinct tokens, which keeps scores independent of
// document length.
//
// A candidate that normalizes to zero tokens scores the sentinel
// ln(n/(n+1)). An empty corpus returns ErrEmptyCorpus.
func (c *Corpus) Score(document string) (float64, error) {
	if c.docCount == 0 {
		return 0, ErrEmptyCorpus
	}

	tokens := Tokenize(document)
	if len(tokens) == 0 {
		slog.Debug("candidate normalized to zero tokens", "sentinel", c.sentinel())
		return c.sentinel(), nil
	}

	tf := termFrequency(tokens)

	// summation order is fixed so repeated calls are bit-identical
	terms := make([]string, 0, len(tf))
	for term := range tf {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	var sum float64
	for _, term := range terms {
		idf := math.Log(float64(c.docCount) / float64(1+c.docFreq[term]))
		sum += tf[term] * idf
	}

	score := sum / float64(len(tf))
	if math.IsNaN(score) || math.IsInf(score, 0) {
		// cannot happen with docCount >= 1; kept as a hard guarantee
		// that NaN never crosses the package boundary
		return c.sentinel(), nil
	}
	return score, nil
}

// sentinel is the score for candidates that normalize to nothing: the
// IDF of a hypothetical term found in every corpus document and the
// candidate itself, ln(n/(n+1)). Always negative, approaching zero as
// the corpus grows.
func (c *Corpus) sentinel() float64 {
	return math.Log(float64(c.docCount) / float64(c.docCount+1))
}

func termFrequency(tokens []string) map[string]float64 {
	freqs := make(map[string]float64, len(tokens))
	if len(tokens) == 0 {
		return freqs
	}

	counts := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		counts[tok]++
	}

	total := float64(len(tokens))
	for term, count := range counts {
		freqs[term] = float64(count) / total
	}
	return freqs
}
