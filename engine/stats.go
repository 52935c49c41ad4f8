package engine

import (
	"github.com/lexichain/lexichain/lexicon"
)

// Stats summarizes the live snapshot for dashboards and health checks.
type Stats struct {
	TotalWords    int                      `json:"total_words"`
	TotalEdges    int                      `json:"total_edges"`
	AverageDegree float64                  `json:"average_degree"`
	IsConnected   bool                     `json:"is_connected"`
	PerCategory   map[lexicon.Category]int `json:"words_by_category"`
}

// CategoryStats summarizes one category's vocabulary.
type CategoryStats struct {
	Category  lexicon.Category `json:"category"`
	WordCount int              `json:"word_count"`
	InGraph   int              `json:"words_in_graph"`
	Sample    []string         `json:"sample_words"`
}

// Stats computes summary statistics over the live snapshot.
func (e *Engine) Stats() Stats {
	s := e.current()
	per := make(map[lexicon.Category]int)
	for _, cat := range s.index.Categories() {
		per[cat] = s.index.Count(cat)
	}

	return Stats{
		TotalWords:    s.graph.WordCount(),
		TotalEdges:    s.graph.EdgeCount(),
		AverageDegree: s.graph.AverageDegree(),
		IsConnected:   s.graph.Connected(),
		PerCategory:   per,
	}
}

// CategoryStats reports size, graph coverage, and a small sorted
// sample of the category's vocabulary. Mixed covers the whole
// dictionary, where coverage is total by construction.
func (e *Engine) CategoryStats(tag lexicon.Category) CategoryStats {
	s := e.current()
	words := s.index.WordsIn(tag)
	if tag == lexicon.Mixed {
		words = s.graph.Words()
	}

	inGraph := 0
	for _, w := range words {
		if s.graph.Has(w) {
			inGraph++
		}
	}
	sample := words
	if len(sample) > categorySampleSize {
		sample = sample[:categorySampleSize]
	}

	return CategoryStats{
		Category:  tag,
		WordCount: len(words),
		InGraph:   inGraph,
		Sample:    sample,
	}
}
