// Package moves declares the Outcome enum, the Vocabulary lookup
// contract, and the Validate classifier.
package moves

import (
	"errors"

	"github.com/lexichain/lexichain/wordgraph"
)

// ErrLengthMismatch is returned by HammingDistance for unequal-length words.
var ErrLengthMismatch = errors.New("moves: words differ in length")

// Outcome classifies a proposed move. The set is closed: every
// possible (current, next) pair maps to exactly one Outcome.
type Outcome int

const (
	// Valid: next is a legal move from current.
	Valid Outcome = iota

	// SameWord: next equals current.
	SameWord

	// WrongLength: next has a different length than current.
	WrongLength

	// NotInDictionary: next is not a dictionary word.
	NotInDictionary

	// NotOneLetterDifference: next differs from current in more than
	// one position.
	NotOneLetterDifference

	// NotInCategoryVocabulary: next is a dictionary word but absent
	// from the requested category's vocabulary.
	NotInCategoryVocabulary
)

// outcomeCodes are the wire-friendly reason codes consumers surface to
// players.
var outcomeCodes = map[Outcome]string{
	Valid:                   "valid",
	SameWord:                "same_word",
	WrongLength:             "wrong_length",
	NotInDictionary:         "not_in_dictionary",
	NotOneLetterDifference:  "not_one_letter",
	NotInCategoryVocabulary: "not_in_category",
}

// String returns the snake_case reason code for o.
func (o Outcome) String() string {
	if code, ok := outcomeCodes[o]; ok {
		return code
	}

	return "unknown"
}

// IsValid reports whether o permits the move.
func (o Outcome) IsValid() bool { return o == Valid }

// Vocabulary answers membership queries over normalized words.
// *wordgraph.Graph satisfies it directly.
type Vocabulary interface {
	Has(word string) bool
}

// VocabularyFunc adapts a plain predicate into a Vocabulary.
type VocabularyFunc func(word string) bool

// Has implements Vocabulary.
func (f VocabularyFunc) Has(word string) bool { return f(word) }

// Option configures Validate via functional arguments.
type Option func(*validateOptions)

type validateOptions struct {
	category Vocabulary // nil = unrestricted
}

// WithCategoryVocabulary restricts the move to words of v: a word in
// the dictionary but outside v classifies as NotInCategoryVocabulary.
func WithCategoryVocabulary(v Vocabulary) Option {
	return func(o *validateOptions) {
		if v != nil {
			o.category = v
		}
	}
}

// Validate classifies the transition current → next against dict.
// Both words are normalized first; a nil dict behaves as an empty
// dictionary. Evaluation order is fixed, first match wins.
func Validate(current, next string, dict Vocabulary, opts ...Option) Outcome {
	var o validateOptions
	for _, opt := range opts {
		opt(&o)
	}

	cur := wordgraph.Normalize(current)
	nxt := wordgraph.Normalize(next)

	if cur == nxt {
		return SameWord
	}
	if len(cur) != len(nxt) {
		return WrongLength
	}
	if dict == nil || !dict.Has(nxt) {
		return NotInDictionary
	}
	if o.category != nil && !o.category.Has(nxt) {
		return NotInCategoryVocabulary
	}
	if hamming(cur, nxt) != 1 {
		return NotOneLetterDifference
	}

	return Valid
}

// HammingDistance counts the differing character positions between two
// equal-length words (after normalization), or ErrLengthMismatch.
func HammingDistance(a, b string) (int, error) {
	na, nb := wordgraph.Normalize(a), wordgraph.Normalize(b)
	if len(na) != len(nb) {
		return 0, ErrLengthMismatch
	}

	return hamming(na, nb), nil
}

// hamming assumes equal-length, normalized inputs.
func hamming(a, b string) int {
	d := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			d++
		}
	}

	return d
}
