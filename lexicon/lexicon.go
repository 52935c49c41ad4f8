// Package lexicon declares Category, the Index builder, difficulty
// derivation, and sentinel errors.
package lexicon

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lexichain/lexichain/wordgraph"
)

// Category identifies a topical vocabulary.
type Category string

// Built-in categories of the educational dictionaries. Any other
// non-empty Category value is accepted as well; these constants only
// carry default difficulty bases.
const (
	General   Category = "general"
	Science   Category = "science"
	Biology   Category = "biology"
	Physics   Category = "physics"
	Education Category = "education"

	// Mixed is a pseudo-category meaning "the whole dictionary".
	// The Index never stores members under Mixed; the engine resolves
	// it to the full word set wherever a Category is accepted.
	Mixed Category = "mixed"
)

// Difficulty rating scale.
const (
	MinDifficulty     = 1
	MaxDifficulty     = 5
	DefaultDifficulty = 3 // neutral rating for unknown words

	// defaultBase rates categories without an explicit base.
	defaultBase = DefaultDifficulty

	longWordLen  = 5 // words this long or longer rate +1
	shortWordLen = 3 // words this short or shorter rate −1
)

// Sentinel errors for index construction.
var (
	// ErrEmptyCategory indicates an empty category tag.
	ErrEmptyCategory = errors.New("lexicon: empty category tag")

	// ErrEmptyWord indicates a word that normalized to the empty string.
	ErrEmptyWord = errors.New("lexicon: empty word")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("lexicon: invalid option supplied")
)

// defaultBases carries the original game's category → base mapping.
func defaultBases() map[Category]int {
	return map[Category]int{
		General:   2,
		Education: 3,
		Science:   4,
		Biology:   4,
		Physics:   4,
	}
}

// Option configures a Builder via functional arguments.
type Option func(*buildOptions)

type buildOptions struct {
	bases map[Category]int
	err   error
}

// WithBase overrides the difficulty base for a category.
//
//	base within [1, 5]: valid
//	anything else: ErrOptionViolation
func WithBase(cat Category, base int) Option {
	return func(o *buildOptions) {
		if cat == "" {
			o.err = fmt.Errorf("%w: %v", ErrOptionViolation, ErrEmptyCategory)
			return
		}
		if base < MinDifficulty || base > MaxDifficulty {
			o.err = fmt.Errorf("%w: base %d for %q outside [%d, %d]",
				ErrOptionViolation, base, cat, MinDifficulty, MaxDifficulty)
			return
		}
		o.bases[cat] = base
	}
}

// Builder accumulates category memberships before freezing an Index.
// Construct with NewBuilder; the zero value is not usable.
type Builder struct {
	opts    buildOptions
	members map[Category]map[string]struct{}
}

// NewBuilder creates an empty Builder with the default category bases.
func NewBuilder(opts ...Option) *Builder {
	o := buildOptions{bases: defaultBases()}
	for _, opt := range opts {
		opt(&o)
	}

	return &Builder{opts: o, members: make(map[Category]map[string]struct{})}
}

// Add assigns each word to cat. Words are normalized; duplicates
// collapse. Add may be called any number of times per category, and a
// word may belong to several categories.
func (b *Builder) Add(cat Category, words ...string) error {
	if b.opts.err != nil {
		return b.opts.err
	}
	if cat == "" {
		return ErrEmptyCategory
	}
	set := b.members[cat]
	if set == nil {
		set = make(map[string]struct{})
		b.members[cat] = set
	}
	for _, raw := range words {
		w := wordgraph.Normalize(raw)
		if w == "" {
			return fmt.Errorf("%w: in category %q", ErrEmptyWord, cat)
		}
		set[w] = struct{}{}
	}

	return nil
}

// Build freezes the accumulated memberships into an immutable Index.
// The builder remains usable afterwards.
func (b *Builder) Build() *Index {
	ix := &Index{
		members:    make(map[Category]map[string]struct{}, len(b.members)),
		sorted:     make(map[Category][]string, len(b.members)),
		difficulty: make(map[string]int),
		cats:       make([]Category, 0, len(b.members)),
	}
	if b.opts.err != nil {
		return ix
	}

	for cat, set := range b.members {
		dst := make(map[string]struct{}, len(set))
		list := make([]string, 0, len(set))
		for w := range set {
			dst[w] = struct{}{}
			list = append(list, w)
		}
		sort.Strings(list)
		ix.members[cat] = dst
		ix.sorted[cat] = list
		ix.cats = append(ix.cats, cat)
	}
	sort.Slice(ix.cats, func(i, j int) bool { return ix.cats[i] < ix.cats[j] })

	// Rate every word once. Multi-category words take the highest base,
	// so the rating is independent of assignment order.
	for _, cat := range ix.cats {
		base := b.baseFor(cat)
		for _, w := range ix.sorted[cat] {
			if have, ok := ix.difficulty[w]; !ok || rate(w, base) > have {
				ix.difficulty[w] = rate(w, base)
			}
		}
	}

	return ix
}

// baseFor resolves the difficulty base for cat.
func (b *Builder) baseFor(cat Category) int {
	if base, ok := b.opts.bases[cat]; ok {
		return base
	}

	return defaultBase
}

// rate derives the clamped 1–5 rating for a word given a category base.
func rate(word string, base int) int {
	switch {
	case len(word) >= longWordLen:
		base++
	case len(word) <= shortWordLen:
		base--
	}
	if base < MinDifficulty {
		return MinDifficulty
	}
	if base > MaxDifficulty {
		return MaxDifficulty
	}

	return base
}

// Index is the immutable category and difficulty lookup table.
// All queries normalize their inputs and are total: unknown words and
// categories yield zero values or the neutral default, never errors.
type Index struct {
	members    map[Category]map[string]struct{}
	sorted     map[Category][]string
	difficulty map[string]int
	cats       []Category
}

// WordsIn returns the members of cat in lexicographic order, or nil
// for an unknown category. The slice is a copy, safe to retain.
func (ix *Index) WordsIn(cat Category) []string {
	src := ix.sorted[cat]
	if len(src) == 0 {
		return nil
	}
	out := make([]string, len(src))
	copy(out, src)

	return out
}

// Contains reports whether word belongs to cat.
func (ix *Index) Contains(cat Category, word string) bool {
	_, ok := ix.members[cat][wordgraph.Normalize(word)]

	return ok
}

// Count returns the number of words in cat.
func (ix *Index) Count(cat Category) int { return len(ix.members[cat]) }

// DifficultyOf returns the 1–5 rating of word, or the neutral default
// of 3 when the word carries no rating. Never fails.
func (ix *Index) DifficultyOf(word string) int {
	if d, ok := ix.difficulty[wordgraph.Normalize(word)]; ok {
		return d
	}

	return DefaultDifficulty
}

// CategoriesOf returns the categories containing word, sorted, or nil.
func (ix *Index) CategoriesOf(word string) []Category {
	w := wordgraph.Normalize(word)
	var out []Category
	for _, cat := range ix.cats {
		if _, ok := ix.members[cat][w]; ok {
			out = append(out, cat)
		}
	}

	return out
}

// Categories returns every known category in lexicographic order.
// The slice is a copy, safe to retain.
func (ix *Index) Categories() []Category {
	out := make([]Category, len(ix.cats))
	copy(out, ix.cats)

	return out
}
