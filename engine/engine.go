package engine

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/lexichain/lexichain/lexicon"
	"github.com/lexichain/lexichain/moves"
	"github.com/lexichain/lexichain/pathfind"
	"github.com/lexichain/lexichain/puzzle"
	"github.com/lexichain/lexichain/wordgraph"
)

// NoPath is the sentinel Distance result for unreachable pairs,
// re-exported for consumers that never touch pathfind directly.
const NoPath = pathfind.NoPath

// categorySampleSize caps the sample words in CategoryStats.
const categorySampleSize = 20

// snapshot pairs one immutable graph with the lexicon index built from
// the same word set. Queries read exactly one snapshot for their whole
// duration.
type snapshot struct {
	graph *wordgraph.Graph
	index *lexicon.Index
}

// Engine composes the word graph, lexicon, validator, path engine, and
// puzzle generator behind one read-only gameplay surface.
// Construct with New; the zero value is not usable.
type Engine struct {
	cfg Config
	log zerolog.Logger

	// rngMu guards rng during pair sampling.
	rngMu sync.Mutex
	rng   *rand.Rand

	// mu serializes loads; readers never take it.
	mu    sync.Mutex
	base  []string                      // words loaded outside any category
	cats  map[lexicon.Category][]string // per-category source lists
	order []lexicon.Category            // category insertion order (for logs)

	snap atomic.Pointer[snapshot]
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option {
	return func(e *Engine) { e.cfg = cfg }
}

// WithLogger injects a structured logger; the default discards
// everything.
func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// WithRand injects the random source used for puzzle sampling,
// typically seeded for reproducible tests.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		if r != nil {
			e.rng = r
		}
	}
}

// New constructs an empty engine. Feed it words with Load or
// LoadCategory before serving gameplay queries; until then every
// query answers the empty-dictionary result.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		cfg:  DefaultConfig(),
		log:  zerolog.Nop(),
		cats: make(map[lexicon.Category][]string),
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.cfg.validate(); err != nil {
		return nil, err
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	e.snap.Store(e.buildSnapshot())

	return e, nil
}

// Load replaces the entire dictionary with words, discarding all
// category assignments, and swaps in the rebuilt snapshot. Malformed
// words (empty, outside the length bounds) are skipped, per the
// loader-filters contract. Returns the admitted word count.
func (e *Engine) Load(words []string) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	admitted, skipped := e.filter(words)
	e.base = admitted
	e.cats = make(map[lexicon.Category][]string)
	e.order = nil

	snap := e.buildSnapshot()
	e.snap.Store(snap)
	e.log.Info().
		Int("admitted", len(admitted)).
		Int("skipped", skipped).
		Int("edges", snap.graph.EdgeCount()).
		Msg("dictionary loaded")

	return snap.graph.WordCount(), nil
}

// LoadCategory adds words to the given category's vocabulary (and to
// the dictionary) and swaps in the rebuilt snapshot. It is additive: a
// word may be assigned to several categories across calls. Loading
// into the Mixed pseudo-category extends the dictionary without
// tagging. Returns the admitted word count for this call.
func (e *Engine) LoadCategory(tag lexicon.Category, words []string) (int, error) {
	if tag == "" {
		return 0, lexicon.ErrEmptyCategory
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	admitted, skipped := e.filter(words)
	if tag == lexicon.Mixed {
		e.base = append(e.base, admitted...)
	} else {
		if _, known := e.cats[tag]; !known {
			e.order = append(e.order, tag)
		}
		e.cats[tag] = append(e.cats[tag], admitted...)
	}

	snap := e.snap.Load()
	next := e.buildSnapshot()
	e.snap.Store(next)
	e.log.Info().
		Str("category", string(tag)).
		Int("admitted", len(admitted)).
		Int("skipped", skipped).
		Int("total_words", next.graph.WordCount()).
		Int("prev_words", snap.graph.WordCount()).
		Msg("category loaded")

	return len(admitted), nil
}

// filter normalizes words and drops those the length policy rejects.
func (e *Engine) filter(words []string) (admitted []string, skipped int) {
	b := wordgraph.NewBuilder(wordgraph.WithLengthBounds(e.cfg.MinWordLen, e.cfg.MaxWordLen))
	admitted = make([]string, 0, len(words))
	for _, raw := range words {
		if err := b.Check(raw); err != nil {
			skipped++
			continue
		}
		admitted = append(admitted, wordgraph.Normalize(raw))
	}

	return admitted, skipped
}

// buildSnapshot constructs a fresh graph + index from the current
// source lists. Called under e.mu (or before the engine is shared).
func (e *Engine) buildSnapshot() *snapshot {
	gb := wordgraph.NewBuilder(wordgraph.WithLengthBounds(e.cfg.MinWordLen, e.cfg.MaxWordLen))
	_ = gb.Add(e.base...) // already filtered

	lexOpts := make([]lexicon.Option, 0, len(e.cfg.Bases))
	for cat, base := range e.cfg.Bases {
		lexOpts = append(lexOpts, lexicon.WithBase(lexicon.Category(cat), base))
	}
	lb := lexicon.NewBuilder(lexOpts...)
	for tag, words := range e.cats {
		_ = gb.Add(words...)
		_ = lb.Add(tag, words...)
	}

	return &snapshot{graph: gb.Build(), index: lb.Build()}
}

// current returns the live snapshot; never nil after New.
func (e *Engine) current() *snapshot { return e.snap.Load() }

// IsValidWord reports whether word is in the dictionary.
func (e *Engine) IsValidWord(word string) bool {
	return e.current().graph.Has(word)
}

// IsValidWordInCategory reports whether word belongs to the category's
// vocabulary; Mixed means anywhere in the dictionary.
func (e *Engine) IsValidWordInCategory(word string, tag lexicon.Category) bool {
	s := e.current()
	if tag == lexicon.Mixed {
		return s.graph.Has(word)
	}

	return s.index.Contains(tag, word)
}

// ValidateMove classifies the transition current → next against the
// whole dictionary.
func (e *Engine) ValidateMove(current, next string) moves.Outcome {
	return moves.Validate(current, next, e.current().graph)
}

// ValidateMoveInCategory classifies the transition against the
// category's vocabulary; Mixed behaves like ValidateMove.
func (e *Engine) ValidateMoveInCategory(current, next string, tag lexicon.Category) moves.Outcome {
	s := e.current()
	if tag == lexicon.Mixed {
		return moves.Validate(current, next, s.graph)
	}
	vocab := moves.VocabularyFunc(func(w string) bool { return s.index.Contains(tag, w) })

	return moves.Validate(current, next, s.graph, moves.WithCategoryVocabulary(vocab))
}

// Neighbors returns the valid next words from word, sorted, or nil.
func (e *Engine) Neighbors(word string) []string {
	return e.current().graph.Neighbors(word)
}

// NeighborsInCategory returns the neighbors of word that belong to the
// category's vocabulary; Mixed returns them all.
func (e *Engine) NeighborsInCategory(word string, tag lexicon.Category) []string {
	s := e.current()
	nbrs := s.graph.Neighbors(word)
	if tag == lexicon.Mixed || nbrs == nil {
		return nbrs
	}
	out := nbrs[:0]
	for _, n := range nbrs {
		if s.index.Contains(tag, n) {
			out = append(out, n)
		}
	}
	if len(out) == 0 {
		return nil
	}

	return out
}

// ShortestPath returns the optimal word sequence from a to b, both
// inclusive, or nil when either word is unknown or no path exists.
func (e *Engine) ShortestPath(a, b string) []string {
	path, err := pathfind.ShortestPath(e.current().graph, a, b)
	if err != nil {
		return nil
	}

	return path
}

// Distance returns the minimum number of moves from a to b: 0 for the
// same word, or NoPath (−1) when unknown or unreachable.
func (e *Engine) Distance(a, b string) int {
	d, err := pathfind.Distance(e.current().graph, a, b)
	if err != nil {
		return NoPath
	}

	return d
}

// Hint returns the next word along an optimal route from current to
// target. ok is false when current equals target, either word is
// unknown, or no path exists.
func (e *Engine) Hint(current, target string) (hint string, ok bool) {
	hint, err := pathfind.Hint(e.current().graph, current, target)

	return hint, err == nil
}

// RandomPair samples a start/target pair from the whole dictionary
// whose distance lies within [minDist, maxDist]. A non-positive window
// falls back to the configured default. ok is false when no pair could
// be found within the attempt budget.
func (e *Engine) RandomPair(minDist, maxDist int) (puzzle.Pair, bool) {
	s := e.current()

	return e.sample(s.graph, s.graph.Words(), minDist, maxDist)
}

// RandomPairInCategory samples a pair from the category's vocabulary.
// An unknown or Mixed tag falls back to the whole dictionary. A
// difficulty of 1–5 restricts the pool to words rated within one step
// of it; 0 disables the filter.
func (e *Engine) RandomPairInCategory(tag lexicon.Category, minDist, maxDist, difficulty int) (puzzle.Pair, bool) {
	s := e.current()
	pool := s.index.WordsIn(tag)
	if tag == lexicon.Mixed || len(pool) == 0 {
		pool = s.graph.Words()
	}
	if difficulty >= lexicon.MinDifficulty && difficulty <= lexicon.MaxDifficulty {
		filtered := pool[:0]
		for _, w := range pool {
			d := s.index.DifficultyOf(w)
			if d >= difficulty-1 && d <= difficulty+1 {
				filtered = append(filtered, w)
			}
		}
		pool = filtered
	}

	return e.sample(s.graph, pool, minDist, maxDist)
}

// sample runs one bounded rejection-sampling round over pool.
func (e *Engine) sample(g *wordgraph.Graph, pool []string, minDist, maxDist int) (puzzle.Pair, bool) {
	if minDist <= 0 {
		minDist = e.cfg.MinDistance
	}
	if maxDist <= 0 {
		maxDist = e.cfg.MaxDistance
	}

	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	gen, err := puzzle.NewGenerator(g,
		puzzle.WithRand(e.rng),
		puzzle.WithMaxAttempts(e.cfg.MaxAttempts),
	)
	if err != nil {
		return puzzle.Pair{}, false
	}
	pair, err := gen.Pair(pool, minDist, maxDist)
	if err != nil {
		e.log.Debug().Err(err).
			Int("pool", len(pool)).
			Int("min", minDist).
			Int("max", maxDist).
			Msg("pair sampling came up empty")

		return puzzle.Pair{}, false
	}

	return pair, true
}

// DifficultyOf returns the 1–5 rating of word; unrated words answer
// the neutral default.
func (e *Engine) DifficultyOf(word string) int {
	return e.current().index.DifficultyOf(word)
}

// CategoriesOf returns the categories containing word, sorted, or nil.
func (e *Engine) CategoriesOf(word string) []lexicon.Category {
	return e.current().index.CategoriesOf(word)
}

// WordsInCategory returns the category's vocabulary, sorted; Mixed
// returns the whole dictionary.
func (e *Engine) WordsInCategory(tag lexicon.Category) []string {
	s := e.current()
	if tag == lexicon.Mixed {
		return s.graph.Words()
	}

	return s.index.WordsIn(tag)
}
