// Command lexichain is a small console front end for the word-chain
// engine. It plays the dictionary-loader role the engine leaves to
// external collaborators: category word files are read from a words
// directory (or a built-in dictionary is used) and fed to the engine,
// then one query subcommand runs against the built graph.
//
// Usage:
//
//	lexichain [flags] stats
//	lexichain [flags] neighbors WORD
//	lexichain [flags] solve START TARGET
//	lexichain [flags] hint CURRENT TARGET
//	lexichain [flags] pair [-category TAG] [-difficulty N] [-min N] [-max N]
//
// Environment:
//
//	LEXICHAIN_WORDS_DIR  words directory (same as -words)
//	LOG_LEVEL            zerolog level, default "info"
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/lexichain/lexichain/engine"
	"github.com/lexichain/lexichain/lexicon"
)

func main() {
	_ = godotenv.Load()

	var (
		configPath = flag.String("config", "", "optional engine config YAML")
		wordsDir   = flag.String("words", getEnv("LEXICHAIN_WORDS_DIR", ""), "directory with <category>_words.txt files")
		category   = flag.String("category", string(lexicon.Mixed), "category tag for pair sampling")
		difficulty = flag.Int("difficulty", 0, "difficulty filter 1-5 for pair sampling (0 = off)")
		minDist    = flag.Int("min", 0, "minimum pair distance (0 = config default)")
		maxDist    = flag.Int("max", 0, "maximum pair distance (0 = config default)")
	)
	flag.Parse()

	log := newLogger()

	cfg := engine.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = engine.LoadConfig(*configPath); err != nil {
			log.Fatal().Err(err).Str("path", *configPath).Msg("failed to load config")
		}
	}

	eng, err := engine.New(engine.WithConfig(cfg), engine.WithLogger(log))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to construct engine")
	}
	if err := loadDictionary(eng, *wordsDir); err != nil {
		log.Fatal().Err(err).Msg("failed to load dictionary")
	}

	switch cmd := flag.Arg(0); cmd {
	case "stats":
		printStats(eng)
	case "neighbors":
		requireArgs(log, 2, "neighbors WORD")
		printNeighbors(eng, flag.Arg(1))
	case "solve":
		requireArgs(log, 3, "solve START TARGET")
		printSolve(eng, flag.Arg(1), flag.Arg(2))
	case "hint":
		requireArgs(log, 3, "hint CURRENT TARGET")
		printHint(eng, flag.Arg(1), flag.Arg(2))
	case "pair":
		printPair(eng, lexicon.Category(*category), *minDist, *maxDist, *difficulty)
	default:
		fmt.Fprintln(os.Stderr, "usage: lexichain [flags] stats|neighbors|solve|hint|pair")
		os.Exit(2)
	}
}

// newLogger builds a console logger honoring LOG_LEVEL.
func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		level = lvl
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

func requireArgs(log zerolog.Logger, n int, usage string) {
	if flag.NArg() < n {
		log.Fatal().Msgf("usage: lexichain %s", usage)
	}
}

func printStats(eng *engine.Engine) {
	st := eng.Stats()
	fmt.Printf("words:          %d\n", st.TotalWords)
	fmt.Printf("edges:          %d\n", st.TotalEdges)
	fmt.Printf("average degree: %.2f\n", st.AverageDegree)
	fmt.Printf("connected:      %v\n", st.IsConnected)
	for cat, n := range st.PerCategory {
		fmt.Printf("  %-12s %d\n", cat, n)
	}
}

func printNeighbors(eng *engine.Engine, word string) {
	nbrs := eng.Neighbors(word)
	if nbrs == nil {
		fmt.Printf("%s has no neighbors in the dictionary\n", strings.ToUpper(word))
		return
	}
	fmt.Println(strings.Join(nbrs, " "))
}

func printSolve(eng *engine.Engine, start, target string) {
	path := eng.ShortestPath(start, target)
	if path == nil {
		fmt.Printf("no path from %s to %s\n", strings.ToUpper(start), strings.ToUpper(target))
		os.Exit(1)
	}
	fmt.Printf("%s  (%d moves)\n", strings.Join(path, " -> "), len(path)-1)
}

func printHint(eng *engine.Engine, current, target string) {
	hint, ok := eng.Hint(current, target)
	if !ok {
		fmt.Printf("no hint from %s toward %s\n", strings.ToUpper(current), strings.ToUpper(target))
		os.Exit(1)
	}
	fmt.Println(hint)
}

func printPair(eng *engine.Engine, tag lexicon.Category, minDist, maxDist, difficulty int) {
	pair, ok := eng.RandomPairInCategory(tag, minDist, maxDist, difficulty)
	if !ok {
		fmt.Println("no suitable pair found; widen the window or pool")
		os.Exit(1)
	}
	fmt.Printf("%s -> %s  (distance %d, id %s)\n", pair.Start, pair.Target, pair.Distance, pair.ID)
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}

	return def
}
