package engine_test

import (
	"fmt"

	"github.com/lexichain/lexichain/engine"
	"github.com/lexichain/lexichain/lexicon"
)

// Example walks the whole gameplay surface on a five-word dictionary.
func Example() {
	eng, err := engine.New()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if _, err := eng.Load([]string{"CAT", "BAT", "HAT", "COT", "COW"}); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(eng.Neighbors("CAT"))
	fmt.Println(eng.ShortestPath("CAT", "COW"), eng.Distance("CAT", "COW"))

	hint, _ := eng.Hint("CAT", "COW")
	fmt.Println(hint)

	fmt.Println(eng.ValidateMove("CAT", "DOG"))
	fmt.Println(eng.ValidateMove("CAT", "CAKE"))
	// Output:
	// [BAT COT HAT]
	// [CAT COT COW] 2
	// COT
	// not_one_letter
	// wrong_length
}

// ExampleEngine_LoadCategory shows topic vocabularies and restricted
// validation.
func ExampleEngine_LoadCategory() {
	eng, _ := engine.New()
	_, _ = eng.LoadCategory(lexicon.Science, []string{"CAT", "COT", "COW"})
	_, _ = eng.LoadCategory(lexicon.General, []string{"BAT", "HAT"})

	fmt.Println(eng.NeighborsInCategory("CAT", lexicon.Science))
	fmt.Println(eng.ValidateMoveInCategory("CAT", "BAT", lexicon.Science))
	fmt.Println(eng.DifficultyOf("CAT"))
	// Output:
	// [COT]
	// not_in_category
	// 3
}
