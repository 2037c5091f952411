package letters

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue_CoversFullAlphabet(t *testing.T) {
	t.Parallel()

	for _, c := range Alphabet {
		v := Value(string(c))
		assert.Contains(t, []int{10, 20, 30}, v, "letter %c has no tier", c)
	}

	// Lowercase maps to the same tier
	assert.Equal(t, Value("Q"), Value("q"))

	// Non-letters are worthless
	assert.Equal(t, 0, Value("?"))
	assert.Equal(t, 0, Value(""))
	assert.Equal(t, 0, Value("AB"))
}

func TestDraw_Distribution(t *testing.T) {
	t.Parallel()

	const n = 50000
	counts := make(map[string]int)
	for i := 0; i < n; i++ {
		counts[Draw()]++
	}

	// Every weighted letter should appear in a large sample
	for _, c := range Alphabet {
		assert.Greater(t, counts[string(c)], 0, "letter %c never drawn", c)
	}

	// E (weight 12) must be clearly more frequent than Z (weight 1)
	assert.Greater(t, counts["E"], counts["Z"]*3)

	// Frequencies should be roughly proportional to weights: E ~ 12/98
	expected := float64(n) * 12.0 / float64(totalWeight)
	assert.InDelta(t, expected, float64(counts["E"]), expected*0.25)
}

func TestMultiplier_Fallback(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.0, Multiplier(0))
	assert.Equal(t, 1.2, Multiplier(1))
	assert.Equal(t, 1.5, Multiplier(2))

	// Out-of-range rounds fall back to 1.0
	assert.Equal(t, 1.0, Multiplier(-1))
	assert.Equal(t, 1.0, Multiplier(3))
	assert.Equal(t, 1.0, Multiplier(99))
}

func TestScoreWord_Formula(t *testing.T) {
	t.Parallel()

	// CAT: C=20, A=10, T=10 -> base 40, length bonus 1.6, round 0 mult 1.0
	assert.Equal(t, 64, ScoreWord("CAT", 0))
	assert.Equal(t, 64, ScoreWord("cat", 0)) // case-insensitive

	// Same word in round 2: derive from the formula, not a memorized value
	want := int(math.Round(40 * 1.6 * Multiplier(2)))
	assert.Equal(t, want, ScoreWord("CAT", 2))

	// Out-of-range round index scores as multiplier 1.0
	assert.Equal(t, ScoreWord("CAT", 0), ScoreWord("CAT", 7))
}

func TestScoreWord_LongerWordsEarnMore(t *testing.T) {
	t.Parallel()

	// Adding a 10-point letter always increases the score: larger base
	// and larger length bonus
	assert.Greater(t, ScoreWord("TEAS", 0), ScoreWord("TEA", 0))
}
