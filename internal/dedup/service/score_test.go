package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreIdentity(t *testing.T) {
	for _, s := range []string{"john smith", "a", "maria de la cruz", "jose"} {
		assert.Equal(t, 100, Score(s, s), "Score(%q, %q)", s, s)
	}
}

func TestScoreEmpty(t *testing.T) {
	assert.Equal(t, 0, Score("", ""))
	assert.Equal(t, 0, Score("john", ""))
	assert.Equal(t, 0, Score("", "john"))
}

func TestScoreSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"john smith", "jon smith"},
		{"jonathan smith", "jon smith"},
		{"maria garcia", "mario garcia"},
		{"a", "xyz"},
		{"muller", "müller"},
	}
	for _, p := range pairs {
		assert.Equal(t, Score(p[0], p[1]), Score(p[1], p[0]), "symmetry for %q / %q", p[0], p[1])
	}
}

func TestScoreRatio(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		// round(100 * (1 - dist/maxLen))
		{"ab", "ac", 50},
		{"abcd", "abce", 75},
		{"jon smith", "john smith", 90},     // 1 edit over 10
		{"jon smith", "johns smith", 82},    // 2 edits over 11, 81.81 rounds up
		{"john smith", "johns smith", 91},   // 1 edit over 11, 90.9 rounds up
		{"a", "xyz", 0},                     // 3 edits over 3, floors at 0
		{"müller", "muller", 83},            // rune-wise distance 1 over 6
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Score(c.a, c.b), "Score(%q, %q)", c.a, c.b)
	}
}

func TestScoreNeverNegative(t *testing.T) {
	assert.GreaterOrEqual(t, Score("ab", "cdefghij"), 0)
	assert.GreaterOrEqual(t, Score("x", "completely different"), 0)
}
