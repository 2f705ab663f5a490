package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The full five-move scenario from samkass.com, compiled on top of the
// classic three moves.
func TestLizardSpockEndToEnd(t *testing.T) {
	rs := LizardSpock()

	require.Equal(t, []string{"ROCK", "PAPER", "SCISSORS", "LIZARD", "SPOCK"}, moveNames(rs))
	assert.Equal(t, "RockPaperScissorsLizardSpock", rs.Name())
	assert.Equal(t, []string{"R", "P", "SC", "L", "SP"}, rs.Options())

	// Every move beats exactly two others and loses to exactly two others.
	for _, m := range rs.Moves() {
		beats := rs.BeatenBy(m.Name())
		assert.Len(t, beats, 2, "%s should beat exactly 2 moves", m.Name())
		losses := 0
		for _, other := range rs.Moves() {
			if rs.Beats(other.Name(), m.Name()) {
				losses++
			}
		}
		assert.Equal(t, 2, losses, "%s should lose to exactly 2 moves", m.Name())
	}

	expected := map[string]string{
		"SCISSORS>PAPER":  "cuts",
		"PAPER>ROCK":      "covers",
		"ROCK>SCISSORS":   "crushes",
		"ROCK>LIZARD":     "crushes",
		"LIZARD>SPOCK":    "poisons",
		"LIZARD>PAPER":    "eats",
		"SCISSORS>LIZARD": "decapitates",
		"SPOCK>SCISSORS":  "smashes",
		"SPOCK>ROCK":      "vaporizes",
		"PAPER>SPOCK":     "disproves",
	}
	assert.Equal(t, expected, edgeVerbs(t, rs))
	assertAsymmetric(t, rs)
}

func TestLizardSpockFreshPerCall(t *testing.T) {
	// Compilations share nothing; mutating conclusions drawn from one must
	// not leak into another.
	a := LizardSpock()
	b := LizardSpock()
	require.NotSame(t, a, b)
	assert.Equal(t, edgeVerbs(t, a), edgeVerbs(t, b))
}
