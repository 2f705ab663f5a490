// Package rules compiles partial, possibly-overlapping move declarations
// into a complete rock-paper-scissors variant: an ordered move enumeration,
// a directed who-beats-whom graph, and a table of verbs describing each
// outcome. A compiled Ruleset is immutable; gameplay code only reads it.
package rules

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Move is one selectable option in a variant. Its identity is fixed at
// compile time; the canonical name is always uppercase.
type Move struct {
	name    string
	display string
	input   string
}

func (m Move) Name() string {
	return m.name
}

func (m Move) Display() string {
	return m.display
}

func (m Move) Input() string {
	return m.input
}

// Pair is an ordered (winner, loser) key into the verb table.
type Pair struct {
	Winner string
	Loser  string
}

// Ruleset is a compiled variant. The zero value is not usable; construct
// one with Compile, Classic, or LizardSpock.
type Ruleset struct {
	moves     []Move
	hierarchy map[string]map[string]bool
	verbs     map[Pair]string
	name      string
}

// Name returns the variant's identity, the concatenation of its capitalized
// move displays, e.g. "RockPaperScissorsLizardSpock".
func (r *Ruleset) Name() string {
	return r.name
}

// Moves returns the move enumeration in declaration order.
func (r *Ruleset) Moves() []Move {
	out := make([]Move, len(r.moves))
	copy(out, r.moves)
	return out
}

// Move looks a move up by canonical name (case-insensitive).
func (r *Ruleset) Move(name string) (Move, bool) {
	name = strings.ToUpper(name)
	for _, m := range r.moves {
		if m.name == name {
			return m, true
		}
	}
	return Move{}, false
}

// MoveByInput looks a move up by its input token (case-insensitive).
func (r *Ruleset) MoveByInput(token string) (Move, bool) {
	for _, m := range r.moves {
		if strings.EqualFold(m.input, token) {
			return m, true
		}
	}
	return Move{}, false
}

// Beats reports whether winner beats loser. At most one direction holds for
// any pair; when neither does, the pair is a draw.
func (r *Ruleset) Beats(winner, loser string) bool {
	return r.hierarchy[strings.ToUpper(winner)][strings.ToUpper(loser)]
}

// BeatenBy returns the moves that name beats, in enumeration order.
func (r *Ruleset) BeatenBy(name string) []Move {
	name = strings.ToUpper(name)
	var out []Move
	for _, m := range r.moves {
		if r.hierarchy[name][m.name] {
			out = append(out, m)
		}
	}
	return out
}

// Verb returns the verb describing winner beating loser. A missing verb is
// a configuration defect in the variant, surfaced here rather than at
// compile time.
func (r *Ruleset) Verb(winner, loser string) (string, error) {
	p := Pair{Winner: strings.ToUpper(winner), Loser: strings.ToUpper(loser)}
	verb, ok := r.verbs[p]
	if !ok {
		return "", fmt.Errorf("%w: %s over %s", ErrMissingVerb, p.Winner, p.Loser)
	}
	return verb, nil
}

// MoveList returns the capitalized display strings in enumeration order.
func (r *Ruleset) MoveList() []string {
	return lo.Map(r.moves, func(m Move, _ int) string {
		return capitalize(m.display)
	})
}

// Options returns the input tokens in enumeration order.
func (r *Ruleset) Options() []string {
	return lo.Map(r.moves, func(m Move, _ int) string {
		return m.input
	})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// Classic returns the built-in three-move game. Each call compiles a fresh
// ruleset; nothing is shared between them.
func Classic() *Ruleset {
	rs, err := Compile(nil, []MoveDef{
		Define("rock", MoveSpec{Beats: []Relation{{Target: "scissors", Verb: "crushes"}}}),
		Define("paper", MoveSpec{Beats: []Relation{{Target: "rock", Verb: "covers"}}}),
		Define("scissors", MoveSpec{Beats: []Relation{{Target: "paper", Verb: "cuts"}}}),
	})
	if err != nil {
		// The built-in definition is self-consistent.
		panic(err)
	}
	return rs
}

// LizardSpock returns the five-move Sam Kass extension, built by compiling
// the extra moves on top of Classic.
func LizardSpock() *Ruleset {
	rs, err := Compile(Classic(), []MoveDef{
		Define("rock", MoveSpec{}),
		Define("paper", MoveSpec{}),
		Define("scissors", MoveSpec{Input: "SC"}),
		Define("lizard", MoveSpec{
			Beats:   []Relation{{Target: "spock", Verb: "poisons"}, {Target: "paper", Verb: "eats"}},
			LosesTo: []Relation{{Target: "scissors", Verb: "decapitates"}, {Target: "rock", Verb: "crushes"}},
		}),
		Define("spock", MoveSpec{
			Input:   "SP",
			Beats:   []Relation{{Target: "scissors", Verb: "smashes"}, {Target: "rock", Verb: "vaporizes"}},
			LosesTo: []Relation{{Target: "paper", Verb: "disproves"}},
		}),
	})
	if err != nil {
		panic(err)
	}
	return rs
}
