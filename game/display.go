package game

import (
	"fmt"
	"strings"

	"github.com/PoonySpard/rpsgo/rules"
)

// PlayerMove returns the player's current move as a display string.
func (g *Game) PlayerMove() (string, error) {
	if g.playerMove == "" {
		return "", ErrMovesPending
	}
	m, _ := g.rules.Move(g.playerMove)
	return m.Display(), nil
}

// ComputerMove returns the computer's current move as a display string.
func (g *Game) ComputerMove() (string, error) {
	if g.compMove == "" {
		return "", ErrMovesPending
	}
	m, _ := g.rules.Move(g.compMove)
	return m.Display(), nil
}

// Summary narrates a resolved round: both moves, the verb line for the
// winning interaction, and who won. A verb missing from the ruleset for the
// decided pair surfaces here as an error rather than silently dropped text.
func (g *Game) Summary() (string, error) {
	if g.stage != StageResolved {
		return "", ErrNotResolved
	}
	player, _ := g.PlayerMove()
	comp, _ := g.ComputerMove()

	verbLine, err := g.verbify()
	if err != nil {
		return "", err
	}

	var result string
	switch g.outcome {
	case Win:
		result = "The player wins!"
	case Loss:
		result = "The computer wins!"
	default:
		result = "It's a draw!"
	}

	return fmt.Sprintf("The computer chose %s and the player chose %s.\n%s%s",
		comp, player, verbLine, result), nil
}

// verbify renders "Winner verbs loser.\n" for a decided round, and nothing
// for a draw.
func (g *Game) verbify() (string, error) {
	var winner, loser string
	switch g.outcome {
	case Win:
		winner, loser = g.playerMove, g.compMove
	case Loss:
		winner, loser = g.compMove, g.playerMove
	default:
		return "", nil
	}
	verb, err := g.rules.Verb(winner, loser)
	if err != nil {
		return "", err
	}
	w, _ := g.rules.Move(winner)
	l, _ := g.rules.Move(loser)
	return fmt.Sprintf("%s %s %s.\n", capitalize(w.Display()), verb, l.Display()), nil
}

// RecordLine is the running score from the player's perspective.
func (g *Game) RecordLine() string {
	return fmt.Sprintf("Current record: W: %d L: %d D: %d Rounds: %d",
		g.count(Win), g.count(Loss), g.count(Draw), g.round)
}

// Instructions builds the welcome text for the variant: its name, every
// interaction, and the input options.
func (g *Game) Instructions() (string, error) {
	verbs, err := VerbSummary(g.rules)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Welcome to %s!\n"+
		"%s.\n"+
		"Type %s for %s.\n"+
		"Then, press Enter.\n"+
		"The computer will go simultaneously and a winner shall be decided!",
		GameTitle(g.rules),
		verbs,
		CommaOr(g.rules.Options()),
		CommaOr(g.rules.MoveList()),
	), nil
}

// SimpleInstructions is the short retry prompt for invalid input.
func (g *Game) SimpleInstructions() string {
	return fmt.Sprintf("I'm sorry, were the instructions too complicated?\n"+
		"Let's try again...\n"+
		"ME COMPUTER, WE PLAY %s.\n"+
		"YOU ENTER %s!",
		strings.ToUpper(GameTitle(g.rules)),
		strings.ToUpper(CommaOr(g.rules.Options())))
}

// GameTitle is the variant's display title, e.g. "Rock, Paper, Scissors".
func GameTitle(rs *rules.Ruleset) string {
	return strings.Join(rs.MoveList(), ", ")
}

// VerbSummary lists every interaction in the ruleset, one winner per
// clause: "Rock crushes scissors;\nPaper covers rock". Missing verbs for
// edges actually present in the graph error out here.
func VerbSummary(rs *rules.Ruleset) (string, error) {
	var clauses []string
	for _, winner := range rs.Moves() {
		losers := rs.BeatenBy(winner.Name())
		if len(losers) == 0 {
			continue
		}
		parts := make([]string, 0, len(losers))
		for _, loser := range losers {
			verb, err := rs.Verb(winner.Name(), loser.Name())
			if err != nil {
				return "", err
			}
			parts = append(parts, fmt.Sprintf("%s %s", verb, loser.Display()))
		}
		clauses = append(clauses, fmt.Sprintf("%s %s",
			capitalize(winner.Display()), strings.Join(parts, ", ")))
	}
	return strings.Join(clauses, ";\n"), nil
}

// CommaOr joins items with commas and an "or" before the last one.
func CommaOr(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + ", or " + items[len(items)-1]
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
