// Package game holds the turn mechanics for a compiled rock-paper-scissors
// variant: a small begin/resolve/reset state machine, the round record, and
// the computer's move selection. It never does I/O; the shell drives it and
// prints what it returns.
package game

import (
	"errors"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/PoonySpard/rpsgo/rules"
)

// Outcome of a round, from the player's perspective.
type Outcome int

const (
	Win Outcome = iota
	Loss
	Draw
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Loss:
		return "loss"
	case Draw:
		return "draw"
	}
	return "unknown"
}

// Stage of the current round.
type Stage int

const (
	StageInitial Stage = iota
	StageBegun
	StageMoved
	StageResolved
)

var (
	ErrRoundBegun   = errors.New("this round has already begun")
	ErrAlreadyMoved = errors.New("that player has already gone")
	ErrMovesPending = errors.New("the players haven't gone yet")
	ErrNotResolved  = errors.New("the round hasn't been resolved yet")
	ErrInvalidInput = errors.New("that isn't one of the move options")
	ErrUnknownMove  = errors.New("no such move in this variant")
)

// Game is one running match of a compiled variant. It only ever reads the
// ruleset; a different variant means a new Game.
type Game struct {
	rules *rules.Ruleset

	stage      Stage
	playerMove string
	compMove   string
	outcome    Outcome
	round      int
	record     []Outcome
}

// New prepares a game of the given variant for its first round.
func New(rs *rules.Ruleset) *Game {
	return &Game{rules: rs, round: 1}
}

func (g *Game) Rules() *rules.Ruleset {
	return g.rules
}

func (g *Game) Stage() Stage {
	return g.stage
}

func (g *Game) Round() int {
	return g.round
}

// Begin starts a round. It errors if the current round already started.
func (g *Game) Begin() error {
	if g.stage != StageInitial {
		return ErrRoundBegun
	}
	g.stage = StageBegun
	return nil
}

// SetPlayerMoveFromInput validates an input token against the variant's
// options and records the player's move.
func (g *Game) SetPlayerMoveFromInput(token string) error {
	m, ok := g.rules.MoveByInput(token)
	if !ok {
		return ErrInvalidInput
	}
	return g.SetPlayerMove(m.Name())
}

// SetPlayerMove records the player's move by name. Custom drivers can use
// this directly to bypass input tokens.
func (g *Game) SetPlayerMove(name string) error {
	if g.playerMove != "" {
		return ErrAlreadyMoved
	}
	m, ok := g.rules.Move(name)
	if !ok {
		return ErrUnknownMove
	}
	g.playerMove = m.Name()
	g.advanceIfMoved()
	return nil
}

// PickComputerMove selects the computer's move uniformly at random.
func (g *Game) PickComputerMove() error {
	if g.compMove != "" {
		return ErrAlreadyMoved
	}
	moves := g.rules.Moves()
	g.compMove = moves[frand.Intn(len(moves))].Name()
	g.advanceIfMoved()
	log.Debug().Str("move", g.compMove).Msg("computer picked")
	return nil
}

// SetComputerMove records the computer's move by name, for drivers that
// want to bias or script the computer.
func (g *Game) SetComputerMove(name string) error {
	if g.compMove != "" {
		return ErrAlreadyMoved
	}
	m, ok := g.rules.Move(name)
	if !ok {
		return ErrUnknownMove
	}
	g.compMove = m.Name()
	g.advanceIfMoved()
	return nil
}

func (g *Game) advanceIfMoved() {
	if g.stage == StageBegun && g.playerMove != "" && g.compMove != "" {
		g.stage = StageMoved
	}
}

// Resolve decides the round from the two moves and appends it to the
// record. Equal moves draw; undeclared pairs also draw.
func (g *Game) Resolve() (Outcome, error) {
	if g.stage != StageMoved {
		return Draw, ErrMovesPending
	}
	switch {
	case g.playerMove == g.compMove:
		g.outcome = Draw
	case g.rules.Beats(g.playerMove, g.compMove):
		g.outcome = Win
	case g.rules.Beats(g.compMove, g.playerMove):
		g.outcome = Loss
	default:
		g.outcome = Draw
	}
	g.stage = StageResolved
	g.record = append(g.record, g.outcome)
	log.Debug().
		Str("player", g.playerMove).
		Str("computer", g.compMove).
		Stringer("outcome", g.outcome).
		Msg("round resolved")
	return g.outcome, nil
}

// Outcome returns the resolved outcome of the current round.
func (g *Game) Outcome() (Outcome, error) {
	if g.stage != StageResolved {
		return Draw, ErrNotResolved
	}
	return g.outcome, nil
}

// Reset clears the round so the game can be played again.
func (g *Game) Reset() {
	g.stage = StageInitial
	g.playerMove = ""
	g.compMove = ""
	g.round++
}

// Record returns the outcome history, oldest first.
func (g *Game) Record() []Outcome {
	out := make([]Outcome, len(g.record))
	copy(out, g.record)
	return out
}

func (g *Game) count(o Outcome) int {
	n := 0
	for _, r := range g.record {
		if r == o {
			n++
		}
	}
	return n
}
