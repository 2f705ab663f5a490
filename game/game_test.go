package game

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/PoonySpard/rpsgo/rules"
)

func newClassicGame(t *testing.T) *Game {
	t.Helper()
	return New(rules.Classic())
}

func TestSequencing(t *testing.T) {
	is := is.New(t)
	g := newClassicGame(t)

	_, err := g.Resolve()
	is.True(errors.Is(err, ErrMovesPending))
	_, err = g.Outcome()
	is.True(errors.Is(err, ErrNotResolved))

	is.NoErr(g.Begin())
	is.True(errors.Is(g.Begin(), ErrRoundBegun))

	is.NoErr(g.SetPlayerMove("rock"))
	is.True(errors.Is(g.SetPlayerMove("paper"), ErrAlreadyMoved))

	_, err = g.Resolve()
	is.True(errors.Is(err, ErrMovesPending))

	is.NoErr(g.SetComputerMove("scissors"))
	is.Equal(g.Stage(), StageMoved)

	_, err = g.Resolve()
	is.NoErr(err)
	is.Equal(g.Stage(), StageResolved)
}

func TestResolution(t *testing.T) {
	for _, tc := range []struct {
		player   string
		comp     string
		expected Outcome
	}{
		{"rock", "scissors", Win},
		{"rock", "paper", Loss},
		{"rock", "rock", Draw},
		{"paper", "rock", Win},
		{"scissors", "rock", Loss},
		{"scissors", "scissors", Draw},
	} {
		is := is.New(t)
		g := newClassicGame(t)
		is.NoErr(g.Begin())
		is.NoErr(g.SetPlayerMove(tc.player))
		is.NoErr(g.SetComputerMove(tc.comp))
		outcome, err := g.Resolve()
		is.NoErr(err)
		is.Equal(outcome, tc.expected)
	}
}

func TestUndeclaredPairResolvesToDraw(t *testing.T) {
	is := is.New(t)
	rs, err := rules.Compile(nil, []rules.MoveDef{
		rules.Define("a", rules.MoveSpec{Beats: []rules.Relation{{Target: "b", Verb: "tops"}}}),
		rules.Define("b", rules.MoveSpec{}),
		rules.Define("c", rules.MoveSpec{}),
	})
	is.NoErr(err)

	g := New(rs)
	is.NoErr(g.Begin())
	is.NoErr(g.SetPlayerMove("a"))
	is.NoErr(g.SetComputerMove("c"))
	outcome, err := g.Resolve()
	is.NoErr(err)
	is.Equal(outcome, Draw)
}

func TestInputTokens(t *testing.T) {
	is := is.New(t)
	g := New(rules.LizardSpock())
	is.NoErr(g.Begin())

	is.True(errors.Is(g.SetPlayerMoveFromInput("X"), ErrInvalidInput))
	// Scissors uses the two-letter token; "s" alone is not an option.
	is.True(errors.Is(g.SetPlayerMoveFromInput("s"), ErrInvalidInput))
	is.NoErr(g.SetPlayerMoveFromInput("sc"))

	move, err := g.PlayerMove()
	is.NoErr(err)
	is.Equal(move, "scissors")
}

func TestPickComputerMove(t *testing.T) {
	is := is.New(t)
	g := newClassicGame(t)
	is.NoErr(g.Begin())
	is.NoErr(g.PickComputerMove())
	is.True(errors.Is(g.PickComputerMove(), ErrAlreadyMoved))

	display, err := g.ComputerMove()
	is.NoErr(err)
	_, ok := g.Rules().Move(display)
	is.True(ok)
}

func TestRecordAndReset(t *testing.T) {
	is := is.New(t)
	g := newClassicGame(t)

	playRound := func(player, comp string) {
		is.NoErr(g.Begin())
		is.NoErr(g.SetPlayerMove(player))
		is.NoErr(g.SetComputerMove(comp))
		_, err := g.Resolve()
		is.NoErr(err)
		g.Reset()
	}

	playRound("rock", "scissors")
	playRound("rock", "paper")
	playRound("rock", "rock")
	playRound("paper", "rock")

	is.Equal(g.Round(), 5)
	is.Equal(g.Record(), []Outcome{Win, Loss, Draw, Win})
	is.Equal(g.RecordLine(), "Current record: W: 2 L: 1 D: 1 Rounds: 5")
	is.Equal(g.Stage(), StageInitial)
}
