package rules

import (
	"testing"

	"github.com/matryer/is"
)

const lizardSpockYAML = `
rock: {}
paper: {}
scissors:
  inputString: SC
lizard:
  beats:
    - [spock, poisons]
    - [paper, eats]
  losesTo:
    - [scissors, decapitates]
    - [rock, crushes]
spock:
  inputString: SP
  beats:
    - [scissors, smashes]
    - [rock, vaporizes]
  losesTo:
    - [paper, disproves]
`

func TestParseSpecPreservesOrder(t *testing.T) {
	is := is.New(t)
	defs, err := ParseSpec([]byte(lizardSpockYAML))
	is.NoErr(err)
	is.Equal(len(defs), 5)
	is.Equal(defs[0].Name, "rock")
	is.Equal(defs[3].Name, "lizard")
	is.Equal(defs[3].Spec.Beats, []Relation{
		{Target: "spock", Verb: "poisons"},
		{Target: "paper", Verb: "eats"},
	})
	is.Equal(defs[4].Spec.Input, "SP")
}

func TestParseSpecCompilesToLizardSpock(t *testing.T) {
	is := is.New(t)
	defs, err := ParseSpec([]byte(lizardSpockYAML))
	is.NoErr(err)
	rs, err := Compile(Classic(), defs)
	is.NoErr(err)

	want := LizardSpock()
	is.Equal(moveNames(rs), moveNames(want))
	is.Equal(edgeVerbs(t, rs), edgeVerbs(t, want))
	is.Equal(rs.Name(), want.Name())
}

func TestParseSpecRemoval(t *testing.T) {
	is := is.New(t)
	defs, err := ParseSpec([]byte("rock: remove\n"))
	is.NoErr(err)
	is.Equal(len(defs), 1)
	is.True(defs[0].Removed)

	// Null works too; any non-mapping value is a removal marker.
	defs, err = ParseSpec([]byte("rock: ~\n"))
	is.NoErr(err)
	is.True(defs[0].Removed)
}

func TestParseSpecEmptyBeatsIsExplicit(t *testing.T) {
	is := is.New(t)
	defs, err := ParseSpec([]byte("rock:\n  beats: []\n"))
	is.NoErr(err)
	is.Equal(len(defs), 1)
	is.True(defs[0].Spec.Beats != nil)
	is.Equal(len(defs[0].Spec.Beats), 0)
	is.True(defs[0].Spec.LosesTo == nil)

	// And through the compiler: rock loses its outgoing edge.
	rs, err := Compile(Classic(), defs)
	is.NoErr(err)
	is.True(!rs.Beats("rock", "scissors"))
}

func TestParseSpecBadRelation(t *testing.T) {
	is := is.New(t)
	_, err := ParseSpec([]byte("rock:\n  beats:\n    - [scissors]\n"))
	is.True(err != nil)

	_, err = ParseSpec([]byte("- rock\n- paper\n"))
	is.True(err != nil)
}

func TestParseSpecEmptyDocument(t *testing.T) {
	is := is.New(t)
	defs, err := ParseSpec([]byte(""))
	is.NoErr(err)
	is.Equal(len(defs), 0)
}
