package rules

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// entry is a move mid-compilation. After carryForward every entry has all
// four spec fields populated.
type entry struct {
	name string
	spec MoveSpec
}

// Compile merges an ordered declaration list with a previous ruleset and
// returns a fresh, complete variant. prev may be nil when building a variant
// from scratch.
//
// Precedence, in decreasing strength:
//   - an explicit declaration always wins over an inherited default;
//   - a move's losesTo entries are applied after its beats entries, so
//     within one declaration losesTo wins for the same pair;
//   - across moves, later-enumerated declarations win, because edges are
//     applied in enumeration order and (re-)declaring a direction deletes
//     the opposite edge.
//
// When two newly-declared moves claim the same pair in contradictory
// directions, the later-enumerated one wins. That is a consequence of the
// ordering above, not a checked condition.
//
// Verbs are recorded from the raw declarations, before edge overriding, so
// a verb can remain in the table for a direction the final graph dropped.
// Only edges present in the graph are ever read back, so the stale entries
// are unreachable through Verb.
func Compile(prev *Ruleset, defs []MoveDef) (*Ruleset, error) {
	entries, retained := normalize(prev, defs)
	if len(entries) == 0 {
		return nil, ErrEmptyMoveSet
	}

	carryForward(prev, entries, retained)

	moves := enumerate(entries)
	inSet := lo.SliceToMap(moves, func(m Move) (string, bool) {
		return m.name, true
	})

	hierarchy := map[string]map[string]bool{}
	verbs := map[Pair]string{}
	for _, e := range entries {
		for _, rel := range e.spec.Beats {
			if !inSet[rel.Target] {
				return nil, fmt.Errorf("%w: %s beats %s", ErrUnknownMove, e.name, rel.Target)
			}
			addEdge(hierarchy, e.name, rel.Target)
			verbs[Pair{Winner: e.name, Loser: rel.Target}] = rel.Verb
		}
		for _, rel := range e.spec.LosesTo {
			if !inSet[rel.Target] {
				return nil, fmt.Errorf("%w: %s loses to %s", ErrUnknownMove, e.name, rel.Target)
			}
			addEdge(hierarchy, rel.Target, e.name)
			verbs[Pair{Winner: rel.Target, Loser: e.name}] = rel.Verb
		}
	}

	name := strings.Join(lo.Map(moves, func(m Move, _ int) string {
		return capitalize(m.display)
	}), "")

	log.Debug().Str("variant", name).Int("moves", len(moves)).Msg("compiled ruleset")

	return &Ruleset{
		moves:     moves,
		hierarchy: hierarchy,
		verbs:     verbs,
		name:      name,
	}, nil
}

// addEdge records winner beating loser and deletes the contradictory
// opposite edge, if any. Declaring a move against itself cancels out.
func addEdge(hierarchy map[string]map[string]bool, winner, loser string) {
	if hierarchy[winner] == nil {
		hierarchy[winner] = map[string]bool{}
	}
	hierarchy[winner][loser] = true
	delete(hierarchy[loser], winner)
}

// normalize uppercases every name and relation target, resolves removals
// against the previous move set, and collapses duplicate declarations of
// the same name (last one wins, first position kept). It returns the merged
// ordered entries - caller declarations first in the order given, then the
// surviving legacy moves in their previous order - plus the set of names
// still backed by the previous ruleset.
func normalize(prev *Ruleset, defs []MoveDef) ([]*entry, map[string]bool) {
	retained := map[string]bool{}
	var legacyOrder []string
	if prev != nil {
		for _, m := range prev.moves {
			retained[m.name] = true
			legacyOrder = append(legacyOrder, m.name)
		}
	}

	var entries []*entry
	declared := map[string]*entry{}
	for _, def := range defs {
		name := strings.ToUpper(strings.TrimSpace(def.Name))
		if name == "" {
			continue
		}
		if def.Removed {
			if retained[name] {
				delete(retained, name)
				log.Debug().Str("move", name).Msg("removed legacy move")
			}
			continue
		}
		spec := def.Spec
		spec.Beats = upperTargets(spec.Beats)
		spec.LosesTo = upperTargets(spec.LosesTo)
		if e, ok := declared[name]; ok {
			e.spec = spec
			continue
		}
		e := &entry{name: name, spec: spec}
		declared[name] = e
		entries = append(entries, e)
	}

	for _, name := range legacyOrder {
		if retained[name] && declared[name] == nil {
			entries = append(entries, &entry{name: name})
		}
	}
	return entries, retained
}

func upperTargets(rels []Relation) []Relation {
	if rels == nil {
		return nil
	}
	out := make([]Relation, len(rels))
	for i, rel := range rels {
		out[i] = Relation{Target: strings.ToUpper(rel.Target), Verb: rel.Verb}
	}
	return out
}

// carryForward fills the missing fields of every retained legacy move from
// the previous ruleset. An inherited relation toward another move is
// skipped when that move's own new declaration already speaks for the pair:
// either it names this move in its beats/losesTo, or it redeclared the
// whole direction the inherited edge would land on. Without the skip, a
// stale default would silently re-assert a relation the caller just
// overrode. Inherited relations never resurrect removed moves.
func carryForward(prev *Ruleset, entries []*entry, retained map[string]bool) {
	if prev == nil {
		finishNewMoves(entries)
		return
	}

	inSet := map[string]bool{}
	for _, e := range entries {
		inSet[e.name] = true
	}

	// All pairs claimed by the new declarations, keyed by the declaring
	// move. Targets were already uppercased in normalize.
	type claim struct{ by, target string }
	claims := map[claim]bool{}
	redeclaredBeats := map[string]bool{}
	redeclaredLosesTo := map[string]bool{}
	for _, e := range entries {
		for _, rel := range e.spec.Beats {
			claims[claim{by: e.name, target: rel.Target}] = true
		}
		for _, rel := range e.spec.LosesTo {
			claims[claim{by: e.name, target: rel.Target}] = true
		}
		if e.spec.Beats != nil {
			redeclaredBeats[e.name] = true
		}
		if e.spec.LosesTo != nil {
			redeclaredLosesTo[e.name] = true
		}
	}

	for _, e := range entries {
		if !retained[e.name] {
			continue
		}
		pm, ok := prev.Move(e.name)
		if !ok {
			continue
		}
		if e.spec.Display == "" {
			e.spec.Display = pm.Display()
		}
		if e.spec.Input == "" {
			e.spec.Input = pm.Input()
		}
		if e.spec.Beats == nil {
			e.spec.Beats = []Relation{}
			for _, m := range prev.moves {
				if !prev.hierarchy[e.name][m.name] || !inSet[m.name] {
					continue
				}
				// The loser respecified this pair, or its whole
				// incoming direction.
				if claims[claim{by: m.name, target: e.name}] || redeclaredLosesTo[m.name] {
					continue
				}
				e.spec.Beats = append(e.spec.Beats, Relation{
					Target: m.name,
					Verb:   prev.verbs[Pair{Winner: e.name, Loser: m.name}],
				})
			}
		}
		if e.spec.LosesTo == nil {
			e.spec.LosesTo = []Relation{}
			for _, m := range prev.moves {
				if !prev.hierarchy[m.name][e.name] || !inSet[m.name] {
					continue
				}
				// The winner respecified this pair, or its whole
				// outgoing direction.
				if claims[claim{by: m.name, target: e.name}] || redeclaredBeats[m.name] {
					continue
				}
				e.spec.LosesTo = append(e.spec.LosesTo, Relation{
					Target: m.name,
					Verb:   prev.verbs[Pair{Winner: m.name, Loser: e.name}],
				})
			}
		}
	}
	finishNewMoves(entries)
}

// finishNewMoves defaults the display string and input token for moves that
// have no legacy counterpart: lowercase name and its first letter.
func finishNewMoves(entries []*entry) {
	for _, e := range entries {
		if e.spec.Display == "" {
			e.spec.Display = strings.ToLower(e.name)
		}
		if e.spec.Input == "" {
			e.spec.Input = e.name[:1]
		}
	}
}

// enumerate assigns final move identities in merged declaration order.
func enumerate(entries []*entry) []Move {
	moves := make([]Move, len(entries))
	for i, e := range entries {
		moves[i] = Move{name: e.name, display: e.spec.Display, input: e.spec.Input}
	}
	return moves
}
