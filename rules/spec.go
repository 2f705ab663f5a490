package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Relation is a single directed declaration: this move beats (or loses to)
// Target, described by Verb.
type Relation struct {
	Target string
	Verb   string
}

// MoveSpec is a partial description of one move. Zero-valued fields mean
// "inherit from the previous ruleset, or default". For Beats and LosesTo the
// nil/empty distinction is load-bearing: a nil slice inherits the previous
// relations, while a non-nil empty slice explicitly declares none.
type MoveSpec struct {
	Display string
	Input   string
	Beats   []Relation
	LosesTo []Relation
}

// MoveDef is one entry in an ordered declaration list handed to Compile.
// It either carries a spec or marks a previously-existing move for removal.
// Declaration order matters: it decides move enumeration order and, with it,
// relation precedence.
type MoveDef struct {
	Name    string
	Spec    MoveSpec
	Removed bool
}

// Define declares or redeclares a move.
func Define(name string, spec MoveSpec) MoveDef {
	return MoveDef{Name: name, Spec: spec}
}

// Remove marks a previously-existing move for deletion. Removing a name the
// previous ruleset doesn't have is a no-op.
func Remove(name string) MoveDef {
	return MoveDef{Name: name, Removed: true}
}

// specFile carries presence information for each optional key; it only
// exists so that `beats: []` in a file means "no relations" rather than
// "inherit".
type specFile struct {
	Display *string    `yaml:"string"`
	Input   *string    `yaml:"inputString"`
	Beats   []*fileRel `yaml:"beats"`
	LosesTo []*fileRel `yaml:"losesTo"`
	present map[string]bool
}

type fileRel struct {
	Target string
	Verb   string
}

// UnmarshalYAML accepts the two-element sequence form, e.g.
//
//	beats:
//	  - [spock, poisons]
func (r *fileRel) UnmarshalYAML(value *yaml.Node) error {
	var pair []string
	if err := value.Decode(&pair); err != nil {
		return fmt.Errorf("relation must be a [move, verb] pair: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("relation must be a [move, verb] pair, got %d elements", len(pair))
	}
	r.Target = pair[0]
	r.Verb = pair[1]
	return nil
}

// ParseSpec decodes a YAML variant definition into an ordered declaration
// list. The top level must be a mapping from move name to either a spec
// mapping (keys: string, inputString, beats, losesTo) or any non-mapping
// value, which marks the move for removal. Mapping order is preserved.
func ParseSpec(data []byte) ([]MoveDef, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("variant definition must be a mapping of move names")
	}

	defs := make([]MoveDef, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		name := key.Value
		if val.Kind != yaml.MappingNode {
			defs = append(defs, Remove(name))
			continue
		}
		var sf specFile
		if err := val.Decode(&sf); err != nil {
			return nil, fmt.Errorf("move %q: %w", name, err)
		}
		sf.present = map[string]bool{}
		for j := 0; j+1 < len(val.Content); j += 2 {
			sf.present[val.Content[j].Value] = true
		}
		defs = append(defs, Define(name, sf.toSpec()))
	}
	return defs, nil
}

// LoadSpec reads and parses a YAML variant definition file.
func LoadSpec(path string) ([]MoveDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSpec(data)
}

func (sf specFile) toSpec() MoveSpec {
	spec := MoveSpec{}
	if sf.Display != nil {
		spec.Display = *sf.Display
	}
	if sf.Input != nil {
		spec.Input = *sf.Input
	}
	if sf.present["beats"] {
		spec.Beats = fileRels(sf.Beats)
	}
	if sf.present["losesTo"] {
		spec.LosesTo = fileRels(sf.LosesTo)
	}
	return spec
}

func fileRels(rels []*fileRel) []Relation {
	out := make([]Relation, 0, len(rels))
	for _, r := range rels {
		out = append(out, Relation{Target: r.Target, Verb: r.Verb})
	}
	return out
}
