package definition

import (
	"fmt"
	"os"
	"sort"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/rules"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Definition is the declarative form of a lookup-table machine.
type Definition struct {
	Name     string   `json:"name,omitempty" mapstructure:"name"`
	Accept   *uint    `json:"accept" mapstructure:"accept"`
	Reject   *uint    `json:"reject" mapstructure:"reject"`
	Alphabet []string `json:"alphabet,omitempty" mapstructure:"alphabet"`
	Input    string   `json:"input,omitempty" mapstructure:"input"`
	States   []State  `json:"states" mapstructure:"states"`
}

// State holds the transitions of one state.
type State struct {
	ID          uint         `json:"id" mapstructure:"id"`
	Transitions []Transition `json:"transitions" mapstructure:"transitions"`
}

// Transition is one row of a state's table.
type Transition struct {
	Read  string  `json:"read" mapstructure:"read"`
	Write *string `json:"write,omitempty" mapstructure:"write"`
	Move  string  `json:"move,omitempty" mapstructure:"move"`
	Next  *uint   `json:"next" mapstructure:"next"`
}

// Load reads and parses the definition file at path.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition: %w", err)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// Parse decodes and validates a YAML or JSON definition.
func Parse(data []byte) (*Definition, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse definition: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("empty definition")
	}
	return Decode(raw)
}

// Decode builds a definition from an already parsed document. Scalars are
// weakly typed so that unquoted digits work as symbols.
func Decode(raw map[string]any) (*Definition, error) {
	var def Definition
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &def,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode definition: %w", err)
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Validate checks the definition without building it.
func (d *Definition) Validate() error {
	_, err := d.Tables()
	return err
}

// Terminals returns the accept and reject ids. Unset ids are reported by
// Validate.
func (d *Definition) Terminals() (accept, reject domain.StateID) {
	if d.Accept != nil {
		accept = domain.StateID(*d.Accept)
	}
	if d.Reject != nil {
		reject = domain.StateID(*d.Reject)
	}
	return accept, reject
}

// Runes returns the declared alphabet.
func (d *Definition) Runes() ([]rune, error) {
	out := make([]rune, 0, len(d.Alphabet))
	for _, s := range d.Alphabet {
		sym, err := domain.ParseSymbol(s)
		if err != nil {
			return nil, err
		}
		r, ok := sym.Rune()
		if !ok {
			return nil, fmt.Errorf("alphabet must not contain %q", domain.BlankToken)
		}
		out = append(out, r)
	}
	return out, nil
}

// Tables compiles every state into a rules.Table, collecting all problems.
func (d *Definition) Tables() (map[domain.StateID]rules.Table, error) {
	var errs []error
	fail := func(path, format string, args ...any) {
		errs = append(errs, &ValidationError{Path: path, Reason: fmt.Sprintf(format, args...)})
	}

	if d.Accept == nil {
		fail("accept", "required")
	}
	if d.Reject == nil {
		fail("reject", "required")
	}
	if _, err := d.Runes(); err != nil {
		fail("alphabet", "%v", err)
	}
	if len(d.States) == 0 {
		fail("states", "at least one state is required")
	}

	tables := make(map[domain.StateID]rules.Table, len(d.States))
	for i, st := range d.States {
		path := fmt.Sprintf("states[%d]", i)
		id := domain.StateID(st.ID)
		if _, dup := tables[id]; dup {
			fail(path+".id", "state %d defined twice", st.ID)
			continue
		}
		table := make(rules.Table, len(st.Transitions))
		for j, tr := range st.Transitions {
			tpath := fmt.Sprintf("%s.transitions[%d]", path, j)
			read, err := domain.ParseSymbol(tr.Read)
			if err != nil {
				fail(tpath+".read", "%v", err)
				continue
			}
			if _, dup := table[read]; dup {
				fail(tpath+".read", "symbol %q handled twice in state %d", tr.Read, st.ID)
				continue
			}
			act := domain.Action{}
			if tr.Write != nil {
				w, err := domain.ParseSymbol(*tr.Write)
				if err != nil {
					fail(tpath+".write", "%v", err)
					continue
				}
				act.Write = domain.Writes(w)
			}
			if act.Move, err = domain.ParseDirection(tr.Move); err != nil {
				fail(tpath+".move", "%v", err)
				continue
			}
			if tr.Next == nil {
				fail(tpath+".next", "required")
				continue
			}
			act.Next = domain.StateID(*tr.Next)
			table[read] = act
		}
		tables[id] = table
	}

	if len(errs) > 0 {
		return nil, &AggregateError{Errors: errs}
	}
	return tables, nil
}

// StateIDs returns the defined state ids in ascending order.
func (d *Definition) StateIDs() []domain.StateID {
	ids := make([]domain.StateID, 0, len(d.States))
	for _, st := range d.States {
		ids = append(ids, domain.StateID(st.ID))
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Config builds a turing.Config loaded with the definition's default input.
func (d *Definition) Config() (*turing.Config, error) {
	tables, err := d.Tables()
	if err != nil {
		return nil, err
	}
	runes, err := d.Runes()
	if err != nil {
		return nil, err
	}

	cfg := turing.NewConfig()
	cfg.Name = d.Name
	for _, id := range d.StateIDs() {
		if err := cfg.AddState(id, tables[id]); err != nil {
			return nil, err
		}
	}
	accept, reject := d.Terminals()
	cfg.SetAccept(accept)
	cfg.SetReject(reject)
	if len(runes) > 0 {
		cfg.SetAlphabet(runes...)
	}
	cfg.LoadTape(d.Input)
	return cfg, nil
}
