package fsm

import (
	"fmt"
	"os"

	"github.com/enetx/g"
	"gopkg.in/yaml.v3"
)

// StateDef declares a single state and its outbound transitions.
// A nil or empty Transitions map means the state has no way out other than
// ChangeState, Reset or Undo.
type StateDef struct {
	Name        State               `yaml:"-"`
	Transitions g.Map[Event, State] `yaml:"transitions"`
}

// Config is the static description an FSM is built from.
// The order of States is the declaration order reported by FSM.States.
type Config struct {
	Initial State
	States  g.Slice[StateDef]
}

// NewConfig starts a fluent configuration with the given initial state.
// The initial state is not declared until it appears in State or Transition.
func NewConfig(initial State) *Config {
	return &Config{Initial: initial}
}

// State declares states without transitions. Already declared states are left as is.
func (c *Config) State(states ...State) *Config {
	for _, s := range states {
		c.declare(s)
	}

	return c
}

// Transition adds a transition from -> event -> to, declaring both states
// in order of first appearance if needed. A later call for the same
// from/event pair replaces the target.
func (c *Config) Transition(from State, event Event, to State) *Config {
	c.declare(from)
	c.declare(to)

	// Declaring to may have grown the slice, so look from up again.
	def := c.declare(from)

	if def.Transitions == nil {
		def.Transitions = g.NewMap[Event, State]()
	}

	def.Transitions[event] = to

	return c
}

// Build is shorthand for New(*c).
func (c *Config) Build() (*FSM, error) { return New(*c) }

func (c *Config) declare(s State) *StateDef {
	for i := range c.States {
		if c.States[i].Name == s {
			return &c.States[i]
		}
	}

	c.States.Push(StateDef{Name: s})

	return &c.States[len(c.States)-1]
}

// UnmarshalYAML implements yaml.Unmarshaler. The states mapping is walked
// node by node so that document order becomes declaration order; aliases
// and merge keys inside it are resolved by mappingEntries.
func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Initial State     `yaml:"initial"`
		States  yaml.Node `yaml:"states"`
	}

	if err := node.Decode(&raw); err != nil {
		return err
	}

	if raw.States.Kind == 0 {
		return fmt.Errorf("line %d: states is required", node.Line)
	}

	entries, err := mappingEntries(&raw.States)
	if err != nil {
		return err
	}

	c.Initial = raw.Initial
	c.States = make(g.Slice[StateDef], 0, entries.Len())

	for e := range entries.Iter() {
		var def StateDef
		if err := e.value.Decode(&def); err != nil {
			return fmt.Errorf("state %q: %w", e.key.Value, err)
		}

		def.Name = State(e.key.Value)
		c.States.Push(def)
	}

	return nil
}

type mappingEntry struct {
	key, value *yaml.Node
}

// mappingEntries returns the key/value pairs of a states mapping in document
// order. Aliases are followed and "<<" merge keys are expanded in place:
// explicit keys override merged ones, and earlier merge sources override later ones.
func mappingEntries(node *yaml.Node) (g.Slice[mappingEntry], error) {
	for node.Kind == yaml.AliasNode {
		node = node.Alias
	}

	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: states must be a mapping of state name to definition", node.Line)
	}

	explicit := g.NewSet[string]()

	for i := 0; i+1 < len(node.Content); i += 2 {
		if key := node.Content[i]; !isMergeKey(key) {
			explicit.Insert(key.Value)
		}
	}

	var entries g.Slice[mappingEntry]

	merged := g.NewSet[string]()

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		if !isMergeKey(key) {
			entries.Push(mappingEntry{key: key, value: value})
			continue
		}

		sources := []*yaml.Node{value}
		if value.Kind == yaml.SequenceNode {
			sources = value.Content
		}

		for _, source := range sources {
			inherited, err := mappingEntries(source)
			if err != nil {
				return nil, fmt.Errorf("merge at line %d: %w", key.Line, err)
			}

			for e := range inherited.Iter() {
				if explicit.Contains(e.key.Value) || merged.Contains(e.key.Value) {
					continue
				}

				merged.Insert(e.key.Value)
				entries.Push(e)
			}
		}
	}

	return entries, nil
}

func isMergeKey(key *yaml.Node) bool {
	return key.Kind == yaml.ScalarNode && key.ShortTag() == "!!merge"
}

// ParseConfig decodes a YAML (or JSON) configuration document:
//
//	initial: idle
//	states:
//	  idle:
//	    transitions: {run: running}
//	  running:
//	    transitions: {stop: idle}
//
// Only decoding is performed here; structural checks happen in New.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, &ErrInvalidConfig{Reason: "decode", Err: err}
	}

	return cfg, nil
}

// LoadConfig reads and decodes the configuration file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("fsm: failed to read config: %w", err)
	}

	return ParseConfig(data)
}
