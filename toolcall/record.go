package toolcall

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Record describes one invocation of a named tool. Records are immutable
// values: all fields are set by NewRecord and exposed through accessors
// returning copies.
type Record struct {
	name        string
	description string
	reasoning   string
	input       map[string]Value
	output      Value
}

// NewRecord constructs a Record. The name must not be blank; all other
// fields are informational and may be empty. The input map is copied.
func NewRecord(name, description, reasoning string, input map[string]Value, output Value) (Record, error) {
	r := Record{
		name:        name,
		description: description,
		reasoning:   reasoning,
		input:       copyFields(input),
		output:      output,
	}
	if err := r.Validate(); err != nil {
		return Record{}, err
	}
	return r, nil
}

// MustRecord is like NewRecord but panics on error. Intended for fixtures
// and examples.
func MustRecord(name, description, reasoning string, input map[string]Value, output Value) Record {
	r, err := NewRecord(name, description, reasoning, input, output)
	if err != nil {
		panic(err)
	}
	return r
}

// Validate checks the record invariants. A zero Record is invalid.
func (r Record) Validate() error {
	if strings.TrimSpace(r.name) == "" {
		return &InvalidRecordError{Field: "name", Message: "must not be empty"}
	}
	return nil
}

// Name returns the tool name.
func (r Record) Name() string { return r.name }

// Description returns the tool description.
func (r Record) Description() string { return r.description }

// Reasoning returns the rationale recorded for the call.
func (r Record) Reasoning() string { return r.reasoning }

// InputParameters returns a copy of the input parameters.
func (r Record) InputParameters() map[string]Value { return copyFields(r.input) }

// Output returns the tool output.
func (r Record) Output() Value { return r.output }

// Equal reports whether every field of r and o is equal. Inputs and outputs
// compare by value.
func (r Record) Equal(o Record) bool {
	return r.name == o.name &&
		r.description == o.description &&
		r.reasoning == o.reasoning &&
		fieldsEqual(r.input, o.input) &&
		r.output.Equal(o.output)
}

// Key returns the match key of the record.
func (r Record) Key() Key {
	return Key{Name: r.name, Input: Object(r.input).String()}
}

// String renders the record by its match key.
func (r Record) String() string { return r.Key().String() }

// Key identifies a record for correctness matching: the tool name plus the
// canonical JSON encoding of its input parameters. Keys are comparable and
// may be used as map keys.
type Key struct {
	Name  string
	Input string
}

// String renders the key as `name {"param":"value"}`.
func (k Key) String() string {
	if k.Input == "" || k.Input == "{}" {
		return k.Name
	}
	return k.Name + " " + k.Input
}

type recordJSON struct {
	Name            string           `json:"name" yaml:"name"`
	Description     string           `json:"description,omitempty" yaml:"description,omitempty"`
	Reasoning       string           `json:"reasoning,omitempty" yaml:"reasoning,omitempty"`
	InputParameters map[string]Value `json:"input_parameters,omitempty" yaml:"input_parameters,omitempty"`
	Output          Value            `json:"output" yaml:"output"`
}

// MarshalJSON implements json.Marshaler.
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(recordJSON{
		Name:            r.name,
		Description:     r.description,
		Reasoning:       r.reasoning,
		InputParameters: r.input,
		Output:          r.output,
	})
}

// UnmarshalJSON implements json.Unmarshaler and enforces the record invariants.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw recordJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	return r.fromRaw(raw)
}

// UnmarshalYAML decodes a record declared in a YAML dataset.
func (r *Record) UnmarshalYAML(unmarshal func(any) error) error {
	var raw recordJSON
	if err := unmarshal(&raw); err != nil {
		return err
	}
	return r.fromRaw(raw)
}

func (r *Record) fromRaw(raw recordJSON) error {
	rec, err := NewRecord(raw.Name, raw.Description, raw.Reasoning, raw.InputParameters, raw.Output)
	if err != nil {
		return fmt.Errorf("decode record: %w", err)
	}
	*r = rec
	return nil
}
