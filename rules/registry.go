// Package rules holds the OpenRTB 2.6 constraint registry: a declarative table of mutual
// exclusions, conditional requirements and deprecated fields covering the bid request object
// graph. The canonical table ships embedded in the binary and is served verbatim to other
// consumers, so every runtime evaluates the same rules.
package rules

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"os"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"

	"github.com/prebid/ortb-builder/errortypes"
)

//go:embed constraints.json
var defaultConstraints []byte

//go:embed constraints.schema.json
var constraintsSchema []byte

// Registry is the loaded, read-only constraint table.
type Registry struct {
	Version                       string                         `json:"version"`
	MutualExclusions              []MutualExclusion              `json:"mutual_exclusions,omitempty"`
	ScopedMutualExclusions        []ScopedMutualExclusion        `json:"scoped_mutual_exclusions,omitempty"`
	ConditionalRequirements       []ConditionalRequirement       `json:"conditional_requirements,omitempty"`
	ScopedConditionalRequirements []ScopedConditionalRequirement `json:"scoped_conditional_requirements,omitempty"`
	DeprecatedFields              []DeprecatedField              `json:"deprecated_fields,omitempty"`

	raw []byte
}

// MutualExclusion lists field paths of which at most one may be present. With Groups set the
// exclusion holds between groups instead: any number of fields from one group may appear, but
// fields from two groups may not.
type MutualExclusion struct {
	Fields   []string   `json:"fields,omitempty"`
	Groups   [][]string `json:"groups,omitempty"`
	Severity string     `json:"severity"`
}

// Sets returns the exclusive field sets. Plain Fields form one single field set each.
func (m MutualExclusion) Sets() [][]string {
	if len(m.Groups) > 0 {
		return m.Groups
	}
	sets := make([][]string, len(m.Fields))
	for i, f := range m.Fields {
		sets[i] = []string{f}
	}
	return sets
}

// Level maps the textual severity onto errortypes.
func (m MutualExclusion) Level() errortypes.Severity {
	s, _ := errortypes.ParseSeverity(m.Severity)
	return s
}

// ScopedMutualExclusion is a MutualExclusion evaluated once per instance of the Scope container,
// with Fields relative to that instance.
type ScopedMutualExclusion struct {
	Scope string `json:"scope"`
	MutualExclusion
}

// Trigger activates a ConditionalRequirement. With Equals set the field must hold that JSON
// value, otherwise presence of the field is enough.
type Trigger struct {
	Field  string          `json:"field"`
	Equals json.RawMessage `json:"equals,omitempty"`
}

// ConditionalRequirement demands Required fields (errors) and suggests Recommended fields
// (warnings) whenever Trigger holds. A nil Trigger always holds.
type ConditionalRequirement struct {
	Trigger     *Trigger `json:"trigger,omitempty"`
	Required    []string `json:"required,omitempty"`
	Recommended []string `json:"recommended,omitempty"`
}

// ScopedConditionalRequirement is a ConditionalRequirement evaluated once per instance of the
// Scope container.
type ScopedConditionalRequirement struct {
	Scope string `json:"scope"`
	ConditionalRequirement
}

// DeprecatedField marks a field whose presence always warns.
type DeprecatedField struct {
	Field       string   `json:"field"`
	Replacement []string `json:"replacement,omitempty"`
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry

	schemaOnce     sync.Once
	compiledSchema *gojsonschema.Schema
	schemaErr      error
)

// Default returns the registry embedded in the binary. The table is parsed once and shared, so
// callers must treat it as read-only. It panics if the embedded table does not match its own
// schema, which can only happen through a broken build.
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := Parse(defaultConstraints)
		if err != nil {
			panic(err)
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// Load reads and parses an operator supplied constraint table. An empty path yields Default().
func Load(path string) (*Registry, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read constraints file %s", path)
	}

	r, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load constraints file %s", path)
	}
	return r, nil
}

// Parse validates data against the registry schema and decodes it.
func Parse(data []byte) (*Registry, error) {
	schemaOnce.Do(func() {
		compiledSchema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(constraintsSchema))
	})
	if schemaErr != nil {
		return nil, errors.Wrap(schemaErr, "failed to compile constraints schema")
	}

	result, err := compiledSchema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, errors.Wrap(err, "constraints are not valid JSON")
	}
	if !result.Valid() {
		messages := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			messages = append(messages, desc.String())
		}
		return nil, errors.Errorf("constraints do not match schema: %s", strings.Join(messages, "; "))
	}

	r := &Registry{}
	if err := json.Unmarshal(data, r); err != nil {
		return nil, errors.Wrap(err, "failed to decode constraints")
	}
	r.raw = bytes.Clone(data)
	return r, nil
}

// JSON returns the registry document exactly as it was loaded.
func (r *Registry) JSON() []byte {
	return bytes.Clone(r.raw)
}

// SplitPath splits a dotted field path into its segments.
func SplitPath(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, ".")
}
