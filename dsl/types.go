// Package dsl parses the tsforge shorthand language and generates
// TypeScript artifacts from it.
//
// The shorthand describes one record per line, e.g.
//
//	User email:s password:s isAdmin?:b createdAt:d tags:s[]
//
// Parsing produces a Model, and the generators turn that model into a
// type alias, an interface, a Zod schema, and an example object. Every
// function in this package is pure: no I/O, no shared state, safe for
// concurrent callers.
package dsl

// Property is a single parsed field of a model. Name is already
// sanitized to a valid identifier; ResolvedType is either a TypeScript
// primitive, an array type built from one, or a passthrough token taken
// verbatim from the DSL.
type Property struct {
	Name         string `json:"name"`
	IsRequired   bool   `json:"isRequired"`
	ResolvedType string `json:"resolvedType"`
}

// Model is the outcome of parsing one DSL line. Properties preserve the
// left-to-right order of the input; generators never reorder them.
type Model struct {
	TypeName   string     `json:"typeName"`
	Properties []Property `json:"properties"`
}

// Config controls how requiredness defaults and which artifacts Build
// emits. The core never mutates it.
type Config struct {
	OptionalByDefault bool `json:"optionalByDefault"`
	EmitInterface     bool `json:"emitInterface"`
	EmitSchema        bool `json:"emitSchema"`
	EmitExample       bool `json:"emitExample"`
	StrictSchema      bool `json:"strictSchema"`
}

// DefaultConfig returns the stock generation configuration: fields are
// required unless marked optional, and every artifact is emitted.
func DefaultConfig() Config {
	return Config{
		EmitInterface: true,
		EmitSchema:    true,
		EmitExample:   true,
	}
}

// Result bundles everything Build produced for one DSL input.
type Result struct {
	TypeName      string         `json:"typeName"`
	Model         *Model         `json:"model"`
	TypeText      string         `json:"typeText"`
	InterfaceText string         `json:"interfaceText,omitempty"`
	SchemaText    string         `json:"schemaText,omitempty"`
	Example       map[string]any `json:"exampleObject,omitempty"`
}
