// Package usecase defines the closed registry of supported grievance use
// cases. Each use case owns a typed form schema, a deterministic fact-sheet
// compiler, and display metadata. The registry, validation, and compilers are
// pure: no I/O, no shared mutable state, byte-identical output for identical
// input.
package usecase

import "github.com/reclamo-app/go-reclamo-backend/internal/domain"

// FieldKind describes how a raw form value is interpreted.
type FieldKind int

const (
	// FieldText is a free string, optionally with a minimum length.
	FieldText FieldKind = iota
	// FieldEnum is a closed, case-sensitive set of accepted values.
	FieldEnum
	// FieldYesNo is a "yes"/"no" string normalized to a boolean.
	FieldYesNo
)

// FieldSpec declares one named field of a use-case form.
//
// Enumerated fields are lenient by default: a value outside Enum is coerced
// to absent. Fields marked Discriminant drive conditional lines in the fact
// compiler, so an out-of-set value there is reported as a validation issue
// instead of being silently dropped.
type FieldSpec struct {
	Name         string
	Label        string // stable human-readable prefix in the fact sheet
	Kind         FieldKind
	Required     bool
	MinLen       int      // minimum rune length for FieldText, 0 = none
	Enum         []string // accepted values for FieldEnum
	Discriminant bool     // strict enum used for conditional compile rules
}

// Schema is the ordered field list of one use case. Order is significant:
// the fact compiler emits lines in declaration order.
type Schema struct {
	Fields []FieldSpec
}

// Field returns the spec for name, if declared.
func (s Schema) Field(name string) (FieldSpec, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// Meta carries display metadata for a use case. It is consumed only for
// response enrichment and prompt hints, never for validation.
type Meta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CompileFunc renders a validated form (plus an optionally resolved
// recipient) into the canonical fact sheet for one use case.
type CompileFunc func(form TypedForm, rec *domain.Recipient) string

// Descriptor binds a (category, variant) pair to its schema, compiler, and
// metadata. Descriptors are immutable and defined at process start.
type Descriptor struct {
	Category string
	Variant  string // empty for direct categories
	Meta     Meta
	Schema   Schema
	Compile  CompileFunc
}

// Key returns the registry lookup key for the descriptor.
func (d *Descriptor) Key() string {
	if d.Variant == "" {
		return d.Category
	}
	return d.Category + "/" + d.Variant
}

// TypedForm is the all-or-nothing result of validating a raw payload against
// a schema. Absent fields have no entry at all.
type TypedForm struct {
	strings map[string]string
	bools   map[string]bool
}

// String returns the normalized value of a text or enum field.
func (f TypedForm) String(name string) (string, bool) {
	v, ok := f.strings[name]
	return v, ok
}

// Bool returns the normalized value of a yes/no field.
func (f TypedForm) Bool(name string) (bool, bool) {
	v, ok := f.bools[name]
	return v, ok
}

// Empty reports whether no field survived normalization.
func (f TypedForm) Empty() bool {
	return len(f.strings) == 0 && len(f.bools) == 0
}
