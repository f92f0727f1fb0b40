package forms

import "strings"

// Values is a snapshot of field values keyed by field name
type Values map[string]Value

// Errors maps field names to the message of the first rule that failed
type Errors map[string]string

// Clone returns an independent copy of the snapshot
func (vals Values) Clone() Values {
	out := make(Values, len(vals))
	for k, v := range vals {
		out[k] = v
	}
	return out
}

// FieldSpec declares one recognized field and its acceptance rules, checked
// in order until the first failure
type FieldSpec struct {
	Name     string
	Rules    []Rule
	Optional bool // optional fields skip their rules when left empty
}

// Schema declares the recognized fields of one entity form
type Schema struct {
	Entity string
	Fields []FieldSpec
}

// Field returns the spec for a declared field name
func (s *Schema) Field(name string) (FieldSpec, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// ValidateField runs a single field's rules and returns the first failure
// message, or "" when the value passes
func (s *Schema) ValidateField(name string, v Value) string {
	spec, ok := s.Field(name)
	if !ok {
		return ""
	}
	if spec.Optional && v.IsEmpty() {
		return ""
	}
	for _, rule := range spec.Rules {
		if msg := rule(v); msg != "" {
			return msg
		}
	}
	return ""
}

// Validate checks every declared field of the candidate snapshot. On success
// it returns a normalized copy (text trimmed, undeclared fields dropped) and
// a nil error map; on failure it returns nil values and all field errors.
func (s *Schema) Validate(vals Values) (Values, Errors) {
	errs := make(Errors)
	normalized := make(Values, len(s.Fields))

	for _, spec := range s.Fields {
		v := vals[spec.Name]
		if msg := s.ValidateField(spec.Name, v); msg != "" {
			errs[spec.Name] = msg
			continue
		}
		normalized[spec.Name] = normalize(v)
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return normalized, nil
}

func normalize(v Value) Value {
	if v.Kind() == KindText {
		return Text(strings.TrimSpace(v.Text()))
	}
	return v
}
