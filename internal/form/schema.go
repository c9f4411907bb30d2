package form

import (
	"fmt"

	"impulse-vlsi-backend/internal/domain"
)

// FieldKind decides how a field is sanitized
type FieldKind int

const (
	// KindText is trimmed and stripped of script blocks
	KindText FieldKind = iota
	// KindPhone keeps digits only
	KindPhone
	// KindEmail is trimmed and lower-cased
	KindEmail
	// KindChoice is trimmed only; membership is checked by Validate
	KindChoice
)

// Choice is one selectable value and its display label
type Choice struct {
	Value string
	Label string
}

// Field describes one submission field
type Field struct {
	Name  string // JSON key
	Label string // used in generated error messages and emails
	Kind  FieldKind
	// Rules is a go-playground/validator tag, e.g. "required,utf16_min=2".
	// Choice fields get a generated oneof= appended.
	Rules string
	// Message overrides the generated error message for any failure of this field
	Message string

	Choices []Choice
	// DependsOn names another choice field; the allowed values come from
	// Nested[value of that field].
	DependsOn string
	Nested    map[string][]Choice
}

// Schema is the complete description of one form
type Schema struct {
	Kind   domain.FormKind
	Fields []Field
	// RateLimit is the default number of requests per window
	RateLimit int
}

// Field returns the named field
func (s *Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// choices returns the allowed values for f given the rest of the submission
func (f Field) choices(sub domain.Submission) []Choice {
	if f.DependsOn != "" {
		return f.Nested[sub.Get(f.DependsOn)]
	}
	return f.Choices
}

// Label translates a choice code to its display label. Unknown codes and
// non-choice fields return the raw value.
func (s *Schema) Label(sub domain.Submission, name string) string {
	value := sub.Get(name)
	f, ok := s.Field(name)
	if !ok || f.Kind != KindChoice {
		return value
	}
	for _, c := range f.choices(sub) {
		if c.Value == value {
			return c.Label
		}
	}
	return value
}

// Registry maps a form kind to its schema
type Registry map[domain.FormKind]*Schema

// Lookup returns the schema for kind
func (r Registry) Lookup(kind domain.FormKind) (*Schema, error) {
	s, ok := r[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownForm, kind)
	}
	return s, nil
}

// DefaultRegistry returns the three site forms
func DefaultRegistry() Registry {
	return Registry{
		domain.FormContact:       ContactSchema(),
		domain.FormCourseInquiry: CourseInquirySchema(),
		domain.FormFeedback:      FeedbackSchema(),
	}
}
