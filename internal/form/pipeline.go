package form

import (
	"fmt"
	"strconv"
	"strings"

	"impulse-vlsi-backend/internal/domain"
	"impulse-vlsi-backend/pkg/sanitizer"
	"impulse-vlsi-backend/pkg/validation"
)

// validator.Validate is safe for concurrent use
var validate = validation.New()

// Sanitize returns a cleaned copy of raw holding exactly the schema's fields.
// It never fails; missing fields become "".
func (s *Schema) Sanitize(raw domain.Submission) domain.Submission {
	out := make(domain.Submission, len(s.Fields))
	for _, f := range s.Fields {
		v := raw.Get(f.Name)
		switch f.Kind {
		case KindPhone:
			v = sanitizer.Digits(v)
		case KindEmail:
			v = sanitizer.Email(v)
		case KindChoice:
			v = sanitizer.Trim(v)
		default:
			v = sanitizer.Text(v)
		}
		out[f.Name] = v
	}
	return out
}

// Validate checks every field of a sanitized submission and returns one
// message per failing field, in schema order. An empty result means valid.
func (s *Schema) Validate(sub domain.Submission) []string {
	errs := []string{}
	for _, f := range s.Fields {
		if msg, ok := f.check(sub); !ok {
			errs = append(errs, msg)
		}
	}
	return errs
}

func (f Field) check(sub domain.Submission) (string, bool) {
	tag := f.Rules
	if f.Kind == KindChoice {
		choices := f.choices(sub)
		if len(choices) == 0 {
			// outer selection missing or invalid: nothing can be valid here
			return f.message(nil), false
		}
		values := make([]string, len(choices))
		for i, c := range choices {
			values[i] = c.Value
		}
		tag = joinTag(tag, "oneof="+strings.Join(values, " "))
	}

	err := validate.Var(sub.Get(f.Name), tag)
	if err == nil {
		return "", true
	}
	return f.message(err), false
}

func (f Field) message(err error) string {
	if f.Message != "" {
		return f.Message
	}
	if f.Kind == KindChoice || err == nil {
		return fmt.Sprintf("Please select a valid %s", strings.ToLower(f.Label))
	}
	return strings.Join(validation.Messages(err, f.Label), ", ")
}

func joinTag(a, b string) string {
	if a == "" {
		return b
	}
	return a + "," + b
}

// AverageRating returns the arithmetic mean of the named integer fields.
// Fields that do not parse count as 0.
func AverageRating(sub domain.Submission, fields ...string) float64 {
	if len(fields) == 0 {
		return 0
	}
	sum := 0
	for _, name := range fields {
		n, _ := strconv.Atoi(sub.Get(name))
		sum += n
	}
	return float64(sum) / float64(len(fields))
}

// FormatRating renders a rating average with two decimals, e.g. "4.00"
func FormatRating(avg float64) string {
	return strconv.FormatFloat(avg, 'f', 2, 64)
}
