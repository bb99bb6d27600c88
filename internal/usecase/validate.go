package usecase

import (
	"fmt"
	"unicode/utf8"
)

// Issue codes surfaced to clients inside FORM_VALIDATION_ERROR responses.
const (
	IssueRequired     = "required"
	IssueTooShort     = "too_short"
	IssueInvalidValue = "invalid_value"
)

// FieldIssue describes one field-level validation failure.
type FieldIssue struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Validate normalizes and validates a raw payload against the schema.
//
// It is all-or-nothing: when any issue is found, the returned form is empty
// and must not be used. Unknown payload keys are ignored; the schema is the
// sole authority on which fields exist.
//
// Normalization rules (see normalize.go):
//   - whitespace-only values are absent, which only fails Required fields
//   - yes/no fields accept exactly "yes" or "no"; anything else is absent
//   - lenient enums coerce out-of-set values to absent; discriminant enums
//     report them as IssueInvalidValue because a conditional compile rule
//     depends on the value being one of the known codes
func Validate(schema Schema, raw map[string]string) (TypedForm, []FieldIssue) {
	form := TypedForm{
		strings: make(map[string]string, len(schema.Fields)),
		bools:   make(map[string]bool, 2),
	}
	var issues []FieldIssue

	for _, spec := range schema.Fields {
		val, present := normalizeText(raw[spec.Name])

		switch spec.Kind {
		case FieldText:
			if !present {
				if spec.Required {
					issues = append(issues, FieldIssue{
						Field:   spec.Name,
						Code:    IssueRequired,
						Message: fmt.Sprintf("%s is required", spec.Name),
					})
				}
				continue
			}
			if spec.MinLen > 0 && utf8.RuneCountInString(val) < spec.MinLen {
				issues = append(issues, FieldIssue{
					Field:   spec.Name,
					Code:    IssueTooShort,
					Message: fmt.Sprintf("%s must be at least %d characters", spec.Name, spec.MinLen),
				})
				continue
			}
			form.strings[spec.Name] = val

		case FieldYesNo:
			if !present {
				if spec.Required {
					issues = append(issues, FieldIssue{
						Field:   spec.Name,
						Code:    IssueRequired,
						Message: fmt.Sprintf("%s is required", spec.Name),
					})
				}
				continue
			}
			b, ok := normalizeYesNo(val)
			if !ok {
				// Not a yes/no answer: treated as absent, not rejected.
				if spec.Required {
					issues = append(issues, FieldIssue{
						Field:   spec.Name,
						Code:    IssueRequired,
						Message: fmt.Sprintf("%s must be answered yes or no", spec.Name),
					})
				}
				continue
			}
			form.bools[spec.Name] = b

		case FieldEnum:
			if !present {
				if spec.Required {
					issues = append(issues, FieldIssue{
						Field:   spec.Name,
						Code:    IssueRequired,
						Message: fmt.Sprintf("%s is required", spec.Name),
					})
				}
				continue
			}
			if !inEnum(val, spec.Enum) {
				if spec.Discriminant {
					issues = append(issues, FieldIssue{
						Field:   spec.Name,
						Code:    IssueInvalidValue,
						Message: fmt.Sprintf("%s must be one of the accepted values", spec.Name),
					})
				}
				// Lenient enums: out-of-set value is dropped silently.
				continue
			}
			form.strings[spec.Name] = val
		}
	}

	if len(issues) > 0 {
		return TypedForm{}, issues
	}
	return form, nil
}
