// internal/common/validation/schema.go
// Package validation implements the schema-driven submission validator: an
// enumerable table of field rules consumed by one generic routine.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// FieldKind selects the format check applied to a field.
type FieldKind string

const (
	KindText        FieldKind = "text"
	KindEmail       FieldKind = "email"
	KindPhone       FieldKind = "phone"
	KindURL         FieldKind = "url"
	KindDate        FieldKind = "date"
	KindEnum        FieldKind = "enum"
	KindMultiChoice FieldKind = "multi-choice"
)

// ViolationKind tags a single reported reason a field failed validation.
type ViolationKind string

const (
	ViolationMissing ViolationKind = "missing"
	ViolationLength  ViolationKind = "length"
	ViolationFormat  ViolationKind = "format"
	ViolationEnum    ViolationKind = "enum"
)

// Violation is one reported reason a field failed validation.
type Violation struct {
	Field   string        `json:"field"`
	Kind    ViolationKind `json:"violation_kind"`
	Message string        `json:"message"`
}

// FieldRule declares the constraints of one field. The full rule set of a
// form is a plain slice, inspectable and testable as data.
type FieldRule struct {
	Name     string
	Kind     FieldKind
	Required bool
	MinLen   int
	MaxLen   int // 0 means unbounded
	Enum     []string
}

// Record is the typed, validated representation of one submission. It is
// constructed by Validate (or NewRecord in tests) and never mutated after.
type Record struct {
	scalars map[string]string
	lists   map[string][]string
}

// NewRecord builds a record directly from already-validated values.
func NewRecord(scalars map[string]string, lists map[string][]string) *Record {
	rec := &Record{
		scalars: make(map[string]string, len(scalars)),
		lists:   make(map[string][]string, len(lists)),
	}
	for k, v := range scalars {
		rec.scalars[k] = v
	}
	for k, v := range lists {
		rec.lists[k] = append([]string(nil), v...)
	}
	return rec
}

// Get returns the stored scalar value of a field, or "" when absent.
func (r *Record) Get(name string) string {
	return r.scalars[name]
}

// List returns the stored multi-choice values of a field in submission order.
func (r *Record) List(name string) []string {
	return r.lists[name]
}

// Has reports whether a scalar field was present and non-empty.
func (r *Record) Has(name string) bool {
	_, ok := r.scalars[name]
	return ok
}

// Canonical patterns shared by both form deployments.
var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	// After cleaning, a phone must be 8-16 digits with a non-zero first digit
	// and an optional leading +. Keeps short strings like "123" out.
	phoneRegex    = regexp.MustCompile(`^\+?[1-9][0-9]{7,15}$`)
	phoneStripper = regexp.MustCompile(`[^\d+]`)
)

const dateLayout = "2006-01-02"

// Validate checks an untyped payload against the rule table. It is exhaustive:
// every rule is evaluated and all violations are returned together, so the
// caller can report every problem in a single response. A typed Record is
// returned only when the violation list is empty. Extra unknown keys in the
// payload are ignored. Pure function of its input.
func Validate(payload map[string]interface{}, rules []FieldRule) (*Record, []Violation) {
	rec := &Record{
		scalars: make(map[string]string),
		lists:   make(map[string][]string),
	}
	var violations []Violation

	for _, rule := range rules {
		if rule.Kind == KindMultiChoice {
			violations = append(violations, validateMultiChoice(rec, payload, rule)...)
			continue
		}
		if v := validateScalar(rec, payload, rule); v != nil {
			violations = append(violations, *v)
		}
	}

	if len(violations) > 0 {
		return nil, violations
	}
	return rec, nil
}

// validateScalar applies the per-field check order: presence, length, format,
// enumeration. The first failing check reports and stops for that field.
func validateScalar(rec *Record, payload map[string]interface{}, rule FieldRule) *Violation {
	raw, present := payload[rule.Name]

	var value string
	if present {
		str, ok := raw.(string)
		if !ok {
			if raw == nil {
				present = false
			} else {
				return &Violation{
					Field:   rule.Name,
					Kind:    ViolationFormat,
					Message: fmt.Sprintf("%s must be a string", rule.Name),
				}
			}
		}
		value = strings.TrimSpace(str)
	}

	// 1. Presence
	if !present || value == "" {
		if rule.Required {
			return &Violation{
				Field:   rule.Name,
				Kind:    ViolationMissing,
				Message: fmt.Sprintf("%s is required", rule.Name),
			}
		}
		return nil // optional and absent: no stored value
	}

	// 2. Length bounds on the trimmed original
	if rule.MinLen > 0 && len([]rune(value)) < rule.MinLen {
		return &Violation{
			Field:   rule.Name,
			Kind:    ViolationLength,
			Message: fmt.Sprintf("%s must be at least %d characters", rule.Name, rule.MinLen),
		}
	}
	if rule.MaxLen > 0 && len([]rune(value)) > rule.MaxLen {
		return &Violation{
			Field:   rule.Name,
			Kind:    ViolationLength,
			Message: fmt.Sprintf("%s must be at most %d characters", rule.Name, rule.MaxLen),
		}
	}

	// 3. Format. The stored value stays verbatim (trimmed only); phone and
	// date are validated against their canonical form but not rewritten.
	switch rule.Kind {
	case KindEmail:
		if !ValidateEmail(value) {
			return &Violation{
				Field:   rule.Name,
				Kind:    ViolationFormat,
				Message: "Invalid email format",
			}
		}
	case KindPhone:
		if !ValidatePhone(value) {
			return &Violation{
				Field:   rule.Name,
				Kind:    ViolationFormat,
				Message: "Invalid phone number format",
			}
		}
	case KindURL:
		if !ValidateURL(value) {
			return &Violation{
				Field:   rule.Name,
				Kind:    ViolationFormat,
				Message: "URL must start with http:// or https://",
			}
		}
	case KindDate:
		if _, err := time.Parse(dateLayout, value); err != nil {
			return &Violation{
				Field:   rule.Name,
				Kind:    ViolationFormat,
				Message: fmt.Sprintf("%s must be a valid YYYY-MM-DD date", rule.Name),
			}
		}
	}

	// 4. Enumeration, case-sensitive
	if rule.Kind == KindEnum {
		if !contains(rule.Enum, value) {
			return &Violation{
				Field:   rule.Name,
				Kind:    ViolationEnum,
				Message: fmt.Sprintf("%s must be one of: %s", rule.Name, strings.Join(rule.Enum, ", ")),
			}
		}
	}

	rec.scalars[rule.Name] = value
	return nil
}

// validateMultiChoice checks an array-valued field. Submission order of the
// elements is preserved for later joining into display text.
func validateMultiChoice(rec *Record, payload map[string]interface{}, rule FieldRule) []Violation {
	raw, present := payload[rule.Name]

	var values []string
	if present && raw != nil {
		switch arr := raw.(type) {
		case []interface{}:
			for _, item := range arr {
				str, ok := item.(string)
				if !ok {
					return []Violation{{
						Field:   rule.Name,
						Kind:    ViolationFormat,
						Message: fmt.Sprintf("%s must be a list of strings", rule.Name),
					}}
				}
				if trimmed := strings.TrimSpace(str); trimmed != "" {
					values = append(values, trimmed)
				}
			}
		case []string:
			for _, str := range arr {
				if trimmed := strings.TrimSpace(str); trimmed != "" {
					values = append(values, trimmed)
				}
			}
		default:
			return []Violation{{
				Field:   rule.Name,
				Kind:    ViolationFormat,
				Message: fmt.Sprintf("%s must be a list of strings", rule.Name),
			}}
		}
	}

	if len(values) == 0 {
		if rule.Required {
			return []Violation{{
				Field:   rule.Name,
				Kind:    ViolationMissing,
				Message: fmt.Sprintf("%s requires at least one selection", rule.Name),
			}}
		}
		return nil
	}

	var violations []Violation
	if len(rule.Enum) > 0 {
		for _, value := range values {
			if !contains(rule.Enum, value) {
				violations = append(violations, Violation{
					Field:   rule.Name,
					Kind:    ViolationEnum,
					Message: fmt.Sprintf("%s contains an unknown option: %s", rule.Name, value),
				})
			}
		}
	}
	if len(violations) > 0 {
		return violations
	}

	rec.lists[rule.Name] = values
	return nil
}

func contains(set []string, value string) bool {
	for _, member := range set {
		if member == value {
			return true
		}
	}
	return false
}

// ValidateEmail validates email format.
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidatePhone validates a phone number after stripping formatting.
func ValidatePhone(phone string) bool {
	return phoneRegex.MatchString(CleanPhone(phone))
}

// CleanPhone removes everything except digits and plus signs.
func CleanPhone(phone string) string {
	return phoneStripper.ReplaceAllString(phone, "")
}

// ValidateURL checks the scheme prefix; the stored value stays as entered.
func ValidateURL(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}
