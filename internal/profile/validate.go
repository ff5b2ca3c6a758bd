package profile

import "strings"

// ValidationKind classifies why a profile was rejected.
type ValidationKind string

const (
	KindMissingFields ValidationKind = "missing_fields"
	KindInvalidEmail  ValidationKind = "invalid_email"
	KindInvalidPhone  ValidationKind = "invalid_phone"
)

// ValidationError reports a rejected profile with a user-facing message.
type ValidationError struct {
	Kind    ValidationKind
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// requiredFields fixes the order missing fields are reported in.
var requiredFields = []struct {
	name  string
	value func(UserProfile) string
}{
	{"name", func(p UserProfile) string { return p.Name }},
	{"sex", func(p UserProfile) string { return p.Sex }},
	{"phone", func(p UserProfile) string { return p.Phone }},
	{"email", func(p UserProfile) string { return p.Email }},
	{"city", func(p UserProfile) string { return p.City }},
	{"university", func(p UserProfile) string { return p.University }},
	{"degree", func(p UserProfile) string { return p.Degree }},
	{"target_position", func(p UserProfile) string { return p.TargetPosition }},
}

// Validate checks the profile for completeness and format constraints.
// A nil return means the profile is acceptable. Every missing required field
// is reported at once; format checks run only on a complete profile.
func Validate(p UserProfile) *ValidationError {
	var missing []string
	for _, f := range requiredFields {
		if f.value(p) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{
			Kind:    KindMissingFields,
			Message: "Please fill in all required fields: " + strings.Join(missing, ", "),
		}
	}

	if !strings.Contains(p.Email, "@") {
		return &ValidationError{Kind: KindInvalidEmail, Message: "Please enter a valid email address"}
	}
	if !allDigits(p.Phone) {
		return &ValidationError{Kind: KindInvalidPhone, Message: "Please enter a valid phone number"}
	}
	return nil
}

// allDigits reports whether s is non-empty and composed entirely of decimal
// digits. Formatting characters like "+", spaces, or dashes are rejected.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
