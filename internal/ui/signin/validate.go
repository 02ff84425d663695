package signin

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Validator inspects a field value and returns an error message, or the
// empty string when the value is acceptable. A caller-supplied validator
// fully replaces the corresponding default.
type Validator func(value string) string

// Default validation messages.
const (
	MsgEmailRequired    = "Please enter your email"
	MsgEmailInvalid     = "Please enter a valid email"
	MsgPasswordRequired = "Please enter your password"
	MsgPasswordTooShort = "Password must be at least 6 characters"
)

// MinPasswordLength is the minimum accepted password length for the default
// password validator.
const MinPasswordLength = 6

// local-part@domain.tld with a 2-4 letter top-level segment.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,4}$`)

// DefaultEmailValidator rejects empty values and values that do not look
// like a plain email address.
func DefaultEmailValidator(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return MsgEmailRequired
	}
	if !emailPattern.MatchString(trimmed) {
		return MsgEmailInvalid
	}
	return ""
}

// DefaultPasswordValidator rejects empty values and values shorter than
// MinPasswordLength.
func DefaultPasswordValidator(value string) string {
	if value == "" {
		return MsgPasswordRequired
	}
	if utf8.RuneCountInString(value) < MinPasswordLength {
		return MsgPasswordTooShort
	}
	return ""
}
