package signin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultEmailValidator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"empty", "", MsgEmailRequired},
		{"whitespace only", "   ", MsgEmailRequired},
		{"missing domain", "user@", MsgEmailInvalid},
		{"missing at sign", "user.example.com", MsgEmailInvalid},
		{"missing tld", "user@example", MsgEmailInvalid},
		{"tld too long", "user@example.museum", MsgEmailInvalid},
		{"simple address", "a@b.co", ""},
		{"plus tag", "user+tag@example.com", ""},
		{"subdomain", "user@mail.example.org", ""},
		{"surrounding spaces", "  user@example.com  ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, DefaultEmailValidator(tt.value))
		})
	}
}

func TestDefaultPasswordValidator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"empty", "", MsgPasswordRequired},
		{"too short", "123", MsgPasswordTooShort},
		{"one below minimum", "12345", MsgPasswordTooShort},
		{"multibyte below minimum", "ααβ", MsgPasswordTooShort},
		{"at minimum", "123456", ""},
		{"multibyte at minimum", "ααββγγ", ""},
		{"longer", "correct horse battery", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, DefaultPasswordValidator(tt.value))
		})
	}
}
