package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizedEmail(t *testing.T) {
	cases := []struct {
		name     string
		email    string
		expected string
	}{
		{"Typical", "john@example.com", "j***@*******.com"},
		{"SingleCharUser", "j@example.com", "j@*******.com"},
		{"Subdomain", "john@mail.example.com", "j***@****.*******.com"},
		{"NoTLD", "john@localhost", "j***@localhost"},
		{"NotAnEmail", "not-an-email", "[invalid-email]"},
		{"Empty", "", "[invalid-email]"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SanitizedEmail(tc.email))
		})
	}
}

func TestSanitizeQueryString(t *testing.T) {
	cases := []struct {
		name     string
		query    string
		redacted bool
	}{
		{"Empty", "", false},
		{"Benign", "page=2&sort=asc", false},
		{"Password", "password=hunter2", true},
		{"Token", "token=a1b2c3", true},
		{"OTP", "otp=123456", true},
		{"Email", "email=john%40example.com", true},
		{"MixedCase", "PassWord=hunter2", true},
		{"SensitiveAmongBenign", "page=2&token=abc", true},
		{"Unparseable", "a=%zz", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.redacted, SanitizeQueryString(tc.query))
		})
	}
}
