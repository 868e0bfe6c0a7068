package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		opts    EmailOptions
		wantErr bool
	}{
		{
			name:  "plain valid address",
			email: "robot.admin@example.com",
		},
		{
			name:  "trusted domain accepted when required",
			email: "user@gmail.com",
			opts:  EmailOptions{RequireTrusted: true},
		},
		{
			name:  "trusted check is case insensitive",
			email: "User@QQ.com",
			opts:  EmailOptions{RequireTrusted: true},
		},
		{
			name:    "untrusted domain rejected when required",
			email:   "user@example.com",
			opts:    EmailOptions{RequireTrusted: true},
			wantErr: true,
		},
		{
			name:    "temporary domain rejected by default",
			email:   "user@mailinator.com",
			wantErr: true,
		},
		{
			name:  "temporary domain accepted when allowed",
			email: "user@mailinator.com",
			opts:  EmailOptions{AllowTemporary: true},
		},
		{
			name:    "missing at sign",
			email:   "not-an-email",
			wantErr: true,
		},
		{
			name:    "missing top level domain",
			email:   "user@localhost",
			wantErr: true,
		},
		{
			name:    "empty is required",
			email:   "",
			wantErr: true,
		},
		{
			name:    "whitespace only is required",
			email:   "   ",
			wantErr: true,
		},
		{
			name:    "exceeds default max length",
			email:   strings.Repeat("a", 95) + "@163.com",
			wantErr: true,
		},
		{
			name:  "custom max length",
			email: strings.Repeat("a", 95) + "@163.com",
			opts:  EmailOptions{MaxLength: 150},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateEmail(tt.email, tt.opts)
			if tt.wantErr {
				assert.False(t, errs.Valid(), "expected errors, got none")
			} else {
				assert.True(t, errs.Valid(), "unexpected errors: %v", errs)
			}
		})
	}
}

func TestValidateEmail_Idempotent(t *testing.T) {
	first := ValidateEmail("user@10minutemail.com", EmailOptions{RequireTrusted: true})
	second := ValidateEmail("user@10minutemail.com", EmailOptions{RequireTrusted: true})
	assert.Equal(t, first, second)
	assert.Len(t, first, 2, "temporary and untrusted errors accumulate")
}
