package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name    string
		phone   string
		opts    PhoneOptions
		wantErr bool
	}{
		{
			name:  "valid mobile",
			phone: "13912345678",
		},
		{
			name:  "mobile with spaces",
			phone: "139 1234 5678",
		},
		{
			name:  "landline with dash",
			phone: "010-12345678",
		},
		{
			name:  "landline four digit area code",
			phone: "0571-1234567",
		},
		{
			name:    "mobile too short",
			phone:   "1391234567",
			wantErr: true,
		},
		{
			name:    "mobile bad second digit",
			phone:   "12912345678",
			wantErr: true,
		},
		{
			name:    "empty",
			phone:   "",
			wantErr: true,
		},
		{
			name:    "unsupported format",
			phone:   "999999",
			wantErr: true,
		},
		{
			name:  "virtual operator allowed by default",
			phone: "17012345678",
		},
		{
			name:    "virtual operator rejected on request",
			phone:   "17012345678",
			opts:    PhoneOptions{RejectVirtual: true},
			wantErr: true,
		},
		{
			name:  "test number allowed by default",
			phone: "13800138000",
		},
		{
			name:    "test number rejected on request",
			phone:   "13800138000",
			opts:    PhoneOptions{RejectTestNumbers: true},
			wantErr: true,
		},
		{
			name:    "repeated test number rejected",
			phone:   "18888888888",
			opts:    PhoneOptions{RejectTestNumbers: true},
			wantErr: true,
		},
		{
			name:    "hotline rejected by default",
			phone:   "400-800-1234",
			wantErr: true,
		},
		{
			name:  "hotline accepted on request",
			phone: "400-800-1234",
			opts:  PhoneOptions{AllowHotline: true},
		},
		{
			name:  "hotline without dashes",
			phone: "4008001234",
			opts:  PhoneOptions{AllowHotline: true},
		},
		{
			name:    "malformed hotline",
			phone:   "400-12-34",
			opts:    PhoneOptions{AllowHotline: true},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidatePhone(tt.phone, tt.opts)
			if tt.wantErr {
				assert.False(t, errs.Valid(), "expected errors, got none")
			} else {
				assert.True(t, errs.Valid(), "unexpected errors: %v", errs)
			}
		})
	}
}
