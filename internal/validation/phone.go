package validation

import (
	"regexp"
	"strings"
)

var (
	mobilePattern   = regexp.MustCompile(`^1[3-9]\d{9}$`)
	landlinePattern = regexp.MustCompile(`^0\d{2,3}-?\d{7,8}$`)
	hotlinePattern  = regexp.MustCompile(`^400-?\d{3}-?\d{4}$`)
)

// virtualOperatorPrefixes are the MVNO number segments. Callers may reject
// these for contact numbers that must be reachable long term.
var virtualOperatorPrefixes = map[string]struct{}{
	"162": {},
	"165": {},
	"167": {},
	"170": {},
	"171": {},
}

// knownTestNumbers is a fixed denylist of placeholder numbers that show up
// in copied examples and demo data.
var knownTestNumbers = map[string]struct{}{
	"13800138000": {},
	"13900139000": {},
	"18888888888": {},
	"13333333333": {},
	"15555555555": {},
}

type PhoneOptions struct {
	// RejectVirtual refuses virtual-operator (MVNO) mobile segments.
	RejectVirtual bool
	// RejectTestNumbers refuses the known placeholder numbers.
	RejectTestNumbers bool
	// AllowHotline accepts 400 service hotlines, used by partner
	// institutions that publish a switchboard instead of a direct line.
	AllowHotline bool
}

// ValidatePhone checks a phone number against the regional grammar:
// 11-digit mobile numbers or area-code landline numbers. Spaces, dots and
// parentheses are stripped before matching.
func ValidatePhone(phone string, opts PhoneOptions) Errors {
	var errs Errors

	clean := cleanPhone(phone)
	if clean == "" {
		errs.Add("phone number is required")
		return errs
	}

	switch {
	case strings.HasPrefix(clean, "1") && !strings.Contains(clean, "-"):
		if !mobilePattern.MatchString(clean) {
			errs.Add("mobile number must be 11 digits starting with 13-19")
			return errs
		}

		if opts.RejectVirtual {
			if _, ok := virtualOperatorPrefixes[clean[:3]]; ok {
				errs.Add("virtual operator numbers are not accepted")
			}
		}

		if opts.RejectTestNumbers {
			if _, ok := knownTestNumbers[clean]; ok {
				errs.Add("test phone numbers are not accepted")
			}
		}

	case strings.HasPrefix(clean, "0"):
		if !landlinePattern.MatchString(clean) {
			errs.Add("landline number format is invalid")
		}

	case strings.HasPrefix(clean, "400"):
		switch {
		case !opts.AllowHotline:
			errs.Add("unsupported phone number format")
		case !hotlinePattern.MatchString(clean):
			errs.Add("hotline number format is invalid")
		}

	default:
		errs.Add("unsupported phone number format")
	}

	return errs
}

// cleanPhone strips spaces, dots and parentheses but keeps dashes, which
// carry meaning for landline area codes.
func cleanPhone(phone string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(phone) {
		switch r {
		case ' ', '.', '(', ')':
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
