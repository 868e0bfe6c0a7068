package validation

import (
	"fmt"
	"regexp"
	"strings"
)

const DefaultEmailMaxLength = 100

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)

// trustedEmailDomains are the providers accepted when a caller requires a
// trusted mailbox (e.g. for customer contact addresses).
var trustedEmailDomains = map[string]struct{}{
	"gmail.com":   {},
	"yahoo.com":   {},
	"hotmail.com": {},
	"outlook.com": {},
	"live.com":    {},
	"qq.com":      {},
	"163.com":     {},
	"126.com":     {},
	"sina.com":    {},
	"sohu.com":    {},
	"foxmail.com": {},
	"aliyun.com":  {},
	"yeah.net":    {},
}

// temporaryEmailDomains are disposable-mailbox providers.
var temporaryEmailDomains = map[string]struct{}{
	"10minutemail.com":  {},
	"guerrillamail.com": {},
	"tempmail.org":      {},
	"mailinator.com":    {},
	"yopmail.com":       {},
	"temp-mail.org":     {},
	"throwaway.email":   {},
	"maildrop.cc":       {},
}

type EmailOptions struct {
	// MaxLength caps the address length; zero means DefaultEmailMaxLength.
	MaxLength int
	// AllowTemporary permits disposable-mailbox domains.
	AllowTemporary bool
	// RequireTrusted rejects domains outside the trusted provider set.
	RequireTrusted bool
}

// ValidateEmail checks an email address against the configured constraints.
// The address is compared case-insensitively; surrounding whitespace is
// ignored for the checks but the input itself is never modified.
func ValidateEmail(email string, opts EmailOptions) Errors {
	var errs Errors

	maxLen := opts.MaxLength
	if maxLen <= 0 {
		maxLen = DefaultEmailMaxLength
	}

	clean := strings.ToLower(strings.TrimSpace(email))
	if clean == "" {
		errs.Add("email is required")
		return errs
	}

	if len(clean) > maxLen {
		errs.Add(fmt.Sprintf("email must not exceed %d characters", maxLen))
	}

	if !emailPattern.MatchString(clean) {
		errs.Add("email format is invalid")
		return errs
	}

	at := strings.LastIndex(clean, "@")
	domain := clean[at+1:]

	if !opts.AllowTemporary {
		if _, ok := temporaryEmailDomains[domain]; ok {
			errs.Add("temporary email addresses are not accepted")
		}
	}

	if opts.RequireTrusted {
		if _, ok := trustedEmailDomains[domain]; !ok {
			errs.Add("email domain is not in the trusted provider list")
		}
	}

	return errs
}
