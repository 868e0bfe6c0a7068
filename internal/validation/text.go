package validation

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	MaxKeywordLength = 100
	MaxNameLength    = 200
)

// Injection markers. These are rejected outright rather than sanitized:
// the admin API has no legitimate use for markup or SQL fragments in
// search keywords or display names.
var (
	scriptTagPattern    = regexp.MustCompile(`(?i)<\s*/?\s*script[^>]*>`)
	sqlInjectionPattern = regexp.MustCompile(`(?i)['"]\s*(or|and)\s+[^=]*=`)
	sqlCommentPattern   = regexp.MustCompile(`(--|;\s*(drop|delete|truncate)\b)`)
)

// ValidateKeyword checks a free-text search keyword: capped length and no
// HTML or SQL injection markers. Empty keywords are valid (no filter).
func ValidateKeyword(keyword string) Errors {
	return validateFreeText(keyword, "keyword", MaxKeywordLength, false)
}

// ValidateName checks a display name (customer, device, product). Unlike
// keywords, names are required.
func ValidateName(name, field string) Errors {
	return validateFreeText(name, field, MaxNameLength, true)
}

func validateFreeText(value, field string, maxLen int, required bool) Errors {
	var errs Errors

	clean := strings.TrimSpace(value)
	if clean == "" {
		if required {
			errs.Add(fmt.Sprintf("%s is required", field))
		}
		return errs
	}

	if len([]rune(clean)) > maxLen {
		errs.Add(fmt.Sprintf("%s must not exceed %d characters", field, maxLen))
	}

	if containsInjectionMarkers(clean) {
		errs.Add(fmt.Sprintf("%s contains unsafe content", field))
	}

	return errs
}

func containsInjectionMarkers(s string) bool {
	if strings.ContainsAny(s, "<>") {
		return true
	}
	if scriptTagPattern.MatchString(s) {
		return true
	}
	if sqlInjectionPattern.MatchString(s) {
		return true
	}
	if sqlCommentPattern.MatchString(strings.ToLower(s)) {
		return true
	}
	return false
}
