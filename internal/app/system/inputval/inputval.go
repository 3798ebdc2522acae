// Package inputval validates user-supplied field formats before they are
// normalized and stored. Validation here is about format only; uniqueness
// and referential checks belong to the stores.
package inputval

import "strings"

// IsValidEmail reports whether s is a plausible bare email address.
// Display-name forms ("Name <user@host>") are rejected; single-label
// domains are allowed so dev and test environments work.
func IsValidEmail(s string) bool {
	at := strings.IndexByte(s, '@')
	if at <= 0 || at != strings.LastIndexByte(s, '@') {
		return false
	}
	local, domain := s[:at], s[at+1:]
	if local == "" || domain == "" {
		return false
	}
	if strings.ContainsAny(s, " \t<>") {
		return false
	}
	if !validDotRun(local) || !validDotRun(domain) {
		return false
	}
	return true
}

// validDotRun rejects leading/trailing dots and consecutive dots.
func validDotRun(part string) bool {
	if strings.HasPrefix(part, ".") || strings.HasSuffix(part, ".") {
		return false
	}
	return !strings.Contains(part, "..")
}

// IsValidPhone reports whether s looks like a phone number after
// separator stripping: an optional leading + followed by 7 to 15 digits.
func IsValidPhone(s string) bool {
	s = strings.TrimPrefix(s, "+")
	if len(s) < 7 || len(s) > 15 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
