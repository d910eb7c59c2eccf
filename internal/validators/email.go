package validators

import (
	"net"
	"strings"
)

// Normalize lowercases and trims an email address for storage and lookup.
func Normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// HasEmailShape is the cheap pre-submit check: non-empty, contains "@"
// with something on both sides.
func HasEmailShape(email string) bool {
	at := strings.LastIndex(email, "@")
	return at > 0 && at < len(email)-1
}

// IsEmailDomainValid resolves the address's domain to weed out typos at
// signup. MX first, falling back to a plain host lookup.
func IsEmailDomainValid(email string) bool {
	if !HasEmailShape(email) {
		return false
	}

	domain := email[strings.LastIndex(email, "@")+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
