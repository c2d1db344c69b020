package validators

import (
	"net"
	"strings"
)

// NormalizeEmail canonicalizes the address used as login key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsEmailDomainValid checks that the address domain resolves to a mail
// exchanger or at least to an IP. It hits DNS, so it is only called when
// domain checking is enabled in the configuration.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
