// pkg/crypto/redact.go

package crypto

import "strings"

// Redact masks a secret for logging. Passwords never appear in logs in clear.
func Redact(s string) string {
	if s == "" {
		return "(empty)"
	}
	return strings.Repeat("*", 8)
}
