package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Initials reduces a patient name to uppercase initials so no full name
// leaves the assessment form.
func Initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		runes := []rune(part)
		b.WriteString(strings.ToUpper(string(runes[0])))
	}
	return b.String()
}

// GeneratePatientID derives a short pseudonymous identifier from the
// patient name and the current time.
func GeneratePatientID(name string) string {
	base := strings.ToLower(strings.TrimSpace(name)) + time.Now().Format(time.RFC3339Nano)
	sum := sha256.Sum256([]byte(base))
	return strings.ToUpper(hex.EncodeToString(sum[:])[:8])
}
