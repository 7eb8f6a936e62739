package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerarCodigoAcceso builds a short uppercase join code for a community.
func GenerarCodigoAcceso() string {
	id := uuid.New().String()
	return strings.ToUpper(strings.ReplaceAll(id, "-", "")[:8])
}

// ContieneTexto reports whether any of the fields contains the needle,
// case-insensitively. Empty needles match everything.
func ContieneTexto(needle string, fields ...string) bool {
	n := strings.ToLower(strings.TrimSpace(needle))
	if n == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), n) {
			return true
		}
	}
	return false
}
