package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string
func GenerateID() string {
	return uuid.New().String()
}

// PrefixedID returns a processor-style reference such as "pi_3f2a9c...": the prefix,
// an underscore and a dashless UUID
func PrefixedID(prefix string) string {
	return prefix + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}
