package connstr

import (
	"fmt"
	"strings"
)

const (
	visiblePrefix = 4
	maskSuffix    = "****"
)

// Mask hides a secret for log output, keeping only its first characters.
func Mask(secret string) string {
	r := []rune(secret)
	if len(r) <= visiblePrefix {
		return strings.Repeat("*", len(r))
	}
	return string(r[:visiblePrefix]) + maskSuffix
}

// Masked renders the connection string with the secret masked.
func (cs *ConnectionString) Masked() string {
	endpoint := ""
	if cs.Endpoint != nil {
		endpoint = cs.Endpoint.String()
	}
	return fmt.Sprintf(format, endpoint, cs.KeyName, Mask(cs.Key))
}
