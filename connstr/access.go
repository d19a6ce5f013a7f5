package connstr

import (
	"fmt"
	"net/url"
	"strings"
)

// AccessTier selects which shared access policy a connection string is built for.
type AccessTier string

const (
	// FullAccess uses the default full access policy.
	FullAccess AccessTier = "full"
	// ListenAccess uses the default listen access policy.
	ListenAccess AccessTier = "listen"
	// CustomAccess uses a caller supplied policy name.
	CustomAccess AccessTier = "custom"
)

// AccessTiers returns all known tiers.
func AccessTiers() []string {
	return []string{string(FullAccess), string(ListenAccess), string(CustomAccess)}
}

// ParseAccessTier parses a tier name, ignoring case and surrounding whitespace.
func ParseAccessTier(s string) (AccessTier, error) {
	switch t := AccessTier(strings.ToLower(strings.TrimSpace(s))); t {
	case FullAccess, ListenAccess, CustomAccess:
		return t, nil
	}
	return "", fmt.Errorf("unknown access tier %q", s)
}

// Build creates a connection string for the given tier.
// keyName is only used by CustomAccess.
func Build(endpoint *url.URL, tier AccessTier, keyName, secret string) (string, error) {
	switch tier {
	case FullAccess:
		return CreateUsingSharedAccessSecretWithFullAccess(endpoint, secret)
	case ListenAccess:
		return CreateUsingSharedAccessSecretWithListenAccess(endpoint, secret)
	case CustomAccess:
		return CreateUsingSharedAccessSecret(endpoint, keyName, secret)
	}
	return "", fmt.Errorf("unknown access tier %q", string(tier))
}
