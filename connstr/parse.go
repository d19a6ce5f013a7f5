package connstr

import (
	"fmt"
	"net/url"
	"strings"
)

// ConnectionString holds the parts of a parsed connection string.
type ConnectionString struct {
	Endpoint *url.URL
	KeyName  string
	Key      string
}

// Parse splits a connection string into its parts.
//
// Keys are matched case-insensitively, unknown keys are ignored and a repeated
// key keeps its last value. Only the first '=' of a segment separates key and
// value, so base64 secrets with padding survive.
// All missing parts are reported together.
func Parse(s string) (*ConnectionString, error) {
	values := make(map[string]string)
	for i, segment := range strings.Split(s, ";") {
		if strings.TrimSpace(segment) == "" {
			continue
		}
		kv := strings.SplitN(segment, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("%w: segment %d has no '='", ErrMalformed, i)
		}
		key := strings.ToLower(strings.TrimSpace(kv[0]))
		if key == "" {
			return nil, fmt.Errorf("%w: segment %d has an empty key", ErrMalformed, i)
		}
		values[key] = strings.TrimSpace(kv[1])
	}

	errs := NewErrorList("invalid connection string: ")
	cs := &ConnectionString{}
	for _, name := range []string{endpointKey, keyNameKey, keyKey} {
		v, ok := values[strings.ToLower(name)]
		if !ok || v == "" {
			errs.Add(fmt.Errorf("missing %s", name))
			continue
		}
		switch name {
		case endpointKey:
			u, err := url.Parse(v)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
			}
			cs.Endpoint = u
		case keyNameKey:
			cs.KeyName = v
		case keyKey:
			cs.Key = v
		}
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return cs, nil
}

// String renders the connection string. It returns an empty string if a part is missing.
func (cs *ConnectionString) String() string {
	s, err := CreateUsingSharedAccessSecret(cs.Endpoint, cs.KeyName, cs.Key)
	if err != nil {
		return ""
	}
	return s
}

// AccessTier reports which default policy the key name refers to.
func (cs *ConnectionString) AccessTier() AccessTier {
	switch cs.KeyName {
	case FullAccessKeyName:
		return FullAccess
	case ListenAccessKeyName:
		return ListenAccess
	}
	return CustomAccess
}
