// Package connstr builds and parses the connection strings used by clients
// of a Notification Hub.
package connstr

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	// FullAccessKeyName is the name of the default policy granting full access to a hub.
	FullAccessKeyName = "DefaultFullSharedAccessSignature"

	// ListenAccessKeyName is the name of the default policy granting listen access to a hub.
	ListenAccessKeyName = "DefaultListenSharedAccessSignature"

	endpointKey = "Endpoint"
	keyNameKey  = "SharedAccessKeyName"
	keyKey      = "SharedAccessKey"

	format = endpointKey + "=%s;" + keyNameKey + "=%s;" + keyKey + "=%s"
)

// CreateUsingSharedAccessSecret creates a connection string from an endpoint,
// the name of a shared access policy and its secret.
// Values are not escaped, so they must not contain ';' or '='.
func CreateUsingSharedAccessSecret(endpoint *url.URL, keyName, accessSecret string) (string, error) {
	if endpoint == nil {
		return "", &InvalidArgumentError{Param: "endPoint"}
	}
	if isBlank(keyName) {
		return "", &InvalidArgumentError{Param: "keyName"}
	}
	if isBlank(accessSecret) {
		return "", &InvalidArgumentError{Param: "accessSecret"}
	}
	return fmt.Sprintf(format, endpoint.String(), keyName, accessSecret), nil
}

// CreateUsingSharedAccessSecretWithFullAccess creates a connection string
// for the default full access policy.
func CreateUsingSharedAccessSecretWithFullAccess(endpoint *url.URL, fullAccessSecret string) (string, error) {
	if isBlank(fullAccessSecret) {
		return "", &InvalidArgumentError{Param: "fullAccessSecret"}
	}
	return CreateUsingSharedAccessSecret(endpoint, FullAccessKeyName, fullAccessSecret)
}

// CreateUsingSharedAccessSecretWithListenAccess creates a connection string
// for the default listen access policy.
func CreateUsingSharedAccessSecretWithListenAccess(endpoint *url.URL, listenAccessSecret string) (string, error) {
	if isBlank(listenAccessSecret) {
		return "", &InvalidArgumentError{Param: "listenAccessSecret"}
	}
	return CreateUsingSharedAccessSecret(endpoint, ListenAccessKeyName, listenAccessSecret)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
