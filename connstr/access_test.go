package connstr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAccessTier(t *testing.T) {
	a := assert.New(t)

	tier, err := ParseAccessTier(" Listen ")
	a.NoError(err)
	a.Equal(ListenAccess, tier)

	_, err = ParseAccessTier("send")
	a.Error(err)

	a.Equal([]string{"full", "listen", "custom"}, AccessTiers())
}

func TestBuild(t *testing.T) {
	a := assert.New(t)
	endpoint := mustURL(t, testEndpoint)

	full, err := Build(endpoint, FullAccess, "ignored", "s")
	a.NoError(err)
	expected, _ := CreateUsingSharedAccessSecretWithFullAccess(endpoint, "s")
	a.Equal(expected, full)

	listen, err := Build(endpoint, ListenAccess, "", "s")
	a.NoError(err)
	expected, _ = CreateUsingSharedAccessSecretWithListenAccess(endpoint, "s")
	a.Equal(expected, listen)

	custom, err := Build(endpoint, CustomAccess, "manage", "s")
	a.NoError(err)
	expected, _ = CreateUsingSharedAccessSecret(endpoint, "manage", "s")
	a.Equal(expected, custom)

	_, err = Build(endpoint, CustomAccess, "", "s")
	a.True(IsInvalidArgument(err, "keyName"))

	_, err = Build(endpoint, ListenAccess, "", "")
	a.True(IsInvalidArgument(err, "listenAccessSecret"))

	_, err = Build(endpoint, AccessTier("send"), "k", "s")
	a.Error(err)
}
