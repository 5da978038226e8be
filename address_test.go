package iptrie

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddressFamily(t *testing.T) {
	v4, err := ParseAddress("10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, FamilyV4, v4.Family())
	assert.Equal(t, 32, v4.Width())

	v6, err := ParseAddress("::1")
	require.NoError(t, err)
	assert.Equal(t, FamilyV6, v6.Family())
	assert.Equal(t, 128, v6.Width())
}

func TestAddrFromNetipUnmaps4In6(t *testing.T) {
	mapped := netip.MustParseAddr("::ffff:10.0.0.1")
	require.True(t, mapped.Is4In6())

	addr := AddrFromNetip(mapped)
	assert.Equal(t, FamilyV4, addr.Family())
	assert.Equal(t, "10.0.0.1", addr.String())
}

func TestFamilyString(t *testing.T) {
	assert.Equal(t, "IPv4", FamilyV4.String())
	assert.Equal(t, "IPv6", FamilyV6.String())
}
