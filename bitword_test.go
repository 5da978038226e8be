package iptrie

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitwordBitAt(t *testing.T) {
	w := bitwordFromAddr(netip.MustParseAddr("128.0.0.1"))
	assert.Equal(t, 1, w.bitAt(0), "top bit of 128.x.x.x is set")
	assert.Equal(t, 0, w.bitAt(1))
	assert.Equal(t, 1, w.bitAt(31), "low bit of .1 is set")
}

func TestBitwordMasked(t *testing.T) {
	w := bitwordFromAddr(netip.MustParseAddr("255.255.255.255"))
	m := w.masked(8)
	assert.Equal(t, netip.MustParseAddr("255.0.0.0"), m.toAddr())

	m = w.masked(0)
	assert.Equal(t, netip.MustParseAddr("0.0.0.0"), m.toAddr())

	m = w.masked(32)
	assert.Equal(t, netip.MustParseAddr("255.255.255.255"), m.toAddr())
}

func TestBitwordFirstDiffBit(t *testing.T) {
	a := bitwordFromAddr(netip.MustParseAddr("85.0.0.0"))
	b := bitwordFromAddr(netip.MustParseAddr("85.0.1.0"))
	assert.Equal(t, 23, a.firstDiffBit(b, 32))

	c := bitwordFromAddr(netip.MustParseAddr("85.0.0.0"))
	assert.Equal(t, 16, a.firstDiffBit(c, 16), "identical over the limit reports the limit")
}

func TestBitwordRoundTrip(t *testing.T) {
	for _, s := range []string{"0.0.0.0", "255.255.255.255", "10.1.2.3", "::", "::1", "2001:db8::1"} {
		addr := netip.MustParseAddr(s)
		w := bitwordFromAddr(addr)
		assert.Equal(t, addr, w.toAddr())
	}
}
