package iptrie

import (
	"fmt"
	"net/netip"
)

// Family identifies which of the engine's two trees an address belongs to.
type Family int

const (
	FamilyV4 Family = iota
	FamilyV6
)

func (f Family) String() string {
	if f == FamilyV4 {
		return "IPv4"
	}
	return "IPv6"
}

// Width returns the bit width of the address space for f: 32 for IPv4, 128
// for IPv6.
func (f Family) Width() int {
	if f == FamilyV4 {
		return 32
	}
	return 128
}

// Address is a parsed network address, carrying both its family and the
// fixed-width bit-vector view the trie operates on. It is the "integer
// address object" form referenced by the engine's operations; ParseAddress
// builds one from the textual form.
type Address struct {
	netAddr netip.Addr
	word    bitword
}

// ParseAddress parses a dotted-quad (IPv4) or colon-hex (IPv6) textual
// address. A malformed string is reported as ErrMalformedAddress.
func ParseAddress(s string) (Address, error) {
	a, err := netip.ParseAddr(s)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %q: %v", ErrMalformedAddress, s, err)
	}
	return AddrFromNetip(a), nil
}

// AddrFromNetip builds an Address from an already-parsed net/netip.Addr.
// 4-in-6 mapped addresses are unmapped so they land in the IPv4 tree.
func AddrFromNetip(a netip.Addr) Address {
	if a.Is4In6() {
		a = a.Unmap()
	}
	return Address{netAddr: a, word: bitwordFromAddr(a)}
}

// Family reports which tree this address belongs to.
func (a Address) Family() Family {
	if a.netAddr.Is4() {
		return FamilyV4
	}
	return FamilyV6
}

// Width is the bit width of a.Family(): 32 or 128.
func (a Address) Width() int {
	return a.word.width
}

// String renders the address in its canonical textual form.
func (a Address) String() string {
	return a.netAddr.String()
}
