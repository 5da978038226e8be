package iptrie

import (
	"math/bits"
	"net/netip"
)

// bitword is a fixed-width, MSB-first bit vector view of an address: 32
// significant bits for IPv4, 128 for IPv6. Bytes beyond width are always
// zero, which keeps masked/firstDiffBit uniform across both families.
type bitword struct {
	b     [16]byte
	width int
}

func bitwordFromAddr(a netip.Addr) bitword {
	if a.Is4() {
		a4 := a.As4()
		var w bitword
		copy(w.b[:4], a4[:])
		w.width = 32
		return w
	}
	a16 := a.As16()
	return bitword{b: a16, width: 128}
}

func (w bitword) toAddr() netip.Addr {
	if w.width == 32 {
		var a4 [4]byte
		copy(a4[:], w.b[:4])
		return netip.AddrFrom4(a4)
	}
	return netip.AddrFrom16(w.b)
}

// bitAt returns the bit (0 or 1) at MSB-first position pos, 0 <= pos < width.
func (w bitword) bitAt(pos int) int {
	byteIdx := pos / 8
	shift := uint(7 - pos%8)
	return int((w.b[byteIdx] >> shift) & 1)
}

// masked returns a copy of w with every bit at or beyond position l cleared.
func (w bitword) masked(l int) bitword {
	if l < 0 {
		l = 0
	}
	if l > w.width {
		l = w.width
	}
	out := w
	for i := 0; i < len(out.b); i++ {
		bitStart := i * 8
		switch {
		case bitStart >= l:
			out.b[i] = 0
		case bitStart+8 > l:
			keep := l - bitStart
			out.b[i] &= byte(0xFF << uint(8-keep))
		}
	}
	return out
}

// firstDiffBit returns the position of the first bit at which w and other
// differ, scanning only positions below limit. If they agree on every bit
// below limit, it returns limit.
func (w bitword) firstDiffBit(other bitword, limit int) int {
	for i := 0; i < len(w.b); i++ {
		byteStart := i * 8
		if byteStart >= limit {
			return limit
		}
		diff := w.b[i] ^ other.b[i]
		if diff == 0 {
			continue
		}
		pos := byteStart + bits.LeadingZeros8(diff)
		if pos >= limit {
			return limit
		}
		return pos
	}
	return limit
}
