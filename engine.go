// Package iptrie implements a longest-prefix-match lookup engine over two
// independent binary radix trees, one for IPv4 and one for IPv6. It answers
// membership queries and most-specific-prefix lookups, accumulating an
// opaque flag word along the matched root-to-leaf path.
package iptrie

import "fmt"

// Engine owns one trie per address family. It is single-threaded and not
// reentrant: Add must not run concurrently with itself or with IsIn/GetNet/
// Dump, though the read-only operations may run concurrently with each
// other.
type Engine struct {
	v4 *trie
	v6 *trie
}

// New returns a fresh Engine with empty IPv4 and IPv6 trees.
func New() *Engine {
	return &Engine{
		v4: newTrie(FamilyV4.Width()),
		v6: newTrie(FamilyV6.Width()),
	}
}

func (e *Engine) treeFor(f Family) *trie {
	if f == FamilyV4 {
		return e.v4
	}
	return e.v6
}

// Add inserts addr/L into the engine, where L = addr.Width() - extraBits,
// clamped into [0, addr.Width()]. extraBits counts host bits: 0 encodes a
// host route, addr.Width() (or more) encodes the default route. Re-adding
// an existing prefix ORs flags into the existing node's flag word and
// leaves it terminal.
func (e *Engine) Add(addr Address, extraBits int, flags uint64) error {
	if e.v4 == nil || e.v6 == nil {
		return ErrTornDown
	}
	if extraBits < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeExtraBits, extraBits)
	}

	width := addr.Width()
	l := width - extraBits
	if l < 0 {
		l = 0
	}

	e.treeFor(addr.Family()).insert(addr.word.masked(l), l, flags)
	return nil
}

// AddString parses s and calls Add. A parse failure returns
// ErrMalformedAddress and leaves the engine unchanged.
func (e *Engine) AddString(s string, extraBits int, flags uint64) error {
	addr, err := ParseAddress(s)
	if err != nil {
		return err
	}
	return e.Add(addr, extraBits, flags)
}

// GetNet returns the most-specific prefix matching addr together with the
// accumulated flag word along the matched path (§4.2). It never fails: a
// non-match is reported via Result.Found, not an error.
func (e *Engine) GetNet(addr Address) Result {
	tr := e.treeFor(addr.Family())
	if tr == nil {
		return Result{RealIP: addr.String()}
	}

	best, acc := tr.lookup(addr.word)
	if best == nil {
		return Result{RealIP: addr.String()}
	}
	return Result{
		Found:   true,
		RealIP:  addr.String(),
		Network: best.networkString(),
		Flags:   acc,
	}
}

// GetNetString parses s and calls GetNet. A parse failure is returned as
// the error rather than folded into Result.
func (e *Engine) GetNetString(s string) (Result, error) {
	addr, err := ParseAddress(s)
	if err != nil {
		return Result{}, err
	}
	return e.GetNet(addr), nil
}

// IsIn reports whether addr matches any inserted prefix. It is exactly
// GetNet(addr).Found.
func (e *Engine) IsIn(addr Address) bool {
	return e.GetNet(addr).Found
}

// IsInString parses s and calls IsIn.
func (e *Engine) IsInString(s string) (bool, error) {
	addr, err := ParseAddress(s)
	if err != nil {
		return false, err
	}
	return e.IsIn(addr), nil
}

// Teardown releases both trees. The engine must not be queried afterward;
// Add reports ErrTornDown, and IsIn/GetNet/Dump behave as if both trees
// were empty.
func (e *Engine) Teardown() {
	if e.v4 != nil {
		e.v4.root.free()
	}
	if e.v6 != nil {
		e.v6.root.free()
	}
	e.v4 = nil
	e.v6 = nil
}
