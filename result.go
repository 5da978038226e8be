package iptrie

// Result is the outcome of GetNet (§4.2/§6). Network is the empty string
// when Found is false — the record's "network absent" case.
type Result struct {
	Found   bool
	RealIP  string
	Network string
	Flags   uint64
}
