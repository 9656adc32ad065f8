package catalog

// RequestGate orders overlapping async lookups. Each request takes a
// ticket from Begin; a response is acted on only if its ticket is still
// the latest, so a slow response for "Coffee" cannot clobber the result
// for a later "Coffee Shop" lookup.
type RequestGate struct {
	seq uint64
}

// Begin issues a new ticket and invalidates all outstanding ones.
func (g *RequestGate) Begin() uint64 {
	g.seq++
	return g.seq
}

// Fresh reports whether the ticket is still the latest issued.
func (g *RequestGate) Fresh(ticket uint64) bool {
	return ticket == g.seq
}

// Reset invalidates every outstanding ticket without issuing a new one.
func (g *RequestGate) Reset() {
	g.seq++
}
