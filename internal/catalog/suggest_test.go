package catalog

import "testing"

func TestRequestGateDropsStaleResponses(t *testing.T) {
	var g RequestGate

	// A lookup for "Coffee" starts, then the user keeps typing and a
	// lookup for "Coffee Shop" starts before the first one returns.
	coffee := g.Begin()
	coffeeShop := g.Begin()

	// The slow "Coffee" response arrives last but must be ignored.
	if g.Fresh(coffee) {
		t.Error("Fresh(coffee) = true, want stale after a newer request")
	}
	if !g.Fresh(coffeeShop) {
		t.Error("Fresh(coffeeShop) = false, want fresh")
	}
}

func TestRequestGateReset(t *testing.T) {
	var g RequestGate
	ticket := g.Begin()
	g.Reset()
	if g.Fresh(ticket) {
		t.Error("Fresh() = true after Reset, want stale")
	}
}
