// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (cards, stacks, bars, trend chart, popup overlay compositor)
//
// Not allowed here:
// - key handling, navigation, timers, or entitlement checks
package widgets
