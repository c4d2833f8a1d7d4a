// Package core contains app-wide contracts and state orchestration.
//
// Allowed here:
// - the screen enum, transition table and navigator
// - root model routing, message contracts, command and key registries
// - screen-scoped timers and the sensor provider contracts
// - the command palette overlay
//
// Not allowed here:
// - concrete screen and domain modal implementations
// - low-level widget rendering primitives
package core
