// Package screens contains the concrete SHEild screens and modals.
//
// Allowed here:
// - screen implementations that satisfy core.Screen, one per core.ScreenID
// - the paywall and idle-check overlays
// - presentation of the mock content from internal/demo
//
// Not allowed here:
// - the transition table and navigator (core owns them)
// - session mutations outside the two entitlement operations
// - low-level widget/layout primitives
package screens
