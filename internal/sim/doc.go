// Package sim provides the mock device providers behind the demo: location,
// heart rate, voice recognition, route monitoring and haptic feedback. All
// providers share one seeded Source so runs can be replayed.
package sim
