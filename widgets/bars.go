package widgets

import (
	"fmt"
	"strings"
)

// ProgressBar renders a fraction in [0, 1] as a filled bar with a
// percentage suffix.
func ProgressBar(fraction float64, width int) string {
	if width <= 0 {
		return ""
	}
	fraction = min(max(fraction, 0), 1)
	label := fmt.Sprintf(" %3d%%", int(fraction*100+0.5))
	barW := max(1, width-len(label))
	filled := int(fraction*float64(barW) + 0.5)
	return strings.Repeat("█", filled) + strings.Repeat("░", barW-filled) + label
}

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// Sparkline scales values between their own min and max.
func Sparkline(values []float64, width int) string {
	if width <= 0 || len(values) == 0 {
		return ""
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	span := hi - lo
	var b strings.Builder
	for _, v := range values {
		idx := 0
		if span > 0 {
			idx = int((v - lo) / span * float64(len(sparkRunes)-1))
		}
		b.WriteRune(sparkRunes[idx])
	}
	return b.String()
}

// Dots renders a pager indicator, e.g. "○ ● ○".
func Dots(current, total int) string {
	parts := make([]string, total)
	for i := range parts {
		parts[i] = "○"
		if i == current {
			parts[i] = "●"
		}
	}
	return strings.Join(parts, " ")
}

// Checklist prefixes each item with a tick or a bullet.
func Checklist(items []string, done func(i int) bool) string {
	lines := make([]string, len(items))
	for i, it := range items {
		mark := "•"
		if done != nil && done(i) {
			mark = "✓"
		}
		lines[i] = mark + " " + it
	}
	return strings.Join(lines, "\n")
}
