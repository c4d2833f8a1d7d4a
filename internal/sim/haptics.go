package sim

import (
	"fmt"

	"github.com/jask/sheild/core"
)

var hapticGlyphs = map[core.FeedbackKind]string{
	core.FeedbackLight:  "◦",
	core.FeedbackMedium: "◉",
	core.FeedbackHeavy:  "●●●",
	core.FeedbackError:  "⚠",
}

// Haptics renders feedback pulses as glyphs for the header.
type Haptics struct {
	Enabled bool
}

func (h Haptics) Pulse(kind core.FeedbackKind) (string, error) {
	if !h.Enabled {
		return "", nil
	}
	g, ok := hapticGlyphs[kind]
	if !ok {
		return "", fmt.Errorf("unknown feedback kind %q", kind)
	}
	return g, nil
}
