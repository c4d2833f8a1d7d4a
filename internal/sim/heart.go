package sim

const (
	restingLow  = 62
	restingHigh = 88
)

// HeartRateMonitor random-walks bpm inside a resting band.
type HeartRateMonitor struct {
	src *Source
	bpm int
}

func NewHeartRateMonitor(src *Source) *HeartRateMonitor {
	return &HeartRateMonitor{src: src, bpm: 72}
}

// Read advances the walk by at most 3 bpm and returns the new value.
func (h *HeartRateMonitor) Read() int {
	h.bpm += h.src.IntN(7) - 3
	h.bpm = min(max(h.bpm, restingLow), restingHigh)
	return h.bpm
}

func (h *HeartRateMonitor) Last() int { return h.bpm }
