package sim

import "github.com/jask/sheild/internal/demo"

// Fix is one location reading.
type Fix struct {
	Lat      float64
	Lng      float64
	Accuracy string
	Address  string
}

// Locator reports the demo fix with a little jitter per reading.
type Locator struct {
	src  *Source
	base demo.Location
}

func NewLocator(src *Source, base demo.Location) *Locator {
	return &Locator{src: src, base: base}
}

func (l *Locator) Read() Fix {
	jitter := func() float64 { return (l.src.Float64() - 0.5) * 0.0002 }
	return Fix{
		Lat:      l.base.Lat + jitter(),
		Lng:      l.base.Lng + jitter(),
		Accuracy: l.base.Accuracy,
		Address:  l.base.Address,
	}
}
