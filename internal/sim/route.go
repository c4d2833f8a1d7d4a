package sim

// RouteMonitor decides whether the walker has strayed from the planned route.
type RouteMonitor struct {
	src         *Source
	probability float64
}

func NewRouteMonitor(src *Source, probability float64) *RouteMonitor {
	return &RouteMonitor{src: src, probability: probability}
}

func (r *RouteMonitor) Deviated() bool {
	return r.src.Chance(r.probability)
}
