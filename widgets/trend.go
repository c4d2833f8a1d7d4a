package widgets

import (
	"time"

	tslc "github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"
)

const (
	trendMinWidth  = 16
	trendMinHeight = 4
)

// TrendPoint is one timestamped sample.
type TrendPoint struct {
	At    time.Time
	Value float64
}

// Trend plots samples as a braille time series over a fixed y range. It
// renders nothing until it has room for axes and at least one point.
type Trend struct {
	Points []TrendPoint
	Min    float64
	Max    float64
	Color  lipgloss.Color
}

func (t Trend) Render(width, height int) string {
	if width < trendMinWidth || height < trendMinHeight || len(t.Points) == 0 {
		return ""
	}
	start, end := t.Points[0].At, t.Points[len(t.Points)-1].At
	if !end.After(start) {
		end = start.Add(time.Second)
	}
	lo, hi := t.Min, t.Max
	if hi <= lo {
		hi = lo + 1
	}

	chart := tslc.New(width, height)
	chart.SetXStep(1)
	chart.SetStyle(lipgloss.NewStyle().Foreground(t.Color))
	chart.AxisStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#585b70"))
	chart.LabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
	chart.SetTimeRange(start, end)
	chart.SetViewTimeRange(start, end)
	chart.SetYRange(lo, hi)
	chart.SetViewYRange(lo, hi)
	chart.Model.XLabelFormatter = clockLabel
	for _, p := range t.Points {
		chart.Push(tslc.TimePoint{Time: p.At, Value: min(max(p.Value, lo), hi)})
	}
	chart.DrawBraille()
	return clipLines(chart.View(), width, height)
}

func clockLabel(_ int, v float64) string {
	return time.Unix(int64(v), 0).Format("15:04:05")
}
