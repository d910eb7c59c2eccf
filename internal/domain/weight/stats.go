package weight

import "github.com/theomoutet/coach-portal/internal/models"

type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// trendThreshold absorbs floating-point noise from repeated decimal entry:
// a net change within ±0.1 kg reads as stable.
const trendThreshold = 0.1

type Summary struct {
	Initial float64 `json:"initial"`
	Current float64 `json:"current"`
	Diff    float64 `json:"diff"`
	Trend   Trend   `json:"trend"`
	Mean    float64 `json:"mean"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Count   int     `json:"count"`
}

// Summarize derives the dashboard statistics from a weight series already
// ordered ascending by date. Returns nil for an empty series.
func Summarize(logs []models.WeightLog) *Summary {
	if len(logs) == 0 {
		return nil
	}

	s := &Summary{
		Initial: logs[0].Weight,
		Current: logs[len(logs)-1].Weight,
		Min:     logs[0].Weight,
		Max:     logs[0].Weight,
		Count:   len(logs),
	}

	var sum float64
	for _, l := range logs {
		sum += l.Weight
		if l.Weight < s.Min {
			s.Min = l.Weight
		}
		if l.Weight > s.Max {
			s.Max = l.Weight
		}
	}

	s.Mean = sum / float64(len(logs))
	s.Diff = s.Current - s.Initial

	switch {
	case s.Diff > trendThreshold:
		s.Trend = TrendUp
	case s.Diff < -trendThreshold:
		s.Trend = TrendDown
	default:
		s.Trend = TrendStable
	}

	return s
}
