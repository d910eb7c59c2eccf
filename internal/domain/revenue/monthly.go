// Package revenue derives chart figures from appointment records. Everything
// here is computed fresh on each fetch, never cached across fetches.
package revenue

import (
	"sort"
	"time"

	"github.com/theomoutet/coach-portal/internal/domain/appointment"
	"github.com/theomoutet/coach-portal/internal/locale"
	"github.com/theomoutet/coach-portal/internal/models"
)

type MonthlyRevenue struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

// Monthly groups appointments by calendar month, sums price per group and
// returns the groups in chronological order, labelled for display.
func Monthly(apps []models.Appointment) []MonthlyRevenue {
	type bucket struct {
		start  time.Time
		amount float64
	}
	buckets := make(map[string]*bucket)

	for _, ap := range apps {
		start := time.Date(ap.DateTime.Year(), ap.DateTime.Month(), 1, 0, 0, 0, 0, ap.DateTime.Location())
		key := start.Format("2006-01")
		b, ok := buckets[key]
		if !ok {
			b = &bucket{start: start}
			buckets[key] = b
		}
		b.amount += ap.Price
	}

	out := make([]MonthlyRevenue, 0, len(buckets))
	starts := make([]time.Time, 0, len(buckets))
	for _, b := range buckets {
		starts = append(starts, b.start)
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i].Before(starts[j]) })

	for _, start := range starts {
		b := buckets[start.Format("2006-01")]
		out = append(out, MonthlyRevenue{
			Month:  locale.MonthLabel(start),
			Amount: b.amount,
		})
	}
	return out
}

// Total sums the price of every appointment.
func Total(apps []models.Appointment) float64 {
	var sum float64
	for _, ap := range apps {
		sum += ap.Price
	}
	return sum
}

// CompletedCount counts delivered sessions.
func CompletedCount(apps []models.Appointment) int {
	var n int
	for _, ap := range apps {
		if appointment.Status(ap.Status) == appointment.StatusCompleted {
			n++
		}
	}
	return n
}
