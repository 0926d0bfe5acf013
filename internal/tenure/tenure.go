// Package tenure derives tenure metrics from a person's career history.
package tenure

import (
	"fmt"
	"math"

	"github.com/charnpreetsingh/just-in-time-recruiter/internal/talent"
)

// Category classifies how the current tenure compares to the person's own
// historical average. Empty when the person is not currently employed or has
// no completed positions to average over.
type Category string

const (
	CategoryShort   Category = "short"
	CategoryAverage Category = "average"
	CategoryLong    Category = "long"
	CategoryNone    Category = ""
)

// Analysis is derived on demand from one person's job history. It is never
// persisted.
type Analysis struct {
	AverageTenureMonths  int
	CurrentTenureMonths  *int
	IsApproachingAverage bool
	PercentOfAverage     *int
	Category             Category
}

// Analyze computes the full tenure analysis for one person's history. It is
// deterministic and never fails: an empty or fully-completed history simply
// yields the zero/nil defaults.
func Analyze(history []*talent.JobHistoryEntry) *Analysis {
	average := AverageTenure(history)
	current := CurrentTenure(history)

	return &Analysis{
		AverageTenureMonths:  average,
		CurrentTenureMonths:  current,
		IsApproachingAverage: IsApproachingAverage(average, current),
		PercentOfAverage:     PercentOfAverage(average, current),
		Category:             Categorize(average, current),
	}
}

// AverageTenure returns the rounded mean duration of completed positions, or
// 0 when there are none.
func AverageTenure(history []*talent.JobHistoryEntry) int {
	total := 0
	completed := 0
	for _, entry := range history {
		if entry.EndDate == nil {
			continue
		}
		total += entry.DurationMonths
		completed++
	}

	if completed == 0 {
		return 0
	}

	return round(float64(total) / float64(completed))
}

// CurrentTenure returns the duration of the current position, or nil when the
// person is not currently employed.
func CurrentTenure(history []*talent.JobHistoryEntry) *int {
	for _, entry := range history {
		if entry.EndDate == nil {
			months := entry.DurationMonths
			return &months
		}
	}
	return nil
}

// PercentOfAverage returns the rounded percentage the current tenure
// represents of the average, or nil when either side is missing.
func PercentOfAverage(average int, current *int) *int {
	if current == nil || average == 0 {
		return nil
	}

	percent := round(float64(*current) / float64(average) * 100)
	return &percent
}

// IsApproachingAverage reports whether the current tenure sits in the
// [85%, 100%) window of the average. Reaching or exceeding the average is not
// "approaching".
func IsApproachingAverage(average int, current *int) bool {
	percent := PercentOfAverage(average, current)
	if percent == nil {
		return false
	}

	return *percent >= 85 && *percent < 100
}

// Categorize buckets the current tenure: short below 75% of average, long
// above 125%, average between.
func Categorize(average int, current *int) Category {
	percent := PercentOfAverage(average, current)
	if percent == nil {
		return CategoryNone
	}

	switch {
	case *percent < 75:
		return CategoryShort
	case *percent > 125:
		return CategoryLong
	default:
		return CategoryAverage
	}
}

// FormatMonths renders a month count as "2y 3m", collapsing zero components.
// Nil renders as "N/A".
func FormatMonths(months *int) string {
	if months == nil {
		return "N/A"
	}

	years := *months / 12
	remaining := *months % 12

	if years == 0 {
		return fmt.Sprintf("%dm", remaining)
	}
	if remaining == 0 {
		return fmt.Sprintf("%dy", years)
	}
	return fmt.Sprintf("%dy %dm", years, remaining)
}

func round(v float64) int {
	return int(math.Round(v))
}
