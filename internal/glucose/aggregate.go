package glucose

import (
	"math"
	"sort"
	"time"
)

// Window is the time range a chart and its statistics cover.
type Window string

const (
	WindowDay   Window = "day"
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
)

// fallbackCount is how many of the most recent readings stand in for an
// empty day window, so the day view is never blank while any history
// exists.
const fallbackCount = 10

// Point is one plotted value in a trend series.
type Point struct {
	Label string
	Value float64
}

// Stats summarises the selected readings. Zero values mean "no data",
// not a true zero reading.
type Stats struct {
	Avg float64
	Max float64
	Min float64
}

// Result holds the series and statistics for one window.
type Result struct {
	Series []Point
	Stats  Stats
}

// Aggregate filters readings by window and builds the plotting series
// plus summary statistics over the same selection. Readings may arrive
// in any order; they are sorted chronologically before bucketing.
func Aggregate(readings []Reading, window Window, now time.Time) Result {
	selected := selectWindow(readings, window, now)
	return Result{
		Series: buildSeries(selected, window),
		Stats:  ComputeStats(selected),
	}
}

// selectWindow picks the readings a window covers, in chronological
// order. Day is calendar-aligned (local midnight to midnight) with the
// most-recent-10 fallback; week and month are rolling cutoffs. Both the
// chart and the stats panel use this one selection.
func selectWindow(readings []Reading, window Window, now time.Time) []Reading {
	sorted := make([]Reading, len(readings))
	copy(sorted, readings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].RecordedAt.Before(sorted[j].RecordedAt)
	})

	var cutoff time.Time
	switch window {
	case WindowWeek:
		cutoff = now.Add(-7 * 24 * time.Hour)
	case WindowMonth:
		cutoff = now.Add(-30 * 24 * time.Hour)
	default:
		cutoff = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	}

	var selected []Reading
	for _, r := range sorted {
		if !r.RecordedAt.Before(cutoff) {
			selected = append(selected, r)
		}
	}

	if window == WindowDay && len(selected) == 0 && len(sorted) > 0 {
		start := len(sorted) - fallbackCount
		if start < 0 {
			start = 0
		}
		selected = sorted[start:]
	}

	return selected
}

func buildSeries(selected []Reading, window Window) []Point {
	if window == WindowDay {
		points := make([]Point, 0, len(selected))
		for _, r := range selected {
			points = append(points, Point{
				Label: r.RecordedAt.Format("15:04"),
				Value: r.Value,
			})
		}
		return points
	}

	// Week and month collapse each calendar day to the mean of its
	// readings; chronological input keeps first-occurrence order
	// chronological.
	type bucket struct {
		sum   float64
		count int
	}
	buckets := make(map[string]*bucket)
	var order []string
	for _, r := range selected {
		label := r.RecordedAt.Format("Jan 2")
		b, ok := buckets[label]
		if !ok {
			b = &bucket{}
			buckets[label] = b
			order = append(order, label)
		}
		b.sum += r.Value
		b.count++
	}

	points := make([]Point, 0, len(order))
	for _, label := range order {
		b := buckets[label]
		points = append(points, Point{
			Label: label,
			Value: round1(b.sum / float64(b.count)),
		})
	}
	return points
}

// ComputeStats reduces readings to mean (rounded to one decimal), max
// and min. Non-finite stored values are excluded; an empty input
// yields all zeros, which callers read as "no data".
func ComputeStats(selected []Reading) Stats {
	var values []float64
	for _, r := range selected {
		if math.IsNaN(r.Value) || math.IsInf(r.Value, 0) {
			continue
		}
		values = append(values, r.Value)
	}
	if len(values) == 0 {
		return Stats{}
	}

	sum := 0.0
	max := values[0]
	min := values[0]
	for _, v := range values {
		sum += v
		if v > max {
			max = v
		}
		if v < min {
			min = v
		}
	}
	return Stats{
		Avg: round1(sum / float64(len(values))),
		Max: max,
		Min: min,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
