package dashboardqueries

// RangeCount is one histogram bucket.
type RangeCount struct {
	Range string
	Count int
}

// Histogram boundaries: [0,20) [20,40) [40,60) [60,80) [80,100), plus an
// overflow bucket for values >= 100. Lower bound inclusive, upper bound
// exclusive.
var bucketBounds = [5]float64{0, 20, 40, 60, 80}

var bucketLabels = [6]string{"0–20", "20–40", "40–60", "60–80", "80–100", "100+"}

// MarksHistogram buckets the joined marks into fixed-width ranges. All six
// buckets are always emitted, zero counts included, so the dashboard's
// x-axis stays stable. Negative values land in the lowest bucket rather
// than erroring.
func MarksHistogram(facts []JoinedMark) []RangeCount {
	var counts [6]int
	for _, f := range facts {
		counts[bucketIndex(f.Obtained)]++
	}

	out := make([]RangeCount, 0, len(bucketLabels))
	for i, label := range bucketLabels {
		out = append(out, RangeCount{Range: label, Count: counts[i]})
	}
	return out
}

func bucketIndex(v float64) int {
	if v >= 100 {
		return 5
	}
	for i := len(bucketBounds) - 1; i >= 0; i-- {
		if v >= bucketBounds[i] {
			return i
		}
	}
	// Negative marks are bad writes; tolerate them in the lowest bucket.
	return 0
}
