package timings

import "sort"

// LabelSummary captures aggregate stats for one label's series.
type LabelSummary struct {
	Label        string  `json:"label"`
	Samples      int     `json:"samples"`
	SpeedMin     int     `json:"speed_min"`
	SpeedMax     int     `json:"speed_max"`
	TimeMinMs    int     `json:"time_min_ms"`
	TimeAvgMs    float64 `json:"time_avg_ms"`
	TimeMedianMs float64 `json:"time_median_ms"`
	TimeMaxMs    int     `json:"time_max_ms"`
}

// Summarize computes one LabelSummary per label, in dataset label order.
func Summarize(d *Dataset) []LabelSummary {
	out := make([]LabelSummary, 0, d.Len())
	for _, label := range d.Labels() {
		series := d.Series(label)
		sum := LabelSummary{Label: label, Samples: len(series)}
		if len(series) == 0 {
			out = append(out, sum)
			continue
		}
		sum.SpeedMin, sum.SpeedMax = series[0].Speed, series[0].Speed
		sum.TimeMinMs, sum.TimeMaxMs = series[0].TimeMs, series[0].TimeMs
		total := 0
		times := make([]float64, len(series))
		for i, s := range series {
			if s.Speed < sum.SpeedMin {
				sum.SpeedMin = s.Speed
			}
			if s.Speed > sum.SpeedMax {
				sum.SpeedMax = s.Speed
			}
			if s.TimeMs < sum.TimeMinMs {
				sum.TimeMinMs = s.TimeMs
			}
			if s.TimeMs > sum.TimeMaxMs {
				sum.TimeMaxMs = s.TimeMs
			}
			total += s.TimeMs
			times[i] = float64(s.TimeMs)
		}
		sum.TimeAvgMs = float64(total) / float64(len(series))
		sum.TimeMedianMs = median(times)
		out = append(out, sum)
	}
	return out
}

// median returns the midpoint value (mean of the two middle values for even
// counts). vals is copied before sorting so series order stays untouched.
func median(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
