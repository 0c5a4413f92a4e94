package timings

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSummarize(t *testing.T) {
	input := strings.Join([]string{
		"forward 1: 900",
		"forward 2: 500",
		"forward 3: 300",
		"rotate 1: 400",
		"rotate 2: 200",
	}, "\n")
	ds, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	got := Summarize(ds)
	want := []LabelSummary{
		{Label: "forward", Samples: 3, SpeedMin: 1, SpeedMax: 3, TimeMinMs: 300, TimeAvgMs: 1700.0 / 3, TimeMedianMs: 500, TimeMaxMs: 900},
		{Label: "rotate", Samples: 2, SpeedMin: 1, SpeedMax: 2, TimeMinMs: 200, TimeAvgMs: 300, TimeMedianMs: 300, TimeMaxMs: 400},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestSummarize_PreservesLabelOrder(t *testing.T) {
	ds := NewDataset()
	ds.Add("zeta", Sample{1, 10})
	ds.Add("alpha", Sample{1, 20})
	ds.Add("mid", Sample{1, 30})
	sums := Summarize(ds)
	order := make([]string, len(sums))
	for i, s := range sums {
		order[i] = s.Label
	}
	if diff := cmp.Diff([]string{"zeta", "alpha", "mid"}, order); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestMedian(t *testing.T) {
	cases := []struct {
		name string
		vals []float64
		want float64
	}{
		{"odd", []float64{3, 1, 2}, 2},
		{"even", []float64{4, 1, 3, 2}, 2.5},
		{"single", []float64{7}, 7},
		{"empty", nil, 0},
	}
	for _, tc := range cases {
		if got := median(tc.vals); got != tc.want {
			t.Fatalf("%s: median=%v want %v", tc.name, got, tc.want)
		}
	}
}

func TestMedian_DoesNotReorderInput(t *testing.T) {
	vals := []float64{9, 1, 5}
	_ = median(vals)
	if vals[0] != 9 || vals[1] != 1 || vals[2] != 5 {
		t.Fatalf("input reordered: %v", vals)
	}
}
