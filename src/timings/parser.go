// Package timings parses benchmark timing output into per-label series.
//
// Input is line oriented: `LABEL SPEED: TIME_MS [extra...]`. Colons are
// stripped before splitting, fields beyond the third are ignored, and any
// malformed line aborts the whole parse (no skip-and-continue).
package timings

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/zeebo/errs"
)

// ErrParse classifies malformed input lines.
var ErrParse = errs.Class("parse")

// Sample is one measurement: time taken (ms) at a given speed level.
type Sample struct {
	Speed  int
	TimeMs int
}

// Series holds one label's samples in encounter order. Order is meaningful:
// it defines the line-drawing order on the chart.
type Series []Sample

// Dataset maps labels to their series, preserving first-seen label order.
// Label order determines left-to-right chart ordering.
type Dataset struct {
	labels []string
	series map[string]Series
}

func NewDataset() *Dataset {
	return &Dataset{series: make(map[string]Series)}
}

// Add appends a sample to the label's series, registering the label on first
// sight.
func (d *Dataset) Add(label string, s Sample) {
	if _, ok := d.series[label]; !ok {
		d.labels = append(d.labels, label)
	}
	d.series[label] = append(d.series[label], s)
}

// Labels returns the labels in first-seen order.
func (d *Dataset) Labels() []string { return d.labels }

// Series returns the samples recorded for label (nil if unknown).
func (d *Dataset) Series(label string) Series { return d.series[label] }

// Len returns the number of distinct labels.
func (d *Dataset) Len() int { return len(d.labels) }

// Parse consumes r line by line and aggregates samples per label. Empty
// lines are skipped; the first malformed line fails the whole parse with its
// 1-based line number.
func Parse(r io.Reader) (*Dataset, error) {
	ds := NewDataset()
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if line == "" {
			continue
		}
		label, sample, err := parseLine(line)
		if err != nil {
			return nil, ErrParse.New("line %d: %v", lineNo, err)
		}
		ds.Add(label, sample)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return ds, nil
}

// parseLine splits one record into (label, sample). Splitting is on single
// spaces, exactly: runs of spaces produce empty fields, which then fail the
// integer conversion like any other junk token.
func parseLine(line string) (string, Sample, error) {
	fields := strings.Split(strings.ReplaceAll(line, ":", ""), " ")
	if len(fields) < 3 {
		return "", Sample{}, errs.New("want at least 3 fields, got %d", len(fields))
	}
	speed, err := strconv.Atoi(fields[1])
	if err != nil {
		return "", Sample{}, errs.New("bad speed field %q", fields[1])
	}
	timeMs, err := strconv.Atoi(fields[2])
	if err != nil {
		return "", Sample{}, errs.New("bad time field %q", fields[2])
	}
	return fields[0], Sample{Speed: speed, TimeMs: timeMs}, nil
}
