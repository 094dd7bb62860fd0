// Package stats computes descriptive and distributional statistics over a
// collection of throughput samples.
//
// Every function in this package is pure: inputs are never modified and
// repeated calls with the same input return the same result.
package stats

import (
	"errors"
	"math"
	"sort"
)

// ErrEmptySample is returned when an analysis is requested on a zero-length
// sample collection.
var ErrEmptySample = errors.New("empty sample collection")

// Metric names, in report order.
const (
	MetricMean      = "mean"
	MetricMedian    = "median"
	MetricMode      = "mode"
	MetricMinimum   = "minimum"
	MetricMaximum   = "maximum"
	MetricQuartile1 = "quartile 1"
	MetricQuartile3 = "quartile 3"
	MetricIQRange   = "IQ range"
	MetricStdDev    = "std deviation"
	MetricNormality = "normality"
)

// Metric is a single named value of an Analysis.
type Metric struct {
	Name  string
	Value float64
}

// Analysis is the set of statistics derived from one sample collection.
type Analysis struct {
	Count     int
	Mean      float64
	Median    float64
	Mode      float64
	Minimum   float64
	Maximum   float64
	Quartile1 float64
	Quartile3 float64
	IQRange   float64
	StdDev    float64 // sample standard deviation (n-1)
	Normality float64 // score in [0,1], see Normality
}

// Metrics returns the analysis values in report order.
func (a Analysis) Metrics() []Metric {
	return []Metric{
		{MetricMean, a.Mean},
		{MetricMedian, a.Median},
		{MetricMode, a.Mode},
		{MetricMinimum, a.Minimum},
		{MetricMaximum, a.Maximum},
		{MetricQuartile1, a.Quartile1},
		{MetricQuartile3, a.Quartile3},
		{MetricIQRange, a.IQRange},
		{MetricStdDev, a.StdDev},
		{MetricNormality, a.Normality},
	}
}

// Analyze computes every metric for the given samples.
//
// Returns ErrEmptySample if samples is empty.
func Analyze(samples []int64) (Analysis, error) {
	if len(samples) == 0 {
		return Analysis{}, ErrEmptySample
	}

	sorted := sortedFloats(samples)
	q1, q3 := quartiles(sorted)

	a := Analysis{
		Count:     len(sorted),
		Mean:      mean(sorted),
		Median:    median(sorted),
		Mode:      mode(sorted),
		Minimum:   sorted[0],
		Maximum:   sorted[len(sorted)-1],
		Quartile1: q1,
		Quartile3: q3,
	}
	a.IQRange = a.Quartile3 - a.Quartile1
	a.StdDev = stdDev(sorted, a.Mean)
	a.Normality = normality(sorted, a.Mean)

	return a, nil
}

// Outliers returns the samples lying outside Tukey's fences
// [Q1 - 1.5*IQR, Q3 + 1.5*IQR], in their original order.
func Outliers(samples []int64) []int64 {
	if len(samples) == 0 {
		return nil
	}

	lower, upper := Fences(samples)

	var out []int64
	for _, v := range samples {
		f := float64(v)
		if f < lower || f > upper {
			out = append(out, v)
		}
	}
	return out
}

// Fences returns Tukey's lower and upper outlier fences.
func Fences(samples []int64) (lower, upper float64) {
	q1, q3 := quartiles(sortedFloats(samples))
	iqr := q3 - q1
	return q1 - 1.5*iqr, q3 + 1.5*iqr
}

// RelativeDifference returns (candidate - baseline) / baseline.
//
// The result is NaN when baseline is zero.
func RelativeDifference(baseline, candidate float64) float64 {
	if baseline == 0 {
		return math.NaN()
	}
	return (candidate - baseline) / baseline
}

func sortedFloats(samples []int64) []float64 {
	out := make([]float64, len(samples))
	for i, v := range samples {
		out[i] = float64(v)
	}
	sort.Float64s(out)
	return out
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// mode expects sorted input so that ties resolve to the smallest value.
func mode(sorted []float64) float64 {
	best, bestCount := sorted[0], 0
	for i := 0; i < len(sorted); {
		j := i
		for j < len(sorted) && sorted[j] == sorted[i] {
			j++
		}
		if j-i > bestCount {
			best, bestCount = sorted[i], j-i
		}
		i = j
	}
	return best
}

// quartiles uses the (n+1) sorted-percentile method: the 1-based position of
// quartile p is p*(n+1)/4, interpolated linearly between adjacent ranks and
// clamped to the sample range.
func quartiles(sorted []float64) (q1, q3 float64) {
	return rankValue(sorted, float64(len(sorted)+1)/4),
		rankValue(sorted, 3*float64(len(sorted)+1)/4)
}

func rankValue(sorted []float64, pos float64) float64 {
	n := len(sorted)
	if pos <= 1 {
		return sorted[0]
	}
	if pos >= float64(n) {
		return sorted[n-1]
	}

	lo := int(math.Floor(pos))
	frac := pos - float64(lo)
	// lo is 1-based
	return sorted[lo-1] + frac*(sorted[lo]-sorted[lo-1])
}

func stdDev(values []float64, m float64) float64 {
	if len(values) < 2 {
		return 0
	}

	sum := 0.0
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)-1))
}
