package report

import (
	"io"
	"math"
	"strconv"

	"github.com/wesleyorama2/stride/internal/results"
	"github.com/wesleyorama2/stride/internal/stats"
)

// Row compares one metric between a baseline and a candidate.
type Row struct {
	Metric    string
	Baseline  float64
	Candidate float64

	// Delta is (Candidate - Baseline) / Baseline, or NaN when the baseline
	// is zero or the metric is a score.
	Delta float64

	// Score marks bounded scores (normality) that are shown side by side
	// rather than as a relative difference.
	Score bool
}

// CompareRows pairs every metric of two analyses.
func CompareRows(baseline, candidate stats.Analysis) []Row {
	b := baseline.Metrics()
	c := candidate.Metrics()

	rows := make([]Row, len(b))
	for i := range b {
		rows[i] = Row{
			Metric:    b[i].Name,
			Baseline:  b[i].Value,
			Candidate: c[i].Value,
		}
		if b[i].Name == stats.MetricNormality {
			rows[i].Score = true
			rows[i].Delta = math.NaN()
			continue
		}
		rows[i].Delta = stats.RelativeDifference(b[i].Value, c[i].Value)
	}
	return rows
}

// Compare prints a side-by-side comparison of two stores.
//
// Tests are aligned by position, not by name, so stores produced under
// different names can be compared. A pair where either side is missing or
// has no samples is printed as FAILED and the comparison continues.
func Compare(w io.Writer, baseline, candidate *results.Store, opts Options) error {
	p := newPrinter(opts)
	p.line(3)

	bNames := baseline.Names()
	cNames := candidate.Names()
	n := max(len(bNames), len(cNames))

	for i := 0; i < n; i++ {
		bName, bSamples := entry(baseline, bNames, i)
		cName, cSamples := entry(candidate, cNames, i)

		bResult, bErr := stats.Analyze(bSamples)
		cResult, cErr := stats.Analyze(cSamples)
		if bErr != nil || cErr != nil {
			label := bName
			if label == "" {
				label = cName
			}
			p.row(label, p.failed())
			p.line(3)
			continue
		}

		p.row(strconv.Itoa(i), p.pal.Heading.Sprint(p.text(bName)), p.pal.Heading.Sprint(p.text(cName)))
		for _, r := range CompareRows(bResult, cResult) {
			if r.Score {
				p.row(r.Metric,
					formatPercentage(r.Baseline, false, p.opts.ValueWidth),
					formatPercentage(r.Candidate, false, p.opts.ValueWidth))
				continue
			}
			p.row(r.Metric, p.number(r.Baseline), p.number(r.Candidate), p.delta(r.Delta))
		}
		p.line(3)
	}

	_, err := io.WriteString(w, p.String())
	return err
}

// ComparePairs compares the tests of one store in pairs: test 0 against
// test 1, test 2 against test 3, and so on.
func ComparePairs(w io.Writer, store *results.Store, opts Options) error {
	even, odd := store.Split()
	return Compare(w, even, odd, opts)
}

func entry(store *results.Store, names []string, i int) (string, []int64) {
	if i >= len(names) {
		return "", nil
	}
	samples, _ := store.Samples(names[i])
	return names[i], samples
}
