package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/wesleyorama2/stride/internal/results"
	"github.com/wesleyorama2/stride/internal/stats"
)

// Write prints the analysis of every test in the store, in store order.
//
// A test with no samples is reported as FAILED; the remaining tests are
// still analysed.
func Write(w io.Writer, store *results.Store, opts Options) error {
	p := newPrinter(opts)
	p.line(1)

	for i, name := range store.Names() {
		samples, _ := store.Samples(name)
		writeTest(p, i, name, samples)
		p.line(1)
	}

	_, err := io.WriteString(w, p.String())
	return err
}

func writeTest(p *printer, index int, name string, samples []int64) {
	analysis, err := stats.Analyze(samples)
	if err != nil {
		p.row(name, p.failed())
		return
	}

	p.row(strconv.Itoa(index), p.pal.Heading.Sprint(p.text(name)))
	for _, m := range analysis.Metrics() {
		if m.Name == stats.MetricNormality {
			p.row(m.Name, formatPercentage(m.Value, false, p.opts.ValueWidth))
			continue
		}
		p.row(m.Name, p.number(m.Value))
	}

	if p.opts.ShowOutliers {
		outliers := stats.Outliers(samples)
		p.row("outliers", p.number(float64(len(outliers))))
		if len(outliers) > 0 {
			p.values(outliers)
		}
	}

	if p.opts.ShowAll {
		p.row("measurements", p.number(float64(len(samples))))
		p.values(samples)
	}

	if p.opts.ShowHistogram {
		writeHistogram(p, samples)
	}
}

func writeHistogram(p *printer, samples []int64) {
	buckets := p.opts.HistogramBuckets
	if buckets <= 0 {
		buckets = DefaultOptions().HistogramBuckets
	}
	width := p.opts.HistogramWidth
	if width <= 0 {
		width = DefaultOptions().HistogramWidth
	}

	h := stats.NewHistogram(samples, buckets)
	if h == nil {
		return
	}

	peak := h.MaxCount()
	for _, b := range h.Buckets {
		bar := 0
		if peak > 0 {
			bar = int(b.Count * int64(width) / peak)
		}
		label := formatNumber(b.From, 0) + " - " + formatNumber(b.To, 0)
		p.row(label, padLeft(strconv.FormatInt(b.Count, 10), 6), " ", strings.Repeat("█", bar))
	}
	p.row("p50 / p90 / p99", fmt.Sprintf("%d / %d / %d", h.P50, h.P90, h.P99))
}
