// Package report prints statistics for result stores and compares two
// stores test by test.
package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Options controls report layout.
type Options struct {
	// NameWidth is the width of the left-hand label column.
	NameWidth int
	// ValueWidth is the width of each value column.
	ValueWidth int

	// Color enables green/red marking of deltas.
	Color bool

	ShowHistogram    bool
	HistogramBuckets int
	HistogramWidth   int

	ShowOutliers bool
	ShowAll      bool
}

// DefaultOptions returns the standard layout.
func DefaultOptions() Options {
	return Options{
		NameWidth:        19,
		ValueWidth:       14,
		Color:            true,
		HistogramBuckets: 16,
		HistogramWidth:   50,
	}
}

// valuesPerLine is how many raw measurements are printed per line.
const valuesPerLine = 32

// palette holds the colors used for deltas and failures.
type palette struct {
	Increase *color.Color
	Decrease *color.Color
	Failed   *color.Color
	Heading  *color.Color
}

func newPalette(enabled bool) *palette {
	p := &palette{
		Increase: color.New(color.FgGreen, color.Bold),
		Decrease: color.New(color.FgRed, color.Bold),
		Failed:   color.New(color.FgRed),
		Heading:  color.New(color.FgCyan),
	}

	for _, c := range []*color.Color{p.Increase, p.Decrease, p.Failed, p.Heading} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// printer writes aligned report lines.
type printer struct {
	opts Options
	pal  *palette
	sb   strings.Builder
}

func newPrinter(opts Options) *printer {
	if opts.NameWidth <= 0 {
		opts.NameWidth = DefaultOptions().NameWidth
	}
	if opts.ValueWidth <= 0 {
		opts.ValueWidth = DefaultOptions().ValueWidth
	}
	return &printer{opts: opts, pal: newPalette(opts.Color)}
}

// line writes a separator spanning the label and the given number of value columns.
func (p *printer) line(columns int) {
	p.sb.WriteString(strings.Repeat("-", p.opts.NameWidth+columns*p.opts.ValueWidth+3))
	p.sb.WriteByte('\n')
}

// row writes "label : cells...".
func (p *printer) row(label string, cells ...string) {
	p.sb.WriteString(padRight(label, p.opts.NameWidth))
	p.sb.WriteString(" : ")
	for _, c := range cells {
		p.sb.WriteString(c)
	}
	p.sb.WriteByte('\n')
}

func (p *printer) number(v float64) string {
	return formatNumber(v, p.opts.ValueWidth)
}

func (p *printer) text(s string) string {
	return padLeft(s, p.opts.ValueWidth)
}

func (p *printer) failed() string {
	return p.pal.Failed.Sprint(padLeft("FAILED", p.opts.ValueWidth))
}

// delta formats a relative difference with sign and color, or "nan".
func (p *printer) delta(d float64) string {
	if math.IsNaN(d) {
		return padLeft("nan", p.opts.ValueWidth)
	}

	// Sign and color follow the printed value, so -0.04% reads as an uncolored 0.0%.
	d = roundPercent(d)
	s := formatPercentage(d, true, p.opts.ValueWidth)
	switch {
	case d > 0:
		return p.pal.Increase.Sprint(s)
	case d < 0:
		return p.pal.Decrease.Sprint(s)
	default:
		return s
	}
}

// values writes numbers valuesPerLine to a line.
func (p *printer) values(vs []int64) {
	for i, v := range vs {
		p.sb.WriteString(strconv.FormatInt(v, 10))
		if (i+1)%valuesPerLine == 0 || i == len(vs)-1 {
			p.sb.WriteByte('\n')
		} else {
			p.sb.WriteByte(' ')
		}
	}
}

func (p *printer) String() string {
	return p.sb.String()
}

// formatNumber rounds to an integer and right-aligns it in width.
func formatNumber(v float64, width int) string {
	return padLeft(strconv.FormatFloat(math.Round(v), 'f', 0, 64), width)
}

// formatPercentage renders a ratio as a percentage with one decimal,
// prefixing "+" for positive values when sign is set.
func formatPercentage(v float64, sign bool, width int) string {
	v = roundPercent(v)
	s := fmt.Sprintf("%.1f%%", 100*v)
	if sign && v > 0 {
		s = "+" + s
	}
	return padLeft(s, width)
}

// roundPercent rounds a ratio to the 0.1% shown in reports. Negative zero
// becomes zero.
func roundPercent(v float64) float64 {
	r := math.Round(v*1000) / 1000
	if r == 0 {
		return 0
	}
	return r
}

func padLeft(s string, width int) string {
	if n := width - len([]rune(s)); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}

func padRight(s string, width int) string {
	if n := width - len([]rune(s)); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
