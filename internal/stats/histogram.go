package stats

import (
	"math"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Bucket is one linear histogram bucket covering [From, To).
// The last bucket of a Histogram also includes To.
type Bucket struct {
	From  float64
	To    float64
	Count int64
}

// Histogram is the sample distribution split into equal-width buckets.
type Histogram struct {
	Buckets []Bucket
	Total   int64

	// Approximate percentiles, accurate to 3 significant figures.
	P50 int64
	P90 int64
	P99 int64
}

// sigFigs is the HDR histogram precision used for the percentile markers.
const sigFigs = 3

// NewHistogram builds a histogram of samples with the given bucket count.
//
// Buckets count the raw samples between the minimum and maximum; the
// percentile markers come from an HDR histogram. Negative samples are not
// call counts and are skipped. Returns nil when no sample remains or the
// bucket count is not positive.
func NewHistogram(samples []int64, buckets int) *Histogram {
	if buckets < 1 {
		return nil
	}

	valid := make([]int64, 0, len(samples))
	for _, v := range samples {
		if v >= 0 {
			valid = append(valid, v)
		}
	}
	if len(valid) == 0 {
		return nil
	}

	minV, maxV := valid[0], valid[0]
	for _, v := range valid {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	h := &Histogram{Buckets: make([]Bucket, buckets)}

	width := float64(maxV-minV) / float64(buckets)
	for i := range h.Buckets {
		h.Buckets[i].From = float64(minV) + float64(i)*width
		h.Buckets[i].To = float64(minV) + float64(i+1)*width
	}
	h.Buckets[buckets-1].To = float64(maxV)

	// HDR histograms track values >= 1; samples are shifted by one so that a
	// zero count remains representable.
	hdr := hdrhistogram.New(1, max(2, maxV+1), sigFigs)
	for _, v := range valid {
		if err := hdr.RecordValue(v + 1); err != nil {
			continue
		}
		h.Buckets[bucketIndex(float64(v), float64(minV), width, buckets)].Count++
		h.Total++
	}

	h.P50 = hdr.ValueAtQuantile(50) - 1
	h.P90 = hdr.ValueAtQuantile(90) - 1
	h.P99 = hdr.ValueAtQuantile(99) - 1

	return h
}

// MaxCount returns the largest bucket count.
func (h *Histogram) MaxCount() int64 {
	var m int64
	for _, b := range h.Buckets {
		if b.Count > m {
			m = b.Count
		}
	}
	return m
}

func bucketIndex(value, minV, width float64, buckets int) int {
	if width == 0 {
		return 0
	}
	idx := int(math.Floor((value - minV) / width))
	if idx < 0 {
		return 0
	}
	if idx >= buckets {
		return buckets - 1
	}
	return idx
}
