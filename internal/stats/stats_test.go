package stats

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	mstats "github.com/montanaflynn/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_Empty(t *testing.T) {
	_, err := Analyze(nil)
	if !errors.Is(err, ErrEmptySample) {
		t.Fatalf("Analyze(nil) error = %v, want ErrEmptySample", err)
	}

	_, err = Analyze([]int64{})
	if !errors.Is(err, ErrEmptySample) {
		t.Fatalf("Analyze([]) error = %v, want ErrEmptySample", err)
	}
}

func TestAnalyze_KnownValues(t *testing.T) {
	tests := []struct {
		name    string
		samples []int64
		want    Analysis
	}{
		{
			name:    "single sample",
			samples: []int64{42},
			want: Analysis{
				Count: 1, Mean: 42, Median: 42, Mode: 42, Minimum: 42, Maximum: 42,
				Quartile1: 42, Quartile3: 42, IQRange: 0, StdDev: 0, Normality: 0,
			},
		},
		{
			name:    "two samples",
			samples: []int64{10, 20},
			want: Analysis{
				Count: 2, Mean: 15, Median: 15, Mode: 10, Minimum: 10, Maximum: 20,
				Quartile1: 10, Quartile3: 20, IQRange: 10, StdDev: math.Sqrt(50),
			},
		},
		{
			// positions 2 and 6 land exactly on ranks
			name:    "seven samples unsorted",
			samples: []int64{7, 1, 5, 3, 6, 2, 4},
			want: Analysis{
				Count: 7, Mean: 4, Median: 4, Mode: 1, Minimum: 1, Maximum: 7,
				Quartile1: 2, Quartile3: 6, IQRange: 4, StdDev: math.Sqrt(28.0 / 6),
			},
		},
		{
			// positions 2.25 and 6.75 interpolate
			name:    "eight samples",
			samples: []int64{1, 2, 3, 4, 5, 6, 7, 8},
			want: Analysis{
				Count: 8, Mean: 4.5, Median: 4.5, Mode: 1, Minimum: 1, Maximum: 8,
				Quartile1: 2.25, Quartile3: 6.75, IQRange: 4.5, StdDev: math.Sqrt(42.0 / 7),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Analyze(tt.samples)
			require.NoError(t, err)

			assert.Equal(t, tt.want.Count, got.Count)
			assert.InDelta(t, tt.want.Mean, got.Mean, 1e-9, "mean")
			assert.InDelta(t, tt.want.Median, got.Median, 1e-9, "median")
			assert.InDelta(t, tt.want.Mode, got.Mode, 1e-9, "mode")
			assert.InDelta(t, tt.want.Minimum, got.Minimum, 1e-9, "minimum")
			assert.InDelta(t, tt.want.Maximum, got.Maximum, 1e-9, "maximum")
			assert.InDelta(t, tt.want.Quartile1, got.Quartile1, 1e-9, "quartile 1")
			assert.InDelta(t, tt.want.Quartile3, got.Quartile3, 1e-9, "quartile 3")
			assert.InDelta(t, tt.want.IQRange, got.IQRange, 1e-9, "IQ range")
			assert.InDelta(t, tt.want.StdDev, got.StdDev, 1e-9, "std deviation")
		})
	}
}

func TestAnalyze_DoesNotMutateInput(t *testing.T) {
	samples := []int64{5, 3, 9, 1}
	_, err := Analyze(samples)
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 3, 9, 1}, samples)
}

func TestMode_TieBreaksOnSmallestValue(t *testing.T) {
	a, err := Analyze([]int64{9, 9, 4, 4, 7})
	require.NoError(t, err)
	assert.Equal(t, 4.0, a.Mode)

	a, err = Analyze([]int64{3, 8, 8, 1})
	require.NoError(t, err)
	assert.Equal(t, 8.0, a.Mode)
}

func TestAnalyze_MatchesReferenceLibrary(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	samples := make([]int64, 251)
	data := make(mstats.Float64Data, len(samples))
	for i := range samples {
		samples[i] = 10000 + rng.Int63n(2000)
		data[i] = float64(samples[i])
	}

	got, err := Analyze(samples)
	require.NoError(t, err)

	wantMean, err := mstats.Mean(data)
	require.NoError(t, err)
	wantMedian, err := mstats.Median(data)
	require.NoError(t, err)
	wantStdDev, err := mstats.StandardDeviationSample(data)
	require.NoError(t, err)
	wantMin, err := mstats.Min(data)
	require.NoError(t, err)
	wantMax, err := mstats.Max(data)
	require.NoError(t, err)

	assert.InDelta(t, wantMean, got.Mean, 1e-6)
	assert.InDelta(t, wantMedian, got.Median, 1e-6)
	assert.InDelta(t, wantStdDev, got.StdDev, 1e-6)
	assert.Equal(t, wantMin, got.Minimum)
	assert.Equal(t, wantMax, got.Maximum)
}

func TestAnalyze_OrderingProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for n := 1; n <= 60; n++ {
		samples := make([]int64, n)
		for i := range samples {
			samples[i] = rng.Int63n(1000)
		}

		a, err := Analyze(samples)
		require.NoError(t, err)

		if !(a.Minimum <= a.Quartile1 && a.Quartile1 <= a.Median && a.Median <= a.Quartile3 && a.Quartile3 <= a.Maximum) {
			t.Fatalf("n=%d: ordering violated: min=%v q1=%v median=%v q3=%v max=%v",
				n, a.Minimum, a.Quartile1, a.Median, a.Quartile3, a.Maximum)
		}
		if a.IQRange != a.Quartile3-a.Quartile1 {
			t.Fatalf("n=%d: IQ range = %v, want %v", n, a.IQRange, a.Quartile3-a.Quartile1)
		}
		if a.StdDev < 0 {
			t.Fatalf("n=%d: negative std deviation %v", n, a.StdDev)
		}
		if a.Normality < 0 || a.Normality > 1 {
			t.Fatalf("n=%d: normality %v out of [0,1]", n, a.Normality)
		}
	}
}

func TestStdDev_ZeroIffIdentical(t *testing.T) {
	a, err := Analyze([]int64{77, 77, 77, 77})
	require.NoError(t, err)
	assert.Equal(t, 0.0, a.StdDev)

	a, err = Analyze([]int64{77, 77, 78, 77})
	require.NoError(t, err)
	assert.Greater(t, a.StdDev, 0.0)
}

func TestMetrics_Order(t *testing.T) {
	a, err := Analyze([]int64{1, 2, 3})
	require.NoError(t, err)

	var names []string
	for _, m := range a.Metrics() {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{
		"mean", "median", "mode", "minimum", "maximum",
		"quartile 1", "quartile 3", "IQ range", "std deviation", "normality",
	}, names)
}

func TestOutliers(t *testing.T) {
	samples := []int64{100, 102, 1, 101, 99, 100, 500, 98, 103}

	got := Outliers(samples)
	assert.Equal(t, []int64{1, 500}, got)

	lower, upper := Fences(samples)
	for _, v := range got {
		f := float64(v)
		assert.True(t, f < lower || f > upper, "outlier %d inside fences [%v, %v]", v, lower, upper)
	}
	for _, v := range samples {
		f := float64(v)
		if f >= lower && f <= upper {
			assert.NotContains(t, got, v)
		}
	}
}

func TestOutliers_None(t *testing.T) {
	assert.Empty(t, Outliers([]int64{5, 5, 5, 5}))
	assert.Nil(t, Outliers(nil))
}

func TestRelativeDifference(t *testing.T) {
	assert.InDelta(t, 0.5, RelativeDifference(100, 150), 1e-12)
	assert.InDelta(t, -0.25, RelativeDifference(100, 75), 1e-12)
	assert.Equal(t, 0.0, RelativeDifference(100, 100))

	d := RelativeDifference(0, 10)
	assert.True(t, math.IsNaN(d), "zero baseline should give NaN, got %v", d)
	assert.False(t, math.IsInf(d, 0))
}
