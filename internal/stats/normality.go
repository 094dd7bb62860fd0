package stats

import "math"

// Normality returns a normality score in [0,1] for the samples.
//
// The score is the Jarque-Bera test p-value: JB = n/6 * (S^2 + (K-3)^2/4),
// where S is the sample skewness and K the sample kurtosis. JB follows a
// chi-square distribution with two degrees of freedom under normality, whose
// survival function is exp(-JB/2). Higher values mean the samples look more
// normal. Collections with fewer than 3 samples or no spread score 0.
func Normality(samples []int64) float64 {
	if len(samples) == 0 {
		return 0
	}
	sorted := sortedFloats(samples)
	return normality(sorted, mean(sorted))
}

func normality(values []float64, m float64) float64 {
	n := float64(len(values))
	if n < 3 {
		return 0
	}

	var m2, m3, m4 float64
	for _, v := range values {
		d := v - m
		d2 := d * d
		m2 += d2
		m3 += d2 * d
		m4 += d2 * d2
	}
	m2 /= n
	m3 /= n
	m4 /= n

	if m2 == 0 {
		return 0
	}

	skew := m3 / math.Pow(m2, 1.5)
	kurt := m4 / (m2 * m2)

	jb := n / 6 * (skew*skew + (kurt-3)*(kurt-3)/4)
	return math.Exp(-jb / 2)
}
