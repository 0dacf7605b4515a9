package indicator

import "math"

// Rolling helpers over a short-window series. All of them shrink the
// window at the head of the series instead of emitting undefined cells,
// so out[i] covers x[max(0,i-n+1) .. i].

func rollingMean(x []float64, n int) []float64 {
	out := make([]float64, len(x))
	var sum float64
	for i := range x {
		sum += x[i]
		if i >= n {
			sum -= x[i-n]
		}
		width := i + 1
		if width > n {
			width = n
		}
		out[i] = sum / float64(width)
	}
	return out
}

func rollingMax(x []float64, n int) []float64 {
	out := make([]float64, len(x))
	for i := range x {
		lo := i - n + 1
		if lo < 0 {
			lo = 0
		}
		m := x[lo]
		for j := lo + 1; j <= i; j++ {
			if x[j] > m {
				m = x[j]
			}
		}
		out[i] = m
	}
	return out
}

func rollingMin(x []float64, n int) []float64 {
	out := make([]float64, len(x))
	for i := range x {
		lo := i - n + 1
		if lo < 0 {
			lo = 0
		}
		m := x[lo]
		for j := lo + 1; j <= i; j++ {
			if x[j] < m {
				m = x[j]
			}
		}
		out[i] = m
	}
	return out
}

// rollingStd is the sample standard deviation (n-1 denominator) over the
// shrinking window. A single-element window has no spread and yields 0.
func rollingStd(x []float64, n int) []float64 {
	out := make([]float64, len(x))
	for i := range x {
		lo := i - n + 1
		if lo < 0 {
			lo = 0
		}
		width := i - lo + 1
		if width < 2 {
			out[i] = 0
			continue
		}
		var sum float64
		for j := lo; j <= i; j++ {
			sum += x[j]
		}
		mean := sum / float64(width)
		var ss float64
		for j := lo; j <= i; j++ {
			d := x[j] - mean
			ss += d * d
		}
		out[i] = math.Sqrt(ss / float64(width-1))
	}
	return out
}

// ewma is an exponentially weighted mean seeded with the first value:
// out[0] = x[0], out[i] = alpha*x[i] + (1-alpha)*out[i-1].
func ewma(x []float64, alpha float64) []float64 {
	out := make([]float64, len(x))
	if len(x) == 0 {
		return out
	}
	out[0] = x[0]
	for i := 1; i < len(x); i++ {
		out[i] = alpha*x[i] + (1-alpha)*out[i-1]
	}
	return out
}

// ewmaSpan uses the span parameterization, alpha = 2/(span+1).
func ewmaSpan(x []float64, span int) []float64 {
	return ewma(x, 2/float64(span+1))
}

// pctChange is the percent change against the previous value. The first
// cell has no predecessor and is NaN.
func pctChange(x []float64) []float64 {
	out := make([]float64, len(x))
	if len(x) == 0 {
		return out
	}
	out[0] = math.NaN()
	for i := 1; i < len(x); i++ {
		if x[i-1] == 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = (x[i] - x[i-1]) / x[i-1] * 100
	}
	return out
}
