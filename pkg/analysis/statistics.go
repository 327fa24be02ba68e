package analysis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// SignalStatistics holds the amplitude-distribution shape descriptors of a
// signal. Kurtosis is the plain fourth standardized moment, not excess
// kurtosis (no -3 correction). For a constant signal std is zero and
// kurtosis/skewness come out NaN; callers get the IEEE values, not an error.
type SignalStatistics struct {
	Mean        float64 `json:"mean"`
	Std         float64 `json:"std"`
	RMS         float64 `json:"rms"`
	PeakToPeak  float64 `json:"peak_to_peak"`
	CrestFactor float64 `json:"crest_factor"`
	Kurtosis    float64 `json:"kurtosis"`
	Skewness    float64 `json:"skewness"`
}

// ComputeStatistics computes descriptive statistics over the signal.
// Moments are population moments (divide by n, not n-1).
func (sa *SpectralAnalyzer) ComputeStatistics(signal []float64) (*SignalStatistics, error) {
	if len(signal) == 0 {
		return nil, fmt.Errorf("empty signal")
	}

	n := float64(len(signal))
	mean := stat.Mean(signal, nil)

	var sumSq, m2, m3, m4, maxAbs float64
	for _, x := range signal {
		sumSq += x * x
		d := x - mean
		d2 := d * d
		m2 += d2
		m3 += d2 * d
		m4 += d2 * d2
		if a := math.Abs(x); a > maxAbs {
			maxAbs = a
		}
	}
	m2 /= n
	m3 /= n
	m4 /= n

	std := math.Sqrt(m2)
	rms := math.Sqrt(sumSq / n)

	return &SignalStatistics{
		Mean:        mean,
		Std:         std,
		RMS:         rms,
		PeakToPeak:  floats.Max(signal) - floats.Min(signal),
		CrestFactor: maxAbs / rms,
		Kurtosis:    m4 / (m2 * m2),
		Skewness:    m3 / (std * std * std),
	}, nil
}
