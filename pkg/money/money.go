package money

import "math"

// Round2 rounds a monetary amount to 2 decimal places (half away from zero)
func Round2(n float64) float64 {
	return math.Round(n*100) / 100
}

// Clamp restricts v to the inclusive range [min, max]
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampPct restricts a commission percentage to [0, cap]
func ClampPct(pct, cap float64) float64 {
	return Clamp(pct, 0, cap)
}
