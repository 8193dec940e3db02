package vmath

// Clamp01 limits v to [0, 1]
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// RandRange maps a uniform [0,1) sample into [lo, hi)
func RandRange(u, lo, hi float64) float64 {
	return lo + u*(hi-lo)
}
