package calculator

import "math"

// TipPercentageFromSlider maps a slider position in [0, 1] to a whole
// percentage, truncating toward zero. Out-of-range positions are clamped
// and NaN counts as 0. A position within float noise of a whole percentage
// (0.29 is stored as 0.28999...) counts as that percentage.
func TipPercentageFromSlider(position float64) int {
	return int(ClampSlider(position)*100 + percentEpsilon)
}

const percentEpsilon = 1e-9

// ClampSlider pins position to [0, 1].
func ClampSlider(position float64) float64 {
	if math.IsNaN(position) || position < 0 {
		return 0
	}
	if position > 1 {
		return 1
	}
	return position
}

// SnapSlider moves position to the nearest stop of a track with the given
// number of intermediate steps. A track with n steps has n+2 stops,
// including both ends. Zero or negative steps mean a continuous track.
func SnapSlider(position float64, steps int) float64 {
	position = ClampSlider(position)
	if steps <= 0 {
		return position
	}
	intervals := float64(steps + 1)
	return math.Round(position*intervals) / intervals
}
