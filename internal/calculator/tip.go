// Package calculator holds the tip and split arithmetic.
// Every function here is pure; callers validate bill amounts before calling.
package calculator

const (
	// MinTipPercentage and MaxTipPercentage bound the tip percentage.
	MinTipPercentage = 0
	MaxTipPercentage = 100

	// MinSplitCount is the smallest number of people a bill can be split between.
	MinSplitCount = 1
)

// CalculateTip returns the tip for billAmount at tipPercentage.
// Based on: tip = bill × (percentage / 100)
//
// The percentage is clamped to [0, 100]. The result is not rounded;
// rounding to cents happens at display time.
func CalculateTip(billAmount float64, tipPercentage int) float64 {
	pct := ClampTipPercentage(tipPercentage)
	return billAmount * (float64(pct) / 100)
}

// ClampTipPercentage pins p to [MinTipPercentage, MaxTipPercentage].
func ClampTipPercentage(p int) int {
	if p < MinTipPercentage {
		return MinTipPercentage
	}
	if p > MaxTipPercentage {
		return MaxTipPercentage
	}
	return p
}
