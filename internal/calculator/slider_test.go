package calculator

import (
	"math"
	"testing"
)

func TestTipPercentageFromSlider(t *testing.T) {
	tests := []struct {
		name     string
		position float64
		want     int
	}{
		{name: "default position", position: 0.15, want: 15},
		{name: "start of track", position: 0, want: 0},
		{name: "end of track", position: 1, want: 100},
		{name: "half", position: 0.5, want: 50},
		{name: "truncates fraction", position: 0.257, want: 25},
		{name: "first stop of six-step track", position: 1.0 / 7, want: 14},
		{name: "below range", position: -0.4, want: 0},
		{name: "above range", position: 1.7, want: 100},
		{name: "NaN", position: math.NaN(), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TipPercentageFromSlider(tt.position); got != tt.want {
				t.Errorf("TipPercentageFromSlider(%v) = %d, want %d", tt.position, got, tt.want)
			}
		})
	}
}

func TestSnapSlider(t *testing.T) {
	tests := []struct {
		name     string
		position float64
		steps    int
		want     float64
	}{
		{name: "continuous keeps position", position: 0.15, steps: 0, want: 0.15},
		{name: "continuous clamps", position: 1.2, steps: 0, want: 1},
		{name: "snaps down to nearest stop", position: 0.15, steps: 6, want: 1.0 / 7},
		{name: "snaps up to nearest stop", position: 0.27, steps: 6, want: 2.0 / 7},
		{name: "end stays at end", position: 1, steps: 6, want: 1},
		{name: "start stays at start", position: 0.02, steps: 6, want: 0},
		{name: "single step midpoint", position: 0.4, steps: 1, want: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SnapSlider(tt.position, tt.steps)
			if math.Abs(got-tt.want) > tolerance {
				t.Errorf("SnapSlider(%v, %d) = %v, want %v", tt.position, tt.steps, got, tt.want)
			}
		})
	}
}

func TestTipPercentageFromSlider_RoundTripsWholePercentages(t *testing.T) {
	for p := MinTipPercentage; p <= MaxTipPercentage; p++ {
		if got := TipPercentageFromSlider(float64(p) / 100); got != p {
			t.Errorf("TipPercentageFromSlider(%d/100) = %d, want %d", p, got, p)
		}
	}
}
