package calculator

import (
	"math"
	"testing"
)

func TestCalculateTotalPerPerson(t *testing.T) {
	tests := []struct {
		name          string
		billAmount    float64
		splitCount    int
		tipPercentage int
		want          float64
	}{
		{name: "single person pays bill plus tip", billAmount: 100.0, splitCount: 1, tipPercentage: 15, want: 115.0},
		{name: "four people with tip", billAmount: 100.0, splitCount: 4, tipPercentage: 15, want: 28.75},
		{name: "two people no tip", billAmount: 50.0, splitCount: 2, tipPercentage: 0, want: 25.0},
		{name: "three people uneven", billAmount: 100.0, splitCount: 3, tipPercentage: 20, want: 40.0},
		{name: "zero bill", billAmount: 0.0, splitCount: 5, tipPercentage: 30, want: 0.0},
		{name: "out of range tip is clamped", billAmount: 80.0, splitCount: 2, tipPercentage: 150, want: 80.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateTotalPerPerson(tt.billAmount, tt.splitCount, tt.tipPercentage)
			if math.Abs(got-tt.want) > tolerance {
				t.Errorf("CalculateTotalPerPerson(%v, %d, %d) = %v, want %v",
					tt.billAmount, tt.splitCount, tt.tipPercentage, got, tt.want)
			}
		})
	}
}

func TestCalculateTotalPerPerson_AgreesWithCalculateTip(t *testing.T) {
	for _, bill := range []float64{0, 12.5, 64.2, 100, 333.33} {
		for split := 1; split <= 12; split++ {
			for pct := 0; pct <= 100; pct += 5 {
				got := CalculateTotalPerPerson(bill, split, pct)
				want := (bill + CalculateTip(bill, pct)) / float64(split)
				if math.Abs(got-want) > tolerance {
					t.Fatalf("CalculateTotalPerPerson(%v, %d, %d) = %v, want %v", bill, split, pct, got, want)
				}
				if split == 1 && math.Abs(got-(bill+CalculateTip(bill, pct))) > tolerance {
					t.Fatalf("split of 1 should equal bill plus tip, got %v", got)
				}
			}
		}
	}
}

func TestCalculateTotalPerPerson_DecreasesWithSplit(t *testing.T) {
	bill, pct := 120.0, 18
	prev := CalculateTotalPerPerson(bill, 1, pct)
	for split := 2; split <= 50; split++ {
		cur := CalculateTotalPerPerson(bill, split, pct)
		if cur >= prev {
			t.Fatalf("split %d: per-person total %v did not drop below %v", split, cur, prev)
		}
		prev = cur
	}
}

func TestCalculateTotalPerPerson_PanicsOnZeroSplit(t *testing.T) {
	for _, split := range []int{0, -3} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("CalculateTotalPerPerson with split %d did not panic", split)
				}
			}()
			CalculateTotalPerPerson(100, split, 15)
		}()
	}
}
