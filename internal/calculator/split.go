package calculator

import (
	"fmt"
)

// CalculateTotalPerPerson computes how much each person owes including the tip.
// Based on the algorithm: per_person = (bill + tip(bill, percentage)) / split_count
//
// A split count below MinSplitCount is a caller bug, not an input error, so it panics.
func CalculateTotalPerPerson(billAmount float64, splitCount int, tipPercentage int) float64 {
	if splitCount < MinSplitCount {
		panic(fmt.Sprintf("calculator: split count %d is below %d", splitCount, MinSplitCount))
	}

	tip := CalculateTip(billAmount, tipPercentage)
	total := billAmount + tip
	return total / float64(splitCount)
}
