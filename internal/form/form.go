// Package form is the tip calculator's view model.
//
// A State holds the user's inputs and the amounts derived from them. Each
// user interaction is a handler that takes the current State and returns the
// next one; handlers never mutate their argument. Derived amounts are always
// recomputed from the inputs, never adjusted in place.
package form

import (
	"strings"

	"github.com/mmynk/tipsplit/internal/calculator"
)

const (
	// DefaultSliderPosition is where the tip slider starts (15%).
	DefaultSliderPosition = 0.15

	// DefaultSliderSteps is the number of intermediate stops on the tip slider.
	DefaultSliderSteps = 6
)

// State is a snapshot of the tip form.
type State struct {
	// BillText is the raw text the user typed.
	BillText string

	// BillAmount is the last committed, valid bill amount.
	BillAmount float64

	// Actionable reports whether BillAmount came from the current BillText.
	// Derived amounts are zero while the form is not actionable.
	Actionable bool

	// SplitCount is the number of people sharing the bill. Never below 1.
	SplitCount int

	// SliderPosition is the tip slider position in [0, 1].
	SliderPosition float64

	// SliderSteps is the number of intermediate slider stops; 0 is continuous.
	SliderSteps int

	// TipPercentage is derived from SliderPosition.
	TipPercentage int

	// TipAmount and TotalPerPerson are the derived outputs.
	TipAmount      float64
	TotalPerPerson float64
}

// Option customizes a new State.
type Option func(*State)

// WithSliderSteps sets the number of intermediate slider stops.
func WithSliderSteps(steps int) Option {
	return func(s *State) {
		if steps < 0 {
			steps = 0
		}
		s.SliderSteps = steps
	}
}

// WithSliderPosition sets the initial slider position. The initial position
// is not snapped, matching a slider that has not been touched yet.
func WithSliderPosition(position float64) Option {
	return func(s *State) {
		s.SliderPosition = calculator.ClampSlider(position)
	}
}

// New returns an empty form with a split of one and the default tip.
func New(opts ...Option) State {
	s := State{
		SplitCount:     calculator.MinSplitCount,
		SliderPosition: DefaultSliderPosition,
		SliderSteps:    DefaultSliderSteps,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return Recompute(s)
}

// Recompute derives TipPercentage, TipAmount and TotalPerPerson from the inputs.
func Recompute(s State) State {
	if s.SplitCount < calculator.MinSplitCount {
		s.SplitCount = calculator.MinSplitCount
	}
	s.TipPercentage = calculator.TipPercentageFromSlider(s.SliderPosition)

	if !s.Actionable {
		s.TipAmount = 0
		s.TotalPerPerson = 0
		return s
	}

	s.TipAmount = calculator.CalculateTip(s.BillAmount, s.TipPercentage)
	s.TotalPerPerson = calculator.CalculateTotalPerPerson(s.BillAmount, s.SplitCount, s.TipPercentage)
	return s
}

// EditBill records text typed into the bill field without committing it.
// The form stays actionable only if the trimmed text is unchanged.
func EditBill(s State, text string) State {
	if strings.TrimSpace(text) != strings.TrimSpace(s.BillText) {
		s.Actionable = false
	}
	s.BillText = text
	return Recompute(s)
}

// CommitBill parses text as the bill amount. On failure the returned State is
// not actionable and the parse error is returned alongside it.
func CommitBill(s State, text string) (State, error) {
	s.BillText = text
	amount, err := ParseBill(text)
	if err != nil {
		s.BillAmount = 0
		s.Actionable = false
		return Recompute(s), err
	}

	s.BillAmount = amount
	s.Actionable = true
	return Recompute(s), nil
}

// IncrementSplit adds one person to the split.
func IncrementSplit(s State) State {
	s.SplitCount++
	return Recompute(s)
}

// DecrementSplit removes one person from the split, stopping at one.
func DecrementSplit(s State) State {
	if s.SplitCount > calculator.MinSplitCount {
		s.SplitCount--
	}
	return Recompute(s)
}

// MoveSlider moves the tip slider, snapping to the nearest stop.
func MoveSlider(s State, position float64) State {
	s.SliderPosition = calculator.SnapSlider(position, s.SliderSteps)
	return Recompute(s)
}

// SetTipPercentage places the slider at an exact percentage, bypassing stops.
func SetTipPercentage(s State, p int) State {
	p = calculator.ClampTipPercentage(p)
	s.SliderPosition = float64(p) / 100
	return Recompute(s)
}
