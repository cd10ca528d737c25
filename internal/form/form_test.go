package form

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestNew(t *testing.T) {
	want := State{
		SplitCount:     1,
		SliderPosition: 0.15,
		SliderSteps:    6,
		TipPercentage:  15,
	}
	if diff := cmp.Diff(want, New(), approx); diff != "" {
		t.Errorf("New() mismatch (-want +got):\n%s", diff)
	}
}

func TestNew_Options(t *testing.T) {
	s := New(WithSliderSteps(0), WithSliderPosition(0.2))
	assert.Equal(t, 0, s.SliderSteps)
	assert.Equal(t, 20, s.TipPercentage)

	s = New(WithSliderSteps(-4), WithSliderPosition(3))
	assert.Equal(t, 0, s.SliderSteps)
	assert.Equal(t, 100, s.TipPercentage)
}

func TestCommitBill(t *testing.T) {
	s, err := CommitBill(New(), " 100 ")
	require.NoError(t, err)

	want := State{
		BillText:       " 100 ",
		BillAmount:     100,
		Actionable:     true,
		SplitCount:     1,
		SliderPosition: 0.15,
		SliderSteps:    6,
		TipPercentage:  15,
		TipAmount:      15,
		TotalPerPerson: 115,
	}
	if diff := cmp.Diff(want, s, approx); diff != "" {
		t.Errorf("CommitBill mismatch (-want +got):\n%s", diff)
	}
}

func TestCommitBill_Invalid(t *testing.T) {
	valid, err := CommitBill(New(), "80")
	require.NoError(t, err)

	tests := []struct {
		text    string
		wantErr error
	}{
		{text: "", wantErr: ErrEmptyBill},
		{text: "   ", wantErr: ErrEmptyBill},
		{text: "abc", wantErr: ErrInvalidBill},
		{text: "12.3.4", wantErr: ErrInvalidBill},
		{text: "NaN", wantErr: ErrInvalidBill},
		{text: "Inf", wantErr: ErrInvalidBill},
		{text: "-5", wantErr: ErrNegativeBill},
		{text: "1e308", wantErr: ErrBillTooLarge},
		{text: "1.7e308", wantErr: ErrBillTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			s, err := CommitBill(valid, tt.text)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.False(t, s.Actionable)
			assert.Equal(t, tt.text, s.BillText)
			assert.Zero(t, s.BillAmount)
			assert.Zero(t, s.TipAmount)
			assert.Zero(t, s.TotalPerPerson)
		})
	}
}

func TestSplitHandlers(t *testing.T) {
	s, err := CommitBill(New(), "100")
	require.NoError(t, err)

	s = IncrementSplit(IncrementSplit(IncrementSplit(s)))
	assert.Equal(t, 4, s.SplitCount)
	assert.InDelta(t, 28.75, s.TotalPerPerson, 1e-9)
	assert.InDelta(t, 15.0, s.TipAmount, 1e-9)

	s = DecrementSplit(s)
	assert.Equal(t, 3, s.SplitCount)
	assert.InDelta(t, 115.0/3, s.TotalPerPerson, 1e-9)
}

func TestDecrementSplit_FloorsAtOne(t *testing.T) {
	s, err := CommitBill(New(), "50")
	require.NoError(t, err)

	s = DecrementSplit(DecrementSplit(s))
	assert.Equal(t, 1, s.SplitCount)
	assert.InDelta(t, 57.5, s.TotalPerPerson, 1e-9)
}

func TestMoveSlider(t *testing.T) {
	s, err := CommitBill(New(), "100")
	require.NoError(t, err)
	s = IncrementSplit(IncrementSplit(IncrementSplit(s)))

	s = MoveSlider(s, 0.5)
	assert.InDelta(t, 4.0/7, s.SliderPosition, 1e-9)
	assert.Equal(t, 57, s.TipPercentage)
	assert.InDelta(t, 57.0, s.TipAmount, 1e-9)
	assert.InDelta(t, 39.25, s.TotalPerPerson, 1e-9)

	s = MoveSlider(s, 0)
	assert.Equal(t, 0, s.TipPercentage)
	assert.InDelta(t, 25.0, s.TotalPerPerson, 1e-9)
}

func TestMoveSlider_Continuous(t *testing.T) {
	s, err := CommitBill(New(WithSliderSteps(0)), "200")
	require.NoError(t, err)

	s = MoveSlider(s, 0.225)
	assert.Equal(t, 22, s.TipPercentage)
	assert.InDelta(t, 44.0, s.TipAmount, 1e-9)
}

func TestSetTipPercentage(t *testing.T) {
	s, err := CommitBill(New(), "50")
	require.NoError(t, err)
	s = IncrementSplit(s)

	s = SetTipPercentage(s, 0)
	assert.InDelta(t, 25.0, s.TotalPerPerson, 1e-9)

	s = SetTipPercentage(s, 29)
	assert.Equal(t, 29, s.TipPercentage)

	s = SetTipPercentage(s, 140)
	assert.Equal(t, 100, s.TipPercentage)
	assert.InDelta(t, 50.0, s.TotalPerPerson, 1e-9)
}

func TestHandlers_NotActionable(t *testing.T) {
	s := New()
	s = IncrementSplit(s)
	s = MoveSlider(s, 1)

	assert.False(t, s.Actionable)
	assert.Equal(t, 2, s.SplitCount)
	assert.Equal(t, 100, s.TipPercentage)
	assert.Zero(t, s.TipAmount)
	assert.Zero(t, s.TotalPerPerson)
}

func TestEditBill(t *testing.T) {
	s, err := CommitBill(New(), "100")
	require.NoError(t, err)

	same := EditBill(s, "100 ")
	assert.True(t, same.Actionable)
	assert.InDelta(t, 115.0, same.TotalPerPerson, 1e-9)

	edited := EditBill(s, "1000")
	assert.False(t, edited.Actionable)
	assert.Equal(t, "1000", edited.BillText)
	assert.Zero(t, edited.TotalPerPerson)

	committed, err := CommitBill(edited, edited.BillText)
	require.NoError(t, err)
	assert.InDelta(t, 1150.0, committed.TotalPerPerson, 1e-9)
}

func TestHandlers_DoNotMutateInput(t *testing.T) {
	s, err := CommitBill(New(), "100")
	require.NoError(t, err)
	before := s

	_ = IncrementSplit(s)
	_ = MoveSlider(s, 1)
	_, _ = CommitBill(s, "oops")

	if diff := cmp.Diff(before, s); diff != "" {
		t.Errorf("handler mutated input (-before +after):\n%s", diff)
	}
}

func TestParseBill(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{"100", 100},
		{"  42.50\n", 42.5},
		{"$19.99", 19.99},
		{"0", 0},
		{"1e2", 100},
		{"1e12", MaxBillAmount},
	}
	for _, tt := range tests {
		got, err := ParseBill(tt.text)
		require.NoError(t, err, tt.text)
		assert.InDelta(t, tt.want, got, 1e-9, tt.text)
	}
}

func TestMaxBillAmount_StaysFinite(t *testing.T) {
	s, err := CommitBill(New(), "1e12")
	require.NoError(t, err)
	s = SetTipPercentage(s, 100)

	assert.False(t, math.IsInf(s.TotalPerPerson, 0))
	assert.InDelta(t, 2e12, s.TotalPerPerson, 1e-3)
}
