package service

import (
	"github.com/mmynk/tipsplit/internal/format"
	"github.com/mmynk/tipsplit/internal/form"
	"github.com/mmynk/tipsplit/internal/models"
	pb "github.com/mmynk/tipsplit/pkg/api"
)

func toAPIForm(session *models.Session) *pb.Form {
	f := session.Form
	return &pb.Form{
		BillText:              f.BillText,
		BillAmount:            f.BillAmount,
		Actionable:            f.Actionable,
		SplitCount:            f.SplitCount,
		SliderPosition:        f.SliderPosition,
		TipPercentage:         f.TipPercentage,
		TipAmount:             f.TipAmount,
		TotalPerPerson:        f.TotalPerPerson,
		TipDisplay:            format.Amount(f.TipAmount),
		TotalPerPersonDisplay: format.Currency(f.TotalPerPerson),
		UpdatedAt:             session.UpdatedAt,
	}
}

func toBreakdown(bill float64, split, pct int, tip, perPerson float64) *pb.Breakdown {
	return &pb.Breakdown{
		BillAmount:            bill,
		SplitCount:            split,
		TipPercentage:         pct,
		TipAmount:             tip,
		TotalPerPerson:        perPerson,
		TipDisplay:            format.Amount(tip),
		TotalPerPersonDisplay: format.Currency(perPerson),
	}
}

// formOptions builds the options for a new session's form.
func (s *TipService) formOptions(steps *int) []form.Option {
	opts := []form.Option{form.WithSliderSteps(s.sliderSteps)}
	if steps != nil {
		opts = append(opts, form.WithSliderSteps(*steps))
	}
	return opts
}
