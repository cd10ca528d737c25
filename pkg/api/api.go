// Package api defines the messages exchanged with the tipsplit TipService.
// Messages travel as JSON over the Connect protocol.
package api

// CalculateRequest asks for a stateless tip and split calculation.
type CalculateRequest struct {
	BillAmount    float64 `json:"bill_amount"`
	SplitCount    int     `json:"split_count"`
	TipPercentage int     `json:"tip_percentage"`
}

// Breakdown is the result of a calculation.
type Breakdown struct {
	BillAmount     float64 `json:"bill_amount"`
	SplitCount     int     `json:"split_count"`
	TipPercentage  int     `json:"tip_percentage"`
	TipAmount      float64 `json:"tip_amount"`
	TotalPerPerson float64 `json:"total_per_person"`

	// Display strings rounded to two decimals.
	TipDisplay            string `json:"tip_display"`
	TotalPerPersonDisplay string `json:"total_per_person_display"`
}

// CalculateResponse wraps a Breakdown.
type CalculateResponse struct {
	Breakdown *Breakdown `json:"breakdown"`
}

// Form mirrors a server-held form.
type Form struct {
	BillText       string  `json:"bill_text"`
	BillAmount     float64 `json:"bill_amount"`
	Actionable     bool    `json:"actionable"`
	SplitCount     int     `json:"split_count"`
	SliderPosition float64 `json:"slider_position"`
	TipPercentage  int     `json:"tip_percentage"`
	TipAmount      float64 `json:"tip_amount"`
	TotalPerPerson float64 `json:"total_per_person"`

	TipDisplay            string `json:"tip_display"`
	TotalPerPersonDisplay string `json:"total_per_person_display"`
	UpdatedAt             int64  `json:"updated_at"`
}

// CreateSessionRequest starts a new form session.
type CreateSessionRequest struct {
	// SliderSteps overrides the server default when set. Zero or negative means a continuous slider.
	SliderSteps *int `json:"slider_steps,omitempty"`
}

// CreateSessionResponse carries the session token used for later calls.
type CreateSessionResponse struct {
	SessionID string `json:"session_id"`
	Token     string `json:"token"`
	Form      *Form  `json:"form"`
}

// GetFormRequest reads the session's form.
type GetFormRequest struct{}

// EditBillRequest records bill text that has been typed but not committed.
type EditBillRequest struct {
	Text string `json:"text"`
}

// CommitBillRequest commits bill text.
type CommitBillRequest struct {
	Text string `json:"text"`
}

// IncrementSplitRequest adds a person.
type IncrementSplitRequest struct{}

// DecrementSplitRequest removes a person, stopping at one.
type DecrementSplitRequest struct{}

// MoveSliderRequest moves the tip slider.
type MoveSliderRequest struct {
	Position float64 `json:"position"`
}

// SetTipPercentageRequest sets an exact tip percentage.
type SetTipPercentageRequest struct {
	TipPercentage int `json:"tip_percentage"`
}

// FormResponse returns the form after a change.
type FormResponse struct {
	Form *Form `json:"form"`
	// Token replaces the caller's session token after a change, since every
	// change extends the session. Empty on reads.
	Token string `json:"token,omitempty"`
}

// EndSessionRequest deletes the session.
type EndSessionRequest struct{}

// EndSessionResponse is empty.
type EndSessionResponse struct{}
