package sales

import (
	"time"

	"api_timeshare/internal/economics"
)

// Sale is a recorded timeshare sale. The operator's normalized entry
// and the figures derived from it live in separate blocks: Input is an
// immutable snapshot of what was entered, Derived is recomputed from it
// wholesale, never patched field by field.
type Sale struct {
	ID       string `json:"id"`
	RepID    string `json:"rep_id"`
	LeadID   string `json:"lead_id"`
	Buyer    string `json:"buyer"`
	SaleDate string `json:"sale_date"`

	Input   economics.Input   `json:"input"`
	Derived economics.Derived `json:"derived"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Version   int       `json:"version"`
}

// FormInput is the full entry-form payload: identity fields plus the
// raw calculation fields, all exactly as the form collected them.
type FormInput struct {
	SaleDate       string `json:"sale_date"`
	RepID          string `json:"rep_id"`
	LeadID         string `json:"lead_id"`
	Buyer          string `json:"buyer"`
	Amount         string `json:"amount"`
	SaleType       string `json:"sale_type"`
	PointsRedeemed string `json:"points_redeemed"`
	Tours          string `json:"tours"`
}

func (f FormInput) calcFields() economics.FormInput {
	return economics.FormInput{
		Amount:         f.Amount,
		SaleType:       f.SaleType,
		PointsRedeemed: f.PointsRedeemed,
		Tours:          f.Tours,
	}
}
