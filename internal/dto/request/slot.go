package request

import (
	"fmt"
	"time"
)

const (
	SlotActionWalkIn = "WALK_IN"
	SlotActionBlock  = "BLOCK"
)

// SlotActionRequest creates either a walk-in booking or a block for one
// calendar slot. The two actions are mutually exclusive: BLOCK carries no
// customer fields at all. Walk-ins require a customer name; amount and
// email stay optional (cash amount defaults to zero, receipts are
// optional for in-person customers).
type SlotActionRequest struct {
	Date          string   `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime     string   `json:"startTime" validate:"required,datetime=15:04"`
	DurationHours float64  `json:"durationHours" validate:"required,oneof=1 1.5 2 2.5 3 4 5"`
	Action        string   `json:"action" validate:"required,oneof=WALK_IN BLOCK"`
	SportID       *int64   `json:"sportId,omitempty"`
	Amount        *float64 `json:"amount,omitempty" validate:"omitempty,min=0"`
	CustomerName  string   `json:"customerName,omitempty" validate:"required_if=Action WALK_IN"`
	CustomerEmail string   `json:"customerEmail,omitempty" validate:"omitempty,email"`
}

// Window resolves the request into the half-open slot interval.
func (r *SlotActionRequest) Window() (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02 15:04", r.Date+" "+r.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid slot start: %w", err)
	}

	end := start.Add(time.Duration(r.DurationHours * float64(time.Hour)))
	return start, end, nil
}
