package payments

import (
	"fmt"
	"time"

	"festiva/internal/shared/apperrors"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// PaymentRecord is payment-attempt metadata attached to a plan
type PaymentRecord struct {
	Method     PaymentMethod   `json:"method"`
	Reference  string          `json:"reference,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	RecordedAt time.Time       `json:"recorded_at"`
}

// Plan is the derived down-payment/balance schedule for a booking total.
// DownPayment + Balance always re-sums to Total.
type Plan struct {
	Total        decimal.Decimal `json:"total"`
	ScheduleType ScheduleType    `json:"schedule_type"`
	Percentage   float64         `json:"percentage"`
	DownPayment  decimal.Decimal `json:"down_payment"`
	Balance      decimal.Decimal `json:"balance"`
	Bond         CashBond        `json:"cash_bond"`
	Payments     []PaymentRecord `json:"payments,omitempty"`
}

// NewPlan creates a full-payment plan for the given total with the bond
// amount configured for the engine (3000 by default).
func NewPlan(total, bondAmount decimal.Decimal) Plan {
	plan := Plan{
		Total:        total,
		ScheduleType: ScheduleFull,
		Percentage:   100,
		Bond:         NewCashBond(bondAmount),
	}
	plan.recalculate()
	return plan
}

// recalculate derives down payment and balance from total and percentage
func (p *Plan) recalculate() {
	p.DownPayment = p.Total.Mul(decimal.NewFromFloat(p.Percentage)).Div(hundred).Round(2)
	p.Balance = p.Total.Sub(p.DownPayment)
}

// SetScheduleType switches the schedule policy, applies its default
// percentage and recomputes. Switching to custom keeps the current
// percentage until the user edits it.
func (p *Plan) SetScheduleType(t ScheduleType) error {
	if !t.IsValid() {
		return apperrors.NewValidation(apperrors.CodeInvalidStatus, "schedule_type",
			fmt.Sprintf("unknown schedule type %q", t))
	}
	p.ScheduleType = t
	if pct, ok := t.DefaultPercentage(); ok {
		p.Percentage = pct
	}
	p.recalculate()
	return nil
}

// SetCustomPercentage edits the down-payment percentage directly.
// Out-of-range values are rejected, never silently clamped, so the caller
// can surface the error; prior state is retained on failure.
func (p *Plan) SetCustomPercentage(pct float64) error {
	if pct < 0 || pct > 100 {
		return apperrors.NewValidation(apperrors.CodePercentageOutOfRange, "percentage",
			fmt.Sprintf("percentage %.2f must be between 0 and 100", pct))
	}
	p.Percentage = pct
	p.recalculate()
	return nil
}

// SetDownPayment applies a manual down-payment edit. An amount exceeding
// the total (or a negative one) is rejected and the last valid value kept.
// The percentage is re-derived so later rebases stay consistent with the
// edited amount.
func (p *Plan) SetDownPayment(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return apperrors.NewValidation(apperrors.CodeNegativeAmount, "down_payment",
			"down payment must not be negative")
	}
	if amount.GreaterThan(p.Total) {
		return apperrors.NewValidation(apperrors.CodeDownPaymentExceedsTotal, "down_payment",
			fmt.Sprintf("down payment %s exceeds total %s", amount, p.Total))
	}
	p.DownPayment = amount.Round(2)
	p.Balance = p.Total.Sub(p.DownPayment)
	if !p.Total.IsZero() {
		p.Percentage = p.DownPayment.Div(p.Total).Mul(hundred).InexactFloat64()
	}
	return nil
}

// Rebase re-runs the down-payment formula against a new total using the
// current percentage. Every budget change must pass through here so a stale
// down payment never overshoots a decreased total.
func (p *Plan) Rebase(total decimal.Decimal) {
	p.Total = total
	p.recalculate()
}

// RecordPayment attaches payment-method metadata for the current down
// payment. GCash and bank-transfer payments need a non-empty reference
// number before they count as recorded.
func (p *Plan) RecordPayment(method PaymentMethod, reference string) (*PaymentRecord, error) {
	if !method.IsValid() {
		return nil, apperrors.NewValidation(apperrors.CodeInvalidMethod, "method",
			fmt.Sprintf("unknown payment method %q", method))
	}
	if method.RequiresReference() && reference == "" {
		return nil, apperrors.NewValidation(apperrors.CodeReferenceRequired, "reference",
			fmt.Sprintf("payment method %s requires a reference number", method))
	}
	record := PaymentRecord{
		Method:     method,
		Reference:  reference,
		Amount:     p.DownPayment,
		RecordedAt: time.Now(),
	}
	p.Payments = append(p.Payments, record)
	return &record, nil
}
