package submission

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"time"

	"festiva/internal/catalog"
	"festiva/internal/payments"
	"festiva/internal/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payload is the flat booking-creation record handed to the external
// booking endpoint; the engine assembles it but never performs the call.
type Payload struct {
	BookingRef          string                   `json:"booking_ref"`
	SessionID           string                   `json:"session_id"`
	PackageID           string                   `json:"package_id"`
	VenueID             string                   `json:"venue_id,omitempty"`
	ComponentIDs        []string                 `json:"component_ids"`
	RemovedComponentIDs []string                 `json:"removed_component_ids,omitempty"`
	CustomInclusions    []catalog.CustomInclusion `json:"custom_inclusions,omitempty"`
	SupplierServices    []catalog.SupplierService `json:"supplier_services,omitempty"`
	TotalBudget         decimal.Decimal          `json:"total_budget"`
	ScheduleType        string                   `json:"schedule_type"`
	Percentage          float64                  `json:"percentage"`
	DownPayment         decimal.Decimal          `json:"down_payment"`
	Balance             decimal.Decimal          `json:"balance"`
	CashBondRequired    bool                     `json:"cash_bond_required"`
	CashBondStatus      string                   `json:"cash_bond_status"`
	CashBondAmount      decimal.Decimal          `json:"cash_bond_amount"`
	Payments            []payments.PaymentRecord `json:"payments,omitempty"`
	SubmittedAt         time.Time                `json:"submitted_at"`
}

// ToJSON serializes the payload for the wire
func (p *Payload) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}

// BuildPayload flattens the session's final state into the booking payload
func BuildPayload(sessionID uuid.UUID, pkg catalog.Package, venue *catalog.Venue,
	customs []catalog.CustomInclusion, suppliers []catalog.SupplierService,
	budget pricing.Budget, plan payments.Plan) (*Payload, error) {

	ref, err := NewBookingRef()
	if err != nil {
		return nil, fmt.Errorf("failed to generate booking reference: %w", err)
	}

	payload := &Payload{
		BookingRef:       ref,
		SessionID:        sessionID.String(),
		PackageID:        pkg.ID,
		CustomInclusions: customs,
		SupplierServices: suppliers,
		TotalBudget:      budget.Total,
		ScheduleType:     plan.ScheduleType.String(),
		Percentage:       plan.Percentage,
		DownPayment:      plan.DownPayment,
		Balance:          plan.Balance,
		CashBondRequired: plan.Bond.Required,
		CashBondStatus:   plan.Bond.Status.String(),
		CashBondAmount:   plan.Bond.DisplayAmount(),
		Payments:         plan.Payments,
		SubmittedAt:      time.Now(),
	}
	if venue != nil {
		payload.VenueID = venue.ID
	}
	for _, c := range pkg.Components {
		if c.EffectivelyIncluded() {
			payload.ComponentIDs = append(payload.ComponentIDs, c.ID)
		} else {
			payload.RemovedComponentIDs = append(payload.RemovedComponentIDs, c.ID)
		}
	}
	return payload, nil
}

// NewBookingRef generates a unique booking reference
func NewBookingRef() (string, error) {
	timestamp := time.Now().Format("20060102")

	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	randomPart := make([]byte, 6)
	for i := range randomPart {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(letters))))
		if err != nil {
			return "", err
		}
		randomPart[i] = letters[num.Int64()]
	}

	return fmt.Sprintf("BKG-%s-%s", timestamp, string(randomPart)), nil
}
