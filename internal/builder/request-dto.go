package builder

import (
	"github.com/shopspring/decimal"
)

// CreateSessionRequest starts a builder session from a catalog package
type CreateSessionRequest struct {
	PackageID string `json:"package_id" binding:"required"`
}

// SelectVenueRequest attaches a venue to the session
type SelectVenueRequest struct {
	VenueID string `json:"venue_id" binding:"required"`
}

// VenueOptionRequest activates a component's venue option.
// An empty option id clears the selection.
type VenueOptionRequest struct {
	ComponentID string `json:"component_id" binding:"required"`
	OptionID    string `json:"option_id"`
}

// CustomInclusionRequest adds a user-entered item outside the catalog
type CustomInclusionRequest struct {
	Name     string          `json:"name" binding:"required"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
}

// SupplierServiceRequest books an external supplier service
type SupplierServiceRequest struct {
	SupplierID string          `json:"supplier_id"`
	Name       string          `json:"name" binding:"required"`
	Price      decimal.Decimal `json:"price"`
	Category   string          `json:"category"`
}

// ScheduleRequest switches the payment schedule policy. Percentage is only
// honored for the custom schedule type.
type ScheduleRequest struct {
	ScheduleType string   `json:"schedule_type" binding:"required,scheduletype"`
	Percentage   *float64 `json:"percentage"`
}

// PercentageRequest edits the custom down-payment percentage
type PercentageRequest struct {
	Percentage float64 `json:"percentage"`
}

// DownPaymentRequest applies a manual down-payment edit
type DownPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// CashBondRequest toggles the bond requirement and/or moves its status
type CashBondRequest struct {
	Required *bool  `json:"required"`
	Status   string `json:"status" binding:"omitempty,bondstatus"`
}

// DamageClaimRequest files damage against the cash bond
type DamageClaimRequest struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
}

// PaymentRequest records a down-payment attempt's method and reference
type PaymentRequest struct {
	Method    string `json:"method" binding:"required,paymentmethod"`
	Reference string `json:"reference"`
}
