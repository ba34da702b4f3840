package builder

import (
	"time"

	"festiva/internal/catalog"
	"festiva/internal/payments"
	"festiva/internal/pricing"

	"github.com/shopspring/decimal"
)

// SessionResponse is the session view returned after every mutation so the
// caller always sees the freshly derived totals
type SessionResponse struct {
	SessionID        string                      `json:"session_id"`
	PackageID        string                      `json:"package_id"`
	PackageTitle     string                      `json:"package_title"`
	VenueID          string                      `json:"venue_id,omitempty"`
	VenueTitle       string                      `json:"venue_title,omitempty"`
	TotalBudget      decimal.Decimal             `json:"total_budget"`
	Budget           pricing.Budget              `json:"budget"`
	Components       []pricing.AdjustedComponent `json:"components"`
	VenueInclusions  []catalog.Component         `json:"venue_inclusions,omitempty"`
	Categories       []pricing.CategoryBreakdown `json:"categories"`
	CustomInclusions []catalog.CustomInclusion   `json:"custom_inclusions,omitempty"`
	SupplierServices []catalog.SupplierService   `json:"supplier_services,omitempty"`
	Plan             payments.Plan               `json:"plan"`
	Degenerate       bool                        `json:"proration_degenerate,omitempty"`
	CreatedAt        time.Time                   `json:"created_at"`
	UpdatedAt        time.Time                   `json:"updated_at"`
}

// ToSessionResponse converts a session to its API representation.
// Reads under the session lock so a concurrent command never tears the view.
func ToSessionResponse(s *Session) SessionResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	resp := SessionResponse{
		SessionID:        s.ID.String(),
		PackageID:        s.Package.ID,
		PackageTitle:     s.Package.Title,
		TotalBudget:      s.Derived.Budget.Total,
		Budget:           s.Derived.Budget,
		Components:       s.Derived.Proration.Adjusted,
		VenueInclusions:  s.Derived.VenueInclusions,
		Categories:       s.Derived.Categories,
		CustomInclusions: s.Customs,
		SupplierServices: s.Suppliers,
		Plan:             s.Plan,
		Degenerate:       s.Derived.Proration.Degenerate,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
	if s.Venue != nil {
		resp.VenueID = s.Venue.ID
		resp.VenueTitle = s.Venue.Title
	}
	return resp
}
