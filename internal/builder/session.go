package builder

import (
	"fmt"
	"sync"
	"time"

	"festiva/internal/catalog"
	"festiva/internal/payments"
	"festiva/internal/pricing"
	"festiva/internal/shared/apperrors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DerivedTotals is the output of the recompute pipeline, re-derived from
// scratch after every mutation — never cached across mutations.
type DerivedTotals struct {
	Budget          pricing.Budget              `json:"budget"`
	Proration       pricing.ProrationResult     `json:"proration"`
	Categories      []pricing.CategoryBreakdown `json:"categories"`
	VenueInclusions []catalog.Component         `json:"venue_inclusions,omitempty"`
}

// Session is one event-builder booking session. It owns a private copy of
// the package, the selected venue, user additions and the payment plan;
// all of it is discarded when the session ends or is submitted.
type Session struct {
	ID        uuid.UUID                 `json:"id"`
	Package   catalog.Package           `json:"package"`
	Venue     *catalog.Venue            `json:"venue,omitempty"`
	Customs   []catalog.CustomInclusion `json:"custom_inclusions,omitempty"`
	Suppliers []catalog.SupplierService `json:"supplier_services,omitempty"`
	Plan      payments.Plan             `json:"plan"`
	Derived   DerivedTotals             `json:"derived"`
	CreatedAt time.Time                 `json:"created_at"`
	UpdatedAt time.Time                 `json:"updated_at"`

	// venue inclusions materialized from the selected venue, always locked
	venueComponents []catalog.Component

	// guards all session state: the store only guards its map, so commands
	// arriving on concurrent requests serialize here
	mu sync.RWMutex
}

// NewSession starts a builder session over a private copy of the package
func NewSession(pkg *catalog.Package, bondAmount decimal.Decimal) *Session {
	owned := *pkg
	owned.Components = make([]catalog.Component, len(pkg.Components))
	copy(owned.Components, pkg.Components)

	now := time.Now()
	s := &Session{
		ID:        uuid.New(),
		Package:   owned,
		Plan:      payments.NewPlan(decimal.Zero, bondAmount),
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.recompute()
	return s
}

// recompute re-runs the pure pricing pipeline: partition, budget
// composition, proration, category aggregation, then rebases the payment
// plan on the new total so the down payment can never go stale.
func (s *Session) recompute() {
	all := make([]catalog.Component, 0, len(s.Package.Components)+len(s.venueComponents))
	all = append(all, s.Package.Components...)
	all = append(all, s.venueComponents...)
	venueLocked, catalogItems := catalog.Partition(all)

	budget := pricing.ComposeBudget(pricing.BudgetInput{
		NominalPrice:     s.Package.NominalPrice,
		CatalogItems:     catalogItems,
		Venue:            s.Venue,
		CustomInclusions: s.Customs,
		SupplierServices: s.Suppliers,
	})
	proration := pricing.Prorate(s.Package.NominalPrice, catalogItems)
	categories := pricing.AggregateCategories(proration.Adjusted, budget.Total)

	s.Plan.Rebase(budget.Total)
	s.Derived = DerivedTotals{
		Budget:          budget,
		Proration:       proration,
		Categories:      categories,
		VenueInclusions: venueLocked,
	}
	s.UpdatedAt = time.Now()
}

func (s *Session) findComponent(componentID string) *catalog.Component {
	for i := range s.Package.Components {
		if s.Package.Components[i].ID == componentID {
			return &s.Package.Components[i]
		}
	}
	return nil
}

// RemoveComponent toggles a component out of every downstream sum. The
// component stays in the collection so it can be restored. Venue-supplied
// inclusions and non-removable items are refused.
func (s *Session) RemoveComponent(componentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c := s.findComponent(componentID); c != nil {
		if c.Source == catalog.SourceVenueLocked {
			return apperrors.NewValidation(apperrors.CodeVenueInclusionLocked, "component_id",
				fmt.Sprintf("component %s is supplied by the venue and cannot be removed", componentID))
		}
		if !c.Removable {
			return apperrors.NewValidation(apperrors.CodeComponentNotRemovable, "component_id",
				fmt.Sprintf("component %s is not removable", componentID))
		}
		c.Included = false
		s.recompute()
		return nil
	}
	for i := range s.venueComponents {
		if s.venueComponents[i].ID == componentID {
			return apperrors.NewValidation(apperrors.CodeVenueInclusionLocked, "component_id",
				fmt.Sprintf("component %s is supplied by the venue and cannot be removed", componentID))
		}
	}
	return apperrors.NewValidation(apperrors.CodeComponentNotFound, "component_id",
		fmt.Sprintf("component %s not found", componentID))
}

// RestoreComponent brings a removed component back into the sums with its
// original price and category untouched
func (s *Session) RestoreComponent(componentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.findComponent(componentID)
	if c == nil {
		return apperrors.NewValidation(apperrors.CodeComponentNotFound, "component_id",
			fmt.Sprintf("component %s not found", componentID))
	}
	c.Included = true
	s.recompute()
	return nil
}

// SelectVenue attaches a venue; its fee enters the total and its
// inclusions appear as locked items
func (s *Session) SelectVenue(venue *catalog.Venue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Venue = venue
	s.venueComponents = venue.InclusionComponents()
	s.recompute()
}

// ClearVenue detaches the selected venue and its inclusions
func (s *Session) ClearVenue() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Venue = nil
	s.venueComponents = nil
	s.recompute()
}

// SelectVenueOption activates one of a component's mutually exclusive
// venue options; an empty option id clears the selection
func (s *Session) SelectVenueOption(componentID, optionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.findComponent(componentID)
	if c == nil {
		return apperrors.NewValidation(apperrors.CodeComponentNotFound, "component_id",
			fmt.Sprintf("component %s not found", componentID))
	}
	if err := c.SelectOption(optionID); err != nil {
		return err
	}
	s.recompute()
	return nil
}

// AddCustomInclusion adds a user-entered item at face value; it is never
// prorated and always included once added
func (s *Session) AddCustomInclusion(c catalog.CustomInclusion) (*catalog.CustomInclusion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := catalog.ValidateCustomInclusion(&c); err != nil {
		return nil, err
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	s.Customs = append(s.Customs, c)
	s.recompute()
	return &s.Customs[len(s.Customs)-1], nil
}

// AddSupplierService books an external supplier service at face value
func (s *Session) AddSupplierService(svc catalog.SupplierService) (*catalog.SupplierService, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := catalog.ValidateSupplierService(&svc); err != nil {
		return nil, err
	}
	if svc.ID == "" {
		svc.ID = uuid.New().String()
	}
	s.Suppliers = append(s.Suppliers, svc)
	s.recompute()
	return &s.Suppliers[len(s.Suppliers)-1], nil
}

// SetScheduleType switches the payment schedule policy
func (s *Session) SetScheduleType(t payments.ScheduleType) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.Plan.SetScheduleType(t); err != nil {
		return err
	}
	s.UpdatedAt = time.Now()
	return nil
}

// SetSchedule switches the schedule policy and, for the custom type,
// applies the supplied percentage as one command. The prior plan is
// restored when any part fails so a rejected percentage never leaves a
// half-applied schedule behind.
func (s *Session) SetSchedule(t payments.ScheduleType, pct *float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prior := s.Plan
	if err := s.Plan.SetScheduleType(t); err != nil {
		s.Plan = prior
		return err
	}
	if t == payments.ScheduleCustom && pct != nil {
		if err := s.Plan.SetCustomPercentage(*pct); err != nil {
			s.Plan = prior
			return err
		}
	}
	s.UpdatedAt = time.Now()
	return nil
}

// SetCustomPercentage edits the down-payment percentage directly
func (s *Session) SetCustomPercentage(pct float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.Plan.SetCustomPercentage(pct); err != nil {
		return err
	}
	s.UpdatedAt = time.Now()
	return nil
}

// SetDownPayment applies a manual down-payment edit
func (s *Session) SetDownPayment(amount decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.Plan.SetDownPayment(amount); err != nil {
		return err
	}
	s.UpdatedAt = time.Now()
	return nil
}

// SetCashBondRequired toggles whether a cash bond is collected
func (s *Session) SetCashBondRequired(required bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Plan.Bond.Required = required
	s.UpdatedAt = time.Now()
}

// SetCashBondStatus moves the bond through its ledger states
func (s *Session) SetCashBondStatus(status payments.BondStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.Plan.Bond.SetStatus(status); err != nil {
		return err
	}
	s.UpdatedAt = time.Now()
	return nil
}

// FileDamageClaim records damage against the bond and marks it claimed
func (s *Session) FileDamageClaim(description string, amount decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.Plan.Bond.FileDamageClaim(description, amount); err != nil {
		return err
	}
	s.UpdatedAt = time.Now()
	return nil
}

// RecordPayment attaches payment-method metadata for the down payment
func (s *Session) RecordPayment(method payments.PaymentMethod, reference string) (*payments.PaymentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.Plan.RecordPayment(method, reference)
	if err != nil {
		return nil, err
	}
	s.UpdatedAt = time.Now()
	return record, nil
}
