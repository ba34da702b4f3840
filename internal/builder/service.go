package builder

import (
	"context"
	"fmt"

	"festiva/internal/catalog"
	"festiva/internal/payments"
	"festiva/internal/submission"
	"festiva/pkg/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service interface defines the contract for event-builder sessions
type Service interface {
	CreateSession(ctx context.Context, packageID string) (*Session, error)
	GetSession(ctx context.Context, id uuid.UUID) (*Session, error)
	DiscardSession(ctx context.Context, id uuid.UUID) error

	RemoveComponent(ctx context.Context, id uuid.UUID, componentID string) (*Session, error)
	RestoreComponent(ctx context.Context, id uuid.UUID, componentID string) (*Session, error)
	SelectVenue(ctx context.Context, id uuid.UUID, venueID string) (*Session, error)
	ClearVenue(ctx context.Context, id uuid.UUID) (*Session, error)
	SelectVenueOption(ctx context.Context, id uuid.UUID, componentID, optionID string) (*Session, error)
	AddCustomInclusion(ctx context.Context, id uuid.UUID, c catalog.CustomInclusion) (*Session, error)
	AddSupplierService(ctx context.Context, id uuid.UUID, svc catalog.SupplierService) (*Session, error)

	SetSchedule(ctx context.Context, id uuid.UUID, t payments.ScheduleType, pct *float64) (*Session, error)
	SetCustomPercentage(ctx context.Context, id uuid.UUID, pct float64) (*Session, error)
	SetDownPayment(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*Session, error)
	SetCashBondRequired(ctx context.Context, id uuid.UUID, required bool) (*Session, error)
	SetCashBondStatus(ctx context.Context, id uuid.UUID, status payments.BondStatus) (*Session, error)
	FileDamageClaim(ctx context.Context, id uuid.UUID, description string, amount decimal.Decimal) (*Session, error)
	RecordPayment(ctx context.Context, id uuid.UUID, method payments.PaymentMethod, reference string) (*Session, error)

	Submit(ctx context.Context, id uuid.UUID) (*submission.Payload, error)
}

// service implements the Service interface
type service struct {
	catalogService catalog.Service
	store          *Store
	producer       submission.Producer
	bondAmount     decimal.Decimal
	logger         *logger.Logger
}

// NewService creates a new builder service instance. The producer may be
// nil, in which case Submit assembles the payload without publishing it.
func NewService(catalogService catalog.Service, store *Store, producer submission.Producer, bondAmount decimal.Decimal) Service {
	return &service{
		catalogService: catalogService,
		store:          store,
		producer:       producer,
		bondAmount:     bondAmount,
		logger:         logger.GetDefault(),
	}
}

// CreateSession fetches the package and starts a fresh session over it
func (s *service) CreateSession(ctx context.Context, packageID string) (*Session, error) {
	pkg, err := s.catalogService.GetPackage(ctx, packageID)
	if err != nil {
		return nil, fmt.Errorf("failed to load package for session: %w", err)
	}

	session := NewSession(pkg, s.bondAmount)
	s.store.Put(session)
	s.logger.LogSessionCreated(ctx, session.ID.String(), packageID)
	s.reportDegenerate(ctx, session)
	return session, nil
}

// GetSession returns a live session by id
func (s *service) GetSession(ctx context.Context, id uuid.UUID) (*Session, error) {
	return s.store.Get(id)
}

// DiscardSession drops a session without submitting it
func (s *service) DiscardSession(ctx context.Context, id uuid.UUID) error {
	if _, err := s.store.Get(id); err != nil {
		return err
	}
	s.store.Delete(id)
	return nil
}

func (s *service) mutate(ctx context.Context, id uuid.UUID, fn func(*Session) error) (*Session, error) {
	session, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	if err := fn(session); err != nil {
		return nil, err
	}
	s.reportDegenerate(ctx, session)
	return session, nil
}

// reportDegenerate logs the zero-item-sum passthrough case so it stays
// distinguishable in diagnostics without being an error
func (s *service) reportDegenerate(ctx context.Context, session *Session) {
	if session.Derived.Proration.Degenerate {
		s.logger.LogDegenerateProration(ctx, session.ID.String(), session.Package.ID)
	}
}

func (s *service) RemoveComponent(ctx context.Context, id uuid.UUID, componentID string) (*Session, error) {
	return s.mutate(ctx, id, func(session *Session) error {
		return session.RemoveComponent(componentID)
	})
}

func (s *service) RestoreComponent(ctx context.Context, id uuid.UUID, componentID string) (*Session, error) {
	return s.mutate(ctx, id, func(session *Session) error {
		return session.RestoreComponent(componentID)
	})
}

func (s *service) SelectVenue(ctx context.Context, id uuid.UUID, venueID string) (*Session, error) {
	venue, err := s.catalogService.GetVenue(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("failed to load venue: %w", err)
	}
	return s.mutate(ctx, id, func(session *Session) error {
		session.SelectVenue(venue)
		return nil
	})
}

func (s *service) ClearVenue(ctx context.Context, id uuid.UUID) (*Session, error) {
	return s.mutate(ctx, id, func(session *Session) error {
		session.ClearVenue()
		return nil
	})
}

func (s *service) SelectVenueOption(ctx context.Context, id uuid.UUID, componentID, optionID string) (*Session, error) {
	return s.mutate(ctx, id, func(session *Session) error {
		return session.SelectVenueOption(componentID, optionID)
	})
}

func (s *service) AddCustomInclusion(ctx context.Context, id uuid.UUID, c catalog.CustomInclusion) (*Session, error) {
	return s.mutate(ctx, id, func(session *Session) error {
		_, err := session.AddCustomInclusion(c)
		return err
	})
}

func (s *service) AddSupplierService(ctx context.Context, id uuid.UUID, svc catalog.SupplierService) (*Session, error) {
	return s.mutate(ctx, id, func(session *Session) error {
		_, err := session.AddSupplierService(svc)
		return err
	})
}

func (s *service) SetSchedule(ctx context.Context, id uuid.UUID, t payments.ScheduleType, pct *float64) (*Session, error) {
	return s.mutate(ctx, id, func(session *Session) error {
		return session.SetSchedule(t, pct)
	})
}

func (s *service) SetCustomPercentage(ctx context.Context, id uuid.UUID, pct float64) (*Session, error) {
	return s.mutate(ctx, id, func(session *Session) error {
		return session.SetCustomPercentage(pct)
	})
}

func (s *service) SetDownPayment(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*Session, error) {
	return s.mutate(ctx, id, func(session *Session) error {
		return session.SetDownPayment(amount)
	})
}

func (s *service) SetCashBondRequired(ctx context.Context, id uuid.UUID, required bool) (*Session, error) {
	return s.mutate(ctx, id, func(session *Session) error {
		session.SetCashBondRequired(required)
		return nil
	})
}

func (s *service) SetCashBondStatus(ctx context.Context, id uuid.UUID, status payments.BondStatus) (*Session, error) {
	return s.mutate(ctx, id, func(session *Session) error {
		return session.SetCashBondStatus(status)
	})
}

func (s *service) FileDamageClaim(ctx context.Context, id uuid.UUID, description string, amount decimal.Decimal) (*Session, error) {
	return s.mutate(ctx, id, func(session *Session) error {
		return session.FileDamageClaim(description, amount)
	})
}

func (s *service) RecordPayment(ctx context.Context, id uuid.UUID, method payments.PaymentMethod, reference string) (*Session, error) {
	return s.mutate(ctx, id, func(session *Session) error {
		_, err := session.RecordPayment(method, reference)
		return err
	})
}

// Submit assembles the flat booking payload, hands it to the booking
// topic and discards the session
func (s *service) Submit(ctx context.Context, id uuid.UUID) (*submission.Payload, error) {
	session, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}

	session.mu.RLock()
	payload, err := submission.BuildPayload(session.ID, session.Package, session.Venue,
		session.Customs, session.Suppliers, session.Derived.Budget, session.Plan)
	session.mu.RUnlock()
	if err != nil {
		return nil, fmt.Errorf("failed to assemble booking payload: %w", err)
	}

	if s.producer != nil {
		if err := s.producer.Publish(ctx, payload); err != nil {
			return nil, fmt.Errorf("failed to submit booking: %w", err)
		}
	}

	s.store.Delete(id)
	s.logger.LogBookingSubmitted(ctx, payload.BookingRef, session.Package.ID, payload.TotalBudget.String())
	return payload, nil
}
