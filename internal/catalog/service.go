package catalog

import (
	"context"
	"fmt"
	"time"

	"festiva/pkg/cache"
	"festiva/pkg/logger"
)

// Service interface defines the contract for catalog access
type Service interface {
	GetPackage(ctx context.Context, id string) (*Package, error)
	ListPackages(ctx context.Context) ([]*Package, error)
	GetVenue(ctx context.Context, id string) (*Venue, error)
	ListVenues(ctx context.Context) ([]*Venue, error)
}

// service implements Service as a validated read-through cache over the
// event-data service client
type service struct {
	client *Client
	cache  cache.Service
	ttl    time.Duration
	logger *logger.Logger
}

// NewService creates a catalog service. The cache is optional; when nil,
// every read goes straight to the event-data service.
func NewService(client *Client, cacheService cache.Service, ttl time.Duration) Service {
	return &service{
		client: client,
		cache:  cacheService,
		ttl:    ttl,
		logger: logger.GetDefault(),
	}
}

// GetPackage returns a shape-validated package, cached by id
func (s *service) GetPackage(ctx context.Context, id string) (*Package, error) {
	var pkg Package
	fetch := func() (interface{}, error) {
		fetched, err := s.client.GetPackage(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := ValidatePackage(fetched); err != nil {
			return nil, fmt.Errorf("package %s rejected at ingestion: %w", id, err)
		}
		return fetched, nil
	}

	if s.cache == nil {
		data, err := fetch()
		if err != nil {
			return nil, err
		}
		return data.(*Package), nil
	}

	key := "catalog:package:" + id
	if err := s.cache.GetOrSet(ctx, key, s.ttl, fetch, &pkg); err != nil {
		return nil, err
	}
	return &pkg, nil
}

// ListPackages returns all shape-valid packages. Invalid records are dropped
// from the listing rather than failing the whole page; every rejection is
// logged so it stays visible in diagnostics.
func (s *service) ListPackages(ctx context.Context) ([]*Package, error) {
	packages, err := s.client.ListPackages(ctx)
	if err != nil {
		return nil, err
	}
	valid := make([]*Package, 0, len(packages))
	for _, pkg := range packages {
		if err := ValidatePackage(pkg); err != nil {
			s.logger.LogCatalogRecordRejected(ctx, "package", pkg.ID, err)
			continue
		}
		valid = append(valid, pkg)
	}
	return valid, nil
}

// GetVenue returns a shape-validated venue, cached by id
func (s *service) GetVenue(ctx context.Context, id string) (*Venue, error) {
	var venue Venue
	fetch := func() (interface{}, error) {
		fetched, err := s.client.GetVenue(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := ValidateVenue(fetched); err != nil {
			return nil, fmt.Errorf("venue %s rejected at ingestion: %w", id, err)
		}
		return fetched, nil
	}

	if s.cache == nil {
		data, err := fetch()
		if err != nil {
			return nil, err
		}
		return data.(*Venue), nil
	}

	key := "catalog:venue:" + id
	if err := s.cache.GetOrSet(ctx, key, s.ttl, fetch, &venue); err != nil {
		return nil, err
	}
	return &venue, nil
}

// ListVenues returns all shape-valid venues, logging every dropped record
func (s *service) ListVenues(ctx context.Context) ([]*Venue, error) {
	venues, err := s.client.ListVenues(ctx)
	if err != nil {
		return nil, err
	}
	valid := make([]*Venue, 0, len(venues))
	for _, v := range venues {
		if err := ValidateVenue(v); err != nil {
			s.logger.LogCatalogRecordRejected(ctx, "venue", v.ID, err)
			continue
		}
		valid = append(valid, v)
	}
	return valid, nil
}
