package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

// Client fetches package and venue records from the remote event-data service
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a catalog client for the given event-data service base URL
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Wire shapes of the event-data service. Components arrive with an
// is_venue_inclusion flag and an optional included field (absent means
// included); both are normalized into the Source/Included model here.

type componentPayload struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	Price            decimal.Decimal `json:"price"`
	Category         string          `json:"category"`
	IsVenueInclusion bool            `json:"is_venue_inclusion"`
	Included         *bool           `json:"included"`
	IsRemovable      *bool           `json:"is_removable"`
	SubComponents    []SubComponent  `json:"sub_components"`
	VenueOptions     []VenueChoice   `json:"venue_options"`
}

type packagePayload struct {
	ID            string             `json:"id"`
	Title         string             `json:"title"`
	NominalPrice  *decimal.Decimal   `json:"nominal_price"`
	GuestCapacity int                `json:"guest_capacity"`
	Components    []componentPayload `json:"components"`
}

type venuePayload struct {
	ID         string           `json:"id"`
	Title      string           `json:"title"`
	Price      decimal.Decimal  `json:"price"`
	Inclusions []VenueInclusion `json:"inclusions"`
}

func (p packagePayload) toPackage() *Package {
	pkg := &Package{
		ID:            p.ID,
		Title:         p.Title,
		NominalPrice:  p.NominalPrice,
		GuestCapacity: p.GuestCapacity,
		Components:    make([]Component, 0, len(p.Components)),
	}
	for _, c := range p.Components {
		source := SourceCatalog
		if c.IsVenueInclusion {
			source = SourceVenueLocked
		}
		included := true
		if c.Included != nil {
			included = *c.Included
		}
		removable := !c.IsVenueInclusion
		if c.IsRemovable != nil {
			removable = *c.IsRemovable && !c.IsVenueInclusion
		}
		pkg.Components = append(pkg.Components, Component{
			ID:            c.ID,
			Name:          c.Name,
			Description:   c.Description,
			Price:         c.Price,
			Category:      Category(c.Category),
			Source:        source,
			Included:      included,
			Removable:     removable,
			SubComponents: c.SubComponents,
			VenueOptions:  c.VenueOptions,
		})
	}
	return pkg
}

func (v venuePayload) toVenue() *Venue {
	return &Venue{
		ID:         v.ID,
		Title:      v.Title,
		Price:      v.Price,
		Inclusions: v.Inclusions,
	}
}

// GetPackage fetches a single package by id
func (c *Client) GetPackage(ctx context.Context, id string) (*Package, error) {
	var payload packagePayload
	if err := c.getJSON(ctx, "/packages/"+url.PathEscape(id), &payload); err != nil {
		return nil, fmt.Errorf("failed to fetch package %s: %w", id, err)
	}
	return payload.toPackage(), nil
}

// ListPackages fetches all published packages
func (c *Client) ListPackages(ctx context.Context) ([]*Package, error) {
	var payloads []packagePayload
	if err := c.getJSON(ctx, "/packages", &payloads); err != nil {
		return nil, fmt.Errorf("failed to fetch packages: %w", err)
	}
	packages := make([]*Package, 0, len(payloads))
	for _, p := range payloads {
		packages = append(packages, p.toPackage())
	}
	return packages, nil
}

// GetVenue fetches a single venue by id
func (c *Client) GetVenue(ctx context.Context, id string) (*Venue, error) {
	var payload venuePayload
	if err := c.getJSON(ctx, "/venues/"+url.PathEscape(id), &payload); err != nil {
		return nil, fmt.Errorf("failed to fetch venue %s: %w", id, err)
	}
	return payload.toVenue(), nil
}

// ListVenues fetches all published venues
func (c *Client) ListVenues(ctx context.Context) ([]*Venue, error) {
	var payloads []venuePayload
	if err := c.getJSON(ctx, "/venues", &payloads); err != nil {
		return nil, fmt.Errorf("failed to fetch venues: %w", err)
	}
	venues := make([]*Venue, 0, len(payloads))
	for _, v := range payloads {
		venues = append(venues, v.toVenue())
	}
	return venues, nil
}

func (c *Client) getJSON(ctx context.Context, path string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("event-data service returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// ErrNotFound is returned when the event-data service has no such record
var ErrNotFound = fmt.Errorf("catalog record not found")
