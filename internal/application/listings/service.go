package listings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"carmarket-backend/internal/application/filters"
	"carmarket-backend/internal/domain"
	"carmarket-backend/internal/pkg/validation"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrInvalidListing  = errors.New("invalid listing")
	ErrInvalidVIN      = errors.New("VIN must be 17 characters (A-Z without I, O, Q, and 0-9)")
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Service owns the internal listings table and searches across every origin.
type Service struct {
	DB *gorm.DB
	// External fetchers are queried after the internal table, in order.
	External []Fetcher
	Timeout  time.Duration
	Policy   Policy
}

// ValidationError lists the invalid fields of a listing input.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for f, msg := range e.Fields {
		parts = append(parts, f+": "+msg)
	}
	return "invalid listing: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidListing
}

type ListingInput struct {
	Title        string   `json:"title"`
	Brand        string   `json:"brand"`
	Model        string   `json:"model"`
	Year         int      `json:"year"`
	Price        float64  `json:"price"`
	Mileage      int      `json:"mileage"`
	FuelType     string   `json:"fuelType"`
	Transmission string   `json:"transmission"`
	Power        int      `json:"power"`
	Description  string   `json:"description"`
	Location     string   `json:"location"`
	SellerType   string   `json:"sellerType"`
	SellerName   string   `json:"sellerName"`
	SellerPhone  string   `json:"sellerPhone"`
	SellerID     string   `json:"sellerId"`
	VIN          string   `json:"vin"`
	Images       []string `json:"images"`
	Features     []string `json:"features"`
}

func (in *ListingInput) normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Brand = strings.TrimSpace(in.Brand)
	in.Model = strings.TrimSpace(in.Model)
	in.Location = strings.TrimSpace(in.Location)
	in.SellerName = strings.TrimSpace(in.SellerName)
	if in.VIN != "" {
		in.VIN = validation.NormalizeVIN(in.VIN)
	}
	var features []string
	for _, f := range in.Features {
		if f = strings.TrimSpace(f); f != "" {
			features = append(features, f)
		}
	}
	in.Features = features
}

func (in ListingInput) validate(now time.Time) error {
	if in.VIN != "" && !validation.IsValidVIN(in.VIN) {
		return ErrInvalidVIN
	}
	fields := map[string]string{}
	if in.Title == "" {
		fields["title"] = "required"
	}
	if in.Brand == "" {
		fields["brand"] = "required"
	}
	if in.Model == "" {
		fields["model"] = "required"
	}
	if in.Year < 1900 || in.Year > now.Year()+1 {
		fields["year"] = fmt.Sprintf("must be between 1900 and %d", now.Year()+1)
	}
	if in.Price < 0 {
		fields["price"] = "must not be negative"
	}
	if in.Mileage < 0 {
		fields["mileage"] = "must not be negative"
	}
	if in.Power < 0 {
		fields["power"] = "must not be negative"
	}
	if !domain.ValidFuelType(in.FuelType) {
		fields["fuelType"] = "must be one of " + strings.Join(domain.FuelTypes, ", ")
	}
	if !domain.ValidTransmission(in.Transmission) {
		fields["transmission"] = "must be one of " + strings.Join(domain.TransmissionTypes, ", ")
	}
	if !domain.ValidSellerType(in.SellerType) {
		fields["sellerType"] = "must be one of " + strings.Join(domain.SellerTypes, ", ")
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func (in ListingInput) apply(l *domain.Listing) {
	l.Title = in.Title
	l.Brand = in.Brand
	l.Model = in.Model
	l.Year = in.Year
	l.Price = in.Price
	l.Mileage = in.Mileage
	l.FuelType = in.FuelType
	l.Transmission = in.Transmission
	l.Power = in.Power
	l.Description = in.Description
	l.Location = in.Location
	l.SellerType = in.SellerType
	l.SellerName = in.SellerName
	l.SellerPhone = in.SellerPhone
	l.SellerID = in.SellerID
	l.VIN = in.VIN
	l.Images = domain.StringList(in.Images)
	l.Features = domain.StringList(in.Features)
}

func (s *Service) Create(ctx context.Context, in ListingInput) (*domain.Listing, error) {
	in.normalize()
	if err := in.validate(time.Now()); err != nil {
		return nil, err
	}
	listing := &domain.Listing{Source: domain.OriginInternal}
	in.apply(listing)
	if err := s.DB.WithContext(ctx).Create(listing).Error; err != nil {
		return nil, fmt.Errorf("failed to create listing: %w", err)
	}
	return listing, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Listing, error) {
	var listing domain.Listing
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&listing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return &listing, nil
}

// List returns internal listings, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Listing, error) {
	var listings []domain.Listing
	if err := s.DB.WithContext(ctx).Order("created_at DESC").Order("id").Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch listings: %w", err)
	}
	return listings, nil
}

// Update replaces every editable field of an internal listing.
func (s *Service) Update(ctx context.Context, id string, in ListingInput) (*domain.Listing, error) {
	in.normalize()
	if err := in.validate(time.Now()); err != nil {
		return nil, err
	}
	listing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	in.apply(listing)
	if err := s.DB.WithContext(ctx).Save(listing).Error; err != nil {
		return nil, fmt.Errorf("failed to update listing: %w", err)
	}
	return listing, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	res := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&domain.Listing{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrListingNotFound
	}
	return nil
}

// Seed inserts listings when the table is empty and reports how many were written.
func (s *Service) Seed(ctx context.Context, listings []domain.Listing) (int, error) {
	var n int64
	if err := s.DB.WithContext(ctx).Model(&domain.Listing{}).Count(&n).Error; err != nil {
		return 0, err
	}
	if n > 0 || len(listings) == 0 {
		return 0, nil
	}
	for i := range listings {
		listings[i].Source = domain.OriginInternal
	}
	if err := s.DB.WithContext(ctx).CreateInBatches(listings, 50).Error; err != nil {
		return 0, fmt.Errorf("failed to seed listings: %w", err)
	}
	log.Info().Int("count", len(listings)).Msg("Seeded internal catalog")
	return len(listings), nil
}

// InternalFetcher exposes the internal table as an aggregation source.
type InternalFetcher struct {
	Service *Service
}

func (f *InternalFetcher) Origin() domain.Origin {
	return domain.OriginInternal
}

func (f *InternalFetcher) Fetch(ctx context.Context) ([]domain.Listing, error) {
	return f.Service.List(ctx)
}

// Fetchers returns the internal source followed by the external ones.
func (s *Service) Fetchers() []Fetcher {
	return append([]Fetcher{&InternalFetcher{Service: s}}, s.External...)
}

type SearchState string

const (
	StateResults SearchState = "results"
	StateEmpty   SearchState = "empty"
	StateFailed  SearchState = "failed"
)

type SearchOptions struct {
	Page   int
	Limit  int
	Policy Policy
}

type SourceStatus struct {
	Origin domain.Origin `json:"origin"`
	OK     bool          `json:"ok"`
	Count  int           `json:"count"`
	Error  string        `json:"error,omitempty"`
}

// SearchResult separates a search with no matches (empty) from one whose fetch failed (failed).
type SearchResult struct {
	State      SearchState      `json:"state"`
	Listings   []domain.Listing `json:"listings"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"totalPages"`
	Sources    []SourceStatus   `json:"sources"`
	Error      string           `json:"error,omitempty"`
}

// Search aggregates every origin, filters with c and pages the matches.
func (s *Service) Search(ctx context.Context, c domain.Criteria, opts SearchOptions) SearchResult {
	page, limit := opts.Page, opts.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	policy := opts.Policy
	if policy == "" {
		policy = s.Policy
	}

	results := Aggregate(ctx, s.Timeout, s.Fetchers()...)
	out := SearchResult{Page: page, Limit: limit, Listings: []domain.Listing{}, Sources: make([]SourceStatus, len(results))}
	for i, r := range results {
		st := SourceStatus{Origin: r.Origin, OK: r.Err == nil, Count: len(r.Listings)}
		if r.Err != nil {
			st.Error = r.Err.Error()
		}
		out.Sources[i] = st
	}

	pool, err := Combine(results, policy)
	if err != nil {
		out.State = StateFailed
		out.Error = err.Error()
		return out
	}

	matched := filters.Apply(pool, c)
	out.Total = len(matched)
	if out.Total == 0 {
		out.State = StateEmpty
		return out
	}
	out.State = StateResults
	out.TotalPages = (out.Total + limit - 1) / limit
	if page > out.TotalPages {
		return out
	}
	start := (page - 1) * limit
	end := start + limit
	if end > out.Total {
		end = out.Total
	}
	out.Listings = matched[start:end]
	return out
}
