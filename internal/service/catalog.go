package service

import (
	"context"

	"concierge/internal/model"
)

// CatalogStore is the repository surface the portal endpoints consume
type CatalogStore interface {
	ListListings(ctx context.Context, filters *model.ListingFilters, limit, offset int) ([]model.Listing, int, error)
	GetListingByID(ctx context.Context, id int64) (*model.Listing, error)
	CreateInquiry(ctx context.Context, req *model.InquiryRequest) error
}

// Catalog handles the portal's read-only property access and inquiry intake
type Catalog struct {
	store CatalogStore
}

// NewCatalog creates a new catalog service
func NewCatalog(store CatalogStore) *Catalog {
	return &Catalog{store: store}
}

// Listings returns a filtered, paginated page of active listings
func (s *Catalog) Listings(ctx context.Context, filters *model.ListingFilters, limit, offset int) (*model.ListingPage, error) {
	listings, total, err := s.store.ListListings(ctx, filters, limit, offset)
	if err != nil {
		return nil, err
	}
	if listings == nil {
		listings = []model.Listing{}
	}
	return &model.ListingPage{
		Results:  listings,
		Total:    total,
		PageSize: limit,
		Offset:   offset,
		HasMore:  offset+len(listings) < total,
	}, nil
}

// Listing retrieves a single active listing by ID, nil when absent
func (s *Catalog) Listing(ctx context.Context, id int64) (*model.Listing, error) {
	return s.store.GetListingByID(ctx, id)
}

// SubmitInquiry stores a contact-form submission
func (s *Catalog) SubmitInquiry(ctx context.Context, req *model.InquiryRequest) error {
	return s.store.CreateInquiry(ctx, req)
}
