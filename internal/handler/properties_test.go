package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"concierge/internal/model"
	"concierge/internal/service"

	"github.com/gin-gonic/gin"
)

type stubCatalogStore struct {
	listings  []model.Listing
	inquiries []model.InquiryRequest
}

func (s *stubCatalogStore) ListListings(ctx context.Context, filters *model.ListingFilters, limit, offset int) ([]model.Listing, int, error) {
	end := offset + limit
	if end > len(s.listings) {
		end = len(s.listings)
	}
	if offset > len(s.listings) {
		offset = len(s.listings)
	}
	return s.listings[offset:end], len(s.listings), nil
}

func (s *stubCatalogStore) GetListingByID(ctx context.Context, id int64) (*model.Listing, error) {
	for i := range s.listings {
		if s.listings[i].ID == id {
			return &s.listings[i], nil
		}
	}
	return nil, nil
}

func (s *stubCatalogStore) CreateInquiry(ctx context.Context, req *model.InquiryRequest) error {
	s.inquiries = append(s.inquiries, *req)
	return nil
}

func newPortalRouter(store *stubCatalogStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	catalog := service.NewCatalog(store)

	router := gin.New()
	props := NewPropertyHandler(catalog, 20, 100)
	router.GET("/api/v1/properties", props.List)
	router.GET("/api/v1/properties/:id", props.Get)
	router.POST("/api/v1/inquiries", NewInquiryHandler(catalog).Submit)
	return router
}

func TestPropertyHandler_List(t *testing.T) {
	store := &stubCatalogStore{listings: []model.Listing{
		{ID: 1, Title: "Lake View Villa", Type: "House", Location: "Pune"},
		{ID: 2, Title: "City Center Flat", Type: "Apartment", Location: "Mumbai"},
	}}
	router := newPortalRouter(store)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/properties", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	var page model.ListingPage
	if err := json.Unmarshal(w.Body.Bytes(), &page); err != nil {
		t.Fatalf("Failed to decode page: %v", err)
	}
	if page.Total != 2 || len(page.Results) != 2 || page.HasMore {
		t.Errorf("Unexpected page: total=%d results=%d has_more=%v", page.Total, len(page.Results), page.HasMore)
	}
}

func TestPropertyHandler_Get(t *testing.T) {
	store := &stubCatalogStore{listings: []model.Listing{
		{ID: 7, Title: "Lake View Villa", Type: "House", Location: "Pune"},
	}}
	router := newPortalRouter(store)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/properties/7", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/properties/999", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown listing, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/properties/abc", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for non-numeric id, got %d", w.Code)
	}
}

func TestInquiryHandler_Submit(t *testing.T) {
	store := &stubCatalogStore{}
	router := newPortalRouter(store)

	body := `{"name": "Asha", "email": "asha@example.com", "message": "Interested in the villa"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/inquiries", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(store.inquiries) != 1 || store.inquiries[0].Name != "Asha" {
		t.Error("Inquiry should be stored as submitted")
	}

	// Missing required fields
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/inquiries", strings.NewReader(`{"name": "x"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for incomplete inquiry, got %d", w.Code)
	}
}
