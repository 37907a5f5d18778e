package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stayfront/models"
	"stayfront/services/trip"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubSearchService struct {
	resp models.SearchResponse
}

func (s *stubSearchService) Search(context.Context, models.SearchRequest) models.SearchResponse {
	return s.resp
}

type stubTripService struct {
	lookup func(ctx context.Context, id, lastName string) (*models.BookingRecord, error)
	cancel func(ctx context.Context, id, lastName string) (*models.BookingRecord, error)
}

func (s *stubTripService) Lookup(ctx context.Context, id, lastName string) (*models.BookingRecord, error) {
	return s.lookup(ctx, id, lastName)
}

func (s *stubTripService) Cancel(ctx context.Context, id, lastName string) (*models.BookingRecord, error) {
	return s.cancel(ctx, id, lastName)
}

func performJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSearchRejectsMalformedBody(t *testing.T) {
	h := NewSearchHandler(&stubSearchService{}, zap.NewNop())
	r := gin.New()
	r.POST("/api/search", h.Search)

	w := performJSON(r, http.MethodPost, "/api/search", "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchRequiresDestination(t *testing.T) {
	h := NewSearchHandler(&stubSearchService{}, zap.NewNop())
	r := gin.New()
	r.POST("/api/search", h.Search)

	w := performJSON(r, http.MethodPost, "/api/search", `{"query":{"checkin":"2026-10-01","checkout":"2026-10-03"}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchAlwaysRespondsOKWithListing(t *testing.T) {
	// The service degrades upstream failures to an empty listing; the
	// handler must pass that through as a plain 200.
	h := NewSearchHandler(&stubSearchService{resp: models.SearchResponse{Hotels: []models.HotelResult{}}}, zap.NewNop())
	r := gin.New()
	r.POST("/api/search", h.Search)

	w := performJSON(r, http.MethodPost, "/api/search", `{"query":{"placeId":"pl-1","checkin":"2026-10-01","checkout":"2026-10-03"}}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Hotels)
	assert.Empty(t, resp.Hotels)
}

func tripRouter(svc *stubTripService) *gin.Engine {
	h := NewTripHandler(svc, zap.NewNop())
	r := gin.New()
	r.GET("/api/bookings/:id", h.GetBooking)
	r.POST("/api/bookings/:id/cancel", h.CancelBooking)
	return r
}

func TestGetBookingRequiresLastName(t *testing.T) {
	r := tripRouter(&stubTripService{})
	w := performJSON(r, http.MethodGet, "/api/bookings/bk-1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetBookingNotFound(t *testing.T) {
	r := tripRouter(&stubTripService{
		lookup: func(context.Context, string, string) (*models.BookingRecord, error) {
			return nil, trip.ErrBookingNotFound
		},
	})
	w := performJSON(r, http.MethodGet, "/api/bookings/bk-1?lastName=Wrong", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetBookingSuccess(t *testing.T) {
	r := tripRouter(&stubTripService{
		lookup: func(_ context.Context, id, lastName string) (*models.BookingRecord, error) {
			assert.Equal(t, "bk-1", id)
			assert.Equal(t, "Silva", lastName)
			return &models.BookingRecord{BookingID: "bk-1", Status: "CONFIRMED"}, nil
		},
	})
	w := performJSON(r, http.MethodGet, "/api/bookings/bk-1?lastName=Silva", "")
	require.Equal(t, http.StatusOK, w.Code)

	var rec models.BookingRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.Equal(t, "CONFIRMED", rec.Status)
}

func TestCancelBookingConflictWhenIneligible(t *testing.T) {
	r := tripRouter(&stubTripService{
		cancel: func(context.Context, string, string) (*models.BookingRecord, error) {
			return nil, trip.ErrNotCancellable
		},
	})
	w := performJSON(r, http.MethodPost, "/api/bookings/bk-1/cancel", `{"lastName":"Silva"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCancelBookingRequiresLastName(t *testing.T) {
	r := tripRouter(&stubTripService{})
	w := performJSON(r, http.MethodPost, "/api/bookings/bk-1/cancel", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
