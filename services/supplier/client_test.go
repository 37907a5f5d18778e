package supplier

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "test-key", true, zap.NewNop())
}

func TestSearchPlacesSendsKeyAndDecodesEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("X-API-Key"))
		assert.Equal(t, "/data/places", r.URL.Path)
		assert.Equal(t, "lisbon", r.URL.Query().Get("textQuery"))
		w.Write([]byte(`{"data":[{"placeId":"pl-1","displayName":"Lisbon","country":"PT","location":{"latitude":38.72,"longitude":-9.14}}]}`))
	})

	places, err := client.SearchPlaces(context.Background(), "lisbon")
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, "pl-1", places[0].PlaceID)
	assert.Equal(t, 38.72, places[0].Latitude)
}

func TestErrorEnvelopeBecomesAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":{"code":2003,"message":"rate changed"}}`))
	})

	_, err := client.Prebook(context.Background(), "offer-1")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 2003, apiErr.Code)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "rate changed", apiErr.Message)
}

func TestErrorEnvelopeInsideOKStatus(t *testing.T) {
	// Some endpoints report vendor failures with a 200 and an error body.
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":{"code":2009,"message":"not found"}}`))
	})

	_, err := client.GetBooking(context.Background(), "bk-x")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 2009, apiErr.Code)
}

func TestUserMessageMapping(t *testing.T) {
	cases := []struct {
		name string
		err  APIError
		want string
	}{
		{"card declined", APIError{Code: 2011}, "Your card was declined. Please try a different payment method."},
		{"rate limited code", APIError{Code: 4290}, "Too many requests. Please wait a moment and try again."},
		{"http 404", APIError{Status: 404}, "The requested resource was not found."},
		{"http 429", APIError{Status: 429}, "Too many requests. Please wait a moment and try again."},
		{"server error", APIError{Status: 503, Message: "upstream timeout"}, "The booking service is temporarily unavailable. Please try again shortly."},
		{"unmapped with message", APIError{Status: 422, Message: "odd failure"}, "odd failure"},
		{"unmapped bare", APIError{Status: 422}, "Something went wrong. Please try again."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.err.UserMessage())
		})
	}
}

func TestPrebookSandboxSkipsPaymentSDK(t *testing.T) {
	var gotPayload struct {
		UsePaymentSDK bool `json:"usePaymentSdk"`
	}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.Write([]byte(`{"data":{"prebookId":"pb-1","transactionId":"tx-1","expiresAt":"2026-09-01T12:25:00Z"}}`))
	})

	session, err := client.Prebook(context.Background(), "offer-1")
	require.NoError(t, err)
	assert.False(t, gotPayload.UsePaymentSDK)
	assert.True(t, session.Sandbox)
	assert.Equal(t, "pb-1", session.PrebookID)
	assert.Empty(t, session.PaymentSecret)
	assert.Equal(t, 2026, session.ExpiresAt.Year())
}

func TestHotelDetailsBatchOmitsFailures(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		id := r.URL.Query().Get("hotelId")
		if id == "h-bad" {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":{"code":2009,"message":"unknown hotel"}}`))
			return
		}
		w.Write([]byte(`{"data":{"id":"` + id + `","name":"Hotel ` + id + `","starRating":4}}`))
	})

	ids := []string{"h1", "h2", "h-bad", "h4", "h5", "h6", "h7"}
	results, err := client.HotelDetailsBatch(context.Background(), ids)
	require.NoError(t, err)
	assert.EqualValues(t, len(ids), atomic.LoadInt32(&calls))
	assert.Len(t, results, len(ids)-1)
	assert.NotContains(t, results, "h-bad")
	assert.Equal(t, "Hotel h6", results["h6"].Name)
	assert.Equal(t, 4, results["h1"].Stars)
}

func TestHotelDetailsBatchHonorsCancellation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("hotelId")
		w.Write([]byte(`{"data":{"id":"` + id + `","name":"x"}}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Cancelled before the inter-batch pause, so the second chunk never runs.
	ids := []string{"h1", "h2", "h3", "h4", "h5", "h6"}
	_, err := client.HotelDetailsBatch(ctx, ids)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestGetBookingMapsNestedFields(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookings/bk-1", r.URL.Path)
		w.Write([]byte(`{"data":{
			"bookingId":"bk-1","status":"CONFIRMED","hotelId":"h1",
			"hotel":{"name":"Hotel Aurora"},
			"holder":{"firstName":"Ana","lastName":"Silva","email":"ana@example.com"},
			"checkin":"2026-10-01","checkout":"2026-10-03",
			"bookedRooms":[{"name":"Double Room","boardName":"Breakfast Included"}],
			"price":{"amount":240.5,"currency":"EUR"},
			"cancellationPolicies":{"refundableTag":"RFN","cancelPolicyInfos":[{"cancelTime":"2026-09-28T00:00:00Z"}]}
		}}`))
	})

	rec, err := client.GetBooking(context.Background(), "bk-1")
	require.NoError(t, err)
	assert.Equal(t, "Hotel Aurora", rec.HotelName)
	assert.Equal(t, "Double Room", rec.RoomName)
	assert.Equal(t, 240.5, rec.Total)
	assert.Equal(t, "RFN", rec.RefundableTag)
	assert.Equal(t, "2026-09-28T00:00:00Z", rec.CancelDeadline)
}
