// Package supplier wraps the hotel distribution platform's REST API.
// Every call is a thin JSON proxy authenticated with an API key header;
// the platform owns all inventory, pricing and booking state.
package supplier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"stayfront/models"

	"go.uber.org/zap"
)

// API is the surface the rest of the application consumes.
type API interface {
	SearchPlaces(ctx context.Context, query string) ([]models.Place, error)
	SearchRates(ctx context.Context, q models.SearchQuery) ([]models.HotelRates, error)
	HotelDetails(ctx context.Context, hotelID string) (*models.HotelInfo, error)
	HotelDetailsBatch(ctx context.Context, hotelIDs []string) (map[string]models.HotelInfo, error)
	HotelReviews(ctx context.Context, hotelID string) ([]models.Review, error)
	Prebook(ctx context.Context, offerID string) (*models.PrebookSession, error)
	Book(ctx context.Context, req models.BookRequest) (*models.BookingRecord, error)
	GetBooking(ctx context.Context, bookingID string) (*models.BookingRecord, error)
	CancelBooking(ctx context.Context, bookingID string) (*models.BookingRecord, error)
}

// Client is the concrete HTTP client for the platform.
type Client struct {
	baseURL    string
	apiKey     string
	sandbox    bool
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient builds a supplier client. The sandbox flag is forwarded to the
// prebook call so downstream checkout can skip the payment step.
func NewClient(baseURL, apiKey string, sandbox bool, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		sandbox:    sandbox,
		httpClient: &http.Client{Timeout: 20 * time.Second},
		logger:     logger,
	}
}

// envelope is the platform's standard response wrapper.
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *apiErrorBody   `json:"error"`
}

type apiErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// do performs one request and decodes the data envelope into out.
// Vendor-level failures come back as *APIError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("supplier: marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("supplier: build request: %w", err)
	}
	req.Header.Set("X-API-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("supplier: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("supplier: read response: %w", err)
	}

	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil && resp.StatusCode < 300 {
			return fmt.Errorf("supplier: decode response: %w", err)
		}
	}

	if resp.StatusCode >= 300 || env.Error != nil {
		apiErr := &APIError{Status: resp.StatusCode}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
		}
		c.logger.Warn("supplier call failed",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.Int("code", apiErr.Code))
		return apiErr
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("supplier: decode data: %w", err)
		}
	}
	return nil
}
