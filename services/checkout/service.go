// Package checkout drives the two-step booking flow: guest details and
// rate lock first, then the embedded payment step. Sandbox prebooks skip
// payment and book immediately.
package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"stayfront/models"
	"stayfront/services/supplier"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const sessionKeyPrefix = "checkout:"

// ErrSessionNotFound is returned when a checkout session id is unknown
// or its rate-lock window has lapsed.
var ErrSessionNotFound = errors.New("checkout session not found or expired")

// FlowError carries a user-facing message mapped from a vendor failure.
type FlowError struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
}

func (e *FlowError) Error() string { return e.Message }

// GuestResult is what the guest-step submission returns: either the next
// step with payment credentials, or (sandbox) the finished booking.
type GuestResult struct {
	Session *models.CheckoutSession `json:"session"`
	Booking *models.BookingRecord   `json:"booking,omitempty"`
}

// Service is the checkout state machine.
type Service interface {
	Create(ctx context.Context, draft models.BookingDraft) (*models.CheckoutSession, error)
	Get(ctx context.Context, sessionID string) (*models.CheckoutSession, error)
	SubmitGuest(ctx context.Context, sessionID string, guest models.GuestDetails) (*GuestResult, error)
	Back(ctx context.Context, sessionID string) (*models.CheckoutSession, error)
	Confirm(ctx context.Context, sessionID string) (*models.BookingRecord, error)
}

// SessionStore holds checkout sessions for the rate-lock window.
type SessionStore interface {
	Load(ctx context.Context, sessionID string) (*models.CheckoutSession, error)
	Save(ctx context.Context, session *models.CheckoutSession) error
}

// RedisSessionStore is the production store. TTL expiry doubles as the
// session's lifetime bound.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func (s *RedisSessionStore) Load(ctx context.Context, sessionID string) (*models.CheckoutSession, error) {
	data, err := s.Client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("checkout: load session: %w", err)
	}
	var session models.CheckoutSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("checkout: parse session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, session *models.CheckoutSession) error {
	b, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("checkout: marshal session: %w", err)
	}
	ttl := s.TTL
	if ttl <= 0 {
		ttl = 25 * time.Minute
	}
	if err := s.Client.Set(ctx, sessionKeyPrefix+session.ID, b, ttl).Err(); err != nil {
		return fmt.Errorf("checkout: store session: %w", err)
	}
	return nil
}

type DefaultCheckoutService struct {
	Supplier supplier.API
	Sessions SessionStore
	Payments PaymentVerifier
	Logger   *zap.Logger
}

// Create opens a session on the guest step. A populated draft is the
// precondition for checkout being reachable at all.
func (s *DefaultCheckoutService) Create(ctx context.Context, draft models.BookingDraft) (*models.CheckoutSession, error) {
	if draft.OfferID == "" || draft.HotelID == "" {
		return nil, &FlowError{Status: http.StatusBadRequest, Message: "No room selected. Please pick a room first."}
	}

	session := &models.CheckoutSession{
		ID:        uuid.New().String(),
		Step:      models.StepGuest,
		Draft:     draft,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.put(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *DefaultCheckoutService) Get(ctx context.Context, sessionID string) (*models.CheckoutSession, error) {
	return s.load(ctx, sessionID)
}

// SubmitGuest validates the guest form and locks the rate. If the vendor
// flags the environment as sandbox the booking is finalized right here
// and the payment step never happens.
func (s *DefaultCheckoutService) SubmitGuest(ctx context.Context, sessionID string, guest models.GuestDetails) (*GuestResult, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step == models.StepDone {
		return nil, &FlowError{Status: http.StatusConflict, Message: "This booking has already been completed."}
	}

	if err := ValidateGuest(guest); err != nil {
		return nil, err
	}
	session.Guest = &guest

	prebook, err := s.Supplier.Prebook(ctx, session.Draft.OfferID)
	if err != nil {
		return nil, s.mapVendorError(err)
	}
	session.Prebook = prebook

	if prebook.Sandbox {
		// Sandbox rates carry no payment secret; book immediately.
		booking, err := s.book(ctx, session)
		if err != nil {
			return nil, err
		}
		return &GuestResult{Session: session, Booking: booking}, nil
	}

	session.Step = models.StepPayment
	if err := s.put(ctx, session); err != nil {
		return nil, err
	}
	return &GuestResult{Session: session}, nil
}

// Back returns the flow from payment to the guest step. Only the payment
// secret is cleared; the prebook id keeps its last value so a stale
// secret can never be silently resubmitted.
func (s *DefaultCheckoutService) Back(ctx context.Context, sessionID string) (*models.CheckoutSession, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepPayment {
		return session, nil
	}

	session.Step = models.StepGuest
	if session.Prebook != nil {
		session.Prebook.PaymentSecret = ""
	}
	if err := s.put(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Confirm verifies the payment and finalizes the booking.
func (s *DefaultCheckoutService) Confirm(ctx context.Context, sessionID string) (*models.BookingRecord, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepPayment || session.Prebook == nil || session.Guest == nil {
		return nil, &FlowError{Status: http.StatusConflict, Message: "This booking is not ready to be confirmed."}
	}

	if s.Payments != nil {
		if err := s.Payments.Verify(ctx, session.Prebook.TransactionID); err != nil {
			s.Logger.Warn("payment verification failed",
				zap.String("sessionId", sessionID), zap.Error(err))
			return nil, &FlowError{Status: http.StatusPaymentRequired, Message: "The payment has not been completed yet."}
		}
	}

	return s.book(ctx, session)
}

func (s *DefaultCheckoutService) book(ctx context.Context, session *models.CheckoutSession) (*models.BookingRecord, error) {
	booking, err := s.Supplier.Book(ctx, models.BookRequest{
		PrebookID:     session.Prebook.PrebookID,
		TransactionID: session.Prebook.TransactionID,
		Guest:         *session.Guest,
	})
	if err != nil {
		return nil, s.mapVendorError(err)
	}

	session.Step = models.StepDone
	session.BookingID = booking.BookingID
	session.Prebook.PaymentSecret = ""
	if err := s.put(ctx, session); err != nil {
		s.Logger.Warn("failed to persist completed session", zap.Error(err))
	}

	s.Logger.Info("booking confirmed",
		zap.String("sessionId", session.ID),
		zap.String("bookingId", booking.BookingID))
	return booking, nil
}

// mapVendorError converts supplier failures into the fixed user-facing
// message table. Anything unexpected becomes a generic 502.
func (s *DefaultCheckoutService) mapVendorError(err error) error {
	var apiErr *supplier.APIError
	if errors.As(err, &apiErr) {
		status := apiErr.Status
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		return &FlowError{Status: status, Message: apiErr.UserMessage()}
	}
	s.Logger.Error("unexpected supplier failure", zap.Error(err))
	return &FlowError{Status: http.StatusBadGateway, Message: "Something went wrong. Please try again."}
}

func (s *DefaultCheckoutService) load(ctx context.Context, sessionID string) (*models.CheckoutSession, error) {
	return s.Sessions.Load(ctx, sessionID)
}

func (s *DefaultCheckoutService) put(ctx context.Context, session *models.CheckoutSession) error {
	return s.Sessions.Save(ctx, session)
}
