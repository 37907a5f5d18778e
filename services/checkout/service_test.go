package checkout

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"stayfront/models"
	"stayfront/services/supplier"
	"stayfront/services/supplier/suppliertest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memoryStore keeps sessions in a map for tests.
type memoryStore struct {
	sessions map[string]models.CheckoutSession
}

func newMemoryStore() *memoryStore {
	return &memoryStore{sessions: make(map[string]models.CheckoutSession)}
}

func (m *memoryStore) Load(_ context.Context, sessionID string) (*models.CheckoutSession, error) {
	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	copied := s
	return &copied, nil
}

func (m *memoryStore) Save(_ context.Context, session *models.CheckoutSession) error {
	m.sessions[session.ID] = *session
	return nil
}

type okVerifier struct{}

func (okVerifier) Verify(context.Context, string) error { return nil }

type failVerifier struct{}

func (failVerifier) Verify(context.Context, string) error { return errors.New("unpaid") }

func draft() models.BookingDraft {
	return models.BookingDraft{
		OfferID:   "offer-1",
		HotelID:   "hotel-1",
		HotelName: "Hotel Aurora",
		RoomName:  "Double Room",
		CheckIn:   "2026-10-01",
		CheckOut:  "2026-10-03",
		Adults:    2,
		Total:     240.50,
		Currency:  "EUR",
	}
}

func newService(sup supplier.API, store SessionStore, pay PaymentVerifier) *DefaultCheckoutService {
	return &DefaultCheckoutService{
		Supplier: sup,
		Sessions: store,
		Payments: pay,
		Logger:   zap.NewNop(),
	}
}

func TestCreateRequiresDraft(t *testing.T) {
	svc := newService(&suppliertest.Fake{}, newMemoryStore(), okVerifier{})

	_, err := svc.Create(context.Background(), models.BookingDraft{})
	var fErr *FlowError
	require.True(t, errors.As(err, &fErr))
	assert.Equal(t, http.StatusBadRequest, fErr.Status)
}

func TestCreateOpensGuestStep(t *testing.T) {
	svc := newService(&suppliertest.Fake{}, newMemoryStore(), okVerifier{})

	session, err := svc.Create(context.Background(), draft())
	require.NoError(t, err)
	assert.Equal(t, models.StepGuest, session.Step)
	assert.NotEmpty(t, session.ID)

	loaded, err := svc.Get(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, "offer-1", loaded.Draft.OfferID)
}

func TestSubmitGuestAdvancesToPayment(t *testing.T) {
	sup := &suppliertest.Fake{
		PrebookFn: func(_ context.Context, offerID string) (*models.PrebookSession, error) {
			assert.Equal(t, "offer-1", offerID)
			return &models.PrebookSession{
				PrebookID:     "pb-1",
				TransactionID: "pi_123",
				PaymentSecret: "pi_123_secret_abc",
				Sandbox:       false,
				ExpiresAt:     time.Now().Add(20 * time.Minute),
			}, nil
		},
	}
	svc := newService(sup, newMemoryStore(), okVerifier{})

	session, err := svc.Create(context.Background(), draft())
	require.NoError(t, err)

	result, err := svc.SubmitGuest(context.Background(), session.ID, validGuest())
	require.NoError(t, err)
	assert.Nil(t, result.Booking)
	assert.Equal(t, models.StepPayment, result.Session.Step)
	assert.Equal(t, "pi_123_secret_abc", result.Session.Prebook.PaymentSecret)
}

func TestSandboxPrebookBooksImmediately(t *testing.T) {
	booked := false
	sup := &suppliertest.Fake{
		PrebookFn: func(context.Context, string) (*models.PrebookSession, error) {
			return &models.PrebookSession{PrebookID: "pb-sandbox", Sandbox: true}, nil
		},
		BookFn: func(_ context.Context, req models.BookRequest) (*models.BookingRecord, error) {
			booked = true
			assert.Equal(t, "pb-sandbox", req.PrebookID)
			return &models.BookingRecord{BookingID: "bk-1", Status: "CONFIRMED"}, nil
		},
	}
	svc := newService(sup, newMemoryStore(), failVerifier{}) // payment must never run

	session, err := svc.Create(context.Background(), draft())
	require.NoError(t, err)

	result, err := svc.SubmitGuest(context.Background(), session.ID, validGuest())
	require.NoError(t, err)
	require.True(t, booked)
	require.NotNil(t, result.Booking)
	assert.Equal(t, "bk-1", result.Booking.BookingID)
	assert.Equal(t, models.StepDone, result.Session.Step)
}

func TestSubmitGuestBlocksInvalidForm(t *testing.T) {
	sup := &suppliertest.Fake{
		PrebookFn: func(context.Context, string) (*models.PrebookSession, error) {
			t.Fatal("prebook must not be called for invalid guest data")
			return nil, nil
		},
	}
	svc := newService(sup, newMemoryStore(), okVerifier{})

	session, err := svc.Create(context.Background(), draft())
	require.NoError(t, err)

	guest := validGuest()
	guest.Email = "fake@mailinator.com"
	_, err = svc.SubmitGuest(context.Background(), session.ID, guest)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "email", vErr.Field)
}

func TestVendorErrorMapping(t *testing.T) {
	sup := &suppliertest.Fake{
		PrebookFn: func(context.Context, string) (*models.PrebookSession, error) {
			return nil, &supplier.APIError{Code: 2011, Status: 400, Message: "card_declined"}
		},
	}
	svc := newService(sup, newMemoryStore(), okVerifier{})

	session, err := svc.Create(context.Background(), draft())
	require.NoError(t, err)

	_, err = svc.SubmitGuest(context.Background(), session.ID, validGuest())
	var fErr *FlowError
	require.True(t, errors.As(err, &fErr))
	assert.Equal(t, "Your card was declined. Please try a different payment method.", fErr.Message)
}

func TestBackClearsPaymentSecretOnly(t *testing.T) {
	sup := &suppliertest.Fake{
		PrebookFn: func(context.Context, string) (*models.PrebookSession, error) {
			return &models.PrebookSession{
				PrebookID:     "pb-1",
				TransactionID: "pi_123",
				PaymentSecret: "pi_123_secret_abc",
			}, nil
		},
	}
	svc := newService(sup, newMemoryStore(), okVerifier{})

	session, err := svc.Create(context.Background(), draft())
	require.NoError(t, err)
	_, err = svc.SubmitGuest(context.Background(), session.ID, validGuest())
	require.NoError(t, err)

	back, err := svc.Back(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StepGuest, back.Step)
	assert.Empty(t, back.Prebook.PaymentSecret)
	assert.Equal(t, "pb-1", back.Prebook.PrebookID)
}

func TestConfirmRequiresCompletedPayment(t *testing.T) {
	sup := &suppliertest.Fake{
		PrebookFn: func(context.Context, string) (*models.PrebookSession, error) {
			return &models.PrebookSession{PrebookID: "pb-1", TransactionID: "pi_123", PaymentSecret: "sec"}, nil
		},
		BookFn: func(context.Context, models.BookRequest) (*models.BookingRecord, error) {
			return &models.BookingRecord{BookingID: "bk-9", Status: "CONFIRMED"}, nil
		},
	}

	store := newMemoryStore()
	svc := newService(sup, store, failVerifier{})

	session, err := svc.Create(context.Background(), draft())
	require.NoError(t, err)
	_, err = svc.SubmitGuest(context.Background(), session.ID, validGuest())
	require.NoError(t, err)

	_, err = svc.Confirm(context.Background(), session.ID)
	var fErr *FlowError
	require.True(t, errors.As(err, &fErr))
	assert.Equal(t, http.StatusPaymentRequired, fErr.Status)

	// With a settled payment the booking goes through.
	svc.Payments = okVerifier{}
	booking, err := svc.Confirm(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, "bk-9", booking.BookingID)
}

func TestConfirmRejectsGuestStep(t *testing.T) {
	svc := newService(&suppliertest.Fake{}, newMemoryStore(), okVerifier{})

	session, err := svc.Create(context.Background(), draft())
	require.NoError(t, err)

	_, err = svc.Confirm(context.Background(), session.ID)
	var fErr *FlowError
	require.True(t, errors.As(err, &fErr))
	assert.Equal(t, http.StatusConflict, fErr.Status)
}

func TestUnknownSessionNotFound(t *testing.T) {
	svc := newService(&suppliertest.Fake{}, newMemoryStore(), okVerifier{})

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
