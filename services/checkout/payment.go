package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// PaymentVerifier confirms that the customer's payment went through
// before the booking is finalized. The vendor remains merchant of
// record; this is only a status check on its payment intent.
type PaymentVerifier interface {
	Verify(ctx context.Context, transactionID string) error
}

// StripeVerifier checks the payment intent behind the vendor's embedded
// payment form. Relies on stripe.Key being set at startup.
type StripeVerifier struct{}

func (StripeVerifier) Verify(ctx context.Context, transactionID string) error {
	if transactionID == "" {
		return errors.New("missing transaction id")
	}

	params := &stripe.PaymentIntentParams{}
	params.Context = ctx
	pi, err := paymentintent.Get(transactionID, params)
	if err != nil {
		return fmt.Errorf("retrieve payment intent: %w", err)
	}

	switch pi.Status {
	case stripe.PaymentIntentStatusSucceeded,
		stripe.PaymentIntentStatusRequiresCapture,
		stripe.PaymentIntentStatusProcessing:
		return nil
	default:
		return fmt.Errorf("payment intent in state %s", pi.Status)
	}
}
