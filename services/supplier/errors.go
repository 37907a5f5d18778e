package supplier

import "fmt"

// APIError is a vendor-level failure: a non-2xx HTTP status and/or a
// numeric error code from the platform's error envelope.
type APIError struct {
	Code    int
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("supplier error %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("supplier http %d: %s", e.Status, e.Message)
}

// CodeBookingNotFound is the platform's numeric code for an unknown
// booking id. It can arrive inside a 200 envelope.
const CodeBookingNotFound = 2009

// codeMessages maps the platform's checkout error codes to user-facing strings.
var codeMessages = map[int]string{
	2001: "Your booking session has expired. Please start again.",
	2002: "This room is no longer available. Please choose another room.",
	2003: "The price for this room has changed. Please review the new rate.",
	2004: "The payment could not be completed. Please try again.",
	2005: "Payment authentication failed. Please verify your card details.",
	2006: "Some guest details are invalid. Please check your information.",
	2007: "A booking with these details already exists.",
	2008: "This booking has already been confirmed.",
	2009: "We could not find this booking.",
	2010: "The payment was rejected due to insufficient funds.",
	2011: "Your card was declined. Please try a different payment method.",
	2012: "The payment session expired before completion. Please try again.",
	2013: "The hotel rejected this reservation. Please choose another room.",
	2014: "The booking could not be confirmed. You have not been charged.",
	4290: "Too many requests. Please wait a moment and try again.",
}

// statusMessages covers known HTTP statuses without a vendor code.
var statusMessages = map[int]string{
	400: "The request was invalid. Please review your details and try again.",
	401: "We could not authorize this request. Please refresh and try again.",
	403: "We could not authorize this request. Please refresh and try again.",
	404: "The requested resource was not found.",
	429: "Too many requests. Please wait a moment and try again.",
}

// UserMessage translates the error into a string safe to show a customer.
// Unmapped errors fall back to the raw vendor message, then a generic string.
func (e *APIError) UserMessage() string {
	if msg, ok := codeMessages[e.Code]; ok {
		return msg
	}
	if msg, ok := statusMessages[e.Status]; ok {
		return msg
	}
	if e.Status >= 500 {
		return "The booking service is temporarily unavailable. Please try again shortly."
	}
	if e.Message != "" {
		return e.Message
	}
	return "Something went wrong. Please try again."
}
