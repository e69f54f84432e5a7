package marketerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error classes surfaced to callers of the client SDK
var (
	ErrValidation     = errors.New("validation failed")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrSessionExpired = errors.New("session expired")
	ErrNetwork        = errors.New("network error")
	ErrBusinessRule   = errors.New("request rejected")
	ErrNotFound       = errors.New("not found")
	ErrServer         = errors.New("server error")
)

// bidding and payment rules
var (
	ErrInvalidBid          = errors.New("invalid bid")
	ErrBidTooLow           = errors.New("bid amount too low")
	ErrBidInFlight         = errors.New("a bid for this auction is already being submitted")
	ErrCheckoutInFlight    = errors.New("this payment is already being submitted")
	ErrEntryFeeRequired    = errors.New("entry fee must be paid before bidding")
	ErrOwnAuction          = errors.New("cannot bid on your own auction")
	ErrAuctionNotActive    = errors.New("auction is not accepting bids")
	ErrNotWinner           = errors.New("only the winning bidder can check out")
	ErrPaymentNotConfirmed = errors.New("payment could not be verified")
	ErrAlreadyPaid         = errors.New("entry fee already paid")
)

// image upload rules
var (
	ErrTooManyImages  = errors.New("too many images")
	ErrImageTooLarge  = errors.New("image too large")
	ErrImageType      = errors.New("unsupported image type")
	ErrDuplicateImage = errors.New("image already added")
	ErrNoImages       = errors.New("at least one image is required")
)

// repository-level errors used by the sandbox backend
var (
	ErrUserExists      = errors.New("user already exists")
	ErrBadCredentials  = errors.New("invalid email or password")
	ErrAuctionNotFound = errors.New("auction not found")
	ErrNoBids          = errors.New("no bids found for auction")
)

const networkMessage = "network error, please try again"

// APIError is a non-2xx response from the marketplace API.
// Message is the server's own text and is shown to users verbatim.
type APIError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Unwrap maps the status code onto the error taxonomy so callers can use errors.Is
func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case e.StatusCode == http.StatusForbidden:
		return ErrForbidden
	case e.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case e.StatusCode == http.StatusBadRequest, e.StatusCode == http.StatusUnprocessableEntity:
		return ErrValidation
	case e.StatusCode >= http.StatusInternalServerError:
		return ErrServer
	default:
		return ErrBusinessRule
	}
}

// UserMessage turns any SDK error into the text a user should see
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}

	var fieldErrs interface{ First() string }
	if errors.As(err, &fieldErrs) {
		return fieldErrs.First()
	}

	switch {
	case errors.Is(err, ErrNetwork):
		return networkMessage
	case errors.Is(err, ErrSessionExpired):
		return "your session has expired, please log in again"
	default:
		return rootMessage(err)
	}
}

func rootMessage(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}
