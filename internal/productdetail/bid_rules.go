package productdetail

import (
	"errors"
	"fmt"
	"math"

	"auction-marketplace/internal/marketerrors"
	"auction-marketplace/internal/models"
	"auction-marketplace/internal/validation"
)

// MinimumBid is the lowest amount the viewer may bid next: their own bid plus the
// increment when they already bid, otherwise the current highest (or base) price plus the increment.
func MinimumBid(a models.Auction, userBid *models.UserBidStatus) float64 {
	if hasOwnBid(userBid) {
		return roundCents(userBid.Amount + a.BidIncrement)
	}
	return roundCents(a.HighestPrice() + a.BidIncrement)
}

// ValidateBid applies the client-side bid rules. The server stays authoritative.
func ValidateBid(amount float64, a models.Auction, userBid *models.UserBidStatus) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return amountError(marketerrors.ErrInvalidBid, "please enter a valid bid amount")
	}

	if hasOwnBid(userBid) && cents(amount) <= cents(userBid.Amount) {
		return amountError(marketerrors.ErrBidTooLow,
			fmt.Sprintf("your bid must be higher than your current bid of %.2f", userBid.Amount))
	}

	minimum := MinimumBid(a, userBid)
	if cents(amount) < cents(minimum) {
		return amountError(marketerrors.ErrBidTooLow, fmt.Sprintf("bid must be at least %.2f", minimum))
	}
	return nil
}

func hasOwnBid(userBid *models.UserBidStatus) bool {
	return userBid != nil && userBid.HasBid && userBid.Amount > 0
}

// amounts are compared in whole cents so 100.1 + 0.1 == 100.2
func cents(v float64) int64 {
	return int64(math.Round(v * 100))
}

func roundCents(v float64) float64 {
	return float64(cents(v)) / 100
}

func amountError(sentinel error, msg string) error {
	return errors.Join(sentinel, validation.Errors{{Field: "amount", Message: msg}})
}
