// Package productdetail drives the auction detail page: what the viewer may do,
// bid validation and placement, the entry-fee gate and the winner checkout.
package productdetail

import (
	"time"

	"auction-marketplace/internal/models"
)

// State is derived from the auction, the viewer and their entry-fee payment. It is never stored.
type State string

const (
	StateUnauthenticated        State = "UNAUTHENTICATED"
	StateAuthenticatedNoPayment State = "AUTHENTICATED_NO_PAYMENT"
	StateAuthenticatedPaid      State = "AUTHENTICATED_PAID"
	StateBiddingAllowed         State = "BIDDING_ALLOWED"
	StateOwner                  State = "OWNER"
	StateEnded                  State = "ENDED"
)

// GateInput is everything Derive looks at
type GateInput struct {
	Auction      models.Auction
	User         *models.User
	EntryFeePaid bool
	Now          time.Time
}

// Derive computes the viewer's state. The seller is always OWNER of their listing;
// for everyone else an auction that is neither ACTIVE nor SCHEDULED is ENDED.
func Derive(in GateInput) State {
	over := auctionOver(in.Auction, in.Now)
	switch {
	case in.User == nil && over:
		return StateEnded
	case in.User == nil:
		return StateUnauthenticated
	case in.Auction.SellerID != "" && in.Auction.SellerID == in.User.ID:
		return StateOwner
	case over:
		return StateEnded
	case !in.EntryFeePaid:
		return StateAuthenticatedNoPayment
	case in.Auction.Status != models.AuctionActive:
		return StateAuthenticatedPaid
	default:
		return StateBiddingAllowed
	}
}

// auctionOver covers DRAFT as well as the closed statuses: neither can take an entry fee or bids
func auctionOver(a models.Auction, now time.Time) bool {
	switch a.Status {
	case models.AuctionActive:
		return !a.EndTime.IsZero() && !now.Before(a.EndTime)
	case models.AuctionScheduled:
		return false
	default:
		return true
	}
}

// CanBid reports whether the bid form is usable
func (s State) CanBid() bool {
	return s == StateBiddingAllowed
}

// ShowsEntryFee reports whether the "pay entry fee" section replaces the bid form
func (s State) ShowsEntryFee() bool {
	return s == StateAuthenticatedNoPayment
}

// ShowsBidForm reports whether the bid form is rendered at all
func (s State) ShowsBidForm() bool {
	return s == StateBiddingAllowed
}

// Terminal reports whether no viewer action can move this state forward
func (s State) Terminal() bool {
	return s == StateOwner || s == StateEnded
}
