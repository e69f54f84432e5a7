package models

import "time"

// Role is the authorization level of a marketplace account
type Role string

const (
	RoleUser      Role = "USER"
	RoleModerator Role = "MODERATOR"
	RoleAdmin     Role = "ADMIN"
)

// CanModerate reports whether the role may use the admin dashboard
func (r Role) CanModerate() bool {
	return r == RoleAdmin || r == RoleModerator
}

// User represents a marketplace account as returned by the API
type User struct {
	ID              string     `json:"id"`
	Email           string     `json:"email"`
	Username        string     `json:"username"`
	FirstName       string     `json:"firstName"`
	LastName        string     `json:"lastName"`
	Role            Role       `json:"role"`
	IsEmailVerified bool       `json:"isEmailVerified"`
	IsActive        bool       `json:"isActive"`
	Phone           string     `json:"phone,omitempty"`
	LastLogin       *time.Time `json:"lastLogin,omitempty"`
}

// AuctionStatus is the lifecycle state of an auction, mutated only by the backend
type AuctionStatus string

const (
	AuctionDraft     AuctionStatus = "DRAFT"
	AuctionScheduled AuctionStatus = "SCHEDULED"
	AuctionActive    AuctionStatus = "ACTIVE"
	AuctionEnded     AuctionStatus = "ENDED"
	AuctionCancelled AuctionStatus = "CANCELLED"
	AuctionSold      AuctionStatus = "SOLD"
)

// Closed reports whether no further bids can ever be accepted
func (s AuctionStatus) Closed() bool {
	switch s {
	case AuctionEnded, AuctionCancelled, AuctionSold:
		return true
	default:
		return false
	}
}

// Auction represents a listing open (or once open) for bidding
type Auction struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Category     string        `json:"category,omitempty"`
	CategoryID   string        `json:"categoryId,omitempty"`
	BasePrice    float64       `json:"basePrice"`
	CurrentBid   float64       `json:"currentBid"`
	BidIncrement float64       `json:"bidIncrement"`
	EntryFee     float64       `json:"entryFee"`
	ReservePrice float64       `json:"reservePrice,omitempty"`
	BuyNowPrice  float64       `json:"buyNowPrice,omitempty"`
	StartTime    time.Time     `json:"startTime"`
	EndTime      time.Time     `json:"endTime"`
	Status       AuctionStatus `json:"status"`
	SellerID     string        `json:"sellerId"`
	WinnerID     string        `json:"winnerId,omitempty"`
	Images       []string      `json:"images"`
	ViewCount    int           `json:"viewCount"`
	BidCount     int           `json:"bidCount"`
}

// HighestPrice returns the current bid, or the base price while nobody has bid
func (a Auction) HighestPrice() float64 {
	if a.CurrentBid > 0 {
		return a.CurrentBid
	}
	return a.BasePrice
}

// BidStatus is the standing of a single bid
type BidStatus string

const (
	BidPending   BidStatus = "PENDING"
	BidAccepted  BidStatus = "ACCEPTED"
	BidOutbid    BidStatus = "OUTBID"
	BidCancelled BidStatus = "CANCELLED"
)

// Bid represents a user's bid on an auction
type Bid struct {
	ID        string    `json:"id"`
	AuctionID string    `json:"auctionId"`
	BidderID  string    `json:"bidderId"`
	Amount    float64   `json:"amount"`
	Status    BidStatus `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserBidStatus is the server's view of the caller's position on one auction
type UserBidStatus struct {
	HasBid          bool    `json:"hasBid"`
	Amount          float64 `json:"amount"`
	IsWinning       bool    `json:"isWinning"`
	HasPaidEntryFee bool    `json:"hasPaidEntryFee"`
}

// WatchlistStatus reports whether an auction is on the caller's watchlist
type WatchlistStatus struct {
	AuctionID     string `json:"auctionId"`
	IsWatchlisted bool   `json:"isWatchlisted"`
}

// Category is reference data for grouping auctions
type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Icon         string `json:"icon,omitempty"`
	IsActive     bool   `json:"isActive"`
	AuctionCount int    `json:"auctionCount"`
}

// Pagination describes one page of a list endpoint
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// HasNext reports whether another page follows
func (p Pagination) HasNext() bool {
	return p.Page < p.TotalPages
}

// Page is a paginated list payload
type Page[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}
