package helpers

import (
	"time"

	"auction-marketplace/internal/models"
)

// Request/Response DTOs
type PlaceBidRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type EntryFeeRequest struct {
	AuctionID       string `json:"auctionId" binding:"required"`
	PaymentMethodID string `json:"paymentMethodId" binding:"required"`
}

type WinningPaymentRequest struct {
	AuctionID string `json:"auctionId" binding:"required"`
}

type VerifyWinnerRequest struct {
	AuctionID       string         `json:"auctionId" binding:"required"`
	PaymentIntentID string         `json:"paymentIntentId" binding:"required"`
	Reference       string         `json:"paymentReference"`
	ShippingAddress models.Address `json:"shippingAddress"`
	BillingAddress  models.Address `json:"billingAddress"`
}

type RejectRequest struct {
	Reason string `json:"reason" validate:"required,min=5,max=500"`
}

type SettingsRequest struct {
	Settings []models.Setting `json:"settings" binding:"required"`
}

type UpdateUserRequest struct {
	Role     models.Role `json:"role" validate:"required,oneof=USER MODERATOR ADMIN"`
	IsActive bool        `json:"isActive"`
}

// AuctionRequest is the admin create/update payload. Updates bind it without
// validation so any subset of fields can be sent.
type AuctionRequest struct {
	Title        string    `json:"title" validate:"required,min=5,max=100"`
	Description  string    `json:"description" validate:"max=5000"`
	CategoryID   string    `json:"categoryId"`
	Category     string    `json:"category"`
	BasePrice    float64   `json:"basePrice" validate:"gt=0"`
	BidIncrement float64   `json:"bidIncrement" validate:"gte=0"`
	EntryFee     float64   `json:"entryFee" validate:"gte=0"`
	ReservePrice float64   `json:"reservePrice" validate:"gte=0"`
	BuyNowPrice  float64   `json:"buyNowPrice" validate:"gte=0"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime" validate:"required"`
	SellerID     string    `json:"sellerId"`
	Images       []string  `json:"images"`

	Status models.AuctionStatus `json:"status"`
}

// Auction converts the payload; an empty seller defaults to the caller
func (r AuctionRequest) Auction(callerID string) models.Auction {
	seller := r.SellerID
	if seller == "" {
		seller = callerID
	}
	return models.Auction{
		Title:        r.Title,
		Description:  r.Description,
		CategoryID:   r.CategoryID,
		Category:     r.Category,
		BasePrice:    r.BasePrice,
		BidIncrement: r.BidIncrement,
		EntryFee:     r.EntryFee,
		ReservePrice: r.ReservePrice,
		BuyNowPrice:  r.BuyNowPrice,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		SellerID:     seller,
		Images:       r.Images,
		Status:       r.Status,
	}
}

type StripeKeyResponse struct {
	PublishableKey string `json:"publishableKey"`
}
