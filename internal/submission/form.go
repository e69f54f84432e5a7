// Package submission validates and sends a seller's product submission.
package submission

import (
	"strconv"
	"strings"

	"auction-marketplace/internal/validation"
)

// Item conditions accepted by the moderation queue
const (
	ConditionNew     = "new"
	ConditionLikeNew = "like_new"
	ConditionGood    = "good"
	ConditionFair    = "fair"
	ConditionPoor    = "poor"
)

// Durations lists the auction lengths, in days, a seller may pick
var Durations = []int{1, 3, 5, 7, 10, 14}

// Form is the sell-product form
type Form struct {
	Title           string  `json:"title" form:"title" validate:"required,min=5,max=100"`
	Description     string  `json:"description" form:"description" validate:"required,min=20,max=2000"`
	CategoryID      string  `json:"categoryId" form:"categoryId" validate:"required"`
	Condition       string  `json:"condition" form:"condition" validate:"required,oneof=new like_new good fair poor"`
	StartingPrice   float64 `json:"startingPrice" form:"startingPrice" validate:"gt=0,lte=10000000"`
	ReservePrice    float64 `json:"reservePrice,omitempty" form:"reservePrice" validate:"omitempty,gtefield=StartingPrice,lte=10000000"`
	BuyNowPrice     float64 `json:"buyNowPrice,omitempty" form:"buyNowPrice" validate:"omitempty,gtefield=StartingPrice,lte=10000000"`
	AuctionDuration int     `json:"auctionDuration" form:"auctionDuration" validate:"required,oneof=1 3 5 7 10 14"`
	SellerName      string  `json:"sellerName" form:"sellerName" validate:"required,min=2,max=100"`
	Email           string  `json:"email" form:"email" validate:"required,email"`
	Phone           string  `json:"phone" form:"phone" validate:"required,phone"`
	Location        string  `json:"location,omitempty" form:"location" validate:"max=200"`
}

// Normalize trims surrounding whitespace from every text field
func (f Form) Normalize() Form {
	f.Title = strings.TrimSpace(f.Title)
	f.Description = strings.TrimSpace(f.Description)
	f.CategoryID = strings.TrimSpace(f.CategoryID)
	f.Condition = strings.TrimSpace(f.Condition)
	f.SellerName = strings.TrimSpace(f.SellerName)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Location = strings.TrimSpace(f.Location)
	return f
}

// Validate applies the form rules after normalizing
func (f Form) Validate() error {
	return validation.Struct(f.Normalize())
}

// fields returns the multipart text fields in a stable order
func (f Form) fields() [][2]string {
	out := [][2]string{
		{"title", f.Title},
		{"description", f.Description},
		{"categoryId", f.CategoryID},
		{"condition", f.Condition},
		{"startingPrice", formatPrice(f.StartingPrice)},
		{"auctionDuration", strconv.Itoa(f.AuctionDuration)},
		{"sellerName", f.SellerName},
		{"email", f.Email},
		{"phone", f.Phone},
	}
	if f.ReservePrice > 0 {
		out = append(out, [2]string{"reservePrice", formatPrice(f.ReservePrice)})
	}
	if f.BuyNowPrice > 0 {
		out = append(out, [2]string{"buyNowPrice", formatPrice(f.BuyNowPrice)})
	}
	if f.Location != "" {
		out = append(out, [2]string{"location", f.Location})
	}
	return out
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Progress is the share of required inputs filled in, 0-100. It only drives the
// progress bar; a form at 100 can still fail validation.
func Progress(f Form, images *ImageSet) int {
	f = f.Normalize()
	checks := []bool{
		f.Title != "",
		f.Description != "",
		f.CategoryID != "",
		f.Condition != "",
		f.StartingPrice > 0,
		f.AuctionDuration > 0,
		f.SellerName != "",
		f.Email != "",
		f.Phone != "",
		images != nil && images.Len() > 0,
	}
	done := 0
	for _, ok := range checks {
		if ok {
			done++
		}
	}
	return done * 100 / len(checks)
}
