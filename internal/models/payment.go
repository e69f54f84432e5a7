package models

import "time"

// PaymentType distinguishes the entry fee from the final settlement
type PaymentType string

const (
	PaymentEntryFee PaymentType = "ENTRY_FEE"
	PaymentWinning  PaymentType = "WINNING_PAYMENT"
)

// PaymentStatus is the processor/ledger state of a payment
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentSucceeded PaymentStatus = "SUCCEEDED"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentRefunded  PaymentStatus = "REFUNDED"
)

// Payment is a charge recorded against an auction
type Payment struct {
	ID        string        `json:"id"`
	AuctionID string        `json:"auctionId"`
	UserID    string        `json:"userId"`
	Type      PaymentType   `json:"type"`
	Status    PaymentStatus `json:"status"`
	Amount    float64       `json:"amount"`
	Reference string        `json:"reference,omitempty"`
	PaidAt    *time.Time    `json:"paidAt,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
}

// Succeeded reports whether the payment has settled
func (p Payment) Succeeded() bool {
	return p.Status == PaymentSucceeded
}

// EntryFeeStatus is the response of the per-auction payment status endpoint
type EntryFeeStatus struct {
	AuctionID string   `json:"auctionId"`
	HasPaid   bool     `json:"hasPaid"`
	Payment   *Payment `json:"payment,omitempty"`
}

// PaymentIntent is what the client needs to confirm a card payment
type PaymentIntent struct {
	ID           string  `json:"paymentIntentId"`
	ClientSecret string  `json:"clientSecret"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
}

// Address is a shipping or billing address
type Address struct {
	FullName   string `json:"fullName" validate:"required,min=2,max=100"`
	Line1      string `json:"line1" validate:"required,max=200"`
	Line2      string `json:"line2,omitempty" validate:"max=200"`
	City       string `json:"city" validate:"required,max=100"`
	State      string `json:"state,omitempty" validate:"max=100"`
	PostalCode string `json:"postalCode" validate:"required,max=20"`
	Country    string `json:"country" validate:"required,len=2"`
	Phone      string `json:"phone,omitempty" validate:"omitempty,phone"`
}
