package models

import "time"

// SubmissionStatus is the moderation state of a seller submission
type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "PENDING"
	SubmissionApproved SubmissionStatus = "APPROVED"
	SubmissionRejected SubmissionStatus = "REJECTED"
)

// ProductSubmission is a seller-entered draft awaiting moderation before it becomes an Auction
type ProductSubmission struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	CategoryID      string           `json:"categoryId"`
	Condition       string           `json:"condition"`
	StartingPrice   float64          `json:"startingPrice"`
	ReservePrice    float64          `json:"reservePrice,omitempty"`
	BuyNowPrice     float64          `json:"buyNowPrice,omitempty"`
	AuctionDuration int              `json:"auctionDuration"`
	SellerName      string           `json:"sellerName"`
	Email           string           `json:"email"`
	Phone           string           `json:"phone"`
	Location        string           `json:"location,omitempty"`
	Images          []string         `json:"images"`
	SellerID        string           `json:"sellerId,omitempty"`
	AuctionID       string           `json:"auctionId,omitempty"`
	Status          SubmissionStatus `json:"status"`
	RejectionReason string           `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// DashboardStats is the admin dashboard summary
type DashboardStats struct {
	TotalUsers         int     `json:"totalUsers"`
	ActiveAuctions     int     `json:"activeAuctions"`
	TotalBids          int     `json:"totalBids"`
	PendingSubmissions int     `json:"pendingSubmissions"`
	Revenue            float64 `json:"revenue"`
}

// Setting is a single site configuration entry
type Setting struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}

// HomepageSection is an editable block of homepage content
type HomepageSection struct {
	ID       string `json:"id"`
	Key      string `json:"key"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Position int    `json:"position"`
	IsActive bool   `json:"isActive"`
}

// AboutContent is the editable about page
type AboutContent struct {
	Title   string   `json:"title"`
	Body    string   `json:"body"`
	Mission string   `json:"mission,omitempty"`
	Team    []string `json:"team,omitempty"`
}

// Notification is an admin-authored message to one or all users
type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	UserID    string    `json:"userId,omitempty"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContactMessage is a message sent through the public contact form
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// WhatsAppConfig is the messaging integration configuration
type WhatsAppConfig struct {
	Enabled       bool   `json:"enabled"`
	PhoneNumberID string `json:"phoneNumberId"`
	BusinessID    string `json:"businessId"`
	TemplateName  string `json:"templateName,omitempty"`
}
