package handler

import (
	"auction-marketplace/internal/accounts"
	"auction-marketplace/internal/admin"
	"auction-marketplace/internal/auth"
	"auction-marketplace/internal/catalog"
	"auction-marketplace/internal/models"
	"auction-marketplace/internal/payments"
	"auction-marketplace/internal/repository"
	"auction-marketplace/internal/submission"
)

// BiddingServiceInterface defines the methods used by the auction and bid handlers
type BiddingServiceInterface interface {
	PlaceBid(auctionID, userID string, amount float64) (models.Bid, error)
	GetAuction(id string) (models.Auction, error)
	ListAuctions(f repository.AuctionFilter) []models.Auction
	CreateAuction(a models.Auction) (models.Auction, error)
	UpdateAuction(id string, edit models.Auction) (models.Auction, error)
	DeleteAuction(id string) error
	GetBidsForAuction(auctionID string) ([]models.Bid, error)
	ListBids() []models.Bid
	UserBidStatus(auctionID, userID string) (models.UserBidStatus, error)
	ToggleWatchlist(userID, auctionID string) (models.WatchlistStatus, error)
	WatchlistStatus(userID, auctionID string) (models.WatchlistStatus, error)
}

// AccountServiceInterface defines the methods used by the auth and user handlers
type AccountServiceInterface interface {
	Register(req auth.RegisterRequest) (auth.Result, error)
	Login(req auth.LoginRequest) (auth.Result, error)
	Refresh(refreshToken string) (accounts.TokenPair, error)
	Logout(userID string)
	Profile(userID string) (models.User, error)
	ChangePassword(userID string, req auth.ChangePasswordRequest) error
	ForgotPassword(email string)
	ResetPassword(req auth.ResetPasswordRequest) error
	ResendVerification(userID string) error
	VerifyEmail(token string) (models.User, error)
	ListUsers() []models.User
	UpdateUser(id string, role models.Role, active bool) (models.User, error)
}

// PaymentServiceInterface defines the methods used by the payment handlers
type PaymentServiceInterface interface {
	PublishableKey() string
	PayEntryFee(userID, auctionID, paymentMethodID string) (models.Payment, error)
	EntryFeeStatus(userID, auctionID string) (models.EntryFeeStatus, error)
	History(userID string, typ models.PaymentType) []models.Payment
	WinningPayment(userID, auctionID string) (models.PaymentIntent, error)
	VerifyWinnerPayment(userID string, v payments.WinnerVerification) (models.Payment, error)
	Revenue(userIDs []string) float64
}

// CatalogServiceInterface defines the methods used by the submission, category and content handlers
type CatalogServiceInterface interface {
	Submit(sellerID string, form submission.Form, files []submission.File) (models.ProductSubmission, error)
	Submissions(status models.SubmissionStatus) []models.ProductSubmission
	Approve(id string) (models.Auction, error)
	Reject(id, reason string) (models.ProductSubmission, error)

	Categories() []models.Category
	CreateCategory(in admin.CategoryInput) (models.Category, error)
	UpdateCategory(id string, in admin.CategoryInput) (models.Category, error)
	DeleteCategory(id string) error

	Settings() ([]models.Setting, error)
	UpdateSettings(in []models.Setting) ([]models.Setting, error)
	About() (models.AboutContent, error)
	UpdateAbout(c models.AboutContent) (models.AboutContent, error)
	HomepageSections() ([]models.HomepageSection, error)
	UpdateHomepageSection(id string, in models.HomepageSection) (models.HomepageSection, error)
	WhatsApp() (models.WhatsAppConfig, error)
	UpdateWhatsApp(cfg models.WhatsAppConfig) (models.WhatsAppConfig, error)
	SendWhatsAppTest(req admin.TestMessageRequest) error
	Notifications() ([]models.Notification, error)
	CreateNotification(in admin.NotificationInput) (models.Notification, error)
	DeleteNotification(id string) error
	ContactMessages() ([]models.ContactMessage, error)
	Contact(in catalog.ContactInput) (models.ContactMessage, error)
	DeleteContactMessage(id string) error
}

// MarketplaceHandler serves the marketplace REST API
type MarketplaceHandler struct {
	bidding  BiddingServiceInterface
	accounts AccountServiceInterface
	payments PaymentServiceInterface
	catalog  CatalogServiceInterface
}

// NewMarketplaceHandler creates a new handler with the given services
func NewMarketplaceHandler(bidding BiddingServiceInterface, accounts AccountServiceInterface, payments PaymentServiceInterface, catalog CatalogServiceInterface) *MarketplaceHandler {
	return &MarketplaceHandler{
		bidding:  bidding,
		accounts: accounts,
		payments: payments,
		catalog:  catalog,
	}
}
