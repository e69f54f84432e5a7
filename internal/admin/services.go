package admin

import (
	"context"
	"fmt"
	"net/url"

	"auction-marketplace/internal/apiclient"
	"auction-marketplace/internal/models"
	"auction-marketplace/internal/validation"
	"auction-marketplace/utils"
)

// Client groups every dashboard resource behind the shared API client
type Client struct {
	Auctions      *Store[models.Auction]
	Users         *Store[models.User]
	Bids          *Store[models.Bid]
	Categories    *Store[models.Category]
	Notifications *Store[models.Notification]
	Contact       *Store[models.ContactMessage]

	Settings    *SettingsService
	Dashboard   *DashboardService
	Homepage    *HomepageService
	About       *AboutService
	WhatsApp    *WhatsAppService
	Submissions *ModerationService
}

// New wires every resource to api
func New(api *apiclient.Client) *Client {
	return &Client{
		Auctions:      NewStore[models.Auction](api, "auctions", "/admin/auctions"),
		Users:         NewStore[models.User](api, "users", "/admin/users"),
		Bids:          NewStore[models.Bid](api, "bids", "/admin/bids"),
		Categories:    NewStore[models.Category](api, "categories", "/categories"),
		Notifications: NewStore[models.Notification](api, "notifications", "/admin/notifications"),
		Contact:       NewStore[models.ContactMessage](api, "contact messages", "/contact/admin/messages"),

		Settings:    &SettingsService{api: api},
		Dashboard:   &DashboardService{api: api},
		Homepage:    &HomepageService{api: api},
		About:       &AboutService{api: api},
		WhatsApp:    &WhatsAppService{api: api},
		Submissions: &ModerationService{api: api},
	}
}

// CategoryInput is the create/update payload for a category
type CategoryInput struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Slug     string `json:"slug" validate:"required,slug"`
	Icon     string `json:"icon,omitempty"`
	IsActive bool   `json:"isActive"`
}

// CreateCategory validates input before creating it through the categories store
func (c *Client) CreateCategory(ctx context.Context, in CategoryInput) (*models.Category, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	return c.Categories.Create(ctx, in)
}

// NotificationInput is the payload for an admin notification; an empty UserID targets everyone
type NotificationInput struct {
	Title   string `json:"title" validate:"required,max=120"`
	Message string `json:"message" validate:"required,max=1000"`
	UserID  string `json:"userId,omitempty"`
}

// SendNotification validates and creates a notification
func (c *Client) SendNotification(ctx context.Context, in NotificationInput) (*models.Notification, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	return c.Notifications.Create(ctx, in)
}

// SettingsService reads and writes the site settings
type SettingsService struct {
	api *apiclient.Client
}

// List returns every setting
func (s *SettingsService) List(ctx context.Context) ([]models.Setting, error) {
	var out []models.Setting
	if err := s.api.Get(ctx, "/admin/settings", nil, &out); err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return out, nil
}

// Update writes the given settings and returns the full list
func (s *SettingsService) Update(ctx context.Context, settings []models.Setting) ([]models.Setting, error) {
	var out []models.Setting
	if err := s.api.Put(ctx, "/admin/settings", map[string]any{"settings": settings}, &out); err != nil {
		return nil, fmt.Errorf("update settings: %w", err)
	}
	utils.Info("settings updated", map[string]any{"count": len(settings)})
	return out, nil
}

// DashboardService reads the summary numbers
type DashboardService struct {
	api *apiclient.Client
}

// Stats returns the dashboard summary
func (s *DashboardService) Stats(ctx context.Context) (models.DashboardStats, error) {
	var out models.DashboardStats
	if err := s.api.Get(ctx, "/admin/dashboard/stats", nil, &out); err != nil {
		return models.DashboardStats{}, fmt.Errorf("load dashboard stats: %w", err)
	}
	return out, nil
}

// HomepageService edits homepage sections
type HomepageService struct {
	api *apiclient.Client
}

// Sections lists the homepage sections in display order
func (s *HomepageService) Sections(ctx context.Context) ([]models.HomepageSection, error) {
	var out []models.HomepageSection
	if err := s.api.Get(ctx, "/homepage/sections", nil, &out); err != nil {
		return nil, fmt.Errorf("load homepage sections: %w", err)
	}
	return out, nil
}

// UpdateSection saves one section
func (s *HomepageService) UpdateSection(ctx context.Context, section models.HomepageSection) (models.HomepageSection, error) {
	var out models.HomepageSection
	if err := s.api.Put(ctx, "/homepage/sections/"+url.PathEscape(section.ID), section, &out); err != nil {
		return models.HomepageSection{}, fmt.Errorf("update homepage section %s: %w", section.ID, err)
	}
	return out, nil
}

// AboutService edits the about page
type AboutService struct {
	api *apiclient.Client
}

// Get returns the about page content
func (s *AboutService) Get(ctx context.Context) (models.AboutContent, error) {
	var out models.AboutContent
	if err := s.api.Get(ctx, "/about", nil, &out); err != nil {
		return models.AboutContent{}, fmt.Errorf("load about: %w", err)
	}
	return out, nil
}

// Update replaces the about page content
func (s *AboutService) Update(ctx context.Context, content models.AboutContent) (models.AboutContent, error) {
	var out models.AboutContent
	if err := s.api.Put(ctx, "/about", content, &out); err != nil {
		return models.AboutContent{}, fmt.Errorf("update about: %w", err)
	}
	return out, nil
}

// WhatsAppService configures the messaging integration
type WhatsAppService struct {
	api *apiclient.Client
}

// Config returns the current integration settings
func (s *WhatsAppService) Config(ctx context.Context) (models.WhatsAppConfig, error) {
	var out models.WhatsAppConfig
	if err := s.api.Get(ctx, "/whatsapp/config", nil, &out); err != nil {
		return models.WhatsAppConfig{}, fmt.Errorf("load whatsapp config: %w", err)
	}
	return out, nil
}

// UpdateConfig saves the integration settings
func (s *WhatsAppService) UpdateConfig(ctx context.Context, cfg models.WhatsAppConfig) (models.WhatsAppConfig, error) {
	var out models.WhatsAppConfig
	if err := s.api.Put(ctx, "/whatsapp/config", cfg, &out); err != nil {
		return models.WhatsAppConfig{}, fmt.Errorf("update whatsapp config: %w", err)
	}
	return out, nil
}

// TestMessageRequest asks the backend to send a test message
type TestMessageRequest struct {
	Phone   string `json:"phone" validate:"required,phone"`
	Message string `json:"message" validate:"required,max=500"`
}

// SendTest sends a test message through the configured integration
func (s *WhatsAppService) SendTest(ctx context.Context, req TestMessageRequest) error {
	if err := validation.Struct(req); err != nil {
		return err
	}
	if err := s.api.Post(ctx, "/whatsapp/test", req, nil); err != nil {
		return fmt.Errorf("send whatsapp test: %w", err)
	}
	return nil
}

// ModerationService reviews product submissions
type ModerationService struct {
	api *apiclient.Client
}

// List returns submissions with the given status (all when empty)
func (s *ModerationService) List(ctx context.Context, status models.SubmissionStatus, params ListParams) (models.Page[models.ProductSubmission], error) {
	q := params.withDefaults()
	q.Status = string(status)

	var out models.Page[models.ProductSubmission]
	if err := s.api.Get(ctx, "/product-submissions/admin", q.query(), &out); err != nil {
		return models.Page[models.ProductSubmission]{}, fmt.Errorf("list submissions: %w", err)
	}
	return out, nil
}

// Approve turns a submission into an auction and returns the created auction
func (s *ModerationService) Approve(ctx context.Context, id string) (models.Auction, error) {
	var out models.Auction
	if err := s.api.Post(ctx, "/product-submissions/admin/"+url.PathEscape(id)+"/approve", nil, &out); err != nil {
		return models.Auction{}, fmt.Errorf("approve submission %s: %w", id, err)
	}
	utils.Info("submission approved", map[string]any{"submission_id": id, "auction_id": out.ID})
	return out, nil
}

type rejectRequest struct {
	Reason string `json:"reason" validate:"required,min=5,max=500"`
}

// Reject declines a submission with a reason shown to the seller
func (s *ModerationService) Reject(ctx context.Context, id, reason string) (models.ProductSubmission, error) {
	req := rejectRequest{Reason: reason}
	if err := validation.Struct(req); err != nil {
		return models.ProductSubmission{}, err
	}
	var out models.ProductSubmission
	if err := s.api.Post(ctx, "/product-submissions/admin/"+url.PathEscape(id)+"/reject", req, &out); err != nil {
		return models.ProductSubmission{}, fmt.Errorf("reject submission %s: %w", id, err)
	}
	return out, nil
}
