// Package catalog is the sandbox's content side: seller submissions and their
// moderation, categories, and the editable site documents behind the admin dashboard.
package catalog

import (
	"encoding/json"
	"fmt"
	"math"
	"path"
	"strings"
	"sync"
	"time"

	"auction-marketplace/internal/admin"
	"auction-marketplace/internal/marketerrors"
	"auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"
	"auction-marketplace/internal/submission"
	"auction-marketplace/internal/validation"
	"auction-marketplace/utils"
)

// content document keys
const (
	docSettings      = "settings"
	docAbout         = "about"
	docHomepage      = "homepage"
	docWhatsApp      = "whatsapp"
	docNotifications = "notifications"
	docContact       = "contact"
)

const (
	incrementRate = 0.05
	entryFeeRate  = 0.02
)

// AuctionCreator opens approved submissions as auctions
type AuctionCreator interface {
	CreateAuction(a models.Auction) (models.Auction, error)
}

// ContactInput is the public contact form
type ContactInput struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,min=10,max=5000"`
}

// Service owns submissions, categories and site content
type Service struct {
	db       repository.CatalogDB
	auctions AuctionCreator
	now      func() time.Time

	// guards read-modify-write of content documents
	mu sync.Mutex
}

// NewService creates the catalog service
func NewService(db repository.CatalogDB, auctions AuctionCreator) *Service {
	return &Service{db: db, auctions: auctions, now: time.Now}
}

// Submit validates a seller's form and images and queues the submission for moderation
func (s *Service) Submit(sellerID string, form submission.Form, files []submission.File) (models.ProductSubmission, error) {
	form = form.Normalize()
	if err := form.Validate(); err != nil {
		return models.ProductSubmission{}, err
	}
	if _, err := s.db.GetCategory(form.CategoryID); err != nil {
		return models.ProductSubmission{}, validation.Errors{{Field: "categoryId", Message: "please choose a category"}}
	}

	images := submission.NewImageSet()
	for _, err := range images.AddAll(files...) {
		if err != nil {
			return models.ProductSubmission{}, fmt.Errorf("service: %w", err)
		}
	}
	if images.Len() == 0 {
		return models.ProductSubmission{}, fmt.Errorf("service: %w", &submission.ImageError{Name: "images", Err: marketerrors.ErrNoImages})
	}

	sub := models.ProductSubmission{
		ID:              utils.GenerateID(),
		Title:           form.Title,
		Description:     form.Description,
		CategoryID:      form.CategoryID,
		Condition:       form.Condition,
		StartingPrice:   form.StartingPrice,
		ReservePrice:    form.ReservePrice,
		BuyNowPrice:     form.BuyNowPrice,
		AuctionDuration: form.AuctionDuration,
		SellerName:      form.SellerName,
		Email:           form.Email,
		Phone:           form.Phone,
		Location:        form.Location,
		SellerID:        sellerID,
		Status:          models.SubmissionPending,
		CreatedAt:       s.now().UTC(),
	}
	for _, img := range images.Images() {
		sub.Images = append(sub.Images, path.Join("uploads", sub.ID, path.Base(img.Name)))
	}
	if err := s.db.SaveSubmission(sub); err != nil {
		return models.ProductSubmission{}, fmt.Errorf("service: save submission: %w", err)
	}

	utils.Info("submission received", map[string]any{"submission_id": sub.ID, "seller_id": sellerID, "images": len(sub.Images)})
	return sub, nil
}

// Submissions returns submissions with status (all when empty)
func (s *Service) Submissions(status models.SubmissionStatus) []models.ProductSubmission {
	return s.db.ListSubmissions(status)
}

// Approve opens a pending submission as an auction running for the chosen number of days
func (s *Service) Approve(id string) (models.Auction, error) {
	sub, err := s.pending(id)
	if err != nil {
		return models.Auction{}, err
	}

	var categoryName string
	if c, err := s.db.GetCategory(sub.CategoryID); err == nil {
		categoryName = c.Name
	}
	now := s.now().UTC()
	a, err := s.auctions.CreateAuction(models.Auction{
		Title:        sub.Title,
		Description:  sub.Description,
		Category:     categoryName,
		CategoryID:   sub.CategoryID,
		BasePrice:    sub.StartingPrice,
		BidIncrement: math.Max(1, math.Round(sub.StartingPrice*incrementRate)),
		EntryFee:     math.Max(1, math.Round(sub.StartingPrice*entryFeeRate)),
		ReservePrice: sub.ReservePrice,
		BuyNowPrice:  sub.BuyNowPrice,
		StartTime:    now,
		EndTime:      now.Add(time.Duration(sub.AuctionDuration) * 24 * time.Hour),
		SellerID:     sub.SellerID,
		Images:       sub.Images,
	})
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: approve submission %s: %w", id, err)
	}

	sub.Status = models.SubmissionApproved
	sub.AuctionID = a.ID
	if err := s.db.SaveSubmission(sub); err != nil {
		return models.Auction{}, fmt.Errorf("service: approve submission %s: %w", id, err)
	}
	utils.Info("submission approved", map[string]any{"submission_id": id, "auction_id": a.ID})
	return a, nil
}

// Reject declines a pending submission with a reason shown to the seller
func (s *Service) Reject(id, reason string) (models.ProductSubmission, error) {
	sub, err := s.pending(id)
	if err != nil {
		return models.ProductSubmission{}, err
	}
	sub.Status = models.SubmissionRejected
	sub.RejectionReason = strings.TrimSpace(reason)
	if err := s.db.SaveSubmission(sub); err != nil {
		return models.ProductSubmission{}, fmt.Errorf("service: reject submission %s: %w", id, err)
	}
	return sub, nil
}

func (s *Service) pending(id string) (models.ProductSubmission, error) {
	sub, err := s.db.GetSubmission(id)
	if err != nil {
		return models.ProductSubmission{}, fmt.Errorf("service: %w", err)
	}
	if sub.Status != models.SubmissionPending {
		return models.ProductSubmission{}, fmt.Errorf("service: submission already %s: %w", strings.ToLower(string(sub.Status)), marketerrors.ErrBusinessRule)
	}
	return sub, nil
}

// Categories lists every category with its live auction count
func (s *Service) Categories() []models.Category {
	return s.db.ListCategories()
}

// CreateCategory adds a category; slugs are unique
func (s *Service) CreateCategory(in admin.CategoryInput) (models.Category, error) {
	c := models.Category{ID: utils.GenerateID(), Name: in.Name, Slug: in.Slug, Icon: in.Icon, IsActive: in.IsActive}
	if err := s.db.SaveCategory(c); err != nil {
		return models.Category{}, fmt.Errorf("service: create category: %w", err)
	}
	return c, nil
}

// UpdateCategory replaces a category's fields
func (s *Service) UpdateCategory(id string, in admin.CategoryInput) (models.Category, error) {
	c, err := s.db.GetCategory(id)
	if err != nil {
		return models.Category{}, fmt.Errorf("service: update category: %w", err)
	}
	c.Name, c.Slug, c.Icon, c.IsActive = in.Name, in.Slug, in.Icon, in.IsActive
	if err := s.db.SaveCategory(c); err != nil {
		return models.Category{}, fmt.Errorf("service: update category: %w", err)
	}
	return c, nil
}

// DeleteCategory removes a category
func (s *Service) DeleteCategory(id string) error {
	if err := s.db.DeleteCategory(id); err != nil {
		return fmt.Errorf("service: delete category: %w", err)
	}
	return nil
}

func readDoc[T any](db repository.CatalogDB, key string) (T, error) {
	var out T
	raw, ok := db.GetContent(key)
	if !ok {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("service: decode %s: %w", key, err)
	}
	return out, nil
}

func writeDoc(db repository.CatalogDB, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("service: encode %s: %w", key, err)
	}
	db.PutContent(key, raw)
	return nil
}

// Settings returns the site settings
func (s *Service) Settings() ([]models.Setting, error) {
	settings, err := readDoc[[]models.Setting](s.db, docSettings)
	if settings == nil {
		settings = []models.Setting{}
	}
	return settings, err
}

// UpdateSettings merges the given settings by key and returns the full list
func (s *Service) UpdateSettings(in []models.Setting) ([]models.Setting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.Settings()
	if err != nil {
		return nil, err
	}
	for _, next := range in {
		if strings.TrimSpace(next.Key) == "" {
			return nil, validation.Errors{{Field: "settings", Message: "every setting needs a key"}}
		}
		replaced := false
		for i := range current {
			if current[i].Key == next.Key {
				current[i].Value = next.Value
				if next.Description != "" {
					current[i].Description = next.Description
				}
				replaced = true
				break
			}
		}
		if !replaced {
			current = append(current, next)
		}
	}
	if err := writeDoc(s.db, docSettings, current); err != nil {
		return nil, err
	}
	return current, nil
}

// About returns the about page
func (s *Service) About() (models.AboutContent, error) {
	return readDoc[models.AboutContent](s.db, docAbout)
}

// UpdateAbout replaces the about page
func (s *Service) UpdateAbout(c models.AboutContent) (models.AboutContent, error) {
	if strings.TrimSpace(c.Title) == "" {
		return models.AboutContent{}, validation.Errors{{Field: "title", Message: "title is required"}}
	}
	return c, writeDoc(s.db, docAbout, c)
}

// HomepageSections returns the homepage sections in display order
func (s *Service) HomepageSections() ([]models.HomepageSection, error) {
	sections, err := readDoc[[]models.HomepageSection](s.db, docHomepage)
	if sections == nil {
		sections = []models.HomepageSection{}
	}
	return sections, err
}

// UpdateHomepageSection replaces one existing section
func (s *Service) UpdateHomepageSection(id string, in models.HomepageSection) (models.HomepageSection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sections, err := s.HomepageSections()
	if err != nil {
		return models.HomepageSection{}, err
	}
	for i := range sections {
		if sections[i].ID == id {
			in.ID = id
			sections[i] = in
			return in, writeDoc(s.db, docHomepage, sections)
		}
	}
	return models.HomepageSection{}, fmt.Errorf("service: homepage section %s: %w", id, marketerrors.ErrNotFound)
}

// WhatsApp returns the messaging integration settings
func (s *Service) WhatsApp() (models.WhatsAppConfig, error) {
	return readDoc[models.WhatsAppConfig](s.db, docWhatsApp)
}

// UpdateWhatsApp replaces the messaging integration settings
func (s *Service) UpdateWhatsApp(cfg models.WhatsAppConfig) (models.WhatsAppConfig, error) {
	if cfg.Enabled && cfg.PhoneNumberID == "" {
		return models.WhatsAppConfig{}, validation.Errors{{Field: "phoneNumberId", Message: "phone number ID is required when enabled"}}
	}
	return cfg, writeDoc(s.db, docWhatsApp, cfg)
}

// SendWhatsAppTest pretends to deliver a test message through the integration
func (s *Service) SendWhatsAppTest(req admin.TestMessageRequest) error {
	cfg, err := s.WhatsApp()
	if err != nil {
		return err
	}
	if !cfg.Enabled {
		return fmt.Errorf("service: whatsapp integration is disabled: %w", marketerrors.ErrBusinessRule)
	}
	utils.Info("whatsapp test message sent", map[string]any{"phone": req.Phone, "length": len(req.Message)})
	return nil
}

// Notifications returns admin notifications, newest first
func (s *Service) Notifications() ([]models.Notification, error) {
	list, err := readDoc[[]models.Notification](s.db, docNotifications)
	if list == nil {
		list = []models.Notification{}
	}
	return list, err
}

// CreateNotification stores a notification for one user or everyone
func (s *Service) CreateNotification(in admin.NotificationInput) (models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.Notifications()
	if err != nil {
		return models.Notification{}, err
	}
	n := models.Notification{ID: utils.GenerateID(), Title: in.Title, Message: in.Message, UserID: in.UserID, CreatedAt: s.now().UTC()}
	list = append([]models.Notification{n}, list...)
	return n, writeDoc(s.db, docNotifications, list)
}

// DeleteNotification removes a notification
func (s *Service) DeleteNotification(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.Notifications()
	if err != nil {
		return err
	}
	for i := range list {
		if list[i].ID == id {
			return writeDoc(s.db, docNotifications, append(list[:i], list[i+1:]...))
		}
	}
	return fmt.Errorf("service: notification %s: %w", id, marketerrors.ErrNotFound)
}

// ContactMessages returns messages from the public contact form, newest first
func (s *Service) ContactMessages() ([]models.ContactMessage, error) {
	list, err := readDoc[[]models.ContactMessage](s.db, docContact)
	if list == nil {
		list = []models.ContactMessage{}
	}
	return list, err
}

// Contact stores a message from the public contact form
func (s *Service) Contact(in ContactInput) (models.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.ContactMessages()
	if err != nil {
		return models.ContactMessage{}, err
	}
	m := models.ContactMessage{ID: utils.GenerateID(), Name: in.Name, Email: in.Email, Subject: in.Subject, Message: in.Message, CreatedAt: s.now().UTC()}
	list = append([]models.ContactMessage{m}, list...)
	return m, writeDoc(s.db, docContact, list)
}

// DeleteContactMessage removes a contact message
func (s *Service) DeleteContactMessage(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.ContactMessages()
	if err != nil {
		return err
	}
	for i := range list {
		if list[i].ID == id {
			return writeDoc(s.db, docContact, append(list[:i], list[i+1:]...))
		}
	}
	return fmt.Errorf("service: contact message %s: %w", id, marketerrors.ErrNotFound)
}
