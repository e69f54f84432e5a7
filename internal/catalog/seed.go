package catalog

import (
	"fmt"

	"auction-marketplace/internal/models"
)

// DefaultCategories are created by Seed
var DefaultCategories = []models.Category{
	{ID: "electronics", Name: "Electronics", Slug: "electronics", IsActive: true},
	{ID: "art", Name: "Art", Slug: "art", IsActive: true},
	{ID: "collectibles", Name: "Collectibles", Slug: "collectibles", IsActive: true},
	{ID: "fashion", Name: "Fashion", Slug: "fashion", IsActive: true},
}

// Seed writes the default categories and site content
func (s *Service) Seed() error {
	for _, c := range DefaultCategories {
		if err := s.db.SaveCategory(c); err != nil {
			return fmt.Errorf("seed category %s: %w", c.Slug, err)
		}
	}

	docs := map[string]any{
		docSettings: []models.Setting{
			{Key: "site_name", Value: "Auction Marketplace", Description: "Shown in the header"},
			{Key: "default_currency", Value: "USD"},
			{Key: "maintenance_mode", Value: "false"},
		},
		docAbout: models.AboutContent{
			Title:   "About us",
			Body:    "A marketplace for timed auctions with verified bidders.",
			Mission: "Fair bidding for everyone.",
		},
		docHomepage: []models.HomepageSection{
			{ID: "hero", Key: "hero", Title: "Bid on what you love", Position: 1, IsActive: true},
			{ID: "featured", Key: "featured", Title: "Ending soon", Position: 2, IsActive: true},
		},
		docWhatsApp: models.WhatsAppConfig{},
	}
	for key, doc := range docs {
		if err := writeDoc(s.db, key, doc); err != nil {
			return err
		}
	}
	return nil
}
