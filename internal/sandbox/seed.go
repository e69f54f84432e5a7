package sandbox

import (
	"fmt"
	"time"

	"auction-marketplace/internal/accounts"
	bidding "auction-marketplace/internal/biddingService"
	"auction-marketplace/internal/models"
	"auction-marketplace/utils"
)

// Demo accounts created by SeedDemo
const (
	AdminEmail    = "admin@example.com"
	AdminPassword = "Admin123!"
	SellerEmail   = "seller@example.com"
	BidderEmail   = "bidder@example.com"
	DemoPassword  = "Bidder123!"
)

// SeedDemo creates an admin, a seller, a bidder and a handful of auctions owned by the seller
func SeedDemo(acc *accounts.Service, svc *bidding.BiddingService) error {
	users := []struct {
		user     models.User
		password string
	}{
		{models.User{Email: AdminEmail, Username: "admin", FirstName: "Ada", LastName: "Admin", Role: models.RoleAdmin}, AdminPassword},
		{models.User{Email: SellerEmail, Username: "seller", FirstName: "Sam", LastName: "Seller", Role: models.RoleUser}, DemoPassword},
		{models.User{Email: BidderEmail, Username: "bidder", FirstName: "Bea", LastName: "Bidder", Role: models.RoleUser}, DemoPassword},
	}

	var sellerID string
	for _, u := range users {
		u.user.IsEmailVerified = true
		created, err := acc.Seed(u.user, u.password)
		if err != nil {
			return err
		}
		if created.Email == SellerEmail {
			sellerID = created.ID
		}
	}

	now := time.Now().UTC()
	auctions := []models.Auction{
		{Title: "Vintage rangefinder camera", Description: "Working 1960s rangefinder with leather case.", CategoryID: "electronics", Category: "Electronics", BasePrice: 120, BidIncrement: 5, EntryFee: 5, EndTime: now.Add(72 * time.Hour)},
		{Title: "Signed abstract print", Description: "Limited edition print, 12 of 50.", CategoryID: "art", Category: "Art", BasePrice: 300, BidIncrement: 15, EntryFee: 10, ReservePrice: 450, EndTime: now.Add(48 * time.Hour)},
		{Title: "First edition comic", Description: "Graded, sealed and stored flat.", CategoryID: "collectibles", Category: "Collectibles", BasePrice: 80, BidIncrement: 2, EntryFee: 2, EndTime: now.Add(10 * time.Minute)},
		{Title: "Designer leather jacket", Description: "Size M, worn twice.", CategoryID: "fashion", Category: "Fashion", BasePrice: 150, BidIncrement: 5, EntryFee: 3, StartTime: now.Add(time.Hour), EndTime: now.Add(96 * time.Hour)},
	}
	for _, a := range auctions {
		a.SellerID = sellerID
		a.Images = []string{}
		if _, err := svc.CreateAuction(a); err != nil {
			return fmt.Errorf("seed auction %q: %w", a.Title, err)
		}
	}

	utils.Info("demo data seeded", map[string]any{"users": len(users), "auctions": len(auctions)})
	return nil
}
