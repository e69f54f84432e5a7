package bidding

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"auction-marketplace/internal/live"
	"auction-marketplace/internal/marketerrors"
	"auction-marketplace/internal/models"
	"auction-marketplace/internal/productdetail"
	"auction-marketplace/internal/repository"
	"auction-marketplace/utils"
)

const defaultBidIncrement = 1

// EntryFees answers whether a user may bid on an auction
type EntryFees interface {
	HasPaidEntryFee(userID, auctionID string) bool
}

// Option configures a BiddingService
type Option func(*BiddingService)

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(s *BiddingService) { s.now = now }
}

// WithEvents publishes bid and auction changes to live subscribers
func WithEvents(p live.Publisher) Option {
	return func(s *BiddingService) { s.events = p }
}

// BiddingService defines the business logic for auction bidding. It is the
// authority on every bid rule; clients only pre-check.
type BiddingService struct {
	repo   repository.AuctionDB
	fees   EntryFees
	events live.Publisher
	now    func() time.Time

	// serializes status settling and bid placement
	mu sync.Mutex
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(repo repository.AuctionDB, fees EntryFees, opts ...Option) *BiddingService {
	s := &BiddingService{
		repo: repo,
		fees: fees,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PlaceBid validates and records a user's bid for an auction
func (s *BiddingService) PlaceBid(auctionID, userID string, amount float64) (models.Bid, error) {
	if auctionID == "" || userID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing auctionID or userID", marketerrors.ErrInvalidBid)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return models.Bid{}, fmt.Errorf("service: %w - non-positive bid amount", marketerrors.ErrInvalidBid)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.load(auctionID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}
	if err := s.validateBid(a, userID, amount); err != nil {
		return models.Bid{}, err
	}

	bid := models.Bid{
		ID:        utils.GenerateID(),
		AuctionID: auctionID,
		BidderID:  userID,
		Amount:    amount,
		Status:    models.BidAccepted,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.RecordBidForAuction(bid); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid for auction %s by user %s: %w", auctionID, userID, err)
	}

	s.publish(live.NewEvent(live.EventBidPlaced, auctionID, userID, bid))
	return bid, nil
}

// validateBid checks the gate and the amount rules for bidding
func (s *BiddingService) validateBid(a models.Auction, userID string, amount float64) error {
	switch {
	case a.SellerID == userID:
		return fmt.Errorf("service: %w", marketerrors.ErrOwnAuction)
	case a.Status != models.AuctionActive:
		return fmt.Errorf("service: %w - auction is %s", marketerrors.ErrAuctionNotActive, a.Status)
	case !s.fees.HasPaidEntryFee(userID, a.ID):
		return fmt.Errorf("service: %w", marketerrors.ErrEntryFeeRequired)
	}

	own, err := s.userBid(a.ID, userID)
	if err != nil {
		return err
	}
	if err := productdetail.ValidateBid(amount, a, &own); err != nil {
		return fmt.Errorf("service: %w", err)
	}
	return nil
}

// GetAuction returns an auction with its status brought up to date
func (s *BiddingService) GetAuction(id string) (models.Auction, error) {
	if id == "" {
		return models.Auction{}, fmt.Errorf("service: %w - empty auction ID", marketerrors.ErrNotFound)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.load(id)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to get auction %s: %w", id, err)
	}
	return a, nil
}

// ListAuctions returns the auctions matching f with statuses brought up to date
func (s *BiddingService) ListAuctions(f repository.AuctionFilter) []models.Auction {
	s.mu.Lock()
	defer s.mu.Unlock()

	// settle before filtering so a status filter sees current statuses
	for _, a := range s.repo.ListAuctions(repository.AuctionFilter{}) {
		s.settle(a)
	}
	return s.repo.ListAuctions(f)
}

// SettleDue brings every stored auction's status up to date and returns how many changed
func (s *BiddingService) SettleDue() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := 0
	for _, a := range s.repo.ListAuctions(repository.AuctionFilter{}) {
		if s.settle(a).Status != a.Status {
			changed++
		}
	}
	return changed
}

// CreateAuction stores a new auction; it opens immediately unless it starts in the future
func (s *BiddingService) CreateAuction(a models.Auction) (models.Auction, error) {
	if a.Title == "" || a.BasePrice <= 0 || a.SellerID == "" {
		return models.Auction{}, fmt.Errorf("service: %w - title, base price and seller are required", marketerrors.ErrValidation)
	}
	now := s.now().UTC()
	if a.ID == "" {
		a.ID = utils.GenerateID()
	}
	if a.BidIncrement <= 0 {
		a.BidIncrement = defaultBidIncrement
	}
	if a.StartTime.IsZero() {
		a.StartTime = now
	}
	if !a.EndTime.After(a.StartTime) {
		return models.Auction{}, fmt.Errorf("service: %w - end time must be after start time", marketerrors.ErrValidation)
	}
	if a.StartTime.After(now) {
		a.Status = models.AuctionScheduled
	} else {
		a.Status = models.AuctionActive
	}
	a.CurrentBid, a.BidCount, a.WinnerID = 0, 0, ""

	if err := s.repo.SaveAuction(a); err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to create auction: %w", err)
	}
	utils.Info("auction created", map[string]any{"auction_id": a.ID, "status": a.Status})
	return a, nil
}

// UpdateAuction applies admin edits; bidding state is never touched here
func (s *BiddingService) UpdateAuction(id string, edit models.Auction) (models.Auction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.load(id)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to update auction %s: %w", id, err)
	}
	if edit.Title != "" {
		a.Title = edit.Title
	}
	if edit.Description != "" {
		a.Description = edit.Description
	}
	if edit.CategoryID != "" {
		a.CategoryID = edit.CategoryID
	}
	if edit.EntryFee > 0 {
		a.EntryFee = edit.EntryFee
	}
	if !edit.EndTime.IsZero() {
		a.EndTime = edit.EndTime
	}
	if edit.Status == models.AuctionCancelled {
		a.Status = models.AuctionCancelled
	}
	if err := s.repo.SaveAuction(a); err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to update auction %s: %w", id, err)
	}
	s.publish(live.NewEvent(live.EventAuctionUpdated, a.ID, "", a))
	return a, nil
}

// DeleteAuction removes an auction and its bids
func (s *BiddingService) DeleteAuction(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.repo.DeleteAuction(id); err != nil {
		return fmt.Errorf("service: failed to delete auction %s: %w", id, err)
	}
	return nil
}

// GetBidsForAuction returns all bids for an auction, newest first. No bids is an empty list.
func (s *BiddingService) GetBidsForAuction(auctionID string) ([]models.Bid, error) {
	if _, err := s.GetAuction(auctionID); err != nil {
		return nil, err
	}
	bids, err := s.repo.GetBidsByAuction(auctionID)
	if errors.Is(err, marketerrors.ErrNoBids) {
		return []models.Bid{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for auction %s: %w", auctionID, err)
	}
	return bids, nil
}

// GetWinningBid returns the highest bid for an auction
func (s *BiddingService) GetWinningBid(auctionID string) (models.Bid, error) {
	if auctionID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - empty auction ID", marketerrors.ErrInvalidBid)
	}
	winningBid, err := s.repo.GetWinningBid(auctionID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get winning bid for auction %s: %w", auctionID, err)
	}
	return winningBid, nil
}

// ListBids returns every bid for the admin dashboard
func (s *BiddingService) ListBids() []models.Bid {
	return s.repo.ListBids()
}

// UserBidStatus is the caller's standing on one auction
func (s *BiddingService) UserBidStatus(auctionID, userID string) (models.UserBidStatus, error) {
	if _, err := s.GetAuction(auctionID); err != nil {
		return models.UserBidStatus{}, err
	}
	status, err := s.userBid(auctionID, userID)
	if err != nil {
		return models.UserBidStatus{}, err
	}
	status.HasPaidEntryFee = s.fees.HasPaidEntryFee(userID, auctionID)
	return status, nil
}

func (s *BiddingService) userBid(auctionID, userID string) (models.UserBidStatus, error) {
	bids, err := s.repo.GetBidsByAuction(auctionID)
	if errors.Is(err, marketerrors.ErrNoBids) {
		return models.UserBidStatus{}, nil
	}
	if err != nil {
		return models.UserBidStatus{}, fmt.Errorf("service: failed to get bids for auction %s: %w", auctionID, err)
	}

	var status models.UserBidStatus
	for i, b := range bids {
		if b.BidderID != userID {
			continue
		}
		if !status.HasBid || b.Amount > status.Amount {
			status.HasBid = true
			status.Amount = b.Amount
		}
		// bids are newest first, so the first one is the current leader
		if i == 0 {
			status.IsWinning = true
		}
	}
	return status, nil
}

// ToggleWatchlist flips the auction on the user's watchlist
func (s *BiddingService) ToggleWatchlist(userID, auctionID string) (models.WatchlistStatus, error) {
	if _, err := s.GetAuction(auctionID); err != nil {
		return models.WatchlistStatus{}, err
	}
	on := s.repo.ToggleWatchlist(userID, auctionID)
	return models.WatchlistStatus{AuctionID: auctionID, IsWatchlisted: on}, nil
}

// WatchlistStatus reports whether the auction is on the user's watchlist
func (s *BiddingService) WatchlistStatus(userID, auctionID string) (models.WatchlistStatus, error) {
	if _, err := s.GetAuction(auctionID); err != nil {
		return models.WatchlistStatus{}, err
	}
	return models.WatchlistStatus{AuctionID: auctionID, IsWatchlisted: s.repo.IsWatchlisted(userID, auctionID)}, nil
}

// load reads and settles an auction; callers hold s.mu
func (s *BiddingService) load(id string) (models.Auction, error) {
	a, err := s.repo.GetAuction(id)
	if err != nil {
		return models.Auction{}, err
	}
	return s.settle(a), nil
}

// settle moves SCHEDULED auctions to ACTIVE once started and ACTIVE ones to ENDED
// once past their end, recording the winner. Callers hold s.mu.
func (s *BiddingService) settle(a models.Auction) models.Auction {
	now := s.now()
	before := a.Status

	if a.Status == models.AuctionScheduled && !now.Before(a.StartTime) {
		a.Status = models.AuctionActive
	}
	if a.Status == models.AuctionActive && !a.EndTime.IsZero() && !now.Before(a.EndTime) {
		a.Status = models.AuctionEnded
		winning, err := s.repo.GetWinningBid(a.ID)
		if err == nil && (a.ReservePrice <= 0 || winning.Amount >= a.ReservePrice) {
			a.WinnerID = winning.BidderID
		}
	}
	if a.Status == before {
		return a
	}

	if err := s.repo.SaveAuction(a); err != nil {
		utils.Error("settle auction failed", map[string]any{"auction_id": a.ID, "error": err.Error()})
		return a
	}
	utils.Info("auction status changed", map[string]any{"auction_id": a.ID, "from": before, "to": a.Status, "winner_id": a.WinnerID})
	s.publish(live.NewEvent(live.EventAuctionUpdated, a.ID, "", a))
	return a
}

func (s *BiddingService) publish(e live.Event) {
	if s.events != nil {
		s.events.Publish(e)
	}
}
