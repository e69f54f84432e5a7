package repository

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"auction-marketplace/internal/marketerrors"
	"auction-marketplace/internal/models"
)

// UserRecord is a stored account; the hash never leaves the sandbox
type UserRecord struct {
	models.User
	PasswordHash string
}

// AuctionFilter narrows ListAuctions
type AuctionFilter struct {
	Status   models.AuctionStatus
	Category string
	Search   string
	SellerID string
}

// UserDB stores accounts and issued refresh tokens
type UserDB interface {
	CreateUser(u UserRecord) error
	UpdateUser(u UserRecord) error
	GetUser(id string) (UserRecord, error)
	GetUserByEmail(email string) (UserRecord, error)
	ListUsers() []models.User

	SaveRefreshToken(token, userID string, expiresAt time.Time)
	ConsumeRefreshToken(token string, now time.Time) (string, error)
	RevokeRefreshTokens(userID string)
}

// AuctionDB stores auctions, their bids and watchlists
type AuctionDB interface {
	SaveAuction(a models.Auction) error
	GetAuction(id string) (models.Auction, error)
	ListAuctions(f AuctionFilter) []models.Auction
	DeleteAuction(id string) error

	RecordBidForAuction(bid models.Bid) error
	GetBidsByAuction(auctionID string) ([]models.Bid, error)
	GetWinningBid(auctionID string) (models.Bid, error)
	ListBids() []models.Bid

	ToggleWatchlist(userID, auctionID string) bool
	IsWatchlisted(userID, auctionID string) bool
}

// PaymentDB stores entry fees and winning payments
type PaymentDB interface {
	SavePayment(p models.Payment) error
	GetPayment(id string) (models.Payment, error)
	ListPayments(userID string) []models.Payment
}

// CatalogDB stores seller submissions, categories and editable site content
type CatalogDB interface {
	SaveSubmission(s models.ProductSubmission) error
	GetSubmission(id string) (models.ProductSubmission, error)
	ListSubmissions(status models.SubmissionStatus) []models.ProductSubmission

	SaveCategory(c models.Category) error
	GetCategory(id string) (models.Category, error)
	ListCategories() []models.Category
	DeleteCategory(id string) error

	GetContent(key string) (json.RawMessage, bool)
	PutContent(key string, doc json.RawMessage)
}

// MarketDB is everything the sandbox backend persists
type MarketDB interface {
	UserDB
	AuctionDB
	PaymentDB
	CatalogDB
}

type refreshEntry struct {
	userID    string
	expiresAt time.Time
}

var _ MarketDB = (*MemoryRepo)(nil)

// MemoryRepo is a concurrency-safe in-memory implementation of MarketDB
type MemoryRepo struct {
	mu          sync.RWMutex
	users       map[string]UserRecord
	emails      map[string]string // lower-cased email -> userID
	refresh     map[string]refreshEntry
	auctions    map[string]models.Auction
	bids        map[string][]models.Bid        // auctionID -> bids in arrival order
	watchlist   map[string]map[string]struct{} // userID -> auctionIDs
	payments    map[string]models.Payment
	submissions map[string]models.ProductSubmission
	categories  map[string]models.Category
	content     map[string]json.RawMessage
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		users:       make(map[string]UserRecord),
		emails:      make(map[string]string),
		refresh:     make(map[string]refreshEntry),
		auctions:    make(map[string]models.Auction),
		bids:        make(map[string][]models.Bid),
		watchlist:   make(map[string]map[string]struct{}),
		payments:    make(map[string]models.Payment),
		submissions: make(map[string]models.ProductSubmission),
		categories:  make(map[string]models.Category),
		content:     make(map[string]json.RawMessage),
	}
}

// CreateUser stores a new account; email and username must be unique
func (r *MemoryRepo) CreateUser(u UserRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := strings.ToLower(u.Email)
	if _, taken := r.emails[email]; taken {
		return fmt.Errorf("create user %s: %w", u.Email, marketerrors.ErrUserExists)
	}
	for _, existing := range r.users {
		if strings.EqualFold(existing.Username, u.Username) {
			return fmt.Errorf("create user %s: %w", u.Username, marketerrors.ErrUserExists)
		}
	}

	r.users[u.ID] = u
	r.emails[email] = u.ID
	return nil
}

// UpdateUser replaces a stored account
func (r *MemoryRepo) UpdateUser(u UserRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[u.ID]; !ok {
		return fmt.Errorf("update user %s: %w", u.ID, marketerrors.ErrNotFound)
	}
	r.users[u.ID] = u
	return nil
}

// GetUser returns the account with id
func (r *MemoryRepo) GetUser(id string) (UserRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return UserRecord{}, fmt.Errorf("get user %s: %w", id, marketerrors.ErrNotFound)
	}
	return u, nil
}

// GetUserByEmail looks an account up case-insensitively
func (r *MemoryRepo) GetUserByEmail(email string) (UserRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.emails[strings.ToLower(email)]
	if !ok {
		return UserRecord{}, fmt.Errorf("get user %s: %w", email, marketerrors.ErrNotFound)
	}
	return r.users[id], nil
}

// ListUsers returns every account ordered by username
func (r *MemoryRepo) ListUsers() []models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u.User)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out
}

// SaveRefreshToken remembers an issued refresh token
func (r *MemoryRepo) SaveRefreshToken(token, userID string, expiresAt time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.refresh[token] = refreshEntry{userID: userID, expiresAt: expiresAt}
}

// ConsumeRefreshToken removes token and returns its owner. Each token works once.
func (r *MemoryRepo) ConsumeRefreshToken(token string, now time.Time) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.refresh[token]
	if !ok {
		return "", fmt.Errorf("consume refresh token: %w", marketerrors.ErrUnauthorized)
	}
	delete(r.refresh, token)
	if !now.Before(entry.expiresAt) {
		return "", fmt.Errorf("consume refresh token: %w", marketerrors.ErrSessionExpired)
	}
	return entry.userID, nil
}

// RevokeRefreshTokens drops every refresh token of userID
func (r *MemoryRepo) RevokeRefreshTokens(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for token, entry := range r.refresh {
		if entry.userID == userID {
			delete(r.refresh, token)
		}
	}
}

// SaveAuction inserts or replaces an auction
func (r *MemoryRepo) SaveAuction(a models.Auction) error {
	if a.ID == "" {
		return fmt.Errorf("save auction: %w", marketerrors.ErrValidation)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.auctions[a.ID] = a
	return nil
}

// GetAuction returns the auction with id
func (r *MemoryRepo) GetAuction(id string) (models.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.auctions[id]
	if !ok {
		return models.Auction{}, fmt.Errorf("get auction %s: %w", id, marketerrors.ErrAuctionNotFound)
	}
	return a, nil
}

// ListAuctions returns matching auctions, soonest ending first
func (r *MemoryRepo) ListAuctions(f AuctionFilter) []models.Auction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search := strings.ToLower(f.Search)
	out := make([]models.Auction, 0, len(r.auctions))
	for _, a := range r.auctions {
		switch {
		case f.Status != "" && a.Status != f.Status:
			continue
		case f.Category != "" && a.CategoryID != f.Category && a.Category != f.Category:
			continue
		case f.SellerID != "" && a.SellerID != f.SellerID:
			continue
		case search != "" && !strings.Contains(strings.ToLower(a.Title), search):
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].EndTime.Equal(out[j].EndTime) {
			return out[i].ID < out[j].ID
		}
		return out[i].EndTime.Before(out[j].EndTime)
	})
	return out
}

// DeleteAuction removes an auction and its bids
func (r *MemoryRepo) DeleteAuction(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[id]; !ok {
		return fmt.Errorf("delete auction %s: %w", id, marketerrors.ErrAuctionNotFound)
	}
	delete(r.auctions, id)
	delete(r.bids, id)
	return nil
}

// RecordBidForAuction appends a bid, marks earlier accepted bids OUTBID and
// moves the auction's current bid
func (r *MemoryRepo) RecordBidForAuction(bid models.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.auctions[bid.AuctionID]
	if !ok {
		return fmt.Errorf("record bid for auction %s: %w", bid.AuctionID, marketerrors.ErrAuctionNotFound)
	}

	bids := r.bids[bid.AuctionID]
	for i := range bids {
		if bids[i].Status == models.BidAccepted {
			bids[i].Status = models.BidOutbid
		}
	}
	r.bids[bid.AuctionID] = append(bids, bid)

	a.CurrentBid = bid.Amount
	a.BidCount++
	r.auctions[a.ID] = a
	return nil
}

// GetBidsByAuction returns all bids for an auction, newest first
func (r *MemoryRepo) GetBidsByAuction(auctionID string) ([]models.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids, ok := r.bids[auctionID]
	if !ok || len(bids) == 0 {
		return nil, fmt.Errorf("get bids for auction %s: %w", auctionID, marketerrors.ErrNoBids)
	}
	out := make([]models.Bid, len(bids))
	for i, b := range bids {
		out[len(bids)-1-i] = b
	}
	return out, nil
}

// GetWinningBid returns the highest bid for an auction; the earlier bid wins a tie
func (r *MemoryRepo) GetWinningBid(auctionID string) (models.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids, ok := r.bids[auctionID]
	if !ok || len(bids) == 0 {
		return models.Bid{}, fmt.Errorf("get winning bid for auction %s: %w", auctionID, marketerrors.ErrNoBids)
	}

	winning := bids[0]
	for _, b := range bids[1:] {
		if b.Amount > winning.Amount || (b.Amount == winning.Amount && b.CreatedAt.Before(winning.CreatedAt)) {
			winning = b
		}
	}
	return winning, nil
}

// ListBids returns every bid, newest first
func (r *MemoryRepo) ListBids() []models.Bid {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Bid
	for _, bids := range r.bids {
		out = append(out, bids...)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// ToggleWatchlist flips the auction on the user's watchlist and reports the new state
func (r *MemoryRepo) ToggleWatchlist(userID, auctionID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.watchlist[userID]
	if !ok {
		set = make(map[string]struct{})
		r.watchlist[userID] = set
	}
	if _, on := set[auctionID]; on {
		delete(set, auctionID)
		return false
	}
	set[auctionID] = struct{}{}
	return true
}

// IsWatchlisted reports whether the auction is on the user's watchlist
func (r *MemoryRepo) IsWatchlisted(userID, auctionID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, on := r.watchlist[userID][auctionID]
	return on
}

// SavePayment inserts or replaces a payment
func (r *MemoryRepo) SavePayment(p models.Payment) error {
	if p.ID == "" {
		return fmt.Errorf("save payment: %w", marketerrors.ErrValidation)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payments[p.ID] = p
	return nil
}

// GetPayment returns the payment with id
func (r *MemoryRepo) GetPayment(id string) (models.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.payments[id]
	if !ok {
		return models.Payment{}, fmt.Errorf("get payment %s: %w", id, marketerrors.ErrNotFound)
	}
	return p, nil
}

// ListPayments returns a user's payments, newest first
func (r *MemoryRepo) ListPayments(userID string) []models.Payment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Payment
	for _, p := range r.payments {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// SaveSubmission inserts or replaces a product submission
func (r *MemoryRepo) SaveSubmission(s models.ProductSubmission) error {
	if s.ID == "" {
		return fmt.Errorf("save submission: %w", marketerrors.ErrValidation)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.submissions[s.ID] = s
	return nil
}

// GetSubmission returns the submission with id
func (r *MemoryRepo) GetSubmission(id string) (models.ProductSubmission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.submissions[id]
	if !ok {
		return models.ProductSubmission{}, fmt.Errorf("get submission %s: %w", id, marketerrors.ErrNotFound)
	}
	return s, nil
}

// ListSubmissions returns submissions with status (all when empty), oldest first
func (r *MemoryRepo) ListSubmissions(status models.SubmissionStatus) []models.ProductSubmission {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.ProductSubmission
	for _, s := range r.submissions {
		if status == "" || s.Status == status {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

// SaveCategory inserts or replaces a category; slugs must be unique
func (r *MemoryRepo) SaveCategory(c models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, existing := range r.categories {
		if id != c.ID && existing.Slug == c.Slug {
			return fmt.Errorf("save category %s: %w", c.Slug, marketerrors.ErrBusinessRule)
		}
	}
	r.categories[c.ID] = c
	return nil
}

// GetCategory returns the category with id
func (r *MemoryRepo) GetCategory(id string) (models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.categories[id]
	if !ok {
		return models.Category{}, fmt.Errorf("get category %s: %w", id, marketerrors.ErrNotFound)
	}
	return c, nil
}

// ListCategories returns every category with a live auction count, by name
func (r *MemoryRepo) ListCategories() []models.Category {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[string]int)
	for _, a := range r.auctions {
		if !a.Status.Closed() {
			counts[a.CategoryID]++
		}
	}

	out := make([]models.Category, 0, len(r.categories))
	for _, c := range r.categories {
		c.AuctionCount = counts[c.ID]
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// DeleteCategory removes a category
func (r *MemoryRepo) DeleteCategory(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[id]; !ok {
		return fmt.Errorf("delete category %s: %w", id, marketerrors.ErrNotFound)
	}
	delete(r.categories, id)
	return nil
}

// GetContent returns a stored JSON document (settings, about page, integrations)
func (r *MemoryRepo) GetContent(key string) (json.RawMessage, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	doc, ok := r.content[key]
	return append(json.RawMessage(nil), doc...), ok
}

// PutContent replaces a stored JSON document
func (r *MemoryRepo) PutContent(key string, doc json.RawMessage) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.content[key] = append(json.RawMessage(nil), doc...)
}
