package productdetail

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"auction-marketplace/internal/apiclient"
	"auction-marketplace/internal/marketerrors"
	"auction-marketplace/internal/models"
	"auction-marketplace/utils"

	"golang.org/x/sync/errgroup"
)

// Detail is everything the detail page renders for one auction
type Detail struct {
	Auction     models.Auction
	Bids        []models.Bid
	UserBid     *models.UserBidStatus
	EntryFee    models.EntryFeeStatus
	Watchlisted bool
	User        *models.User
	State       State
	LoadedAt    time.Time
}

// MinimumBid is the lowest amount the viewer may bid next
func (d *Detail) MinimumBid() float64 {
	return MinimumBid(d.Auction, d.UserBid)
}

// IsWinner reports whether the viewer won this (ended) auction
func (d *Detail) IsWinner() bool {
	return d.State == StateEnded && d.User != nil && d.Auction.WinnerID != "" && d.Auction.WinnerID == d.User.ID
}

func (d *Detail) derive() {
	d.State = Derive(GateInput{
		Auction:      d.Auction,
		User:         d.User,
		EntryFeePaid: d.EntryFee.HasPaid,
		Now:          d.LoadedAt,
	})
}

// Viewer supplies the signed-in user; *auth.Manager implements it
type Viewer interface {
	CurrentUser() *models.User
}

// PaymentMethod identifies the card used for the entry fee
type PaymentMethod struct {
	ID string `json:"paymentMethodId"`
}

type entryFeeRequest struct {
	AuctionID       string `json:"auctionId"`
	PaymentMethodID string `json:"paymentMethodId"`
}

type bidRequest struct {
	Amount float64 `json:"amount"`
}

// Manager loads auction details and performs the viewer's actions on them
type Manager struct {
	api       *apiclient.Client
	viewer    Viewer
	confirmer *PaymentConfirmer
	observer  func(*Detail)
	now       func() time.Time

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// Option configures a Manager
type Option func(*Manager)

// WithObserver registers fn to receive every state change, including optimistic ones
func WithObserver(fn func(*Detail)) Option {
	return func(m *Manager) { m.observer = fn }
}

// WithConfirmer replaces the default entry-fee confirmer
func WithConfirmer(c *PaymentConfirmer) Option {
	return func(m *Manager) { m.confirmer = c }
}

// WithClock overrides time.Now
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// NewManager creates a product detail manager
func NewManager(api *apiclient.Client, viewer Viewer, opts ...Option) *Manager {
	m := &Manager{
		api:      api,
		viewer:   viewer,
		now:      time.Now,
		inFlight: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.confirmer == nil {
		m.confirmer = NewPaymentConfirmer(api)
	}
	return m
}

func auctionPath(id string, parts ...string) string {
	p := "/auctions/" + url.PathEscape(id)
	for _, part := range parts {
		p += "/" + part
	}
	return p
}

// Load reads the auction, its bid history and, for a signed-in viewer, their bid,
// entry-fee and watchlist status, then derives the gate state.
func (m *Manager) Load(ctx context.Context, auctionID string) (*Detail, error) {
	d := &Detail{User: m.viewer.CurrentUser()}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := m.api.Get(gctx, auctionPath(auctionID), nil, &d.Auction); err != nil {
			return fmt.Errorf("load auction %s: %w", auctionID, err)
		}
		return nil
	})
	g.Go(func() error {
		if err := m.api.Get(gctx, auctionPath(auctionID, "bids"), nil, &d.Bids); err != nil {
			return fmt.Errorf("load bids %s: %w", auctionID, err)
		}
		return nil
	})

	// an expired session turns the page into the anonymous view instead of failing it
	var expired atomic.Bool
	userRead := func(err error) error {
		if errors.Is(err, marketerrors.ErrSessionExpired) {
			expired.Store(true)
			return nil
		}
		return err
	}

	if d.User != nil {
		g.Go(func() error {
			var status models.UserBidStatus
			if err := m.api.Get(gctx, auctionPath(auctionID, "user-bid"), nil, &status); err != nil {
				return userRead(fmt.Errorf("load user bid %s: %w", auctionID, err))
			}
			d.UserBid = &status
			return nil
		})
		g.Go(func() error {
			status, err := m.confirmer.EntryFeeStatus(gctx, auctionID)
			if err != nil {
				return userRead(err)
			}
			d.EntryFee = status
			return nil
		})
		g.Go(func() error {
			var status models.WatchlistStatus
			if err := m.api.Get(gctx, auctionPath(auctionID, "watchlist-status"), nil, &status); err != nil {
				// the watchlist star is cosmetic
				if userRead(err) != nil {
					utils.Warn("watchlist status unavailable", map[string]any{"auction_id": auctionID, "error": err.Error()})
				}
				return nil
			}
			d.Watchlisted = status.IsWatchlisted
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if d.UserBid != nil && d.UserBid.HasPaidEntryFee {
		d.EntryFee.HasPaid = true
	}
	if d.User != nil && (expired.Load() || m.viewer.CurrentUser() == nil) {
		utils.Info("session expired while loading, showing anonymous view", map[string]any{"auction_id": auctionID})
		d.User = nil
		d.UserBid = nil
		d.EntryFee = models.EntryFeeStatus{}
		d.Watchlisted = false
	}

	d.EntryFee.AuctionID = auctionID
	d.LoadedAt = m.now()
	d.derive()
	m.notify(d)
	return d, nil
}

// PlaceBid validates amount against the current detail, submits it and returns a
// freshly loaded detail. Nothing is inserted optimistically.
func (m *Manager) PlaceBid(ctx context.Context, d *Detail, amount float64) (*Detail, error) {
	auctionID := d.Auction.ID
	if !m.acquire(auctionID) {
		return nil, fmt.Errorf("place bid %s: %w", auctionID, marketerrors.ErrBidInFlight)
	}
	defer m.release(auctionID)

	if err := gateError(d.State); err != nil {
		return nil, fmt.Errorf("place bid %s: %w", auctionID, err)
	}
	if err := ValidateBid(amount, d.Auction, d.UserBid); err != nil {
		return nil, err
	}

	var bid models.Bid
	if err := m.api.Post(ctx, auctionPath(auctionID, "bids"), bidRequest{Amount: amount}, &bid); err != nil {
		utils.Warn("bid rejected", map[string]any{"auction_id": auctionID, "amount": amount, "error": err.Error()})
		return nil, fmt.Errorf("place bid %s: %w", auctionID, err)
	}
	utils.Info("bid placed", map[string]any{"auction_id": auctionID, "bid_id": bid.ID, "amount": amount})

	return m.Load(ctx, auctionID)
}

func gateError(s State) error {
	switch s {
	case StateBiddingAllowed:
		return nil
	case StateUnauthenticated:
		return marketerrors.ErrUnauthorized
	case StateOwner:
		return marketerrors.ErrOwnAuction
	case StateAuthenticatedNoPayment:
		return marketerrors.ErrEntryFeeRequired
	default:
		return marketerrors.ErrAuctionNotActive
	}
}

func (m *Manager) acquire(auctionID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, busy := m.inFlight[auctionID]; busy {
		return false
	}
	m.inFlight[auctionID] = struct{}{}
	return true
}

func (m *Manager) release(auctionID string) {
	m.mu.Lock()
	delete(m.inFlight, auctionID)
	m.mu.Unlock()
}

// ToggleWatchlist flips the auction on or off the viewer's watchlist and returns the new value
func (m *Manager) ToggleWatchlist(ctx context.Context, auctionID string) (bool, error) {
	if m.viewer.CurrentUser() == nil {
		return false, fmt.Errorf("toggle watchlist %s: %w", auctionID, marketerrors.ErrUnauthorized)
	}
	var status models.WatchlistStatus
	if err := m.api.Post(ctx, auctionPath(auctionID, "watchlist"), nil, &status); err != nil {
		return false, fmt.Errorf("toggle watchlist %s: %w", auctionID, err)
	}
	return status.IsWatchlisted, nil
}

// PayEntryFee charges the entry fee, shows the viewer as paid right away and then
// waits for the backend to confirm. If confirmation never arrives the optimistic
// state is rolled back and ErrPaymentNotConfirmed is returned.
func (m *Manager) PayEntryFee(ctx context.Context, d *Detail, method PaymentMethod) (*Detail, error) {
	auctionID := d.Auction.ID
	switch d.State {
	case StateAuthenticatedNoPayment:
	case StateUnauthenticated:
		return nil, fmt.Errorf("pay entry fee %s: %w", auctionID, marketerrors.ErrUnauthorized)
	case StateOwner:
		return nil, fmt.Errorf("pay entry fee %s: %w", auctionID, marketerrors.ErrOwnAuction)
	case StateEnded:
		return nil, fmt.Errorf("pay entry fee %s: %w", auctionID, marketerrors.ErrAuctionNotActive)
	default:
		return nil, fmt.Errorf("pay entry fee %s: %w", auctionID, marketerrors.ErrAlreadyPaid)
	}

	var payment models.Payment
	req := entryFeeRequest{AuctionID: auctionID, PaymentMethodID: method.ID}
	if err := m.api.Post(ctx, "/payments/entry-fee", req, &payment); err != nil {
		return nil, fmt.Errorf("pay entry fee %s: %w", auctionID, err)
	}

	optimistic := *d
	optimistic.EntryFee = models.EntryFeeStatus{AuctionID: auctionID, HasPaid: true, Payment: &payment}
	optimistic.derive()
	m.notify(&optimistic)

	confirmed, err := m.confirmer.Confirm(ctx, auctionID)
	if err != nil {
		reverted := *d
		reverted.derive()
		m.notify(&reverted)
		utils.Error("entry fee not confirmed", map[string]any{"auction_id": auctionID, "payment_id": payment.ID, "error": err.Error()})
		if errors.Is(err, marketerrors.ErrPaymentNotConfirmed) {
			return &reverted, err
		}
		return &reverted, fmt.Errorf("%w: %w", marketerrors.ErrPaymentNotConfirmed, err)
	}
	utils.Info("entry fee confirmed", map[string]any{"auction_id": auctionID, "payment_id": confirmed.ID})

	return m.Load(ctx, auctionID)
}

// Checkout starts the winner checkout for a loaded detail
func (m *Manager) Checkout(d *Detail, cards CardConfirmer) (*WinnerCheckout, error) {
	if !d.IsWinner() {
		return nil, fmt.Errorf("checkout %s: %w", d.Auction.ID, marketerrors.ErrNotWinner)
	}
	return NewWinnerCheckout(m.api, d.Auction, cards), nil
}

func (m *Manager) notify(d *Detail) {
	if m.observer != nil {
		m.observer(d)
	}
}
