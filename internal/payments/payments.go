// Package payments is the sandbox's payment processor: entry fees that settle
// after a delay, the payment history and the winner's final settlement.
package payments

import (
	"fmt"
	"sync"
	"time"

	"auction-marketplace/internal/live"
	"auction-marketplace/internal/marketerrors"
	"auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"
	"auction-marketplace/utils"
)

const currency = "usd"

// AuctionReader returns an auction with its status brought up to date
type AuctionReader interface {
	GetAuction(id string) (models.Auction, error)
}

// WinnerVerification is the final settlement submitted by the winner
type WinnerVerification struct {
	AuctionID       string
	PaymentIntentID string
	Reference       string
	Shipping        models.Address
	Billing         models.Address
}

type intent struct {
	userID    string
	auctionID string
	amount    float64
}

// Service records and settles payments
type Service struct {
	db             repository.PaymentDB
	auctions       AuctionReader
	store          repository.AuctionDB
	events         live.Publisher
	lag            time.Duration
	publishableKey string
	now            func() time.Time

	mu      sync.Mutex
	intents map[string]intent
	timers  map[string]*time.Timer
}

// NewService creates the payment service. Entry fees settle lag after they are
// charged; a zero lag settles them immediately.
func NewService(db repository.PaymentDB, auctions AuctionReader, store repository.AuctionDB, events live.Publisher, lag time.Duration, publishableKey string) *Service {
	return &Service{
		db:             db,
		auctions:       auctions,
		store:          store,
		events:         events,
		lag:            lag,
		publishableKey: publishableKey,
		now:            time.Now,
		intents:        make(map[string]intent),
		timers:         make(map[string]*time.Timer),
	}
}

// PublishableKey is handed to clients for card confirmation
func (s *Service) PublishableKey() string {
	return s.publishableKey
}

// PayEntryFee charges the auction's entry fee. The payment starts PENDING.
func (s *Service) PayEntryFee(userID, auctionID, paymentMethodID string) (models.Payment, error) {
	if paymentMethodID == "" {
		return models.Payment{}, fmt.Errorf("service: %w - missing payment method", marketerrors.ErrValidation)
	}
	a, err := s.auctions.GetAuction(auctionID)
	if err != nil {
		return models.Payment{}, fmt.Errorf("service: pay entry fee: %w", err)
	}
	switch {
	case a.SellerID == userID:
		return models.Payment{}, fmt.Errorf("service: pay entry fee: %w", marketerrors.ErrOwnAuction)
	case a.Status != models.AuctionActive && a.Status != models.AuctionScheduled:
		return models.Payment{}, fmt.Errorf("service: pay entry fee: %w", marketerrors.ErrAuctionNotActive)
	}
	if existing, ok := s.entryFee(userID, auctionID); ok && existing.Status != models.PaymentFailed {
		return models.Payment{}, fmt.Errorf("service: pay entry fee: %w", marketerrors.ErrAlreadyPaid)
	}

	p := models.Payment{
		ID:        utils.GenerateID(),
		AuctionID: auctionID,
		UserID:    userID,
		Type:      models.PaymentEntryFee,
		Status:    models.PaymentPending,
		Amount:    a.EntryFee,
		Reference: paymentMethodID,
		CreatedAt: s.now().UTC(),
	}
	if err := s.db.SavePayment(p); err != nil {
		return models.Payment{}, fmt.Errorf("service: pay entry fee: %w", err)
	}
	utils.Info("entry fee charged", map[string]any{"payment_id": p.ID, "auction_id": auctionID, "user_id": userID})

	if s.lag <= 0 {
		return s.settle(p.ID), nil
	}
	s.mu.Lock()
	s.timers[p.ID] = time.AfterFunc(s.lag, func() { s.settle(p.ID) })
	s.mu.Unlock()
	return p, nil
}

func (s *Service) settle(paymentID string) models.Payment {
	s.mu.Lock()
	delete(s.timers, paymentID)
	s.mu.Unlock()

	p, err := s.db.GetPayment(paymentID)
	if err != nil {
		utils.Error("settle entry fee failed", map[string]any{"payment_id": paymentID, "error": err.Error()})
		return p
	}
	paidAt := s.now().UTC()
	p.Status = models.PaymentSucceeded
	p.PaidAt = &paidAt
	if err := s.db.SavePayment(p); err != nil {
		utils.Error("settle entry fee failed", map[string]any{"payment_id": paymentID, "error": err.Error()})
		return p
	}

	utils.Info("entry fee settled", map[string]any{"payment_id": p.ID, "auction_id": p.AuctionID})
	if s.events != nil {
		s.events.Publish(live.NewEvent(live.EventPaymentConfirmed, p.AuctionID, p.UserID, p))
	}
	return p
}

// Close stops settlement timers that have not fired yet
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}

// entryFee returns the most recent entry-fee payment of userID for auctionID
func (s *Service) entryFee(userID, auctionID string) (models.Payment, bool) {
	for _, p := range s.db.ListPayments(userID) {
		if p.AuctionID == auctionID && p.Type == models.PaymentEntryFee {
			return p, true
		}
	}
	return models.Payment{}, false
}

// HasPaidEntryFee reports whether the user's entry fee for the auction has settled
func (s *Service) HasPaidEntryFee(userID, auctionID string) bool {
	p, ok := s.entryFee(userID, auctionID)
	return ok && p.Succeeded()
}

// EntryFeeStatus is the per-auction status polled by clients after paying
func (s *Service) EntryFeeStatus(userID, auctionID string) (models.EntryFeeStatus, error) {
	if _, err := s.auctions.GetAuction(auctionID); err != nil {
		return models.EntryFeeStatus{}, fmt.Errorf("service: entry fee status: %w", err)
	}
	status := models.EntryFeeStatus{AuctionID: auctionID}
	if p, ok := s.entryFee(userID, auctionID); ok {
		status.Payment = &p
		status.HasPaid = p.Succeeded()
	}
	return status, nil
}

// History returns the user's payments, newest first, optionally of one type
func (s *Service) History(userID string, typ models.PaymentType) []models.Payment {
	all := s.db.ListPayments(userID)
	if typ == "" {
		return all
	}
	out := make([]models.Payment, 0, len(all))
	for _, p := range all {
		if p.Type == typ {
			out = append(out, p)
		}
	}
	return out
}

// WinningPayment creates the payment intent for the winner of an ended auction
func (s *Service) WinningPayment(userID, auctionID string) (models.PaymentIntent, error) {
	a, err := s.auctions.GetAuction(auctionID)
	if err != nil {
		return models.PaymentIntent{}, fmt.Errorf("service: winning payment: %w", err)
	}
	switch {
	case a.Status == models.AuctionSold:
		return models.PaymentIntent{}, fmt.Errorf("service: winning payment: %w", marketerrors.ErrAlreadyPaid)
	case a.Status != models.AuctionEnded:
		return models.PaymentIntent{}, fmt.Errorf("service: winning payment: auction has not ended: %w", marketerrors.ErrBusinessRule)
	case a.WinnerID != userID:
		return models.PaymentIntent{}, fmt.Errorf("service: winning payment: %w", marketerrors.ErrNotWinner)
	}

	id := utils.PrefixedID("pi")
	pi := models.PaymentIntent{
		ID:           id,
		ClientSecret: utils.PrefixedID(id + "_secret"),
		Amount:       a.CurrentBid,
		Currency:     currency,
	}
	s.mu.Lock()
	s.intents[id] = intent{userID: userID, auctionID: auctionID, amount: a.CurrentBid}
	s.mu.Unlock()
	return pi, nil
}

// VerifyWinnerPayment records the settled winning payment and marks the auction SOLD
func (s *Service) VerifyWinnerPayment(userID string, v WinnerVerification) (models.Payment, error) {
	s.mu.Lock()
	in, ok := s.intents[v.PaymentIntentID]
	if ok && in.userID == userID && in.auctionID == v.AuctionID {
		delete(s.intents, v.PaymentIntentID)
	}
	s.mu.Unlock()
	if !ok || in.userID != userID || in.auctionID != v.AuctionID {
		return models.Payment{}, fmt.Errorf("service: verify winner payment: unknown payment intent: %w", marketerrors.ErrValidation)
	}

	a, err := s.auctions.GetAuction(v.AuctionID)
	if err != nil {
		return models.Payment{}, fmt.Errorf("service: verify winner payment: %w", err)
	}
	if a.Status == models.AuctionSold {
		return models.Payment{}, fmt.Errorf("service: verify winner payment: %w", marketerrors.ErrAlreadyPaid)
	}

	now := s.now().UTC()
	p := models.Payment{
		ID:        utils.GenerateID(),
		AuctionID: v.AuctionID,
		UserID:    userID,
		Type:      models.PaymentWinning,
		Status:    models.PaymentSucceeded,
		Amount:    in.amount,
		Reference: v.Reference,
		PaidAt:    &now,
		CreatedAt: now,
	}
	if err := s.db.SavePayment(p); err != nil {
		return models.Payment{}, fmt.Errorf("service: verify winner payment: %w", err)
	}

	a.Status = models.AuctionSold
	if err := s.store.SaveAuction(a); err != nil {
		return models.Payment{}, fmt.Errorf("service: verify winner payment: %w", err)
	}

	utils.Info("winner payment verified", map[string]any{"auction_id": a.ID, "user_id": userID, "city": v.Shipping.City})
	if s.events != nil {
		s.events.Publish(live.NewEvent(live.EventAuctionUpdated, a.ID, userID, a))
	}
	return p, nil
}

// Revenue sums settled payments across users
func (s *Service) Revenue(userIDs []string) float64 {
	var total float64
	for _, id := range userIDs {
		for _, p := range s.db.ListPayments(id) {
			if p.Succeeded() {
				total += p.Amount
			}
		}
	}
	return total
}
