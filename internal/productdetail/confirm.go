package productdetail

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"auction-marketplace/internal/apiclient"
	"auction-marketplace/internal/live"
	"auction-marketplace/internal/marketerrors"
	"auction-marketplace/internal/models"
	"auction-marketplace/utils"
)

// DefaultConfirmSchedule are the offsets, measured from the start of confirmation,
// at which the payment status endpoint is checked
var DefaultConfirmSchedule = []time.Duration{1 * time.Second, 3 * time.Second, 5 * time.Second}

// EventSource streams pushed auction events; *live.Subscriber implements it
type EventSource interface {
	Subscribe(ctx context.Context, auctionID string) (<-chan live.Event, error)
}

// PaymentConfirmer waits for the backend ledger to acknowledge an entry-fee payment.
// It polls on a fixed schedule, then falls back to the payment history once. It never
// assumes success: if nothing confirms, ErrPaymentNotConfirmed is returned.
type PaymentConfirmer struct {
	api      *apiclient.Client
	schedule []time.Duration
	history  bool
	events   EventSource
}

// ConfirmerOption configures a PaymentConfirmer
type ConfirmerOption func(*PaymentConfirmer)

// WithSchedule replaces the polling offsets
func WithSchedule(offsets ...time.Duration) ConfirmerOption {
	return func(p *PaymentConfirmer) { p.schedule = offsets }
}

// WithoutHistoryFallback disables the final payment-history lookup
func WithoutHistoryFallback() ConfirmerOption {
	return func(p *PaymentConfirmer) { p.history = false }
}

// WithEvents lets a pushed payment.confirmed event end the wait early
func WithEvents(src EventSource) ConfirmerOption {
	return func(p *PaymentConfirmer) { p.events = src }
}

// NewPaymentConfirmer creates a confirmer using DefaultConfirmSchedule
func NewPaymentConfirmer(api *apiclient.Client, opts ...ConfirmerOption) *PaymentConfirmer {
	p := &PaymentConfirmer{
		api:      api,
		schedule: DefaultConfirmSchedule,
		history:  true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// EntryFeeStatus reads the per-auction payment status once
func (p *PaymentConfirmer) EntryFeeStatus(ctx context.Context, auctionID string) (models.EntryFeeStatus, error) {
	var status models.EntryFeeStatus
	path := "/payments/auction/" + url.PathEscape(auctionID) + "/status"
	if err := p.api.Get(ctx, path, nil, &status); err != nil {
		return models.EntryFeeStatus{}, fmt.Errorf("entry fee status %s: %w", auctionID, err)
	}
	return status, nil
}

// Confirm blocks until the entry fee for auctionID is confirmed, the schedule is
// exhausted, or ctx is done.
func (p *PaymentConfirmer) Confirm(ctx context.Context, auctionID string) (*models.Payment, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := p.subscribe(ctx, auctionID)
	start := time.Now()

	for attempt, offset := range p.schedule {
		timer := time.NewTimer(time.Until(start.Add(offset)))

	wait:
		for {
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil, ctx.Err()
			case ev, ok := <-events:
				if !ok {
					events = nil
					continue
				}
				if payment, confirmed := confirmedByEvent(ev, auctionID); confirmed {
					timer.Stop()
					utils.Info("payment confirmed by push event", map[string]any{"auction_id": auctionID})
					return payment, nil
				}
			case <-timer.C:
				break wait
			}
		}

		status, err := p.EntryFeeStatus(ctx, auctionID)
		if err != nil {
			utils.Warn("payment status check failed", map[string]any{
				"auction_id": auctionID,
				"attempt":    attempt + 1,
				"error":      err.Error(),
			})
			continue
		}
		if status.HasPaid {
			payment := status.Payment
			if payment == nil {
				payment = &models.Payment{AuctionID: auctionID, Type: models.PaymentEntryFee, Status: models.PaymentSucceeded}
			}
			return payment, nil
		}
	}

	if p.history {
		payment, err := p.fromHistory(ctx, auctionID)
		if err != nil {
			utils.Warn("payment history fallback failed", map[string]any{"auction_id": auctionID, "error": err.Error()})
		} else if payment != nil {
			return payment, nil
		}
	}

	utils.Warn("payment not confirmed", map[string]any{"auction_id": auctionID, "attempts": len(p.schedule)})
	return nil, fmt.Errorf("confirm entry fee %s: %w", auctionID, marketerrors.ErrPaymentNotConfirmed)
}

// subscribe returns nil (a channel that never fires) when push is not configured or unavailable
func (p *PaymentConfirmer) subscribe(ctx context.Context, auctionID string) <-chan live.Event {
	if p.events == nil {
		return nil
	}
	ch, err := p.events.Subscribe(ctx, auctionID)
	if err != nil {
		utils.Debug("push events unavailable, polling only", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return nil
	}
	return ch
}

func confirmedByEvent(ev live.Event, auctionID string) (*models.Payment, bool) {
	if ev.Type != live.EventPaymentConfirmed || ev.AuctionID != auctionID {
		return nil, false
	}
	var payment models.Payment
	if err := ev.Decode(&payment); err != nil || payment.Type != models.PaymentEntryFee || !payment.Succeeded() {
		return nil, false
	}
	return &payment, true
}

func (p *PaymentConfirmer) fromHistory(ctx context.Context, auctionID string) (*models.Payment, error) {
	var history []models.Payment
	query := url.Values{"type": {string(models.PaymentEntryFee)}}
	if err := p.api.Get(ctx, "/payments/history", query, &history); err != nil {
		return nil, fmt.Errorf("payment history: %w", err)
	}
	for i := range history {
		if history[i].AuctionID == auctionID && history[i].Type == models.PaymentEntryFee && history[i].Succeeded() {
			return &history[i], nil
		}
	}
	return nil, nil
}
