package productdetail

import (
	"context"
	"fmt"
	"sync"

	"auction-marketplace/internal/apiclient"
	"auction-marketplace/internal/marketerrors"
	"auction-marketplace/internal/models"
	"auction-marketplace/internal/validation"
	"auction-marketplace/utils"
)

// CardConfirmer confirms a payment intent with the card processor and returns the
// processor's payment reference. The processor SDK lives behind this interface.
//
//go:generate mockgen -source=checkout.go -destination=mock_checkout.go -package=productdetail
type CardConfirmer interface {
	ConfirmCardPayment(ctx context.Context, publishableKey string, intent models.PaymentIntent, billing models.Address) (string, error)
}

// CheckoutForm is what the winner enters in the checkout modal
type CheckoutForm struct {
	Shipping       models.Address `json:"shippingAddress"`
	Billing        models.Address `json:"billingAddress"`
	SameAsShipping bool           `json:"sameAsShipping"`
}

func (f CheckoutForm) resolved() CheckoutForm {
	if f.SameAsShipping {
		f.Billing = f.Shipping
	}
	return f
}

// Validate checks both addresses; billing is ignored when it copies shipping
func (f CheckoutForm) Validate() error {
	f = f.resolved()
	var all validation.Errors
	sections := []struct {
		prefix string
		addr   models.Address
	}{
		{"shippingAddress", f.Shipping},
		{"billingAddress", f.Billing},
	}
	for _, s := range sections {
		err := validation.Struct(s.addr)
		if err == nil {
			continue
		}
		errs, ok := err.(validation.Errors)
		if !ok {
			return err
		}
		for _, fe := range errs {
			all = append(all, validation.FieldError{Field: s.prefix + "." + fe.Field, Message: fe.Message})
		}
	}
	if len(all) > 0 {
		return all
	}
	return nil
}

type stripeKeyResponse struct {
	PublishableKey string `json:"publishableKey"`
}

type winningPaymentRequest struct {
	AuctionID string `json:"auctionId"`
}

type verifyWinnerRequest struct {
	AuctionID       string         `json:"auctionId"`
	PaymentIntentID string         `json:"paymentIntentId"`
	Reference       string         `json:"paymentReference"`
	ShippingAddress models.Address `json:"shippingAddress"`
	BillingAddress  models.Address `json:"billingAddress"`
}

// WinnerCheckout is the settlement flow for the winning bidder of an ended auction.
// A failed submit keeps the entered form so the user can correct and retry.
type WinnerCheckout struct {
	api     *apiclient.Client
	auction models.Auction
	cards   CardConfirmer

	mu         sync.Mutex
	key        string
	intent     *models.PaymentIntent
	lastForm   *CheckoutForm
	lastError  error
	payment    *models.Payment
	submitting bool
}

// NewWinnerCheckout creates a checkout; use Manager.Checkout to get the winner check
func NewWinnerCheckout(api *apiclient.Client, auction models.Auction, cards CardConfirmer) *WinnerCheckout {
	return &WinnerCheckout{api: api, auction: auction, cards: cards}
}

// Start loads the processor key and creates the winning-payment intent
func (w *WinnerCheckout) Start(ctx context.Context) (models.PaymentIntent, error) {
	var key stripeKeyResponse
	if err := w.api.Get(ctx, "/payments/stripe-key", nil, &key); err != nil {
		return models.PaymentIntent{}, fmt.Errorf("load payment key: %w", err)
	}

	var intent models.PaymentIntent
	if err := w.api.Post(ctx, "/payments/winning-payment", winningPaymentRequest{AuctionID: w.auction.ID}, &intent); err != nil {
		return models.PaymentIntent{}, fmt.Errorf("create winning payment %s: %w", w.auction.ID, err)
	}

	w.mu.Lock()
	w.key = key.PublishableKey
	w.intent = &intent
	w.mu.Unlock()
	return intent, nil
}

// Submit validates the form, confirms the card payment and has the backend verify it.
// LastForm and LastError stay readable while the submit is in flight.
func (w *WinnerCheckout) Submit(ctx context.Context, form CheckoutForm) (*models.Payment, error) {
	w.mu.Lock()
	if w.submitting {
		w.mu.Unlock()
		return nil, fmt.Errorf("checkout %s: %w", w.auction.ID, marketerrors.ErrCheckoutInFlight)
	}
	kept := form
	w.lastForm = &kept
	w.submitting = true
	key, intent, paid := w.key, w.intent, w.payment != nil
	w.mu.Unlock()

	var (
		payment *models.Payment
		err     error
	)
	if paid {
		err = fmt.Errorf("checkout %s: %w", w.auction.ID, marketerrors.ErrAlreadyPaid)
	} else {
		payment, err = w.submit(ctx, key, intent, form.resolved())
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.submitting = false
	w.lastError = err
	if err != nil {
		utils.Warn("winner checkout failed", map[string]any{"auction_id": w.auction.ID, "error": err.Error()})
		return nil, err
	}
	w.payment = payment
	utils.Info("winner payment verified", map[string]any{"auction_id": w.auction.ID, "payment_id": payment.ID})
	return payment, nil
}

func (w *WinnerCheckout) submit(ctx context.Context, key string, intent *models.PaymentIntent, form CheckoutForm) (*models.Payment, error) {
	if intent == nil {
		return nil, fmt.Errorf("checkout %s: payment not started", w.auction.ID)
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}

	ref, err := w.cards.ConfirmCardPayment(ctx, key, *intent, form.Billing)
	if err != nil {
		return nil, fmt.Errorf("confirm card payment: %w", err)
	}

	var payment models.Payment
	req := verifyWinnerRequest{
		AuctionID:       w.auction.ID,
		PaymentIntentID: intent.ID,
		Reference:       ref,
		ShippingAddress: form.Shipping,
		BillingAddress:  form.Billing,
	}
	if err := w.api.Post(ctx, "/payments/verify-winner-payment", req, &payment); err != nil {
		return nil, fmt.Errorf("verify winner payment %s: %w", w.auction.ID, err)
	}
	return &payment, nil
}

// LastForm returns the most recently submitted form, or nil
func (w *WinnerCheckout) LastForm() *CheckoutForm {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.lastForm == nil {
		return nil
	}
	f := *w.lastForm
	return &f
}

// LastError returns the error of the most recent submit, or nil after a success
func (w *WinnerCheckout) LastError() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastError
}
