package productdetail

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"auction-marketplace/internal/apiclient"
	"auction-marketplace/internal/marketerrors"
	"auction-marketplace/internal/models"
	"auction-marketplace/internal/session"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

type stubViewer struct {
	user *models.User
}

func (s stubViewer) CurrentUser() *models.User { return s.user }

// fakeMarket serves the product detail endpoints for a single auction
type fakeMarket struct {
	mu          sync.Mutex
	auction     models.Auction
	bids        []models.Bid
	paid        bool
	confirmPaid bool // status endpoint reports paid after a fee was charged
	historyPaid bool // only the history endpoint knows about the fee
	watchlisted bool
	bidDelay    time.Duration
	bidPosts    atomic.Int32
	statusHits  atomic.Int32
	verifyBody  map[string]any
	winnerFail  bool
	revoked     bool // the user-bid read answers 401 and the refresh is refused
}

func respond(w http.ResponseWriter, status int, data any, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": status < 300, "status": status, "message": msg, "data": data})
}

func (f *fakeMarket) server(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/auctions/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		respond(w, http.StatusOK, f.auction, "ok")
	})
	mux.HandleFunc("GET /api/auctions/{id}/bids", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		respond(w, http.StatusOK, f.bids, "ok")
	})
	mux.HandleFunc("POST /api/auctions/{id}/bids", func(w http.ResponseWriter, r *http.Request) {
		f.bidPosts.Add(1)
		if f.bidDelay > 0 {
			time.Sleep(f.bidDelay)
		}
		var body struct {
			Amount float64 `json:"amount"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)

		f.mu.Lock()
		defer f.mu.Unlock()
		bid := models.Bid{ID: "b" + string(rune('0'+len(f.bids))), AuctionID: f.auction.ID, BidderID: "u1", Amount: body.Amount, Status: models.BidAccepted}
		f.bids = append(f.bids, bid)
		f.auction.CurrentBid = body.Amount
		f.auction.BidCount++
		respond(w, http.StatusCreated, bid, "bid placed")
	})
	mux.HandleFunc("GET /api/auctions/{id}/user-bid", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.revoked {
			respond(w, http.StatusUnauthorized, nil, "token expired")
			return
		}
		status := models.UserBidStatus{HasPaidEntryFee: f.paid}
		for _, b := range f.bids {
			if b.BidderID == "u1" {
				status.HasBid = true
				status.Amount = b.Amount
				status.IsWinning = b.Amount == f.auction.CurrentBid
			}
		}
		respond(w, http.StatusOK, status, "ok")
	})
	mux.HandleFunc("GET /api/auctions/{id}/watchlist-status", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		respond(w, http.StatusOK, models.WatchlistStatus{AuctionID: r.PathValue("id"), IsWatchlisted: f.watchlisted}, "ok")
	})
	mux.HandleFunc("POST /api/auctions/{id}/watchlist", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.watchlisted = !f.watchlisted
		respond(w, http.StatusOK, models.WatchlistStatus{AuctionID: r.PathValue("id"), IsWatchlisted: f.watchlisted}, "ok")
	})
	mux.HandleFunc("GET /api/payments/auction/{id}/status", func(w http.ResponseWriter, r *http.Request) {
		f.statusHits.Add(1)
		f.mu.Lock()
		defer f.mu.Unlock()
		respond(w, http.StatusOK, models.EntryFeeStatus{AuctionID: r.PathValue("id"), HasPaid: f.paid}, "ok")
	})
	mux.HandleFunc("GET /api/payments/history", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		var history []models.Payment
		if f.historyPaid {
			history = append(history, models.Payment{ID: "p-hist", AuctionID: f.auction.ID, Type: models.PaymentEntryFee, Status: models.PaymentSucceeded, Amount: f.auction.EntryFee})
		}
		respond(w, http.StatusOK, history, "ok")
	})
	mux.HandleFunc("POST /api/payments/entry-fee", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.confirmPaid {
			f.paid = true
		}
		respond(w, http.StatusCreated, models.Payment{ID: "p1", AuctionID: f.auction.ID, Type: models.PaymentEntryFee, Status: models.PaymentPending, Amount: f.auction.EntryFee}, "processing")
	})
	mux.HandleFunc("POST /api/auth/refresh-token", func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusUnauthorized, nil, "invalid refresh token")
	})
	mux.HandleFunc("GET /api/payments/stripe-key", func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusOK, map[string]string{"publishableKey": "pk_test_123"}, "ok")
	})
	mux.HandleFunc("POST /api/payments/winning-payment", func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusOK, models.PaymentIntent{ID: "pi_1", ClientSecret: "secret", Amount: 300, Currency: "usd"}, "ok")
	})
	mux.HandleFunc("POST /api/payments/verify-winner-payment", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		_ = json.NewDecoder(r.Body).Decode(&f.verifyBody)
		if f.winnerFail {
			respond(w, http.StatusBadRequest, nil, "payment reference does not match")
			return
		}
		respond(w, http.StatusOK, models.Payment{ID: "pw1", Type: models.PaymentWinning, Status: models.PaymentSucceeded, Amount: 300}, "ok")
	})
	return httptest.NewServer(mux)
}

func newTestManager(t *testing.T, srv *httptest.Server, user *models.User, opts ...Option) *Manager {
	t.Helper()
	store := session.NewMemoryStore()
	if user != nil {
		require.NoError(t, store.Save(session.Snapshot{AccessToken: "access", RefreshToken: "refresh", User: user}))
	}
	api, err := apiclient.New(srv.URL+"/api", store)
	require.NoError(t, err)

	fast := NewPaymentConfirmer(api, WithSchedule(5*time.Millisecond, 10*time.Millisecond, 15*time.Millisecond))
	return NewManager(api, stubViewer{user: user}, append([]Option{WithConfirmer(fast)}, opts...)...)
}

func activeAuction() models.Auction {
	return models.Auction{
		ID:           "a1",
		Title:        "Vintage camera",
		BasePrice:    100,
		BidIncrement: 10,
		EntryFee:     5,
		Status:       models.AuctionActive,
		SellerID:     "seller",
		EndTime:      time.Now().Add(time.Hour),
	}
}

func TestManager_LoadAnonymousSkipsUserEndpoints(t *testing.T) {
	market := &fakeMarket{auction: activeAuction()}
	srv := market.server(t)
	defer srv.Close()

	m := newTestManager(t, srv, nil)
	d, err := m.Load(context.Background(), "a1")
	require.NoError(t, err)
	require.Equal(t, StateUnauthenticated, d.State)
	require.Nil(t, d.UserBid)
	require.Zero(t, market.statusHits.Load())
}

func TestManager_LoadShowsAnonymousViewWhenSessionExpires(t *testing.T) {
	market := &fakeMarket{auction: activeAuction(), revoked: true}
	srv := market.server(t)
	defer srv.Close()

	m := newTestManager(t, srv, &models.User{ID: "u1"})
	d, err := m.Load(context.Background(), "a1")
	require.NoError(t, err)
	require.Equal(t, StateUnauthenticated, d.State)
	require.Nil(t, d.User)
	require.Nil(t, d.UserBid)
	require.False(t, d.EntryFee.HasPaid)
	require.Equal(t, "Vintage camera", d.Auction.Title)
}

func TestManager_PayEntryFeeShowsBidFormAfterConfirmation(t *testing.T) {
	market := &fakeMarket{auction: activeAuction(), confirmPaid: true}
	srv := market.server(t)
	defer srv.Close()

	var states []State
	var mu sync.Mutex
	m := newTestManager(t, srv, &models.User{ID: "u1"}, WithObserver(func(d *Detail) {
		mu.Lock()
		states = append(states, d.State)
		mu.Unlock()
	}))

	d, err := m.Load(context.Background(), "a1")
	require.NoError(t, err)
	require.Equal(t, StateAuthenticatedNoPayment, d.State)
	require.True(t, d.State.ShowsEntryFee())
	require.False(t, d.State.ShowsBidForm())

	d, err = m.PayEntryFee(context.Background(), d, PaymentMethod{ID: "pm_card"})
	require.NoError(t, err)
	require.Equal(t, StateBiddingAllowed, d.State)
	require.True(t, d.State.ShowsBidForm())

	mu.Lock()
	defer mu.Unlock()
	// initial load, optimistic flip, reload
	require.Equal(t, []State{StateAuthenticatedNoPayment, StateBiddingAllowed, StateBiddingAllowed}, states)
}

func TestManager_PayEntryFeeRevertsWhenNotConfirmed(t *testing.T) {
	market := &fakeMarket{auction: activeAuction()}
	srv := market.server(t)
	defer srv.Close()

	var last State
	m := newTestManager(t, srv, &models.User{ID: "u1"}, WithObserver(func(d *Detail) { last = d.State }))

	d, err := m.Load(context.Background(), "a1")
	require.NoError(t, err)

	reverted, err := m.PayEntryFee(context.Background(), d, PaymentMethod{ID: "pm_card"})
	require.ErrorIs(t, err, marketerrors.ErrPaymentNotConfirmed)
	require.Equal(t, StateAuthenticatedNoPayment, reverted.State)
	require.Equal(t, StateAuthenticatedNoPayment, last)
	require.Equal(t, int32(1+3), market.statusHits.Load())
}

func TestManager_PayEntryFeeRejectedForOwner(t *testing.T) {
	market := &fakeMarket{auction: activeAuction()}
	srv := market.server(t)
	defer srv.Close()

	m := newTestManager(t, srv, &models.User{ID: "seller"})
	d, err := m.Load(context.Background(), "a1")
	require.NoError(t, err)
	require.Equal(t, StateOwner, d.State)

	_, err = m.PayEntryFee(context.Background(), d, PaymentMethod{ID: "pm_card"})
	require.ErrorIs(t, err, marketerrors.ErrOwnAuction)
}

func TestManager_PayEntryFeeRejectedForDraft(t *testing.T) {
	draft := activeAuction()
	draft.Status = models.AuctionDraft
	market := &fakeMarket{auction: draft, confirmPaid: true}
	srv := market.server(t)
	defer srv.Close()

	m := newTestManager(t, srv, &models.User{ID: "u1"})
	d, err := m.Load(context.Background(), "a1")
	require.NoError(t, err)
	require.Equal(t, StateEnded, d.State)
	require.False(t, d.State.ShowsEntryFee())

	_, err = m.PayEntryFee(context.Background(), d, PaymentMethod{ID: "pm_card"})
	require.ErrorIs(t, err, marketerrors.ErrAuctionNotActive)

	market.mu.Lock()
	defer market.mu.Unlock()
	require.False(t, market.paid, "no fee charged")
}

func TestPaymentConfirmer_HistoryFallback(t *testing.T) {
	market := &fakeMarket{auction: activeAuction(), historyPaid: true}
	srv := market.server(t)
	defer srv.Close()

	api, err := apiclient.New(srv.URL+"/api", session.NewMemoryStore())
	require.NoError(t, err)

	c := NewPaymentConfirmer(api, WithSchedule(time.Millisecond, 2*time.Millisecond, 3*time.Millisecond))
	payment, err := c.Confirm(context.Background(), "a1")
	require.NoError(t, err)
	require.Equal(t, "p-hist", payment.ID)
	require.Equal(t, int32(3), market.statusHits.Load())

	c = NewPaymentConfirmer(api, WithSchedule(time.Millisecond), WithoutHistoryFallback())
	_, err = c.Confirm(context.Background(), "a1")
	require.ErrorIs(t, err, marketerrors.ErrPaymentNotConfirmed)
}

func TestPaymentConfirmer_StopsOnCancel(t *testing.T) {
	market := &fakeMarket{auction: activeAuction()}
	srv := market.server(t)
	defer srv.Close()

	api, err := apiclient.New(srv.URL+"/api", session.NewMemoryStore())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = NewPaymentConfirmer(api).Confirm(ctx, "a1")
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Zero(t, market.statusHits.Load())
}

func TestManager_PlaceBid(t *testing.T) {
	tests := []struct {
		name        string
		user        *models.User
		paid        bool
		amount      float64
		expectedErr error
	}{
		{name: "accepted_and_reloaded", user: &models.User{ID: "u1"}, paid: true, amount: 110},
		{name: "below_minimum", user: &models.User{ID: "u1"}, paid: true, amount: 105, expectedErr: marketerrors.ErrBidTooLow},
		{name: "unpaid", user: &models.User{ID: "u1"}, amount: 110, expectedErr: marketerrors.ErrEntryFeeRequired},
		{name: "owner", user: &models.User{ID: "seller"}, paid: true, amount: 110, expectedErr: marketerrors.ErrOwnAuction},
		{name: "anonymous", amount: 110, expectedErr: marketerrors.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			market := &fakeMarket{auction: activeAuction(), paid: tt.paid}
			srv := market.server(t)
			defer srv.Close()

			m := newTestManager(t, srv, tt.user)
			d, err := m.Load(context.Background(), "a1")
			require.NoError(t, err)

			after, err := m.PlaceBid(context.Background(), d, tt.amount)
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				require.Zero(t, market.bidPosts.Load())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.amount, after.Auction.CurrentBid)
			require.Len(t, after.Bids, 1)
			require.True(t, after.UserBid.IsWinning)
			require.Equal(t, tt.amount+10, after.MinimumBid())
		})
	}
}

func TestManager_PlaceBidRejectsConcurrentSubmission(t *testing.T) {
	market := &fakeMarket{auction: activeAuction(), paid: true, bidDelay: 50 * time.Millisecond}
	srv := market.server(t)
	defer srv.Close()

	m := newTestManager(t, srv, &models.User{ID: "u1"})
	d, err := m.Load(context.Background(), "a1")
	require.NoError(t, err)

	errs := make(chan error, 2)
	for range 2 {
		go func() {
			_, err := m.PlaceBid(context.Background(), d, 120)
			errs <- err
		}()
	}

	var inFlight, ok int
	for range 2 {
		err := <-errs
		switch {
		case err == nil:
			ok++
		default:
			require.ErrorIs(t, err, marketerrors.ErrBidInFlight)
			inFlight++
		}
	}
	require.Equal(t, 1, ok)
	require.Equal(t, 1, inFlight)
	require.Equal(t, int32(1), market.bidPosts.Load())
}

func TestManager_ToggleWatchlist(t *testing.T) {
	market := &fakeMarket{auction: activeAuction()}
	srv := market.server(t)
	defer srv.Close()

	m := newTestManager(t, srv, &models.User{ID: "u1"})
	on, err := m.ToggleWatchlist(context.Background(), "a1")
	require.NoError(t, err)
	require.True(t, on)

	on, err = m.ToggleWatchlist(context.Background(), "a1")
	require.NoError(t, err)
	require.False(t, on)

	anon := newTestManager(t, srv, nil)
	_, err = anon.ToggleWatchlist(context.Background(), "a1")
	require.ErrorIs(t, err, marketerrors.ErrUnauthorized)
}

func validAddress() models.Address {
	return models.Address{FullName: "Jane Doe", Line1: "1 Main St", City: "Springfield", PostalCode: "12345", Country: "US"}
}

func TestWinnerCheckout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ended := activeAuction()
	ended.Status = models.AuctionEnded
	ended.WinnerID = "u1"
	ended.CurrentBid = 300

	market := &fakeMarket{auction: ended, paid: true}
	srv := market.server(t)
	defer srv.Close()

	m := newTestManager(t, srv, &models.User{ID: "u1"})
	d, err := m.Load(context.Background(), "a1")
	require.NoError(t, err)
	require.True(t, d.IsWinner())

	cards := NewMockCardConfirmer(ctrl)
	checkout, err := m.Checkout(d, cards)
	require.NoError(t, err)

	intent, err := checkout.Start(context.Background())
	require.NoError(t, err)
	require.Equal(t, "pi_1", intent.ID)

	// invalid address never reaches the card processor
	bad := CheckoutForm{Shipping: models.Address{FullName: "J"}, SameAsShipping: true}
	_, err = checkout.Submit(context.Background(), bad)
	require.ErrorIs(t, err, marketerrors.ErrValidation)
	require.Equal(t, bad, *checkout.LastForm())

	// backend rejection keeps the entered form
	market.mu.Lock()
	market.winnerFail = true
	market.mu.Unlock()
	form := CheckoutForm{Shipping: validAddress(), SameAsShipping: true}
	cards.EXPECT().ConfirmCardPayment(gomock.Any(), "pk_test_123", intent, validAddress()).Return("ch_1", nil).Times(2)

	_, err = checkout.Submit(context.Background(), form)
	require.Error(t, err)
	require.Equal(t, "payment reference does not match", marketerrors.UserMessage(checkout.LastError()))
	require.Equal(t, form, *checkout.LastForm())

	market.mu.Lock()
	market.winnerFail = false
	market.mu.Unlock()

	payment, err := checkout.Submit(context.Background(), form)
	require.NoError(t, err)
	require.Equal(t, models.PaymentWinning, payment.Type)
	require.NoError(t, checkout.LastError())

	market.mu.Lock()
	defer market.mu.Unlock()
	require.Equal(t, "pi_1", market.verifyBody["paymentIntentId"])
	require.Equal(t, "ch_1", market.verifyBody["paymentReference"])
	require.NotNil(t, market.verifyBody["billingAddress"])
}

func TestWinnerCheckout_ReadableWhileSubmitting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ended := activeAuction()
	ended.Status = models.AuctionEnded
	ended.WinnerID = "u1"
	ended.CurrentBid = 300

	market := &fakeMarket{auction: ended, paid: true}
	srv := market.server(t)
	defer srv.Close()

	m := newTestManager(t, srv, &models.User{ID: "u1"})
	d, err := m.Load(context.Background(), "a1")
	require.NoError(t, err)

	cards := NewMockCardConfirmer(ctrl)
	checkout, err := m.Checkout(d, cards)
	require.NoError(t, err)
	intent, err := checkout.Start(context.Background())
	require.NoError(t, err)

	form := CheckoutForm{Shipping: validAddress(), SameAsShipping: true}
	cards.EXPECT().ConfirmCardPayment(gomock.Any(), "pk_test_123", intent, validAddress()).
		DoAndReturn(func(ctx context.Context, key string, pi models.PaymentIntent, billing models.Address) (string, error) {
			// the card step runs without holding the checkout
			require.Equal(t, form, *checkout.LastForm())
			require.NoError(t, checkout.LastError())

			_, err := checkout.Submit(ctx, form)
			require.ErrorIs(t, err, marketerrors.ErrCheckoutInFlight)
			return "ch_1", nil
		})

	payment, err := checkout.Submit(context.Background(), form)
	require.NoError(t, err)
	require.Equal(t, models.PaymentWinning, payment.Type)

	_, err = checkout.Submit(context.Background(), form)
	require.ErrorIs(t, err, marketerrors.ErrAlreadyPaid)
}

func TestManager_CheckoutRefusesNonWinner(t *testing.T) {
	ended := activeAuction()
	ended.Status = models.AuctionEnded
	ended.WinnerID = "someone-else"

	market := &fakeMarket{auction: ended}
	srv := market.server(t)
	defer srv.Close()

	m := newTestManager(t, srv, &models.User{ID: "u1"})
	d, err := m.Load(context.Background(), "a1")
	require.NoError(t, err)

	_, err = m.Checkout(d, nil)
	require.ErrorIs(t, err, marketerrors.ErrNotWinner)
}
