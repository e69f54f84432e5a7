package payments

import (
	"io"
	"sync"
	"testing"
	"time"

	"auction-marketplace/internal/live"
	"auction-marketplace/internal/marketerrors"
	"auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"
	"auction-marketplace/utils"

	"github.com/stretchr/testify/require"
)

func init() {
	utils.SetOutput(io.Discard)
}

type eventSink struct {
	mu     sync.Mutex
	events []live.Event
}

func (e *eventSink) Publish(ev live.Event) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = append(e.events, ev)
}

func (e *eventSink) last() (live.Event, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.events) == 0 {
		return live.Event{}, false
	}
	return e.events[len(e.events)-1], true
}

func seed(t *testing.T, repo *repository.MemoryRepo, a models.Auction) {
	t.Helper()
	require.NoError(t, repo.SaveAuction(a))
}

func TestService_EntryFeeSettlesAfterLag(t *testing.T) {
	repo := repository.NewMemoryRepo()
	seed(t, repo, models.Auction{ID: "a1", SellerID: "seller", EntryFee: 25, Status: models.AuctionActive, EndTime: time.Now().Add(time.Hour)})
	events := &eventSink{}
	svc := NewService(repo, repo, repo, events, 20*time.Millisecond, "pk_test")
	defer svc.Close()

	p, err := svc.PayEntryFee("u1", "a1", "pm_card_visa")
	require.NoError(t, err)
	require.Equal(t, models.PaymentPending, p.Status)
	require.Equal(t, 25.0, p.Amount)
	require.False(t, svc.HasPaidEntryFee("u1", "a1"))

	status, err := svc.EntryFeeStatus("u1", "a1")
	require.NoError(t, err)
	require.False(t, status.HasPaid)
	require.NotNil(t, status.Payment)

	_, err = svc.PayEntryFee("u1", "a1", "pm_card_visa")
	require.ErrorIs(t, err, marketerrors.ErrAlreadyPaid)

	require.Eventually(t, func() bool { return svc.HasPaidEntryFee("u1", "a1") }, time.Second, 5*time.Millisecond)

	ev, ok := events.last()
	require.True(t, ok)
	require.Equal(t, live.EventPaymentConfirmed, ev.Type)
	var settled models.Payment
	require.NoError(t, ev.Decode(&settled))
	require.True(t, settled.Succeeded())
	require.NotNil(t, settled.PaidAt)

	history := svc.History("u1", models.PaymentEntryFee)
	require.Len(t, history, 1)
	require.Empty(t, svc.History("u1", models.PaymentWinning))
}

func TestService_PayEntryFeeRules(t *testing.T) {
	repo := repository.NewMemoryRepo()
	seed(t, repo, models.Auction{ID: "open", SellerID: "seller", Status: models.AuctionActive})
	seed(t, repo, models.Auction{ID: "sold", SellerID: "seller", Status: models.AuctionSold})
	seed(t, repo, models.Auction{ID: "draft", SellerID: "seller", Status: models.AuctionDraft})
	svc := NewService(repo, repo, repo, nil, 0, "pk_test")

	tests := []struct {
		name      string
		userID    string
		auctionID string
		method    string
		wantErr   error
	}{
		{name: "missing_method", userID: "u1", auctionID: "open", wantErr: marketerrors.ErrValidation},
		{name: "unknown_auction", userID: "u1", auctionID: "nope", method: "pm", wantErr: marketerrors.ErrAuctionNotFound},
		{name: "own_auction", userID: "seller", auctionID: "open", method: "pm", wantErr: marketerrors.ErrOwnAuction},
		{name: "closed_auction", userID: "u1", auctionID: "sold", method: "pm", wantErr: marketerrors.ErrAuctionNotActive},
		{name: "draft_auction", userID: "u1", auctionID: "draft", method: "pm", wantErr: marketerrors.ErrAuctionNotActive},
		{name: "settles_immediately", userID: "u1", auctionID: "open", method: "pm"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := svc.PayEntryFee(tc.userID, tc.auctionID, tc.method)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.True(t, p.Succeeded())
		})
	}
}

func TestService_WinnerSettlement(t *testing.T) {
	repo := repository.NewMemoryRepo()
	seed(t, repo, models.Auction{ID: "a1", SellerID: "seller", Status: models.AuctionEnded, WinnerID: "winner", CurrentBid: 420})
	seed(t, repo, models.Auction{ID: "live", SellerID: "seller", Status: models.AuctionActive})
	events := &eventSink{}
	svc := NewService(repo, repo, repo, events, 0, "pk_test")

	_, err := svc.WinningPayment("other", "a1")
	require.ErrorIs(t, err, marketerrors.ErrNotWinner)
	_, err = svc.WinningPayment("winner", "live")
	require.ErrorIs(t, err, marketerrors.ErrBusinessRule)

	pi, err := svc.WinningPayment("winner", "a1")
	require.NoError(t, err)
	require.Equal(t, 420.0, pi.Amount)
	require.Equal(t, "usd", pi.Currency)
	require.Contains(t, pi.ClientSecret, pi.ID+"_secret_")

	// an intent only settles the auction and user it was created for
	_, err = svc.VerifyWinnerPayment("other", WinnerVerification{AuctionID: "a1", PaymentIntentID: pi.ID})
	require.ErrorIs(t, err, marketerrors.ErrValidation)

	p, err := svc.VerifyWinnerPayment("winner", WinnerVerification{
		AuctionID:       "a1",
		PaymentIntentID: pi.ID,
		Reference:       "ch_123",
		Shipping:        models.Address{City: "Lisbon"},
	})
	require.NoError(t, err)
	require.Equal(t, models.PaymentWinning, p.Type)
	require.Equal(t, 420.0, p.Amount)

	a, err := repo.GetAuction("a1")
	require.NoError(t, err)
	require.Equal(t, models.AuctionSold, a.Status)

	ev, ok := events.last()
	require.True(t, ok)
	require.Equal(t, live.EventAuctionUpdated, ev.Type)

	_, err = svc.WinningPayment("winner", "a1")
	require.ErrorIs(t, err, marketerrors.ErrAlreadyPaid)
	_, err = svc.VerifyWinnerPayment("winner", WinnerVerification{AuctionID: "a1", PaymentIntentID: pi.ID})
	require.ErrorIs(t, err, marketerrors.ErrValidation)

	require.Equal(t, 420.0, svc.Revenue([]string{"winner", "other"}))
}
