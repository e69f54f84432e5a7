package repository

import (
	"encoding/json"
	"fmt"
	"math"
	"sync"
	"testing"
	"time"

	"auction-marketplace/internal/marketerrors"
	"auction-marketplace/internal/models"

	"github.com/stretchr/testify/require"
)

// Helper to create a new Auction
func newAuction(id, sellerID string, basePrice float64, end time.Time) models.Auction {
	return models.Auction{
		ID:           id,
		Title:        fmt.Sprintf("%s title", id),
		BasePrice:    basePrice,
		BidIncrement: 5,
		Status:       models.AuctionActive,
		SellerID:     sellerID,
		CategoryID:   "cat1",
		EndTime:      end,
	}
}

// Helper to create a new Bid
func newBid(id, auctionID, bidderID string, amount float64, createdAt time.Time) models.Bid {
	return models.Bid{
		ID:        id,
		AuctionID: auctionID,
		BidderID:  bidderID,
		Amount:    amount,
		Status:    models.BidAccepted,
		CreatedAt: createdAt,
	}
}

func TestMemoryRepo_RecordBidForAuction(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	end := time.Now().Add(time.Hour)
	require.NoError(t, repo.SaveAuction(newAuction("a1", "seller", 50, end)))

	tests := []struct {
		name      string
		bid       models.Bid
		wantError error
	}{
		{name: "valid_bid", bid: newBid("b1", "a1", "u1", 100, time.Now())},
		{name: "auction_not_found", bid: newBid("b2", "aX", "u1", 50, time.Now()), wantError: marketerrors.ErrAuctionNotFound},
		{name: "empty_auctionID", bid: newBid("b3", "", "u1", 100, time.Now()), wantError: marketerrors.ErrAuctionNotFound},
		{name: "bid_with_max_float", bid: newBid("b4", "a1", "u3", math.MaxFloat64, time.Now())},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := repo.RecordBidForAuction(tc.bid)
			if tc.wantError != nil {
				require.ErrorIs(t, err, tc.wantError)
				return
			}
			require.NoError(t, err)
			a, err := repo.GetAuction(tc.bid.AuctionID)
			require.NoError(t, err)
			require.Equal(t, tc.bid.Amount, a.CurrentBid)
		})
	}

	t.Run("earlier_bids_are_outbid", func(t *testing.T) {
		bids, err := repo.GetBidsByAuction("a1")
		require.NoError(t, err)
		require.Len(t, bids, 2)
		require.Equal(t, "b4", bids[0].ID)
		require.Equal(t, models.BidAccepted, bids[0].Status)
		require.Equal(t, models.BidOutbid, bids[1].Status)

		a, err := repo.GetAuction("a1")
		require.NoError(t, err)
		require.Equal(t, 2, a.BidCount)
	})

	t.Run("concurrent_bids", func(t *testing.T) {
		t.Parallel()

		repo := NewMemoryRepo()
		require.NoError(t, repo.SaveAuction(newAuction("a1", "seller", 50, end)))

		var wg sync.WaitGroup
		concurrentCount := 50
		errs := make(chan error, concurrentCount)

		for i := range concurrentCount {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs <- repo.RecordBidForAuction(newBid(fmt.Sprintf("b-%d", i), "a1", fmt.Sprintf("u-%d", i), float64(100+i), time.Now()))
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		bids, err := repo.GetBidsByAuction("a1")
		require.NoError(t, err)
		require.Len(t, bids, concurrentCount)

		accepted := 0
		for _, b := range bids {
			if b.Status == models.BidAccepted {
				accepted++
			}
		}
		require.Equal(t, 1, accepted)
	})
}

func TestMemoryRepo_GetWinningBid(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	end := time.Now().Add(time.Hour)
	for _, id := range []string{"a1", "a2", "a3"} {
		require.NoError(t, repo.SaveAuction(newAuction(id, "seller", 50, end)))
	}

	now := time.Now()
	bid1 := newBid("b1", "a1", "u1", 100, now)
	bid2 := newBid("b2", "a1", "u2", 150, now.Add(time.Second))
	require.NoError(t, repo.RecordBidForAuction(bid1))
	require.NoError(t, repo.RecordBidForAuction(bid2))

	tie1 := newBid("t1", "a3", "uA", 200, now)
	tie2 := newBid("t2", "a3", "uB", 200, now.Add(time.Second))
	require.NoError(t, repo.RecordBidForAuction(tie1))
	require.NoError(t, repo.RecordBidForAuction(tie2))

	tests := []struct {
		name      string
		auctionID string
		wantID    string
		wantError bool
	}{
		{name: "existing_auction_with_bids", auctionID: "a1", wantID: "b2"},
		{name: "existing_auction_no_bids", auctionID: "a2", wantError: true},
		{name: "non_existing_auction", auctionID: "aX", wantError: true},
		{name: "tie_bids_first_wins", auctionID: "a3", wantID: "t1"},
		{name: "empty_auctionID", auctionID: "", wantError: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			bid, err := repo.GetWinningBid(tc.auctionID)
			if tc.wantError {
				require.ErrorIs(t, err, marketerrors.ErrNoBids)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantID, bid.ID)
		})
	}
}

func TestMemoryRepo_ListAuctions(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	now := time.Now()
	soon := newAuction("soon", "s1", 10, now.Add(time.Hour))
	soon.Title = "Vintage camera"
	later := newAuction("later", "s2", 10, now.Add(2*time.Hour))
	later.CategoryID = "cat2"
	ended := newAuction("ended", "s1", 10, now.Add(-time.Hour))
	ended.Status = models.AuctionEnded
	for _, a := range []models.Auction{later, ended, soon} {
		require.NoError(t, repo.SaveAuction(a))
	}

	ids := func(as []models.Auction) []string {
		out := make([]string, 0, len(as))
		for _, a := range as {
			out = append(out, a.ID)
		}
		return out
	}

	tests := []struct {
		name   string
		filter AuctionFilter
		want   []string
	}{
		{name: "all_by_end_time", filter: AuctionFilter{}, want: []string{"ended", "soon", "later"}},
		{name: "by_status", filter: AuctionFilter{Status: models.AuctionActive}, want: []string{"soon", "later"}},
		{name: "by_category", filter: AuctionFilter{Category: "cat2"}, want: []string{"later"}},
		{name: "by_seller", filter: AuctionFilter{SellerID: "s1"}, want: []string{"ended", "soon"}},
		{name: "search_is_case_insensitive", filter: AuctionFilter{Search: "CAMERA"}, want: []string{"soon"}},
		{name: "no_match", filter: AuctionFilter{Search: "piano"}, want: []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, ids(repo.ListAuctions(tc.filter)))
		})
	}
}

func TestMemoryRepo_Users(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	alice := UserRecord{User: models.User{ID: "u1", Email: "Alice@Example.com", Username: "alice"}, PasswordHash: "hash"}
	require.NoError(t, repo.CreateUser(alice))

	t.Run("duplicate_email", func(t *testing.T) {
		err := repo.CreateUser(UserRecord{User: models.User{ID: "u2", Email: "alice@example.com", Username: "other"}})
		require.ErrorIs(t, err, marketerrors.ErrUserExists)
	})

	t.Run("duplicate_username", func(t *testing.T) {
		err := repo.CreateUser(UserRecord{User: models.User{ID: "u3", Email: "x@example.com", Username: "ALICE"}})
		require.ErrorIs(t, err, marketerrors.ErrUserExists)
	})

	t.Run("lookup_by_email", func(t *testing.T) {
		u, err := repo.GetUserByEmail("ALICE@example.com")
		require.NoError(t, err)
		require.Equal(t, "u1", u.ID)

		_, err = repo.GetUserByEmail("nobody@example.com")
		require.ErrorIs(t, err, marketerrors.ErrNotFound)
	})

	t.Run("update_missing", func(t *testing.T) {
		require.ErrorIs(t, repo.UpdateUser(UserRecord{User: models.User{ID: "zz"}}), marketerrors.ErrNotFound)
	})
}

func TestMemoryRepo_RefreshTokens(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	now := time.Now()
	repo.SaveRefreshToken("live", "u1", now.Add(time.Hour))
	repo.SaveRefreshToken("stale", "u1", now.Add(-time.Second))
	repo.SaveRefreshToken("other", "u2", now.Add(time.Hour))

	userID, err := repo.ConsumeRefreshToken("live", now)
	require.NoError(t, err)
	require.Equal(t, "u1", userID)

	_, err = repo.ConsumeRefreshToken("live", now)
	require.ErrorIs(t, err, marketerrors.ErrUnauthorized)

	_, err = repo.ConsumeRefreshToken("stale", now)
	require.ErrorIs(t, err, marketerrors.ErrSessionExpired)

	repo.RevokeRefreshTokens("u2")
	_, err = repo.ConsumeRefreshToken("other", now)
	require.ErrorIs(t, err, marketerrors.ErrUnauthorized)
}

func TestMemoryRepo_Watchlist(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	require.False(t, repo.IsWatchlisted("u1", "a1"))
	require.True(t, repo.ToggleWatchlist("u1", "a1"))
	require.True(t, repo.IsWatchlisted("u1", "a1"))
	require.False(t, repo.IsWatchlisted("u2", "a1"))
	require.False(t, repo.ToggleWatchlist("u1", "a1"))
	require.False(t, repo.IsWatchlisted("u1", "a1"))
}

func TestMemoryRepo_Payments(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	now := time.Now()
	require.NoError(t, repo.SavePayment(models.Payment{ID: "p1", UserID: "u1", CreatedAt: now}))
	require.NoError(t, repo.SavePayment(models.Payment{ID: "p2", UserID: "u1", CreatedAt: now.Add(time.Minute)}))
	require.NoError(t, repo.SavePayment(models.Payment{ID: "p3", UserID: "u2", CreatedAt: now}))
	require.ErrorIs(t, repo.SavePayment(models.Payment{}), marketerrors.ErrValidation)

	got := repo.ListPayments("u1")
	require.Len(t, got, 2)
	require.Equal(t, "p2", got[0].ID)

	_, err := repo.GetPayment("missing")
	require.ErrorIs(t, err, marketerrors.ErrNotFound)
}

func TestMemoryRepo_Catalog(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	require.NoError(t, repo.SaveCategory(models.Category{ID: "c1", Name: "Cameras", Slug: "cameras"}))
	require.NoError(t, repo.SaveCategory(models.Category{ID: "c2", Name: "Art", Slug: "art"}))
	require.ErrorIs(t, repo.SaveCategory(models.Category{ID: "c3", Name: "Dup", Slug: "cameras"}), marketerrors.ErrBusinessRule)

	open := newAuction("a1", "s", 10, time.Now().Add(time.Hour))
	open.CategoryID = "c1"
	sold := newAuction("a2", "s", 10, time.Now())
	sold.CategoryID = "c1"
	sold.Status = models.AuctionSold
	require.NoError(t, repo.SaveAuction(open))
	require.NoError(t, repo.SaveAuction(sold))

	cats := repo.ListCategories()
	require.Len(t, cats, 2)
	require.Equal(t, "Art", cats[0].Name)
	require.Equal(t, 1, cats[1].AuctionCount)

	require.NoError(t, repo.DeleteCategory("c2"))
	require.ErrorIs(t, repo.DeleteCategory("c2"), marketerrors.ErrNotFound)

	now := time.Now()
	require.NoError(t, repo.SaveSubmission(models.ProductSubmission{ID: "s2", Status: models.SubmissionPending, CreatedAt: now.Add(time.Minute)}))
	require.NoError(t, repo.SaveSubmission(models.ProductSubmission{ID: "s1", Status: models.SubmissionPending, CreatedAt: now}))
	require.NoError(t, repo.SaveSubmission(models.ProductSubmission{ID: "s3", Status: models.SubmissionRejected, CreatedAt: now}))
	pending := repo.ListSubmissions(models.SubmissionPending)
	require.Len(t, pending, 2)
	require.Equal(t, "s1", pending[0].ID)
	require.Len(t, repo.ListSubmissions(""), 3)

	_, ok := repo.GetContent("about")
	require.False(t, ok)
	doc := json.RawMessage(`{"title":"About us"}`)
	repo.PutContent("about", doc)
	doc[2] = 'X'
	got, ok := repo.GetContent("about")
	require.True(t, ok)
	require.JSONEq(t, `{"title":"About us"}`, string(got))
}
