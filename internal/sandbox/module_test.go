package sandbox

import (
	"io"
	"testing"
	"time"

	"auction-marketplace/config"
	"auction-marketplace/internal/accounts"
	bidding "auction-marketplace/internal/biddingService"
	"auction-marketplace/internal/catalog"
	"auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	utils.SetOutput(io.Discard)
	gin.SetMode(gin.TestMode)
}

func testConfig(seed bool) *config.Config {
	cfg := config.Default()
	cfg.Sandbox.Seed = seed
	cfg.Sandbox.BcryptCost = bcrypt.MinCost
	return cfg
}

func TestModule_SeedsOnStart(t *testing.T) {
	var (
		acc    *accounts.Service
		svc    *bidding.BiddingService
		cat    *catalog.Service
		router *gin.Engine
	)
	app := fxtest.New(t,
		fx.NopLogger,
		fx.Supply(testConfig(true)),
		Module(),
		fx.Populate(&acc, &svc, &cat, &router),
	)
	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, router)
	require.Len(t, acc.ListUsers(), 3)
	require.Len(t, cat.Categories(), len(catalog.DefaultCategories))

	auctions := svc.ListAuctions(repository.AuctionFilter{})
	require.Len(t, auctions, 4)

	var scheduled int
	for _, a := range auctions {
		if a.Status == models.AuctionScheduled {
			scheduled++
		}
	}
	require.Equal(t, 1, scheduled)

	// demo accounts are unique
	require.Error(t, SeedDemo(acc, svc))
}

func TestModule_WithoutDemoData(t *testing.T) {
	var acc *accounts.Service
	var svc *bidding.BiddingService
	app := fxtest.New(t, fx.NopLogger, fx.Supply(testConfig(false)), Module(), fx.Populate(&acc, &svc))
	app.RequireStart()
	defer app.RequireStop()

	require.Empty(t, acc.ListUsers())
	require.Empty(t, svc.ListAuctions(repository.AuctionFilter{}))
}

func TestSettleLoop_EndsExpiredAuctions(t *testing.T) {
	var svc *bidding.BiddingService
	var repo *repository.MemoryRepo
	app := fxtest.New(t, fx.NopLogger, fx.Supply(testConfig(false)), Module(), fx.Populate(&svc, &repo))
	app.RequireStart()
	defer app.RequireStop()

	now := time.Now().UTC()
	a, err := svc.CreateAuction(models.Auction{
		Title:     "Short lot",
		BasePrice: 10,
		SellerID:  "seller",
		StartTime: now.Add(-time.Minute),
		EndTime:   now.Add(200 * time.Millisecond),
	})
	require.NoError(t, err)

	// read the store directly; service reads would settle on their own
	require.Eventually(t, func() bool {
		stored, err := repo.GetAuction(a.ID)
		return err == nil && stored.Status == models.AuctionEnded
	}, 3*SettleInterval, 50*time.Millisecond)
}
