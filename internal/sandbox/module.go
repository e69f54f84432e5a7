// Package sandbox assembles the in-memory marketplace backend used for local
// development and integration tests.
package sandbox

import (
	"context"
	"time"

	"auction-marketplace/config"
	"auction-marketplace/internal/accounts"
	bidding "auction-marketplace/internal/biddingService"
	"auction-marketplace/internal/catalog"
	"auction-marketplace/internal/payments"
	"auction-marketplace/internal/repository"
	"auction-marketplace/internal/server"
	"auction-marketplace/services/marketplace/handler"
	"auction-marketplace/utils"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SettleInterval is how often ended and starting auctions are settled without a read
const SettleInterval = time.Second

// Module provides every sandbox component. Callers supply *config.Config.
func Module() fx.Option {
	return fx.Options(
		injectRepo(),
		injectService(),
		injectDelivery(),
		fx.Invoke(registerHooks),
	)
}

func injectRepo() fx.Option {
	return fx.Provide(
		sandboxConfig,
		repository.NewMemoryRepo,
	)
}

func injectService() fx.Option {
	return fx.Provide(
		accounts.NewTokenService,
		newHasher,
		newAccountService,
		newPaymentService,
		newBiddingService,
		newCatalogService,
	)
}

func injectDelivery() fx.Option {
	return fx.Provide(
		newHub,
		newAuthMiddleware,
		newHandler,
		server.SetupRouter,
	)
}

func sandboxConfig(cfg *config.Config) config.SandboxConfig {
	return cfg.Sandbox
}

func newHasher(cfg config.SandboxConfig) *accounts.Hasher {
	return accounts.NewHasher(cfg.BcryptCost)
}

func newAccountService(repo *repository.MemoryRepo, tokens *accounts.TokenService, hasher *accounts.Hasher) *accounts.Service {
	return accounts.NewService(repo, tokens, hasher)
}

func newHub(tokens *accounts.TokenService) *server.Hub {
	return server.NewHub(tokens)
}

func newAuthMiddleware(tokens *accounts.TokenService) *server.AuthMiddleware {
	return server.NewAuthMiddleware(tokens)
}

// newPaymentService reads auctions straight from the store; the settle loop keeps
// their statuses current
func newPaymentService(repo *repository.MemoryRepo, hub *server.Hub, cfg config.SandboxConfig) *payments.Service {
	return payments.NewService(repo, repo, repo, hub, cfg.EntryFeeLag, cfg.PublishableKey)
}

func newBiddingService(repo *repository.MemoryRepo, fees *payments.Service, hub *server.Hub) *bidding.BiddingService {
	return bidding.NewBiddingService(repo, fees, bidding.WithEvents(hub))
}

func newCatalogService(repo *repository.MemoryRepo, auctions *bidding.BiddingService) *catalog.Service {
	return catalog.NewService(repo, auctions)
}

func newHandler(b *bidding.BiddingService, a *accounts.Service, p *payments.Service, c *catalog.Service) *handler.MarketplaceHandler {
	return handler.NewMarketplaceHandler(b, a, p, c)
}

type hookParams struct {
	fx.In
	fx.Lifecycle

	Config   config.SandboxConfig
	Accounts *accounts.Service
	Bidding  *bidding.BiddingService
	Payments *payments.Service
	Catalog  *catalog.Service
	Hub      *server.Hub
}

func registerHooks(p hookParams) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	p.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if err := p.Catalog.Seed(); err != nil {
				return errors.Wrap(err, "seed catalog")
			}
			if p.Config.Seed {
				if err := SeedDemo(p.Accounts, p.Bidding); err != nil {
					return errors.Wrap(err, "seed demo data")
				}
			}
			go settleLoop(ctx, p.Bidding, done)
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			<-done
			p.Payments.Close()
			p.Hub.Close()
			utils.Info("sandbox stopped", nil)
			return nil
		},
	})
}

func settleLoop(ctx context.Context, svc *bidding.BiddingService, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(SettleInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := svc.SettleDue(); n > 0 {
				utils.Debug("settled auctions", map[string]any{"count": n})
			}
		}
	}
}
