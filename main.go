package main

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"auction-marketplace/config"
	"auction-marketplace/internal/sandbox"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

func main() {
	fx.New(
		fx.NopLogger,
		fx.Provide(newConfig),
		sandbox.Module(),
		fx.Invoke(startServer),
	).Run()
}

func newConfig() (*config.Config, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}

	utils.Configure(cfg.Env.Log.Level, cfg.Env.Log.Pretty)
	if cfg.Env.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}
	return cfg, nil
}

// startServer binds the sandbox API on the configured port for the app's lifetime
func startServer(lc fx.Lifecycle, cfg *config.Config, router *gin.Engine) {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Sandbox.Port),
		Handler:           router,
		ReadHeaderTimeout: cfg.Sandbox.Timeouts.ReadHeaderTimeout,
		WriteTimeout:      cfg.Sandbox.Timeouts.WriteTimeout,
		IdleTimeout:       cfg.Sandbox.Timeouts.IdleTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return errors.Wrapf(err, "listen on %s", srv.Addr)
			}
			utils.Info("Starting auction server", map[string]any{"addr": srv.Addr, "env": cfg.Env.Env})
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					utils.Fatal("Failed to serve", map[string]any{"error": err.Error()})
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			utils.Info("Shutting down auction server", nil)
			return errors.WithStack(srv.Shutdown(ctx))
		},
	})
}
