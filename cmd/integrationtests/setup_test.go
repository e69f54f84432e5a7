package integrationtests

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"auction-marketplace/config"
	"auction-marketplace/internal/apiclient"
	"auction-marketplace/internal/auth"
	"auction-marketplace/internal/models"
	"auction-marketplace/internal/productdetail"
	"auction-marketplace/internal/sandbox"
	"auction-marketplace/internal/session"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"golang.org/x/crypto/bcrypt"
)

// confirmSchedule keeps entry-fee confirmation fast against the sandbox's short settle lag
var confirmSchedule = []time.Duration{50 * time.Millisecond, 200 * time.Millisecond, 600 * time.Millisecond}

// SetupSandbox starts the full sandbox backend with demo data and serves it over HTTP.
// It returns the API base URL.
func SetupSandbox(t *testing.T) string {
	t.Helper()
	gin.SetMode(gin.TestMode)
	utils.SetOutput(io.Discard)

	cfg := config.Default()
	cfg.Sandbox.Seed = true
	cfg.Sandbox.BcryptCost = bcrypt.MinCost
	cfg.Sandbox.EntryFeeLag = 20 * time.Millisecond

	var router *gin.Engine
	app := fxtest.New(t,
		fx.NopLogger,
		fx.Supply(cfg),
		sandbox.Module(),
		fx.Populate(&router),
	)
	app.RequireStart()
	t.Cleanup(app.RequireStop)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv.URL + "/api"
}

// Session is one signed-in SDK user
type Session struct {
	API    *apiclient.Client
	Auth   *auth.Manager
	Detail *productdetail.Manager
}

// NewSession creates an SDK client against base with a fresh in-memory session
func NewSession(t *testing.T, base string) *Session {
	t.Helper()
	api, err := apiclient.New(base, session.NewMemoryStore(), apiclient.WithTimeout(5*time.Second))
	require.NoError(t, err)

	mgr := auth.NewManager(api)
	confirmer := productdetail.NewPaymentConfirmer(api, productdetail.WithSchedule(confirmSchedule...))
	return &Session{
		API:    api,
		Auth:   mgr,
		Detail: productdetail.NewManager(api, mgr, productdetail.WithConfirmer(confirmer)),
	}
}

// SignIn creates a session and logs in with email and password
func SignIn(t *testing.T, base, email, password string) *Session {
	t.Helper()
	s := NewSession(t, base)
	_, err := s.Auth.Login(context.Background(), auth.LoginRequest{Email: email, Password: password})
	require.NoError(t, err)
	return s
}

// FindAuction returns the first listed auction titled title
func FindAuction(t *testing.T, s *Session, title string) models.Auction {
	t.Helper()
	var page models.Page[models.Auction]
	require.NoError(t, s.API.Get(context.Background(), "/auctions", nil, &page))
	for _, a := range page.Items {
		if a.Title == title {
			return a
		}
	}
	t.Fatalf("auction %q not listed", title)
	return models.Auction{}
}

// fakeCards approves every card payment with a fixed reference
type fakeCards struct{}

func (fakeCards) ConfirmCardPayment(_ context.Context, _ string, intent models.PaymentIntent, _ models.Address) (string, error) {
	return "ch_" + intent.ID, nil
}
