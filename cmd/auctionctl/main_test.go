package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"auction-marketplace/config"
	"auction-marketplace/internal/apiclient"
	"auction-marketplace/internal/models"
	"auction-marketplace/internal/sandbox"
	"auction-marketplace/internal/session"
	"auction-marketplace/internal/submission"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"golang.org/x/crypto/bcrypt"
)

// lockedBuffer is shared with the logger, which the sandbox writes from other goroutines
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type cli struct {
	t       *testing.T
	base    string
	session string
}

func newCLI(t *testing.T) *cli {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	cfg.Sandbox.Seed = true
	cfg.Sandbox.BcryptCost = bcrypt.MinCost
	cfg.Sandbox.EntryFeeLag = 10 * time.Millisecond

	var router *gin.Engine
	app := fxtest.New(t, fx.NopLogger, fx.Supply(cfg), sandbox.Module(), fx.Populate(&router))
	app.RequireStart()
	t.Cleanup(app.RequireStop)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &cli{t: t, base: srv.URL + "/api", session: filepath.Join(t.TempDir(), "session.json")}
}

func (c *cli) run(args ...string) (code int, stdout, stderr string) {
	c.t.Helper()
	out, errOut := &lockedBuffer{}, &lockedBuffer{}
	code = c.runContext(context.Background(), out, errOut, args...)
	return code, out.String(), errOut.String()
}

// runContext runs one command with caller-owned output so a long-running command can be observed
func (c *cli) runContext(ctx context.Context, out, errOut *lockedBuffer, args ...string) int {
	full := append([]string{"-api", c.base, "-session", c.session}, args...)
	return run(ctx, full, out, errOut)
}

// another returns a second signed-out user of the same sandbox
func (c *cli) another() *cli {
	return &cli{t: c.t, base: c.base, session: filepath.Join(c.t.TempDir(), "session.json")}
}

func (c *cli) auctionID(title string) string {
	c.t.Helper()
	api, err := apiclient.New(c.base, session.NewMemoryStore())
	require.NoError(c.t, err)
	var page models.Page[models.Auction]
	require.NoError(c.t, api.Get(context.Background(), "/auctions", nil, &page))
	for _, a := range page.Items {
		if a.Title == title {
			return a.ID
		}
	}
	c.t.Fatalf("auction %q not found", title)
	return ""
}

func TestRun_Usage(t *testing.T) {
	var out, errOut bytes.Buffer
	require.Equal(t, 2, run(context.Background(), nil, &out, &errOut))
	require.Contains(t, errOut.String(), "usage: auctionctl")

	errOut.Reset()
	require.Equal(t, 2, run(context.Background(), []string{"frobnicate"}, &out, &errOut))
	require.Contains(t, errOut.String(), `unknown command "frobnicate"`)
}

func TestRun_BidderSession(t *testing.T) {
	c := newCLI(t)
	camera := c.auctionID("Vintage rangefinder camera")

	code, _, stderr := c.run("login", "-email", sandbox.BidderEmail, "-password", "wrong")
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "invalid email or password")

	code, stdout, _ := c.run("login", "-email", sandbox.BidderEmail, "-password", sandbox.DemoPassword)
	require.Equal(t, 0, code)
	require.Contains(t, stdout, "signed in as "+sandbox.BidderEmail+" (USER)")

	code, stdout, _ = c.run("whoami")
	require.Equal(t, 0, code)
	require.Contains(t, stdout, "role: USER")

	code, stdout, _ = c.run("auctions", "-search", "camera")
	require.Equal(t, 0, code)
	require.Contains(t, stdout, "Vintage rangefinder camera")
	require.Contains(t, stdout, "page 1 of 1 (1 auctions)")

	code, stdout, _ = c.run("show", camera)
	require.Equal(t, 0, code)
	require.Contains(t, stdout, "pay the entry fee to bid")

	// the entry fee gate is checked before anything is sent
	code, _, stderr = c.run("bid", camera, "130")
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "error:")

	code, stdout, _ = c.run("pay-entry", camera)
	require.Equal(t, 0, code)
	require.Contains(t, stdout, "entry fee confirmed, you can bid from 125.00")

	code, stdout, _ = c.run("bid", camera, "125")
	require.Equal(t, 0, code)
	require.Contains(t, stdout, "bid of 125.00 placed")
	require.Contains(t, stdout, "your bid:   125.00 (winning)")

	code, _, stderr = c.run("bid", camera, "126")
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "bid must be at least 130.00")

	code, _, _ = c.run("bid", camera, "lots")
	require.Equal(t, 2, code)

	code, _, stderr = c.run("admin", "stats")
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "you do not have access to this resource")

	code, stdout, _ = c.run("logout")
	require.Equal(t, 0, code)
	require.Contains(t, stdout, "signed out")

	code, stdout, _ = c.run("whoami")
	require.Equal(t, 0, code)
	require.Contains(t, stdout, "not signed in")
}

func TestRun_Admin(t *testing.T) {
	c := newCLI(t)

	code, _, _ := c.run("login", "-admin", "-email", sandbox.AdminEmail, "-password", sandbox.AdminPassword)
	require.Equal(t, 0, code)

	code, stdout, _ := c.run("admin", "stats")
	require.Equal(t, 0, code)
	require.Contains(t, stdout, "users:               3")

	code, stdout, _ = c.run("admin", "categories")
	require.Equal(t, 0, code)
	require.Contains(t, stdout, `"slug": "electronics"`)

	code, stdout, _ = c.run("admin", "settings")
	require.Equal(t, 0, code)
	require.Contains(t, stdout, "site_name = Auction Marketplace")

	code, _, _ = c.run("admin", "reject", "missing-id")
	require.Equal(t, 2, code)

	code, _, _ = c.run("admin", "nope")
	require.Equal(t, 2, code)
}

func TestRun_Watch(t *testing.T) {
	watcher := newCLI(t)
	camera := watcher.auctionID("Vintage rangefinder camera")

	code, _, _ := watcher.run("watch")
	require.Equal(t, 2, code)

	code, _, _ = watcher.run("login", "-email", sandbox.BidderEmail, "-password", sandbox.DemoPassword)
	require.Equal(t, 0, code)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	out := &lockedBuffer{}
	exited := make(chan int, 1)
	go func() {
		exited <- watcher.runContext(ctx, out, &lockedBuffer{}, "watch", "-tick", "100ms", camera)
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), `watching "Vintage rangefinder camera"`) &&
			strings.Contains(out.String(), "ends in 2d")
	}, 5*time.Second, 20*time.Millisecond)

	rival := watcher.another()
	code, _, _ = rival.run("login", "-admin", "-email", sandbox.AdminEmail, "-password", sandbox.AdminPassword)
	require.Equal(t, 0, code)
	code, _, stderr := rival.run("pay-entry", camera)
	require.Equal(t, 0, code, stderr)
	code, _, stderr = rival.run("bid", camera, "125")
	require.Equal(t, 0, code, stderr)

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "new bid 125.00")
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case code := <-exited:
		require.Equal(t, 0, code)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop on cancel")
	}
}

func TestRun_Submit(t *testing.T) {
	c := newCLI(t)
	dir := t.TempDir()

	code, _, _ := c.run("login", "-email", sandbox.SellerEmail, "-password", sandbox.DemoPassword)
	require.Equal(t, 0, code)

	form := submission.Form{
		Title:           "Mechanical wristwatch",
		Description:     "Automatic movement, serviced last year, keeps good time.",
		CategoryID:      "collectibles",
		Condition:       submission.ConditionGood,
		StartingPrice:   250,
		AuctionDuration: 3,
		SellerName:      "Sam Seller",
		Email:           sandbox.SellerEmail,
		Phone:           "+1 555 010 3000",
	}
	formPath := writeJSON(t, dir, "form.json", form)

	png := make([]byte, 1024)
	copy(png, []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'})
	pngPath := filepath.Join(dir, "front.png")
	require.NoError(t, os.WriteFile(pngPath, png, 0o600))
	notesPath := filepath.Join(dir, "notes.png")
	require.NoError(t, os.WriteFile(notesPath, []byte("%PDF-1.7 not really a png"), 0o600))

	tests := []struct {
		name     string
		args     []string
		wantCode int
		stdout   []string
		stderr   string
	}{
		{name: "missing_file_flag", args: []string{"submit", "-image", pngPath}, wantCode: 2, stderr: "usage: auctionctl submit"},
		{name: "not_an_image", args: []string{"submit", "-file", formPath, "-image", notesPath}, wantCode: 1, stderr: "notes.png: only JPEG, PNG, GIF and WebP images are allowed"},
		{name: "unreadable_form", args: []string{"submit", "-file", filepath.Join(dir, "missing.json"), "-image", pngPath}, wantCode: 1, stderr: "error:"},
		{name: "submitted", args: []string{"submit", "-file", formPath, "-image", pngPath}, wantCode: 0, stdout: []string{"form 100% complete", "received with 1 image(s), status PENDING"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := c.run(tt.args...)
			require.Equal(t, tt.wantCode, code, stderr)
			for _, want := range tt.stdout {
				require.Contains(t, stdout, want)
			}
			require.Contains(t, stderr, tt.stderr)
		})
	}

	code, _, _ = c.another().run("submit", "-file", formPath, "-image", pngPath)
	require.Equal(t, 1, code, "submissions need a signed-in seller")
}

func writeJSON(t *testing.T, dir, name string, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}
