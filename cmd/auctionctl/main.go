// Command auctionctl is a terminal client for the auction marketplace API.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"auction-marketplace/config"
	"auction-marketplace/internal/apiclient"
	"auction-marketplace/internal/auth"
	"auction-marketplace/internal/live"
	"auction-marketplace/internal/marketerrors"
	"auction-marketplace/internal/productdetail"
	"auction-marketplace/internal/session"
	"auction-marketplace/utils"
)

type command struct {
	usage string
	run   func(ctx context.Context, a *app, args []string) error
}

var commands = map[string]command{
	"login":     {"login -email <email> -password <password> [-admin]", loginCmd},
	"logout":    {"logout", logoutCmd},
	"whoami":    {"whoami", whoamiCmd},
	"auctions":  {"auctions [-status S] [-search Q] [-category C] [-page N] [-limit N]", auctionsCmd},
	"show":      {"show <auction-id>", showCmd},
	"bid":       {"bid <auction-id> <amount>", bidCmd},
	"watch":     {"watch [-tick 10s] <auction-id>", watchCmd},
	"pay-entry": {"pay-entry [-method pm_card_visa] <auction-id>", payEntryCmd},
	"submit":    {"submit -file form.json -image a.jpg [-image b.png ...]", submitCmd},
	"admin":     {"admin <stats|users|auctions|bids|categories|notifications|contact|settings|submissions|approve|reject> [args]", adminCmd},
}

// app holds the SDK components shared by every command
type app struct {
	cfg    *config.Config
	store  session.Store
	api    *apiclient.Client
	auth   *auth.Manager
	out    io.Writer
	stderr io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	global := flag.NewFlagSet("auctionctl", flag.ContinueOnError)
	global.SetOutput(stderr)
	apiURL := global.String("api", "", "API base URL (overrides api.baseURL)")
	sessionPath := global.String("session", "", "session file (default: user config dir)")
	global.Usage = func() { usage(stderr, global) }

	if err := global.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if global.NArg() == 0 {
		global.Usage()
		return 2
	}
	name, rest := global.Arg(0), global.Args()[1:]
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n", name)
		global.Usage()
		return 2
	}

	cfg, err := config.New()
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	utils.SetOutput(stderr)
	utils.Configure(cfg.Env.Log.Level, cfg.Env.Log.Pretty)

	a, err := newApp(cfg, *apiURL, *sessionPath, stdout, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "error:", marketerrors.UserMessage(err))
		return 1
	}

	if err := cmd.run(ctx, a, rest); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		var usageErr usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(stderr, "usage: auctionctl %s\n", cmd.usage)
			return 2
		}
		fmt.Fprintln(stderr, "error:", marketerrors.UserMessage(err))
		return 1
	}
	return 0
}

func newApp(cfg *config.Config, apiURL, sessionPath string, stdout, stderr io.Writer) (*app, error) {
	if apiURL != "" {
		cfg.API.BaseURL = apiURL
	}
	switch {
	case sessionPath != "":
	case cfg.API.SessionFile != "":
		sessionPath = cfg.API.SessionFile
	default:
		sessionPath = session.DefaultPath()
	}
	store := session.NewFileStore(sessionPath)

	api, err := apiclient.New(cfg.API.BaseURL, store,
		apiclient.WithTimeout(cfg.API.Timeout),
		apiclient.WithLogoutHook(func() {
			fmt.Fprintln(stderr, "session expired, please log in again")
		}),
	)
	if err != nil {
		return nil, err
	}
	return &app{
		cfg:    cfg,
		store:  store,
		api:    api,
		auth:   auth.NewManager(api),
		out:    stdout,
		stderr: stderr,
	}, nil
}

// detail builds a product detail manager whose entry-fee confirmation follows the payment config
func (a *app) detail(opts ...productdetail.Option) *productdetail.Manager {
	confirm := []productdetail.ConfirmerOption{productdetail.WithSchedule(a.cfg.Payment.ConfirmDelays...)}
	if !a.cfg.Payment.HistoryFallback {
		confirm = append(confirm, productdetail.WithoutHistoryFallback())
	}
	if a.cfg.Payment.LiveEvents {
		confirm = append(confirm, productdetail.WithEvents(live.NewSubscriber(a.api.BaseURL(), a.store)))
	}
	opts = append([]productdetail.Option{productdetail.WithConfirmer(productdetail.NewPaymentConfirmer(a.api, confirm...))}, opts...)
	return productdetail.NewManager(a.api, a.auth, opts...)
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// usageError reports wrong arguments for a command
type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func usage(w io.Writer, global *flag.FlagSet) {
	fmt.Fprintln(w, "usage: auctionctl [-api URL] [-session FILE] <command> [args]")
	fmt.Fprintln(w, "\ncommands:")
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %s\n", commands[name].usage)
	}
	fmt.Fprintln(w, "\nflags:")
	global.PrintDefaults()
}

func newFlags(name string, a *app) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	return fs
}

// stringList is a repeatable string flag
type stringList []string

func (s *stringList) String() string { return fmt.Sprint(*s) }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}
