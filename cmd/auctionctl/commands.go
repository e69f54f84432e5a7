package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"auction-marketplace/internal/auth"
	"auction-marketplace/internal/live"
	"auction-marketplace/internal/models"
	"auction-marketplace/internal/productdetail"
	"auction-marketplace/internal/submission"
)

const shownBids = 10

func loginCmd(ctx context.Context, a *app, args []string) error {
	fs := newFlags("login", a)
	email := fs.String("email", "", "account email")
	password := fs.String("password", os.Getenv("AUCTIONCTL_PASSWORD"), "account password (or AUCTIONCTL_PASSWORD)")
	asAdmin := fs.Bool("admin", false, "require a moderator or admin account")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := auth.LoginRequest{Email: *email, Password: *password}
	login := a.auth.Login
	if *asAdmin {
		login = a.auth.LoginAdmin
	}
	user, err := login(ctx, req)
	if err != nil {
		return err
	}
	a.printf("signed in as %s (%s)\n", user.Email, user.Role)
	if auth.NeedsVerification(user) {
		a.printf("your email address is not verified yet\n")
	}
	return nil
}

func logoutCmd(ctx context.Context, a *app, _ []string) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.printf("signed out\n")
	return nil
}

func whoamiCmd(ctx context.Context, a *app, _ []string) error {
	state, err := a.auth.Restore(ctx)
	if err != nil {
		return err
	}
	if !state.Authenticated || state.User == nil {
		a.printf("not signed in\n")
		return nil
	}
	u := state.User
	a.printf("%s %s <%s>\nusername: %s\nrole: %s\n", u.FirstName, u.LastName, u.Email, u.Username, u.Role)
	if auth.NeedsVerification(u) {
		a.printf("email not verified\n")
	}
	return nil
}

func auctionsCmd(ctx context.Context, a *app, args []string) error {
	fs := newFlags("auctions", a)
	status := fs.String("status", "", "ACTIVE, SCHEDULED, ENDED, SOLD or CANCELLED")
	search := fs.String("search", "", "match title or description")
	category := fs.String("category", "", "category ID")
	page := fs.Int("page", 1, "page number")
	limit := fs.Int("limit", 20, "items per page")
	if err := fs.Parse(args); err != nil {
		return err
	}

	q := url.Values{}
	q.Set("page", strconv.Itoa(*page))
	q.Set("limit", strconv.Itoa(*limit))
	for key, v := range map[string]string{"status": *status, "search": *search, "category": *category} {
		if v != "" {
			q.Set(key, v)
		}
	}

	var res models.Page[models.Auction]
	if err := a.api.Get(ctx, "/auctions", q, &res); err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tPRICE\tBIDS\tENDS IN")
	for _, au := range res.Items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%d\t%s\n",
			au.ID, au.Title, au.Status, au.HighestPrice(), au.BidCount, endsIn(au))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	p := res.Pagination
	a.printf("page %d of %d (%d auctions)\n", p.Page, max(p.TotalPages, 1), p.Total)
	return nil
}

func showCmd(ctx context.Context, a *app, args []string) error {
	if len(args) != 1 {
		return usageError{"show needs an auction ID"}
	}
	d, err := a.detail().Load(ctx, args[0])
	if err != nil {
		return err
	}
	printDetail(a, d)
	return nil
}

func bidCmd(ctx context.Context, a *app, args []string) error {
	if len(args) != 2 {
		return usageError{"bid needs an auction ID and an amount"}
	}
	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return usageError{fmt.Sprintf("invalid amount %q", args[1])}
	}

	mgr := a.detail()
	d, err := mgr.Load(ctx, args[0])
	if err != nil {
		return err
	}
	d, err = mgr.PlaceBid(ctx, d, amount)
	if err != nil {
		return err
	}
	a.printf("bid of %.2f placed\n", amount)
	printDetail(a, d)
	return nil
}

func payEntryCmd(ctx context.Context, a *app, args []string) error {
	fs := newFlags("pay-entry", a)
	method := fs.String("method", "pm_card_visa", "payment method ID")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return usageError{"pay-entry needs an auction ID"}
	}

	// notifications: the initial load, the optimistic paid state, then the confirmed or reverted one
	notified := 0
	mgr := a.detail(productdetail.WithObserver(func(d *productdetail.Detail) {
		notified++
		if notified == 2 && d.EntryFee.HasPaid {
			a.printf("entry fee sent, waiting for confirmation...\n")
		}
	}))
	d, err := mgr.Load(ctx, fs.Arg(0))
	if err != nil {
		return err
	}
	a.printf("paying entry fee of %.2f for %q\n", d.Auction.EntryFee, d.Auction.Title)

	d, err = mgr.PayEntryFee(ctx, d, productdetail.PaymentMethod{ID: *method})
	if err != nil {
		return err
	}
	a.printf("entry fee confirmed, you can bid from %.2f\n", d.MinimumBid())
	return nil
}

func watchCmd(ctx context.Context, a *app, args []string) error {
	fs := newFlags("watch", a)
	tick := fs.Duration("tick", 10*time.Second, "how often to print the time left")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return usageError{"watch needs an auction ID"}
	}
	auctionID := fs.Arg(0)

	d, err := a.detail().Load(ctx, auctionID)
	if err != nil {
		return err
	}
	events, err := live.NewSubscriber(a.api.BaseURL(), a.store).Subscribe(ctx, auctionID)
	if err != nil {
		return err
	}
	a.printf("watching %q, press Ctrl+C to stop\n", d.Auction.Title)

	countdown := productdetail.Countdown(ctx, d.Auction.EndTime, *tick)
	for {
		select {
		case <-ctx.Done():
			return nil
		case left, ok := <-countdown:
			if !ok {
				countdown = nil
				continue
			}
			a.printf("ends in %s\n", productdetail.FormatRemaining(left))
		case ev, ok := <-events:
			if !ok {
				a.printf("stream closed\n")
				return nil
			}
			printEvent(a, ev)
		}
	}
}

func submitCmd(ctx context.Context, a *app, args []string) error {
	fs := newFlags("submit", a)
	file := fs.String("file", "", "JSON file with the submission form")
	var images stringList
	fs.Var(&images, "image", "image to upload (repeatable, up to 5)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return usageError{"submit needs -file"}
	}

	raw, err := os.ReadFile(*file)
	if err != nil {
		return fmt.Errorf("read form: %w", err)
	}
	var form submission.Form
	if err := json.Unmarshal(raw, &form); err != nil {
		return fmt.Errorf("parse form %s: %w", *file, err)
	}

	set := submission.NewImageSet()
	for _, path := range images {
		if err := set.AddFile(path); err != nil {
			return err
		}
	}
	a.printf("form %d%% complete\n", submission.Progress(form, set))

	created, err := submission.NewManager(a.api).Submit(ctx, form, set)
	if err != nil {
		return err
	}
	a.printf("submission %s received with %d image(s), status %s\n", created.ID, len(created.Images), created.Status)
	return nil
}

func printDetail(a *app, d *productdetail.Detail) {
	au := d.Auction
	a.printf("%s\n%s\n\n", au.Title, au.Description)
	a.printf("status:     %s (ends in %s)\n", au.Status, endsIn(au))
	a.printf("price:      %.2f (%d bids)\n", au.HighestPrice(), au.BidCount)
	a.printf("entry fee:  %.2f\n", au.EntryFee)

	switch {
	case d.State.CanBid():
		a.printf("next bid:   at least %.2f\n", d.MinimumBid())
	case d.State.ShowsEntryFee():
		a.printf("pay the entry fee to bid: auctionctl pay-entry %s\n", au.ID)
	case d.State == productdetail.StateUnauthenticated:
		a.printf("log in to bid\n")
	case d.State == productdetail.StateOwner:
		a.printf("this is your auction\n")
	case d.IsWinner():
		a.printf("you won this auction\n")
	case d.State == productdetail.StateEnded:
		a.printf("bidding has closed\n")
	}
	if d.UserBid != nil && d.UserBid.HasBid {
		standing := "outbid"
		if d.UserBid.IsWinning {
			standing = "winning"
		}
		a.printf("your bid:   %.2f (%s)\n", d.UserBid.Amount, standing)
	}
	if d.Watchlisted {
		a.printf("on your watchlist\n")
	}

	if len(d.Bids) == 0 {
		return
	}
	a.printf("\nrecent bids:\n")
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	for i, b := range d.Bids {
		if i == shownBids {
			break
		}
		fmt.Fprintf(w, "  %.2f\t%s\t%s\n", b.Amount, b.Status, b.CreatedAt.Local().Format(time.DateTime))
	}
	_ = w.Flush()
}

func printEvent(a *app, ev live.Event) {
	switch ev.Type {
	case live.EventBidPlaced:
		var bid models.Bid
		if err := ev.Decode(&bid); err != nil {
			a.printf("%s: %v\n", ev.Type, err)
			return
		}
		a.printf("new bid %.2f\n", bid.Amount)
	case live.EventAuctionUpdated:
		var au models.Auction
		if err := ev.Decode(&au); err != nil {
			a.printf("%s: %v\n", ev.Type, err)
			return
		}
		a.printf("auction is now %s, price %.2f\n", au.Status, au.HighestPrice())
	case live.EventPaymentConfirmed:
		a.printf("your payment was confirmed\n")
	default:
		a.printf("%s\n", ev.Type)
	}
}

func endsIn(au models.Auction) string {
	if au.Status.Closed() {
		return "-"
	}
	return productdetail.FormatRemaining(time.Until(au.EndTime))
}
