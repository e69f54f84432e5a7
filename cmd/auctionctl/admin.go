package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"strings"

	"auction-marketplace/internal/admin"
	"auction-marketplace/internal/models"
)

// adminCmd drives the moderation dashboard. List resources print their JSON items.
func adminCmd(ctx context.Context, a *app, args []string) error {
	if len(args) == 0 {
		return usageError{"admin needs a resource"}
	}
	resource, rest := args[0], args[1:]
	dash := admin.New(a.api)

	switch resource {
	case "stats":
		stats, err := dash.Dashboard.Stats(ctx)
		if err != nil {
			return err
		}
		a.printf("users:               %d\n", stats.TotalUsers)
		a.printf("active auctions:     %d\n", stats.ActiveAuctions)
		a.printf("bids:                %d\n", stats.TotalBids)
		a.printf("pending submissions: %d\n", stats.PendingSubmissions)
		a.printf("revenue:             %.2f\n", stats.Revenue)
		return nil

	case "users":
		return listStore(ctx, a, dash.Users, rest)
	case "auctions":
		return listStore(ctx, a, dash.Auctions, rest)
	case "bids":
		return listStore(ctx, a, dash.Bids, rest)
	case "categories":
		return listStore(ctx, a, dash.Categories, rest)
	case "notifications":
		return listStore(ctx, a, dash.Notifications, rest)
	case "contact":
		return listStore(ctx, a, dash.Contact, rest)

	case "settings":
		settings, err := dash.Settings.List(ctx)
		if err != nil {
			return err
		}
		for _, s := range settings {
			a.printf("%s = %s\n", s.Key, s.Value)
		}
		return nil

	case "submissions":
		fs := newFlags("admin submissions", a)
		status := fs.String("status", string(models.SubmissionPending), "PENDING, APPROVED or REJECTED")
		params := listFlags(fs)
		if err := fs.Parse(rest); err != nil {
			return err
		}
		page, err := dash.Submissions.List(ctx, models.SubmissionStatus(strings.ToUpper(*status)), *params)
		if err != nil {
			return err
		}
		return a.printJSON(page)

	case "approve":
		if len(rest) != 1 {
			return usageError{"approve needs a submission ID"}
		}
		auction, err := dash.Submissions.Approve(ctx, rest[0])
		if err != nil {
			return err
		}
		a.printf("approved, auction %s is %s\n", auction.ID, auction.Status)
		return nil

	case "reject":
		if len(rest) < 2 {
			return usageError{"reject needs a submission ID and a reason"}
		}
		sub, err := dash.Submissions.Reject(ctx, rest[0], strings.Join(rest[1:], " "))
		if err != nil {
			return err
		}
		a.printf("submission %s %s\n", sub.ID, sub.Status)
		return nil

	default:
		return usageError{fmt.Sprintf("unknown admin resource %q", resource)}
	}
}

// listFlags binds the paging flags of fs to a ListParams
func listFlags(fs *flag.FlagSet) *admin.ListParams {
	p := &admin.ListParams{}
	fs.IntVar(&p.Page, "page", 1, "page number")
	fs.IntVar(&p.Limit, "limit", admin.DefaultLimit, "items per page")
	fs.StringVar(&p.Search, "search", "", "search text")
	return p
}

// listStore fetches one page of a dashboard list and prints it
func listStore[T any](ctx context.Context, a *app, store *admin.Store[T], args []string) error {
	fs := newFlags("admin list", a)
	params := listFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	state, err := store.Fetch(ctx, *params)
	if err != nil {
		return err
	}
	if err := a.printJSON(state.Items); err != nil {
		return err
	}
	p := state.Pagination
	fmt.Fprintf(a.stderr, "page %d of %d (%d total)\n", p.Page, max(p.TotalPages, 1), p.Total)
	return nil
}

func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
