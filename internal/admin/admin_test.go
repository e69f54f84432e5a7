package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"auction-marketplace/internal/apiclient"
	"auction-marketplace/internal/marketerrors"
	"auction-marketplace/internal/models"
	"auction-marketplace/internal/session"

	"github.com/stretchr/testify/require"
)

func respond(w http.ResponseWriter, status int, data any, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": status < 300, "status": status, "message": msg, "data": data})
}

// fakeCategories is an in-memory /categories resource
type fakeCategories struct {
	mu       sync.Mutex
	items    []models.Category
	lists    atomic.Int32
	lastPage string
	failList bool
}

func (f *fakeCategories) server(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/categories", func(w http.ResponseWriter, r *http.Request) {
		f.lists.Add(1)
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.failList {
			respond(w, http.StatusInternalServerError, nil, "database unavailable")
			return
		}
		f.lastPage = r.URL.Query().Get("page")
		page := models.Page[models.Category]{
			Items:      append([]models.Category(nil), f.items...),
			Pagination: models.Pagination{Page: 1, Limit: 20, Total: len(f.items), TotalPages: 1},
		}
		respond(w, http.StatusOK, page, "ok")
	})
	mux.HandleFunc("POST /api/categories", func(w http.ResponseWriter, r *http.Request) {
		var in CategoryInput
		_ = json.NewDecoder(r.Body).Decode(&in)
		f.mu.Lock()
		defer f.mu.Unlock()
		for _, c := range f.items {
			if c.Slug == in.Slug {
				respond(w, http.StatusConflict, nil, "category slug already exists")
				return
			}
		}
		c := models.Category{ID: "c" + strconv.Itoa(len(f.items)+1), Name: in.Name, Slug: in.Slug, IsActive: in.IsActive}
		f.items = append(f.items, c)
		respond(w, http.StatusCreated, c, "created")
	})
	mux.HandleFunc("PUT /api/categories/{id}", func(w http.ResponseWriter, r *http.Request) {
		var in CategoryInput
		_ = json.NewDecoder(r.Body).Decode(&in)
		f.mu.Lock()
		defer f.mu.Unlock()
		for i := range f.items {
			if f.items[i].ID == r.PathValue("id") {
				f.items[i].Name = in.Name
				respond(w, http.StatusOK, f.items[i], "updated")
				return
			}
		}
		respond(w, http.StatusNotFound, nil, "category not found")
	})
	mux.HandleFunc("DELETE /api/categories/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		for i := range f.items {
			if f.items[i].ID == r.PathValue("id") {
				f.items = append(f.items[:i], f.items[i+1:]...)
				respond(w, http.StatusOK, nil, "deleted")
				return
			}
		}
		respond(w, http.StatusNotFound, nil, "category not found")
	})
	mux.HandleFunc("GET /api/admin/dashboard/stats", func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusOK, models.DashboardStats{TotalUsers: 3, ActiveAuctions: 2}, "ok")
	})
	mux.HandleFunc("POST /api/product-submissions/admin/{id}/reject", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		respond(w, http.StatusOK, models.ProductSubmission{ID: r.PathValue("id"), Status: models.SubmissionRejected, RejectionReason: body["reason"]}, "rejected")
	})
	return httptest.NewServer(mux)
}

func newTestClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()
	store := session.NewMemoryStore()
	require.NoError(t, store.Save(session.Snapshot{AccessToken: "admin-token", User: &models.User{ID: "admin", Role: models.RoleAdmin}}))
	api, err := apiclient.New(srv.URL+"/api", store)
	require.NoError(t, err)
	return New(api)
}

func TestStore_MutationsRefetch(t *testing.T) {
	fake := &fakeCategories{}
	srv := fake.server(t)
	defer srv.Close()

	c := newTestClient(t, srv)
	ctx := context.Background()

	st, err := c.Categories.Fetch(ctx, ListParams{Page: 2})
	require.NoError(t, err)
	require.Empty(t, st.Items)
	require.Equal(t, "2", fake.lastPage)

	created, err := c.CreateCategory(ctx, CategoryInput{Name: "Cameras", Slug: "cameras", IsActive: true})
	require.NoError(t, err)
	require.Equal(t, "c1", created.ID)

	// the refetch reuses the last params
	require.Equal(t, "2", fake.lastPage)
	st = c.Categories.Snapshot()
	require.Len(t, st.Items, 1)
	require.False(t, st.IsLoading)
	require.NoError(t, st.Error)

	_, err = c.Categories.Update(ctx, "c1", CategoryInput{Name: "Film cameras", Slug: "cameras"})
	require.NoError(t, err)
	require.Equal(t, "Film cameras", c.Categories.Snapshot().Items[0].Name)

	require.NoError(t, c.Categories.Delete(ctx, "c1"))
	require.Empty(t, c.Categories.Snapshot().Items)
	require.Equal(t, int32(4), fake.lists.Load())
}

func TestStore_ErrorsAreKeptInState(t *testing.T) {
	fake := &fakeCategories{items: []models.Category{{ID: "c1", Slug: "cameras"}}}
	srv := fake.server(t)
	defer srv.Close()

	c := newTestClient(t, srv)
	ctx := context.Background()

	_, err := c.Categories.Create(ctx, CategoryInput{Name: "Dup", Slug: "cameras"})
	require.ErrorIs(t, err, marketerrors.ErrBusinessRule)
	st := c.Categories.Snapshot()
	require.Equal(t, "category slug already exists", marketerrors.UserMessage(st.Error))
	require.False(t, st.IsLoading)

	err = c.Categories.Delete(ctx, "missing")
	require.ErrorIs(t, err, marketerrors.ErrNotFound)

	fake.mu.Lock()
	fake.failList = true
	fake.mu.Unlock()
	_, err = c.Categories.Fetch(ctx, ListParams{})
	require.ErrorIs(t, err, marketerrors.ErrServer)
	require.Error(t, c.Categories.Snapshot().Error)
}

func TestClient_ValidationBeforeNetwork(t *testing.T) {
	fake := &fakeCategories{}
	srv := fake.server(t)
	defer srv.Close()

	c := newTestClient(t, srv)
	ctx := context.Background()

	_, err := c.CreateCategory(ctx, CategoryInput{Name: "X", Slug: "Bad Slug"})
	require.ErrorIs(t, err, marketerrors.ErrValidation)
	require.Zero(t, fake.lists.Load())

	err = c.WhatsApp.SendTest(ctx, TestMessageRequest{Phone: "nope", Message: "hi"})
	require.ErrorIs(t, err, marketerrors.ErrValidation)

	_, err = c.Submissions.Reject(ctx, "s1", "no")
	require.ErrorIs(t, err, marketerrors.ErrValidation)
}

func TestServices(t *testing.T) {
	fake := &fakeCategories{}
	srv := fake.server(t)
	defer srv.Close()

	c := newTestClient(t, srv)
	ctx := context.Background()

	stats, err := c.Dashboard.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, stats.TotalUsers)

	sub, err := c.Submissions.Reject(ctx, "s1", "photos are blurry")
	require.NoError(t, err)
	require.Equal(t, models.SubmissionRejected, sub.Status)
	require.Equal(t, "photos are blurry", sub.RejectionReason)
}
