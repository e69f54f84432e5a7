// Package admin is the dashboard SDK: one list store per resource plus the
// single-object settings and content services.
package admin

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"sync"

	"auction-marketplace/internal/apiclient"
	"auction-marketplace/internal/models"
	"auction-marketplace/utils"
)

const DefaultLimit = 20

// ListParams selects one page of a list
type ListParams struct {
	Page   int
	Limit  int
	Search string
	Status string
	Sort   string
}

func (p ListParams) withDefaults() ListParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	return p
}

func (p ListParams) query() url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(p.Page))
	q.Set("limit", strconv.Itoa(p.Limit))
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.Status != "" {
		q.Set("status", p.Status)
	}
	if p.Sort != "" {
		q.Set("sort", p.Sort)
	}
	return q
}

// State is what a list screen renders
type State[T any] struct {
	Items      []T
	Pagination models.Pagination
	Params     ListParams
	IsLoading  bool
	Error      error
}

// Store keeps one resource list in step with the API. Every mutation is followed by a
// refetch of the last requested page; nothing is patched locally.
type Store[T any] struct {
	api  *apiclient.Client
	name string
	path string

	mu    sync.Mutex
	state State[T]
}

// NewStore creates a store for the list endpoint at path
func NewStore[T any](api *apiclient.Client, name, path string) *Store[T] {
	return &Store[T]{
		api:   api,
		name:  name,
		path:  path,
		state: State[T]{Params: ListParams{}.withDefaults()},
	}
}

// Snapshot returns a copy of the current state
func (s *Store[T]) Snapshot() State[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state
	st.Items = append([]T(nil), s.state.Items...)
	return st
}

func (s *Store[T]) pending() {
	s.mu.Lock()
	s.state.IsLoading = true
	s.state.Error = nil
	s.mu.Unlock()
}

func (s *Store[T]) rejected(err error) {
	s.mu.Lock()
	s.state.IsLoading = false
	s.state.Error = err
	s.mu.Unlock()
	utils.Warn("admin request failed", map[string]any{"resource": s.name, "error": err.Error()})
}

// Fetch loads one page and replaces the items
func (s *Store[T]) Fetch(ctx context.Context, params ListParams) (State[T], error) {
	params = params.withDefaults()
	s.pending()

	var page models.Page[T]
	if err := s.api.Get(ctx, s.path, params.query(), &page); err != nil {
		err = fmt.Errorf("fetch %s: %w", s.name, err)
		s.rejected(err)
		return s.Snapshot(), err
	}

	s.mu.Lock()
	s.state = State[T]{Items: page.Items, Pagination: page.Pagination, Params: params}
	s.mu.Unlock()
	return s.Snapshot(), nil
}

// Refetch reloads the last requested page
func (s *Store[T]) Refetch(ctx context.Context) (State[T], error) {
	s.mu.Lock()
	params := s.state.Params
	s.mu.Unlock()
	return s.Fetch(ctx, params)
}

// Create posts payload and refetches
func (s *Store[T]) Create(ctx context.Context, payload any) (*T, error) {
	var created T
	if err := s.mutate(ctx, "create", func() error {
		return s.api.Post(ctx, s.path, payload, &created)
	}); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update puts payload to the item's path and refetches
func (s *Store[T]) Update(ctx context.Context, id string, payload any) (*T, error) {
	var updated T
	if err := s.mutate(ctx, "update", func() error {
		return s.api.Put(ctx, s.itemPath(id), payload, &updated)
	}); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the item and refetches
func (s *Store[T]) Delete(ctx context.Context, id string) error {
	return s.mutate(ctx, "delete", func() error {
		return s.api.Delete(ctx, s.itemPath(id), nil)
	})
}

func (s *Store[T]) itemPath(id string) string {
	return s.path + "/" + url.PathEscape(id)
}

func (s *Store[T]) mutate(ctx context.Context, op string, call func() error) error {
	s.pending()
	if err := call(); err != nil {
		err = fmt.Errorf("%s %s: %w", op, s.name, err)
		s.rejected(err)
		return err
	}
	utils.Info("admin change saved", map[string]any{"resource": s.name, "op": op})

	// a failed refetch is left in State.Error; the change itself went through
	_, _ = s.Refetch(ctx)
	return nil
}
