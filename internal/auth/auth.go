// Package auth signs users in and out and keeps the cached session in step with the API.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"auction-marketplace/internal/apiclient"
	"auction-marketplace/internal/marketerrors"
	"auction-marketplace/internal/models"
	"auction-marketplace/internal/session"
	"auction-marketplace/internal/validation"
	"auction-marketplace/utils"
)

const (
	LoginRedirectTarget = "index.html"
	LoginRedirectDelay  = time.Second

	DefaultReminderInterval = 30 * time.Second
)

// State is what the navigation needs to render the signed-in or signed-out view
type State struct {
	Authenticated bool
	User          *models.User
}

// RedirectDecision tells the login page whether to send the user elsewhere
type RedirectDecision struct {
	Redirect bool
	Target   string
	Delay    time.Duration
}

// Manager wraps the /auth endpoints
type Manager struct {
	api   *apiclient.Client
	store session.Store
	now   func() time.Time
}

// NewManager creates an auth manager sharing api's session store
func NewManager(api *apiclient.Client) *Manager {
	return &Manager{
		api:   api,
		store: api.Store(),
		now:   time.Now,
	}
}

// Login validates the form, signs in and caches tokens and profile
func (m *Manager) Login(ctx context.Context, req LoginRequest) (*models.User, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	return m.authenticate(ctx, "/auth/login", req)
}

// LoginAdmin signs in and refuses accounts that may not use the admin dashboard.
// A refused account leaves no session behind.
func (m *Manager) LoginAdmin(ctx context.Context, req LoginRequest) (*models.User, error) {
	user, err := m.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	if !user.Role.CanModerate() {
		if clearErr := m.store.Clear(); clearErr != nil {
			utils.Error("auth: failed to clear refused admin session", map[string]any{"error": clearErr.Error()})
		}
		return nil, fmt.Errorf("login admin %s: %w", user.Email, marketerrors.ErrForbidden)
	}
	return user, nil
}

// Register validates the form, creates the account and signs in when the API returns tokens
func (m *Manager) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	return m.authenticate(ctx, "/auth/register", req)
}

func (m *Manager) authenticate(ctx context.Context, path string, body any) (*models.User, error) {
	var res Result
	err := m.api.Do(ctx, apiclient.Request{Method: http.MethodPost, Path: path, Body: body, Public: true}, &res)
	if err != nil {
		return nil, fmt.Errorf("auth %s: %w", path, err)
	}
	if res.User == nil {
		return nil, fmt.Errorf("auth %s: response carried no user", path)
	}

	// registration may require email verification before issuing tokens
	if res.AccessToken != "" {
		snap := session.Snapshot{AccessToken: res.AccessToken, RefreshToken: res.RefreshToken, User: res.User}
		if err := m.store.Save(snap); err != nil {
			return nil, fmt.Errorf("save session: %w", err)
		}
	}

	utils.Info("auth: signed in", map[string]any{"user_id": res.User.ID, "role": res.User.Role})
	return res.User, nil
}

// Logout tells the API and always clears the local session, even when the call fails
func (m *Manager) Logout(ctx context.Context) error {
	snap, err := m.store.Load()
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	var apiErr error
	if snap.AccessToken != "" {
		body := map[string]string{}
		if snap.RefreshToken != "" {
			body["refreshToken"] = snap.RefreshToken
		}
		apiErr = m.api.Post(ctx, "/auth/logout", body, nil)
		if apiErr != nil && !errors.Is(apiErr, marketerrors.ErrSessionExpired) {
			utils.Warn("auth: logout call failed, clearing local session anyway", map[string]any{"error": apiErr.Error()})
		}
	}

	if err := m.store.Clear(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Profile fetches the current user and refreshes the cached copy
func (m *Manager) Profile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := m.api.Get(ctx, "/auth/profile", nil, &user); err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	snap, err := m.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if snap.AccessToken != "" {
		snap.User = &user
		if err := m.store.Save(snap); err != nil {
			return nil, fmt.Errorf("save session: %w", err)
		}
	}
	return &user, nil
}

// Cached returns the optimistic state from the local cache without a network call
func (m *Manager) Cached() State {
	snap, err := m.store.Load()
	if err != nil || snap.AccessToken == "" {
		return State{}
	}
	return State{Authenticated: true, User: snap.User}
}

// Restore confirms the cached session against /auth/profile.
// An expired session resolves to signed-out; other failures keep the cached state and report the error.
func (m *Manager) Restore(ctx context.Context) (State, error) {
	cached := m.Cached()
	if !cached.Authenticated {
		return cached, nil
	}

	user, err := m.Profile(ctx)
	switch {
	case err == nil:
		return State{Authenticated: true, User: user}, nil
	case errors.Is(err, marketerrors.ErrSessionExpired), errors.Is(err, marketerrors.ErrUnauthorized):
		if clearErr := m.store.Clear(); clearErr != nil {
			utils.Error("auth: failed to clear rejected session", map[string]any{"error": clearErr.Error()})
		}
		return State{}, nil
	default:
		return cached, err
	}
}

// CurrentUser returns the cached user, or nil when signed out
func (m *Manager) CurrentUser() *models.User {
	return m.Cached().User
}

// IsAuthenticated reports whether a session is cached
func (m *Manager) IsAuthenticated() bool {
	return m.Cached().Authenticated
}

// LoginPageRedirect decides from the cached token alone whether a visitor of the
// login page is already signed in and should be sent on.
func (m *Manager) LoginPageRedirect() RedirectDecision {
	snap, err := m.store.Load()
	if err != nil || !session.AccessTokenValid(snap.AccessToken, m.now()) {
		return RedirectDecision{}
	}
	return RedirectDecision{Redirect: true, Target: LoginRedirectTarget, Delay: LoginRedirectDelay}
}

// ForgotPassword requests a password reset email
func (m *Manager) ForgotPassword(ctx context.Context, req ForgotPasswordRequest) error {
	if err := validation.Struct(req); err != nil {
		return err
	}
	return m.public(ctx, "/auth/forgot-password", req)
}

// ResetPassword sets a new password using the emailed token
func (m *Manager) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	if err := validation.Struct(req); err != nil {
		return err
	}
	return m.public(ctx, "/auth/reset-password", req)
}

// ChangePassword changes the signed-in user's password
func (m *Manager) ChangePassword(ctx context.Context, req ChangePasswordRequest) error {
	if err := validation.Struct(req); err != nil {
		return err
	}
	if err := m.api.Post(ctx, "/auth/change-password", req, nil); err != nil {
		return fmt.Errorf("change password: %w", err)
	}
	return nil
}

// ResendVerification asks the API to send the verification email again
func (m *Manager) ResendVerification(ctx context.Context) error {
	if err := m.api.Post(ctx, "/auth/resend-verification", nil, nil); err != nil {
		return fmt.Errorf("resend verification: %w", err)
	}
	return nil
}

func (m *Manager) public(ctx context.Context, path string, body any) error {
	err := m.api.Do(ctx, apiclient.Request{Method: http.MethodPost, Path: path, Body: body, Public: true}, nil)
	if err != nil {
		return fmt.Errorf("auth %s: %w", path, err)
	}
	return nil
}

// NeedsVerification reports whether the banner asking to verify the email applies to user
func NeedsVerification(user *models.User) bool {
	return user != nil && !user.IsEmailVerified
}

// VerificationReminder emits the cached user every interval for as long as that
// user is signed in and unverified. The channel closes when ctx is done or the
// condition no longer holds.
func (m *Manager) VerificationReminder(ctx context.Context, interval time.Duration) <-chan models.User {
	if interval <= 0 {
		interval = DefaultReminderInterval
	}
	out := make(chan models.User)

	go func() {
		defer close(out)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				user := m.CurrentUser()
				if !NeedsVerification(user) {
					return
				}
				select {
				case out <- *user:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}
