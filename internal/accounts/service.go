package accounts

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"auction-marketplace/internal/auth"
	"auction-marketplace/internal/marketerrors"
	"auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"
	"auction-marketplace/utils"
)

const resetTokenTTL = time.Hour

// TokenPair is the body of a successful refresh
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type oneTimeToken struct {
	userID    string
	expiresAt time.Time
}

// Service implements the /auth operations of the sandbox backend
type Service struct {
	db     repository.UserDB
	tokens *TokenService
	hasher *Hasher
	now    func() time.Time

	mu     sync.Mutex
	resets map[string]oneTimeToken
	verify map[string]oneTimeToken
}

// NewService creates the account service
func NewService(db repository.UserDB, tokens *TokenService, hasher *Hasher) *Service {
	return &Service{
		db:     db,
		tokens: tokens,
		hasher: hasher,
		now:    time.Now,
		resets: make(map[string]oneTimeToken),
		verify: make(map[string]oneTimeToken),
	}
}

// Tokens exposes the token service to the auth middleware
func (s *Service) Tokens() *TokenService {
	return s.tokens
}

// Register creates a USER account and signs it in. Requests are validated by the caller.
func (s *Service) Register(req auth.RegisterRequest) (auth.Result, error) {
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return auth.Result{}, fmt.Errorf("service: hash password: %w", err)
	}

	rec := repository.UserRecord{
		User: models.User{
			ID:        utils.GenerateID(),
			Email:     strings.TrimSpace(req.Email),
			Username:  req.Username,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Phone:     req.Phone,
			Role:      models.RoleUser,
			IsActive:  true,
		},
		PasswordHash: hash,
	}
	if err := s.db.CreateUser(rec); err != nil {
		return auth.Result{}, fmt.Errorf("service: register %s: %w", req.Email, err)
	}
	s.issueVerification(rec.ID)

	utils.Info("account registered", map[string]any{"user_id": rec.ID})
	return s.signIn(rec)
}

// Seed creates an account with a fixed role; used to bootstrap the sandbox
func (s *Service) Seed(user models.User, password string) (models.User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return models.User{}, fmt.Errorf("service: hash password: %w", err)
	}
	if user.ID == "" {
		user.ID = utils.GenerateID()
	}
	user.IsActive = true
	if err := s.db.CreateUser(repository.UserRecord{User: user, PasswordHash: hash}); err != nil {
		return models.User{}, fmt.Errorf("service: seed %s: %w", user.Email, err)
	}
	return user, nil
}

// Login checks the credentials and issues a token pair
func (s *Service) Login(req auth.LoginRequest) (auth.Result, error) {
	rec, err := s.db.GetUserByEmail(strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, marketerrors.ErrNotFound) {
			return auth.Result{}, fmt.Errorf("service: login: %w", marketerrors.ErrBadCredentials)
		}
		return auth.Result{}, fmt.Errorf("service: login: %w", err)
	}
	if !s.hasher.Check(req.Password, rec.PasswordHash) {
		return auth.Result{}, fmt.Errorf("service: login: %w", marketerrors.ErrBadCredentials)
	}
	if !rec.IsActive {
		return auth.Result{}, fmt.Errorf("service: login: account disabled: %w", marketerrors.ErrForbidden)
	}

	now := s.now().UTC()
	rec.LastLogin = &now
	if err := s.db.UpdateUser(rec); err != nil {
		return auth.Result{}, fmt.Errorf("service: login: %w", err)
	}
	return s.signIn(rec)
}

func (s *Service) signIn(rec repository.UserRecord) (auth.Result, error) {
	access, refresh, err := s.tokens.Issue(rec.User)
	if err != nil {
		return auth.Result{}, fmt.Errorf("service: issue tokens: %w", err)
	}
	s.db.SaveRefreshToken(refresh, rec.ID, s.now().Add(s.tokens.RefreshTTL()))

	user := rec.User
	return auth.Result{User: &user, AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh rotates a refresh token: the presented token is spent and a new pair is issued
func (s *Service) Refresh(refreshToken string) (TokenPair, error) {
	if refreshToken == "" {
		return TokenPair{}, fmt.Errorf("service: refresh: missing token: %w", marketerrors.ErrUnauthorized)
	}
	subject, err := s.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return TokenPair{}, fmt.Errorf("service: refresh: %w", err)
	}
	owner, err := s.db.ConsumeRefreshToken(refreshToken, s.now())
	if err != nil {
		return TokenPair{}, fmt.Errorf("service: refresh: %w", err)
	}
	if owner != subject {
		return TokenPair{}, fmt.Errorf("service: refresh: token owner mismatch: %w", marketerrors.ErrUnauthorized)
	}

	rec, err := s.db.GetUser(owner)
	if err != nil {
		return TokenPair{}, fmt.Errorf("service: refresh: %w", marketerrors.ErrUnauthorized)
	}
	res, err := s.signIn(rec)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: res.AccessToken, RefreshToken: res.RefreshToken}, nil
}

// Logout revokes the user's refresh tokens
func (s *Service) Logout(userID string) {
	s.db.RevokeRefreshTokens(userID)
	utils.Info("account signed out", map[string]any{"user_id": userID})
}

// Profile returns the stored user
func (s *Service) Profile(userID string) (models.User, error) {
	rec, err := s.db.GetUser(userID)
	if err != nil {
		return models.User{}, fmt.Errorf("service: profile: %w", err)
	}
	return rec.User, nil
}

// ChangePassword replaces the password after checking the current one
func (s *Service) ChangePassword(userID string, req auth.ChangePasswordRequest) error {
	rec, err := s.db.GetUser(userID)
	if err != nil {
		return fmt.Errorf("service: change password: %w", err)
	}
	if !s.hasher.Check(req.CurrentPassword, rec.PasswordHash) {
		return fmt.Errorf("service: change password: current password is incorrect: %w", marketerrors.ErrValidation)
	}
	return s.setPassword(rec, req.NewPassword)
}

// ForgotPassword issues a reset token when the email is known. Unknown emails
// succeed silently so the endpoint does not reveal which accounts exist.
func (s *Service) ForgotPassword(email string) {
	rec, err := s.db.GetUserByEmail(email)
	if err != nil {
		return
	}
	token := utils.GenerateID()
	s.mu.Lock()
	s.resets[token] = oneTimeToken{userID: rec.ID, expiresAt: s.now().Add(resetTokenTTL)}
	s.mu.Unlock()

	// the sandbox has no mail transport
	utils.Info("password reset issued", map[string]any{"user_id": rec.ID, "token": token})
}

// ResetPassword spends a reset token and sets the new password
func (s *Service) ResetPassword(req auth.ResetPasswordRequest) error {
	userID, err := s.spend(s.resets, req.Token)
	if err != nil {
		return fmt.Errorf("service: reset password: %w", err)
	}
	rec, err := s.db.GetUser(userID)
	if err != nil {
		return fmt.Errorf("service: reset password: %w", err)
	}
	if err := s.setPassword(rec, req.Password); err != nil {
		return err
	}
	s.db.RevokeRefreshTokens(userID)
	return nil
}

// ResendVerification issues a new verification token for an unverified account
func (s *Service) ResendVerification(userID string) error {
	rec, err := s.db.GetUser(userID)
	if err != nil {
		return fmt.Errorf("service: resend verification: %w", err)
	}
	if rec.IsEmailVerified {
		return fmt.Errorf("service: resend verification: email already verified: %w", marketerrors.ErrBusinessRule)
	}
	s.issueVerification(rec.ID)
	return nil
}

// VerifyEmail spends a verification token and marks the email verified
func (s *Service) VerifyEmail(token string) (models.User, error) {
	userID, err := s.spend(s.verify, token)
	if err != nil {
		return models.User{}, fmt.Errorf("service: verify email: %w", err)
	}
	rec, err := s.db.GetUser(userID)
	if err != nil {
		return models.User{}, fmt.Errorf("service: verify email: %w", err)
	}
	rec.IsEmailVerified = true
	if err := s.db.UpdateUser(rec); err != nil {
		return models.User{}, fmt.Errorf("service: verify email: %w", err)
	}
	return rec.User, nil
}

// ListUsers returns every account for the admin dashboard
func (s *Service) ListUsers() []models.User {
	return s.db.ListUsers()
}

// UpdateUser applies admin edits to role and status
func (s *Service) UpdateUser(id string, role models.Role, active bool) (models.User, error) {
	rec, err := s.db.GetUser(id)
	if err != nil {
		return models.User{}, fmt.Errorf("service: update user: %w", err)
	}
	if role != "" {
		rec.Role = role
	}
	rec.IsActive = active
	if err := s.db.UpdateUser(rec); err != nil {
		return models.User{}, fmt.Errorf("service: update user: %w", err)
	}
	if !active {
		s.db.RevokeRefreshTokens(id)
	}
	return rec.User, nil
}

func (s *Service) setPassword(rec repository.UserRecord, password string) error {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("service: hash password: %w", err)
	}
	rec.PasswordHash = hash
	if err := s.db.UpdateUser(rec); err != nil {
		return fmt.Errorf("service: set password: %w", err)
	}
	return nil
}

func (s *Service) issueVerification(userID string) {
	token := utils.GenerateID()
	s.mu.Lock()
	s.verify[token] = oneTimeToken{userID: userID, expiresAt: s.now().Add(24 * time.Hour)}
	s.mu.Unlock()
	utils.Info("email verification issued", map[string]any{"user_id": userID, "token": token})
}

func (s *Service) spend(store map[string]oneTimeToken, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := store[token]
	if !ok {
		return "", fmt.Errorf("invalid or used token: %w", marketerrors.ErrValidation)
	}
	delete(store, token)
	if !s.now().Before(entry.expiresAt) {
		return "", fmt.Errorf("token expired: %w", marketerrors.ErrValidation)
	}
	return entry.userID, nil
}
