// Package accounts is the sandbox's account service: password hashing, token
// issuance and the /auth operations built on them.
package accounts

import (
	"fmt"
	"time"

	"auction-marketplace/config"
	"auction-marketplace/internal/marketerrors"
	"auction-marketplace/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	tokenAccess  = "access"
	tokenRefresh = "refresh"
)

// Claims is what the auth middleware needs from a verified access token
type Claims struct {
	UserID string
	Role   models.Role
}

// TokenService issues and verifies HS256 tokens
type TokenService struct {
	accessSecret  string
	refreshSecret string
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

// NewTokenService creates a token service from the sandbox configuration
func NewTokenService(cfg config.SandboxConfig) (*TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}
	return &TokenService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     cfg.AccessTTL,
		refreshTTL:    cfg.RefreshTTL,
		now:           time.Now,
	}, nil
}

// RefreshTTL is how long an issued refresh token stays usable
func (s *TokenService) RefreshTTL() time.Duration {
	return s.refreshTTL
}

// Issue creates an access and a refresh token for user
func (s *TokenService) Issue(user models.User) (accessToken, refreshToken string, err error) {
	accessToken, err = s.generate(user.ID, user.Role, s.accessTTL, s.accessSecret, tokenAccess)
	if err != nil {
		return "", "", errors.Wrap(err, "sign access token")
	}
	refreshToken, err = s.generate(user.ID, "", s.refreshTTL, s.refreshSecret, tokenRefresh)
	if err != nil {
		return "", "", errors.Wrap(err, "sign refresh token")
	}
	return accessToken, refreshToken, nil
}

// ParseAccess verifies an access token
func (s *TokenService) ParseAccess(token string) (Claims, error) {
	claims, err := s.parse(token, s.accessSecret, tokenAccess)
	if err != nil {
		return Claims{}, err
	}
	role, _ := claims["role"].(string)
	sub, _ := claims.GetSubject()
	return Claims{UserID: sub, Role: models.Role(role)}, nil
}

// ParseRefresh verifies a refresh token and returns its subject
func (s *TokenService) ParseRefresh(token string) (string, error) {
	claims, err := s.parse(token, s.refreshSecret, tokenRefresh)
	if err != nil {
		return "", err
	}
	sub, _ := claims.GetSubject()
	return sub, nil
}

func (s *TokenService) parse(tokenString, secret, wantType string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%s token: %w", wantType, marketerrors.ErrSessionExpired)
		}
		return nil, fmt.Errorf("%s token: %w", wantType, marketerrors.ErrUnauthorized)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["type"] != wantType {
		return nil, fmt.Errorf("%s token: wrong token type: %w", wantType, marketerrors.ErrUnauthorized)
	}
	if sub, _ := claims.GetSubject(); sub == "" {
		return nil, fmt.Errorf("%s token: missing subject: %w", wantType, marketerrors.ErrUnauthorized)
	}
	return claims, nil
}

func (s *TokenService) generate(userID string, role models.Role, ttl time.Duration, secret, tokenType string) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":  userID,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
		"jti":  uuid.NewString(), // two tokens issued in the same second must still differ
		"type": tokenType,
	}
	// only access tokens carry the role
	if role != "" {
		claims["role"] = string(role)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
