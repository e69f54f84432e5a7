package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"auction-marketplace/internal/accounts"
	"auction-marketplace/internal/apiclient"
	"auction-marketplace/internal/marketerrors"
	"auction-marketplace/internal/models"
	"auction-marketplace/services/marketplace/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	fields := map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	}
	if userID := helpers.UserID(c); userID != "" {
		fields["user_id"] = userID
	}
	if requestID := c.GetHeader(apiclient.RequestIDHeader); requestID != "" {
		fields["request_id"] = requestID
	}
	utils.Info("HTTP Request", fields)
}

// TokenParser validates access tokens
type TokenParser interface {
	ParseAccess(token string) (accounts.Claims, error)
}

// AuthMiddleware validates bearer access tokens and stores the caller on the context
type AuthMiddleware struct {
	tokens TokenParser
}

func NewAuthMiddleware(tokens TokenParser) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate rejects requests without a valid access token
func (m *AuthMiddleware) Authenticate(c *gin.Context) {
	claims, err := identify(m.tokens, c.Request)
	if err != nil {
		message := "authentication required"
		if errors.Is(err, marketerrors.ErrSessionExpired) {
			message = "access token expired"
		}
		utils.JSONError(c, http.StatusUnauthorized, err, message)
		return
	}
	helpers.SetIdentity(c, claims.UserID, claims.Role)
	c.Next()
}

// RequireModerator must run after Authenticate
func (m *AuthMiddleware) RequireModerator(c *gin.Context) {
	if !helpers.Role(c).CanModerate() {
		err := fmt.Errorf("role %q: %w", helpers.Role(c), marketerrors.ErrForbidden)
		utils.JSONError(c, http.StatusForbidden, err, "you do not have access to this resource")
		return
	}
	c.Next()
}

// RequireAdmin must run after Authenticate
func (m *AuthMiddleware) RequireAdmin(c *gin.Context) {
	if helpers.Role(c) != models.RoleAdmin {
		err := fmt.Errorf("role %q: %w", helpers.Role(c), marketerrors.ErrForbidden)
		utils.JSONError(c, http.StatusForbidden, err, "administrator access required")
		return
	}
	c.Next()
}

// identify reads the bearer token of r
func identify(tokens TokenParser, r *http.Request) (accounts.Claims, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return accounts.Claims{}, fmt.Errorf("authorization header is missing: %w", marketerrors.ErrUnauthorized)
	}
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return accounts.Claims{}, fmt.Errorf("invalid token format, must be Bearer token: %w", marketerrors.ErrUnauthorized)
	}
	return tokens.ParseAccess(token)
}
