package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"auction-marketplace/internal/marketerrors"
	"auction-marketplace/internal/models"
	"auction-marketplace/internal/validation"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100

	ctxUserID = "userID"
	ctxRole   = "role"
)

// Bind decodes the JSON body into req and applies the shared validation rules
func Bind(c *gin.Context, handlerName string, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		HandleBindError(c, handlerName, err)
		return false
	}
	if err := validation.Struct(req); err != nil {
		HandleBindError(c, handlerName, err)
		return false
	}
	return true
}

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		utils.JSONFieldErrors(c, http.StatusBadRequest, fieldErrs.Map(), fieldErrs.First())
		utils.Warn(handlerName+": validation error", map[string]any{"error": err.Error()})
		return
	}
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and the message shown to users
func MapErrorToHTTP(err error) (int, string) {
	var fieldErrs interface{ First() string }
	switch {
	case errors.As(err, &fieldErrs):
		if errors.Is(err, marketerrors.ErrBidTooLow) {
			return http.StatusConflict, fieldErrs.First()
		}
		return http.StatusBadRequest, fieldErrs.First()
	case errors.Is(err, marketerrors.ErrBadCredentials):
		return http.StatusUnauthorized, "invalid email or password"
	case errors.Is(err, marketerrors.ErrSessionExpired):
		return http.StatusUnauthorized, "session expired"
	case errors.Is(err, marketerrors.ErrUnauthorized):
		return http.StatusUnauthorized, "authentication required"
	case errors.Is(err, marketerrors.ErrForbidden):
		return http.StatusForbidden, "you do not have access to this resource"
	case errors.Is(err, marketerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, marketerrors.ErrNotFound):
		return http.StatusNotFound, "resource not found"
	case errors.Is(err, marketerrors.ErrUserExists):
		return http.StatusConflict, "an account with this email or username already exists"
	case errors.Is(err, marketerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, marketerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, marketerrors.ErrEntryFeeRequired):
		return http.StatusPaymentRequired, "entry fee must be paid before bidding"
	case errors.Is(err, marketerrors.ErrOwnAuction):
		return http.StatusForbidden, "you cannot bid on your own auction"
	case errors.Is(err, marketerrors.ErrAuctionNotActive):
		return http.StatusConflict, "auction is not accepting bids"
	case errors.Is(err, marketerrors.ErrAlreadyPaid):
		return http.StatusConflict, "this payment has already been made"
	case errors.Is(err, marketerrors.ErrNotWinner):
		return http.StatusForbidden, "only the winning bidder can pay for this auction"
	case errors.Is(err, marketerrors.ErrNoBids):
		return http.StatusNotFound, "no bids found for auction"
	case errors.Is(err, marketerrors.ErrValidation):
		return http.StatusBadRequest, detailMessage(err, marketerrors.ErrValidation)
	case errors.Is(err, marketerrors.ErrBusinessRule):
		return http.StatusConflict, detailMessage(err, marketerrors.ErrBusinessRule)
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// detailMessage extracts the detail of a "service: <sentinel> - <detail>" or
// "service: <op>: <detail>: <sentinel>" error, falling back to the sentinel's own text
func detailMessage(err, sentinel error) string {
	if _, detail, ok := strings.Cut(err.Error(), sentinel.Error()+" - "); ok && detail != "" {
		return detail
	}
	text := strings.TrimSuffix(err.Error(), ": "+sentinel.Error())
	if i := strings.LastIndex(text, ": "); i >= 0 {
		text = text[i+2:]
	}
	if text == "" || text == err.Error() || text == "service" {
		return sentinel.Error()
	}
	return text
}

// RespondError maps err, sends the failure envelope and logs it
func RespondError(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := MapErrorToHTTP(err)

	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		utils.JSONFieldErrors(c, status, fieldErrs.Map(), message)
	} else {
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
	}

	if fields == nil {
		fields = map[string]any{}
	}
	fields["handler"] = handlerName
	fields["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", fields)
		return
	}
	utils.Warn(handlerName+": request rejected", fields)
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// SetIdentity stores the authenticated caller on the request context
func SetIdentity(c *gin.Context, userID string, role models.Role) {
	c.Set(ctxUserID, userID)
	c.Set(ctxRole, role)
}

// UserID returns the authenticated caller, or "" on public routes
func UserID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}

// Role returns the authenticated caller's role
func Role(c *gin.Context) models.Role {
	role, _ := c.Get(ctxRole)
	r, _ := role.(models.Role)
	return r
}

// ListParams is the parsed page/limit/search/status query of a list endpoint
type ListParams struct {
	Page   int
	Limit  int
	Search string
	Status string
}

// ParseListParams reads the list query with defaults and bounds applied
func ParseListParams(c *gin.Context) ListParams {
	p := ListParams{
		Page:   atoiDefault(c.Query("page"), 1),
		Limit:  atoiDefault(c.Query("limit"), DefaultLimit),
		Search: c.Query("search"),
		Status: c.Query("status"),
	}
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// Paginate cuts one page out of items
func Paginate[T any](items []T, p ListParams) models.Page[T] {
	total := len(items)
	pages := (total + p.Limit - 1) / p.Limit
	start := (p.Page - 1) * p.Limit
	if start > total {
		start = total
	}
	end := min(start+p.Limit, total)

	out := make([]T, end-start)
	copy(out, items[start:end])
	return models.Page[T]{
		Items:      out,
		Pagination: models.Pagination{Page: p.Page, Limit: p.Limit, Total: total, TotalPages: pages},
	}
}
