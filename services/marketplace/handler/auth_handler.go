package handler

import (
	"net/http"

	"auction-marketplace/internal/auth"
	"auction-marketplace/services/marketplace/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// RegisterHandler creates an account and signs it in
func (h *MarketplaceHandler) RegisterHandler(c *gin.Context) {
	const handlerName = "RegisterHandler"

	var req auth.RegisterRequest
	if !helpers.Bind(c, handlerName, &req) {
		return
	}

	res, err := h.accounts.Register(req)
	if err != nil {
		helpers.RespondError(c, handlerName, err, map[string]any{"email": req.Email})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, res, "account created successfully")
	helpers.LogSuccess(handlerName, "account created", map[string]any{"user_id": res.User.ID})
}

// LoginHandler exchanges credentials for a token pair
func (h *MarketplaceHandler) LoginHandler(c *gin.Context) {
	const handlerName = "LoginHandler"

	var req auth.LoginRequest
	if !helpers.Bind(c, handlerName, &req) {
		return
	}

	res, err := h.accounts.Login(req)
	if err != nil {
		helpers.RespondError(c, handlerName, err, map[string]any{"email": req.Email})
		return
	}

	utils.JSONResponse(c, http.StatusOK, res, "logged in successfully")
	helpers.LogSuccess(handlerName, "user logged in", map[string]any{"user_id": res.User.ID})
}

// RefreshTokenHandler rotates the refresh token and issues a new access token
func (h *MarketplaceHandler) RefreshTokenHandler(c *gin.Context) {
	const handlerName = "RefreshTokenHandler"

	var req helpers.RefreshRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			helpers.HandleBindError(c, handlerName, err)
			return
		}
	}

	pair, err := h.accounts.Refresh(req.RefreshToken)
	if err != nil {
		helpers.RespondError(c, handlerName, err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, pair, "token refreshed")
}

// LogoutHandler revokes every refresh token of the caller
func (h *MarketplaceHandler) LogoutHandler(c *gin.Context) {
	userID := helpers.UserID(c)
	h.accounts.Logout(userID)

	utils.JSONResponse(c, http.StatusOK, nil, "logged out successfully")
	helpers.LogSuccess("LogoutHandler", "user logged out", map[string]any{"user_id": userID})
}

// ProfileHandler returns the caller's account
func (h *MarketplaceHandler) ProfileHandler(c *gin.Context) {
	user, err := h.accounts.Profile(helpers.UserID(c))
	if err != nil {
		helpers.RespondError(c, "ProfileHandler", err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, user, "profile retrieved successfully")
}

func (h *MarketplaceHandler) ChangePasswordHandler(c *gin.Context) {
	const handlerName = "ChangePasswordHandler"

	var req auth.ChangePasswordRequest
	if !helpers.Bind(c, handlerName, &req) {
		return
	}

	userID := helpers.UserID(c)
	if err := h.accounts.ChangePassword(userID, req); err != nil {
		helpers.RespondError(c, handlerName, err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "password changed successfully")
	helpers.LogSuccess(handlerName, "password changed", map[string]any{"user_id": userID})
}

// ForgotPasswordHandler always answers the same way so accounts cannot be enumerated
func (h *MarketplaceHandler) ForgotPasswordHandler(c *gin.Context) {
	var req auth.ForgotPasswordRequest
	if !helpers.Bind(c, "ForgotPasswordHandler", &req) {
		return
	}

	h.accounts.ForgotPassword(req.Email)
	utils.JSONResponse(c, http.StatusOK, nil, "if the account exists, a reset link has been sent")
}

func (h *MarketplaceHandler) ResetPasswordHandler(c *gin.Context) {
	const handlerName = "ResetPasswordHandler"

	var req auth.ResetPasswordRequest
	if !helpers.Bind(c, handlerName, &req) {
		return
	}

	if err := h.accounts.ResetPassword(req); err != nil {
		helpers.RespondError(c, handlerName, err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, nil, "password has been reset")
}

func (h *MarketplaceHandler) ResendVerificationHandler(c *gin.Context) {
	userID := helpers.UserID(c)
	if err := h.accounts.ResendVerification(userID); err != nil {
		helpers.RespondError(c, "ResendVerificationHandler", err, map[string]any{"user_id": userID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, nil, "verification email sent")
}

// VerifyEmailHandler consumes the ?token= link sent by registration
func (h *MarketplaceHandler) VerifyEmailHandler(c *gin.Context) {
	user, err := h.accounts.VerifyEmail(c.Query("token"))
	if err != nil {
		helpers.RespondError(c, "VerifyEmailHandler", err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, user, "email verified successfully")
}
