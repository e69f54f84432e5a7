package handler

import (
	"net/http"

	"auction-marketplace/internal/models"
	"auction-marketplace/internal/payments"
	"auction-marketplace/services/marketplace/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// PayEntryFeeHandler starts an entry-fee payment. The payment settles asynchronously;
// clients poll the status route or wait for payment.confirmed on the event stream.
func (h *MarketplaceHandler) PayEntryFeeHandler(c *gin.Context) {
	const handlerName = "PayEntryFeeHandler"

	var req helpers.EntryFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, handlerName, err)
		return
	}

	userID := helpers.UserID(c)
	payment, err := h.payments.PayEntryFee(userID, req.AuctionID, req.PaymentMethodID)
	if err != nil {
		helpers.RespondError(c, handlerName, err, map[string]any{"auction_id": req.AuctionID, "user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, payment, "entry fee payment submitted")
	helpers.LogSuccess(handlerName, "entry fee submitted", map[string]any{
		"payment_id": payment.ID,
		"auction_id": payment.AuctionID,
		"status":     payment.Status,
	})
}

func (h *MarketplaceHandler) EntryFeeStatusHandler(c *gin.Context) {
	auctionID := c.Param("id")

	status, err := h.payments.EntryFeeStatus(helpers.UserID(c), auctionID)
	if err != nil {
		helpers.RespondError(c, "EntryFeeStatusHandler", err, map[string]any{"auction_id": auctionID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, status, "payment status retrieved successfully")
}

// PaymentHistoryHandler lists the caller's payments, optionally filtered by ?type=
func (h *MarketplaceHandler) PaymentHistoryHandler(c *gin.Context) {
	history := h.payments.History(helpers.UserID(c), models.PaymentType(c.Query("type")))
	utils.JSONResponse(c, http.StatusOK, history, "payment history retrieved successfully")
}

func (h *MarketplaceHandler) StripeKeyHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, helpers.StripeKeyResponse{PublishableKey: h.payments.PublishableKey()}, "")
}

// WinningPaymentHandler creates the payment intent for the auction winner
func (h *MarketplaceHandler) WinningPaymentHandler(c *gin.Context) {
	const handlerName = "WinningPaymentHandler"

	var req helpers.WinningPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, handlerName, err)
		return
	}

	userID := helpers.UserID(c)
	intent, err := h.payments.WinningPayment(userID, req.AuctionID)
	if err != nil {
		helpers.RespondError(c, handlerName, err, map[string]any{"auction_id": req.AuctionID, "user_id": userID})
		return
	}
	utils.JSONResponse(c, http.StatusCreated, intent, "payment intent created")
}

func (h *MarketplaceHandler) VerifyWinnerPaymentHandler(c *gin.Context) {
	const handlerName = "VerifyWinnerPaymentHandler"

	var req helpers.VerifyWinnerRequest
	if !helpers.Bind(c, handlerName, &req) {
		return
	}

	userID := helpers.UserID(c)
	payment, err := h.payments.VerifyWinnerPayment(userID, payments.WinnerVerification{
		AuctionID:       req.AuctionID,
		PaymentIntentID: req.PaymentIntentID,
		Reference:       req.Reference,
		Shipping:        req.ShippingAddress,
		Billing:         req.BillingAddress,
	})
	if err != nil {
		helpers.RespondError(c, handlerName, err, map[string]any{"auction_id": req.AuctionID, "user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, payment, "payment verified")
	helpers.LogSuccess(handlerName, "winning payment settled", map[string]any{
		"payment_id": payment.ID,
		"auction_id": payment.AuctionID,
		"amount":     payment.Amount,
	})
}
