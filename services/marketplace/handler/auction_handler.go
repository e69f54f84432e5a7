package handler

import (
	"net/http"

	"auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"
	"auction-marketplace/services/marketplace/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// ListAuctionsHandler returns one page of auctions matching the query filters
func (h *MarketplaceHandler) ListAuctionsHandler(c *gin.Context) {
	params := helpers.ParseListParams(c)
	filter := repository.AuctionFilter{
		Status:   models.AuctionStatus(params.Status),
		Category: c.Query("category"),
		Search:   params.Search,
		SellerID: c.Query("sellerId"),
	}

	page := helpers.Paginate(h.bidding.ListAuctions(filter), params)
	utils.JSONResponse(c, http.StatusOK, page, "auctions retrieved successfully")
}

func (h *MarketplaceHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("id")

	auction, err := h.bidding.GetAuction(auctionID)
	if err != nil {
		helpers.RespondError(c, "GetAuctionHandler", err, map[string]any{"auction_id": auctionID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, auction, "auction retrieved successfully")
}

// PlaceBidHandler handles POST /auctions/:id/bids for the authenticated bidder
func (h *MarketplaceHandler) PlaceBidHandler(c *gin.Context) {
	const handlerName = "PlaceBidHandler"

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, handlerName, err)
		return
	}

	auctionID := c.Param("id")
	userID := helpers.UserID(c)
	bid, err := h.bidding.PlaceBid(auctionID, userID, req.Amount)
	if err != nil {
		helpers.RespondError(c, handlerName, err, map[string]any{
			"auction_id": auctionID,
			"user_id":    userID,
			"amount":     req.Amount,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, bid, "bid recorded successfully")
	helpers.LogSuccess(handlerName, "bid recorded", map[string]any{
		"bid_id":     bid.ID,
		"auction_id": bid.AuctionID,
		"user_id":    bid.BidderID,
		"amount":     bid.Amount,
	})
}

// GetBidsForAuctionHandler returns all bids of an auction, newest first
func (h *MarketplaceHandler) GetBidsForAuctionHandler(c *gin.Context) {
	auctionID := c.Param("id")

	bids, err := h.bidding.GetBidsForAuction(auctionID)
	if err != nil {
		helpers.RespondError(c, "GetBidsForAuctionHandler", err, map[string]any{"auction_id": auctionID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
}

func (h *MarketplaceHandler) UserBidHandler(c *gin.Context) {
	auctionID := c.Param("id")
	userID := helpers.UserID(c)

	status, err := h.bidding.UserBidStatus(auctionID, userID)
	if err != nil {
		helpers.RespondError(c, "UserBidHandler", err, map[string]any{"auction_id": auctionID, "user_id": userID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, status, "bid status retrieved successfully")
}

func (h *MarketplaceHandler) ToggleWatchlistHandler(c *gin.Context) {
	auctionID := c.Param("id")
	userID := helpers.UserID(c)

	status, err := h.bidding.ToggleWatchlist(userID, auctionID)
	if err != nil {
		helpers.RespondError(c, "ToggleWatchlistHandler", err, map[string]any{"auction_id": auctionID, "user_id": userID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, status, "watchlist updated")
}

func (h *MarketplaceHandler) WatchlistStatusHandler(c *gin.Context) {
	auctionID := c.Param("id")

	status, err := h.bidding.WatchlistStatus(helpers.UserID(c), auctionID)
	if err != nil {
		helpers.RespondError(c, "WatchlistStatusHandler", err, map[string]any{"auction_id": auctionID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, status, "watchlist status retrieved successfully")
}
