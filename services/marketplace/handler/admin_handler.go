package handler

import (
	"net/http"

	"auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"
	"auction-marketplace/services/marketplace/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// AdminListAuctionsHandler lists every auction regardless of seller
func (h *MarketplaceHandler) AdminListAuctionsHandler(c *gin.Context) {
	params := helpers.ParseListParams(c)
	auctions := h.bidding.ListAuctions(repository.AuctionFilter{
		Status: models.AuctionStatus(params.Status),
		Search: params.Search,
	})
	utils.JSONResponse(c, http.StatusOK, helpers.Paginate(auctions, params), "auctions retrieved successfully")
}

func (h *MarketplaceHandler) AdminCreateAuctionHandler(c *gin.Context) {
	const handlerName = "AdminCreateAuctionHandler"

	var req helpers.AuctionRequest
	if !helpers.Bind(c, handlerName, &req) {
		return
	}

	auction, err := h.bidding.CreateAuction(req.Auction(helpers.UserID(c)))
	if err != nil {
		helpers.RespondError(c, handlerName, err, map[string]any{"title": req.Title})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, auction, "auction created successfully")
	helpers.LogSuccess(handlerName, "auction created", map[string]any{"auction_id": auction.ID})
}

func (h *MarketplaceHandler) AdminUpdateAuctionHandler(c *gin.Context) {
	const handlerName = "AdminUpdateAuctionHandler"
	id := c.Param("id")

	var req helpers.AuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, handlerName, err)
		return
	}

	auction, err := h.bidding.UpdateAuction(id, req.Auction(""))
	if err != nil {
		helpers.RespondError(c, handlerName, err, map[string]any{"auction_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, auction, "auction updated successfully")
	helpers.LogSuccess(handlerName, "auction updated", map[string]any{"auction_id": id})
}

func (h *MarketplaceHandler) AdminDeleteAuctionHandler(c *gin.Context) {
	const handlerName = "AdminDeleteAuctionHandler"
	id := c.Param("id")

	if err := h.bidding.DeleteAuction(id); err != nil {
		helpers.RespondError(c, handlerName, err, map[string]any{"auction_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "auction deleted successfully")
	helpers.LogSuccess(handlerName, "auction deleted", map[string]any{"auction_id": id})
}

func (h *MarketplaceHandler) AdminListUsersHandler(c *gin.Context) {
	params := helpers.ParseListParams(c)

	users := h.accounts.ListUsers()
	if params.Search != "" {
		users = filter(users, func(u models.User) bool {
			return containsFold(u.Email, params.Search) || containsFold(u.Username, params.Search)
		})
	}
	utils.JSONResponse(c, http.StatusOK, helpers.Paginate(users, params), "users retrieved successfully")
}

// AdminUpdateUserHandler changes a user's role or disables the account
func (h *MarketplaceHandler) AdminUpdateUserHandler(c *gin.Context) {
	const handlerName = "AdminUpdateUserHandler"
	id := c.Param("id")

	var req helpers.UpdateUserRequest
	if !helpers.Bind(c, handlerName, &req) {
		return
	}

	user, err := h.accounts.UpdateUser(id, req.Role, req.IsActive)
	if err != nil {
		helpers.RespondError(c, handlerName, err, map[string]any{"user_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, user, "user updated successfully")
	helpers.LogSuccess(handlerName, "user updated", map[string]any{
		"user_id":   id,
		"role":      user.Role,
		"is_active": user.IsActive,
		"by":        helpers.UserID(c),
	})
}

func (h *MarketplaceHandler) AdminListBidsHandler(c *gin.Context) {
	params := helpers.ParseListParams(c)

	bids := h.bidding.ListBids()
	if params.Status != "" {
		bids = filter(bids, func(b models.Bid) bool { return string(b.Status) == params.Status })
	}
	utils.JSONResponse(c, http.StatusOK, helpers.Paginate(bids, params), "bids retrieved successfully")
}

// DashboardStatsHandler aggregates the counters shown on the admin dashboard
func (h *MarketplaceHandler) DashboardStatsHandler(c *gin.Context) {
	users := h.accounts.ListUsers()
	userIDs := make([]string, len(users))
	for i, u := range users {
		userIDs[i] = u.ID
	}

	stats := models.DashboardStats{
		TotalUsers:         len(users),
		ActiveAuctions:     len(h.bidding.ListAuctions(repository.AuctionFilter{Status: models.AuctionActive})),
		TotalBids:          len(h.bidding.ListBids()),
		PendingSubmissions: len(h.catalog.Submissions(models.SubmissionPending)),
		Revenue:            h.payments.Revenue(userIDs),
	}
	utils.JSONResponse(c, http.StatusOK, stats, "dashboard stats retrieved successfully")
}
