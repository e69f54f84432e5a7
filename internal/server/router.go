package server

import (
	handler "auction-marketplace/services/marketplace/handler"

	"github.com/gin-gonic/gin"
)

// APIPrefix is where the REST routes are mounted; event streams live at the host root
const APIPrefix = "/api"

// SetupRouter configures all Gin routes for the application
func SetupRouter(h *handler.MarketplaceHandler, auth *AuthMiddleware, hub *Hub) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	router.GET("/ws/auctions/:id", hub.ServeWS)

	api := router.Group(APIPrefix)

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/register", h.RegisterHandler)
		authRoutes.POST("/login", h.LoginHandler)
		authRoutes.POST("/refresh-token", h.RefreshTokenHandler)
		authRoutes.POST("/forgot-password", h.ForgotPasswordHandler)
		authRoutes.POST("/reset-password", h.ResetPasswordHandler)
		authRoutes.GET("/verify-email", h.VerifyEmailHandler)

		authRoutes.POST("/logout", auth.Authenticate, h.LogoutHandler)
		authRoutes.GET("/profile", auth.Authenticate, h.ProfileHandler)
		authRoutes.POST("/change-password", auth.Authenticate, h.ChangePasswordHandler)
		authRoutes.POST("/resend-verification", auth.Authenticate, h.ResendVerificationHandler)
	}

	auctions := api.Group("/auctions")
	{
		auctions.GET("", h.ListAuctionsHandler)
		auctions.GET("/:id", h.GetAuctionHandler)
		auctions.GET("/:id/bids", h.GetBidsForAuctionHandler)

		auctions.POST("/:id/bids", auth.Authenticate, h.PlaceBidHandler)
		auctions.GET("/:id/user-bid", auth.Authenticate, h.UserBidHandler)
		auctions.POST("/:id/watchlist", auth.Authenticate, h.ToggleWatchlistHandler)
		auctions.GET("/:id/watchlist-status", auth.Authenticate, h.WatchlistStatusHandler)
	}

	payments := api.Group("/payments", auth.Authenticate)
	{
		payments.GET("/stripe-key", h.StripeKeyHandler)
		payments.POST("/entry-fee", h.PayEntryFeeHandler)
		payments.GET("/auction/:id/status", h.EntryFeeStatusHandler)
		payments.GET("/history", h.PaymentHistoryHandler)
		payments.POST("/winning-payment", h.WinningPaymentHandler)
		payments.POST("/verify-winner-payment", h.VerifyWinnerPaymentHandler)
	}

	submissions := api.Group("/product-submissions", auth.Authenticate)
	{
		submissions.POST("/submit", h.SubmitProductHandler)

		moderation := submissions.Group("/admin", auth.RequireModerator)
		moderation.GET("", h.ListSubmissionsHandler)
		moderation.POST("/:id/approve", h.ApproveSubmissionHandler)
		moderation.POST("/:id/reject", h.RejectSubmissionHandler)
	}

	categories := api.Group("/categories")
	{
		categories.GET("", h.ListCategoriesHandler)
		categories.POST("", auth.Authenticate, auth.RequireAdmin, h.CreateCategoryHandler)
		categories.PUT("/:id", auth.Authenticate, auth.RequireAdmin, h.UpdateCategoryHandler)
		categories.DELETE("/:id", auth.Authenticate, auth.RequireAdmin, h.DeleteCategoryHandler)
	}

	admin := api.Group("/admin", auth.Authenticate, auth.RequireModerator)
	{
		admin.GET("/dashboard/stats", h.DashboardStatsHandler)

		admin.GET("/auctions", h.AdminListAuctionsHandler)
		admin.POST("/auctions", h.AdminCreateAuctionHandler)
		admin.PUT("/auctions/:id", h.AdminUpdateAuctionHandler)
		admin.DELETE("/auctions/:id", auth.RequireAdmin, h.AdminDeleteAuctionHandler)

		admin.GET("/bids", h.AdminListBidsHandler)

		admin.GET("/users", h.AdminListUsersHandler)
		admin.PUT("/users/:id", auth.RequireAdmin, h.AdminUpdateUserHandler)

		admin.GET("/notifications", h.ListNotificationsHandler)
		admin.POST("/notifications", h.CreateNotificationHandler)
		admin.DELETE("/notifications/:id", h.DeleteNotificationHandler)

		admin.GET("/settings", h.GetSettingsHandler)
		admin.PUT("/settings", auth.RequireAdmin, h.UpdateSettingsHandler)
	}

	api.GET("/homepage/sections", h.HomepageSectionsHandler)
	api.PUT("/homepage/sections/:id", auth.Authenticate, auth.RequireAdmin, h.UpdateHomepageSectionHandler)

	api.GET("/about", h.AboutHandler)
	api.PUT("/about", auth.Authenticate, auth.RequireAdmin, h.UpdateAboutHandler)

	whatsapp := api.Group("/whatsapp", auth.Authenticate, auth.RequireAdmin)
	{
		whatsapp.GET("/config", h.WhatsAppConfigHandler)
		whatsapp.PUT("/config", h.UpdateWhatsAppConfigHandler)
		whatsapp.POST("/test", h.WhatsAppTestHandler)
	}

	contact := api.Group("/contact")
	{
		contact.POST("", h.ContactHandler)

		inbox := contact.Group("/admin/messages", auth.Authenticate, auth.RequireModerator)
		inbox.GET("", h.ListContactMessagesHandler)
		inbox.DELETE("/:id", h.DeleteContactMessageHandler)
	}

	return router
}
