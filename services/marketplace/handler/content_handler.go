package handler

import (
	"net/http"

	"auction-marketplace/internal/admin"
	"auction-marketplace/internal/catalog"
	"auction-marketplace/internal/models"
	"auction-marketplace/services/marketplace/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// ListCategoriesHandler returns one page of categories with their open auction counts
func (h *MarketplaceHandler) ListCategoriesHandler(c *gin.Context) {
	params := helpers.ParseListParams(c)

	categories := h.catalog.Categories()
	if params.Search != "" {
		categories = filter(categories, func(cat models.Category) bool {
			return containsFold(cat.Name, params.Search) || containsFold(cat.Slug, params.Search)
		})
	}
	utils.JSONResponse(c, http.StatusOK, helpers.Paginate(categories, params), "categories retrieved successfully")
}

func (h *MarketplaceHandler) CreateCategoryHandler(c *gin.Context) {
	const handlerName = "CreateCategoryHandler"

	var req admin.CategoryInput
	if !helpers.Bind(c, handlerName, &req) {
		return
	}

	category, err := h.catalog.CreateCategory(req)
	if err != nil {
		helpers.RespondError(c, handlerName, err, map[string]any{"slug": req.Slug})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, category, "category created successfully")
	helpers.LogSuccess(handlerName, "category created", map[string]any{"category_id": category.ID})
}

func (h *MarketplaceHandler) UpdateCategoryHandler(c *gin.Context) {
	const handlerName = "UpdateCategoryHandler"
	id := c.Param("id")

	var req admin.CategoryInput
	if !helpers.Bind(c, handlerName, &req) {
		return
	}

	category, err := h.catalog.UpdateCategory(id, req)
	if err != nil {
		helpers.RespondError(c, handlerName, err, map[string]any{"category_id": id})
		return
	}
	utils.JSONResponse(c, http.StatusOK, category, "category updated successfully")
}

func (h *MarketplaceHandler) DeleteCategoryHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.catalog.DeleteCategory(id); err != nil {
		helpers.RespondError(c, "DeleteCategoryHandler", err, map[string]any{"category_id": id})
		return
	}
	utils.JSONResponse(c, http.StatusOK, nil, "category deleted successfully")
}

func (h *MarketplaceHandler) GetSettingsHandler(c *gin.Context) {
	settings, err := h.catalog.Settings()
	if err != nil {
		helpers.RespondError(c, "GetSettingsHandler", err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, settings, "settings retrieved successfully")
}

func (h *MarketplaceHandler) UpdateSettingsHandler(c *gin.Context) {
	const handlerName = "UpdateSettingsHandler"

	var req helpers.SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, handlerName, err)
		return
	}

	settings, err := h.catalog.UpdateSettings(req.Settings)
	if err != nil {
		helpers.RespondError(c, handlerName, err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, settings, "settings updated successfully")
	helpers.LogSuccess(handlerName, "settings updated", map[string]any{"count": len(req.Settings), "by": helpers.UserID(c)})
}

func (h *MarketplaceHandler) HomepageSectionsHandler(c *gin.Context) {
	sections, err := h.catalog.HomepageSections()
	if err != nil {
		helpers.RespondError(c, "HomepageSectionsHandler", err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, sections, "homepage sections retrieved successfully")
}

func (h *MarketplaceHandler) UpdateHomepageSectionHandler(c *gin.Context) {
	const handlerName = "UpdateHomepageSectionHandler"
	id := c.Param("id")

	var req models.HomepageSection
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, handlerName, err)
		return
	}

	section, err := h.catalog.UpdateHomepageSection(id, req)
	if err != nil {
		helpers.RespondError(c, handlerName, err, map[string]any{"section_id": id})
		return
	}
	utils.JSONResponse(c, http.StatusOK, section, "homepage section updated successfully")
}

func (h *MarketplaceHandler) AboutHandler(c *gin.Context) {
	about, err := h.catalog.About()
	if err != nil {
		helpers.RespondError(c, "AboutHandler", err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, about, "about content retrieved successfully")
}

func (h *MarketplaceHandler) UpdateAboutHandler(c *gin.Context) {
	const handlerName = "UpdateAboutHandler"

	var req models.AboutContent
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, handlerName, err)
		return
	}

	about, err := h.catalog.UpdateAbout(req)
	if err != nil {
		helpers.RespondError(c, handlerName, err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, about, "about content updated successfully")
}

func (h *MarketplaceHandler) WhatsAppConfigHandler(c *gin.Context) {
	cfg, err := h.catalog.WhatsApp()
	if err != nil {
		helpers.RespondError(c, "WhatsAppConfigHandler", err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, cfg, "whatsapp config retrieved successfully")
}

func (h *MarketplaceHandler) UpdateWhatsAppConfigHandler(c *gin.Context) {
	const handlerName = "UpdateWhatsAppConfigHandler"

	var req models.WhatsAppConfig
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, handlerName, err)
		return
	}

	cfg, err := h.catalog.UpdateWhatsApp(req)
	if err != nil {
		helpers.RespondError(c, handlerName, err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, cfg, "whatsapp config updated successfully")
}

func (h *MarketplaceHandler) WhatsAppTestHandler(c *gin.Context) {
	const handlerName = "WhatsAppTestHandler"

	var req admin.TestMessageRequest
	if !helpers.Bind(c, handlerName, &req) {
		return
	}

	if err := h.catalog.SendWhatsAppTest(req); err != nil {
		helpers.RespondError(c, handlerName, err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, nil, "test message sent")
}

func (h *MarketplaceHandler) ListNotificationsHandler(c *gin.Context) {
	params := helpers.ParseListParams(c)

	list, err := h.catalog.Notifications()
	if err != nil {
		helpers.RespondError(c, "ListNotificationsHandler", err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.Paginate(list, params), "notifications retrieved successfully")
}

func (h *MarketplaceHandler) CreateNotificationHandler(c *gin.Context) {
	const handlerName = "CreateNotificationHandler"

	var req admin.NotificationInput
	if !helpers.Bind(c, handlerName, &req) {
		return
	}

	n, err := h.catalog.CreateNotification(req)
	if err != nil {
		helpers.RespondError(c, handlerName, err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusCreated, n, "notification created successfully")
}

func (h *MarketplaceHandler) DeleteNotificationHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.catalog.DeleteNotification(id); err != nil {
		helpers.RespondError(c, "DeleteNotificationHandler", err, map[string]any{"notification_id": id})
		return
	}
	utils.JSONResponse(c, http.StatusOK, nil, "notification deleted successfully")
}

// ContactHandler stores a message from the public contact form
func (h *MarketplaceHandler) ContactHandler(c *gin.Context) {
	const handlerName = "ContactHandler"

	var req catalog.ContactInput
	if !helpers.Bind(c, handlerName, &req) {
		return
	}

	msg, err := h.catalog.Contact(req)
	if err != nil {
		helpers.RespondError(c, handlerName, err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusCreated, msg, "message sent successfully")
}

func (h *MarketplaceHandler) ListContactMessagesHandler(c *gin.Context) {
	params := helpers.ParseListParams(c)

	msgs, err := h.catalog.ContactMessages()
	if err != nil {
		helpers.RespondError(c, "ListContactMessagesHandler", err, nil)
		return
	}
	if params.Search != "" {
		msgs = filter(msgs, func(m models.ContactMessage) bool {
			return containsFold(m.Subject, params.Search) || containsFold(m.Email, params.Search)
		})
	}
	utils.JSONResponse(c, http.StatusOK, helpers.Paginate(msgs, params), "contact messages retrieved successfully")
}

func (h *MarketplaceHandler) DeleteContactMessageHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.catalog.DeleteContactMessage(id); err != nil {
		helpers.RespondError(c, "DeleteContactMessageHandler", err, map[string]any{"message_id": id})
		return
	}
	utils.JSONResponse(c, http.StatusOK, nil, "contact message deleted successfully")
}
