package handlers

import (
	"net/http"

	"legalvault_backend/internal/middleware"
	"legalvault_backend/internal/services"
	"legalvault_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	*BaseHandler
	notificationService services.NotificationService
}

func NewNotificationHandler(base *BaseHandler, notificationService services.NotificationService) *NotificationHandler {
	return &NotificationHandler{BaseHandler: base, notificationService: notificationService}
}

func (h *NotificationHandler) RegisterRoutes(r *gin.RouterGroup) {
	notifications := r.Group("/notifications")
	notifications.Use(middleware.AuthMiddleware())
	{
		notifications.POST("", h.Create)
		notifications.GET("", h.ListMine)
		notifications.GET("/unread-count", h.UnreadCount)
		notifications.PUT("/clear-all", h.ClearAll)
		notifications.PUT("/:notificationId/toggle-read", h.ToggleRead)
	}
}

func (h *NotificationHandler) Create(c *gin.Context) {
	var req dto.CreateNotificationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	n, err := h.notificationService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, n)
}

func (h *NotificationHandler) ListMine(c *gin.Context) {
	actorID, _, ok := h.GetActor(c)
	if !ok {
		return
	}

	notifications, err := h.notificationService.ListForUser(actorID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	actorID, _, ok := h.GetActor(c)
	if !ok {
		return
	}

	count, err := h.notificationService.UnreadCount(actorID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, count)
}

func (h *NotificationHandler) ToggleRead(c *gin.Context) {
	actorID, _, ok := h.GetActor(c)
	if !ok {
		return
	}
	id, err := ParseParamUint(c, "notificationId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.notificationService.ToggleRead(actorID, id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Read state toggled"})
}

func (h *NotificationHandler) ClearAll(c *gin.Context) {
	actorID, _, ok := h.GetActor(c)
	if !ok {
		return
	}

	if err := h.notificationService.ClearAll(actorID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notifications cleared"})
}
