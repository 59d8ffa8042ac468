package handlers

import (
	"net/http"

	"legalvault_backend/internal/middleware"
	"legalvault_backend/internal/models"
	"legalvault_backend/internal/services"
	"legalvault_backend/internal/services/dto"
	"legalvault_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	*BaseHandler
	clientService services.ClientService
}

func NewClientHandler(base *BaseHandler, clientService services.ClientService) *ClientHandler {
	return &ClientHandler{BaseHandler: base, clientService: clientService}
}

func (h *ClientHandler) RegisterRoutes(r *gin.RouterGroup) {
	clients := r.Group("/clients")
	clients.Use(middleware.AuthMiddleware())
	{
		clients.GET("", h.ListClients)
		clients.POST("", h.CreateClient)
		clients.GET("/search", h.SearchClients)
		clients.GET("/:clientId", h.GetClient)
		clients.PUT("/:clientId", h.UpdateClient)
	}

	admin := r.Group("/clients")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.DELETE("/:clientId", h.DeleteClient)
	}
}

func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.clientService.ListClients()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) GetClient(c *gin.Context) {
	id, err := ParseParamUint(c, "clientId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	client, err := h.clientService.GetClient(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req dto.CreateClientRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	client, err := h.clientService.CreateClient(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id, err := ParseParamUint(c, "clientId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateClientRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	client, err := h.clientService.UpdateClient(id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id, err := ParseParamUint(c, "clientId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	client, err := h.clientService.DeleteClient(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) SearchClients(c *gin.Context) {
	term := c.Query("q")
	if term == "" {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Missing search term"))
		return
	}

	clients, err := h.clientService.SearchClients(term)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, clients)
}
