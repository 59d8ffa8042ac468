package handlers

import (
	"net/http"

	"legalvault_backend/internal/middleware"
	"legalvault_backend/internal/models"
	"legalvault_backend/internal/services"
	"legalvault_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CaseTagHandler struct {
	*BaseHandler
	tagService services.CaseTagService
}

func NewCaseTagHandler(base *BaseHandler, tagService services.CaseTagService) *CaseTagHandler {
	return &CaseTagHandler{BaseHandler: base, tagService: tagService}
}

func (h *CaseTagHandler) RegisterRoutes(r *gin.RouterGroup) {
	tags := r.Group("/case-tags")
	tags.Use(middleware.AuthMiddleware())
	{
		tags.GET("", h.ListTags)
	}

	admin := r.Group("/case-tags")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.POST("", h.CreateTag)
		admin.PUT("/:tagId", h.UpdateTag)
	}
}

func (h *CaseTagHandler) ListTags(c *gin.Context) {
	tags, err := h.tagService.ListTags()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tags)
}

func (h *CaseTagHandler) CreateTag(c *gin.Context) {
	actorID, _, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.CreateCaseTagRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	tag, err := h.tagService.CreateTag(actorID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tag)
}

func (h *CaseTagHandler) UpdateTag(c *gin.Context) {
	id, err := ParseParamUint(c, "tagId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateCaseTagRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	tag, err := h.tagService.UpdateTag(id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tag)
}
