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

type CaseHandler struct {
	*BaseHandler
	caseService services.CaseService
}

func NewCaseHandler(base *BaseHandler, caseService services.CaseService) *CaseHandler {
	return &CaseHandler{BaseHandler: base, caseService: caseService}
}

func (h *CaseHandler) RegisterRoutes(r *gin.RouterGroup) {
	cases := r.Group("/cases")
	cases.Use(middleware.AuthMiddleware())
	{
		cases.GET("", h.ListCases)
		cases.POST("", h.CreateCase)
		cases.GET("/search", h.SearchCases)
		cases.GET("/counts", h.CountCases)
		cases.GET("/counts/me", h.CountMyCases)
		cases.GET("/categories", h.ListCategories)
		cases.GET("/types", h.ListTypes)
		cases.GET("/:caseId", h.GetCase)
		cases.PUT("/:caseId", h.UpdateCase)
		cases.PUT("/:caseId/share-access", h.ShareAccess)
	}

	admin := r.Group("/cases")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.DELETE("/:caseId", h.DeleteCase)
		admin.POST("/categories", h.CreateCategory)
		admin.POST("/types", h.CreateType)
	}
}

func (h *CaseHandler) ListCases(c *gin.Context) {
	actorID, actorRole, ok := h.GetActor(c)
	if !ok {
		return
	}

	cases, err := h.caseService.ListCases(actorID, actorRole)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cases)
}

func (h *CaseHandler) GetCase(c *gin.Context) {
	actorID, actorRole, ok := h.GetActor(c)
	if !ok {
		return
	}
	id, err := ParseParamUint(c, "caseId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	result, err := h.caseService.GetCase(actorID, actorRole, id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *CaseHandler) CreateCase(c *gin.Context) {
	actorID, _, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.CreateCaseRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	result, err := h.caseService.CreateCase(actorID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *CaseHandler) UpdateCase(c *gin.Context) {
	actorID, actorRole, ok := h.GetActor(c)
	if !ok {
		return
	}
	id, err := ParseParamUint(c, "caseId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateCaseRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	result, err := h.caseService.UpdateCase(actorID, actorRole, id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *CaseHandler) DeleteCase(c *gin.Context) {
	id, err := ParseParamUint(c, "caseId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	result, err := h.caseService.DeleteCase(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *CaseHandler) SearchCases(c *gin.Context) {
	actorID, actorRole, ok := h.GetActor(c)
	if !ok {
		return
	}
	term := c.Query("q")
	if term == "" {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Missing search term"))
		return
	}

	cases, err := h.caseService.SearchCases(actorID, actorRole, term)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cases)
}

func (h *CaseHandler) CountCases(c *gin.Context) {
	counts, err := h.caseService.CountCases()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

func (h *CaseHandler) CountMyCases(c *gin.Context) {
	actorID, _, ok := h.GetActor(c)
	if !ok {
		return
	}

	counts, err := h.caseService.CountCasesForUser(actorID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

func (h *CaseHandler) ShareAccess(c *gin.Context) {
	actorID, actorRole, ok := h.GetActor(c)
	if !ok {
		return
	}
	id, err := ParseParamUint(c, "caseId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.ShareAccessRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	result, err := h.caseService.ShareAccess(actorID, actorRole, id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *CaseHandler) ListCategories(c *gin.Context) {
	categories, err := h.caseService.ListCategories()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CaseHandler) ListTypes(c *gin.Context) {
	types, err := h.caseService.ListTypes()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

func (h *CaseHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	category, err := h.caseService.CreateCategory(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *CaseHandler) CreateType(c *gin.Context) {
	var req dto.CreateTypeRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	t, err := h.caseService.CreateType(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}
