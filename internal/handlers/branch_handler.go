package handlers

import (
	"net/http"

	"legalvault_backend/internal/middleware"
	"legalvault_backend/internal/models"
	"legalvault_backend/internal/services"
	"legalvault_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type BranchHandler struct {
	*BaseHandler
	branchService services.BranchService
}

func NewBranchHandler(base *BaseHandler, branchService services.BranchService) *BranchHandler {
	return &BranchHandler{BaseHandler: base, branchService: branchService}
}

func (h *BranchHandler) RegisterRoutes(r *gin.RouterGroup) {
	branches := r.Group("/branches")
	branches.Use(middleware.AuthMiddleware())
	{
		branches.GET("", h.ListBranches)
		branches.GET("/:branchId", h.GetBranch)
	}

	admin := r.Group("/branches")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.POST("", h.CreateBranch)
		admin.PUT("/:branchId", h.UpdateBranch)
		admin.DELETE("/:branchId", h.DeleteBranch)
	}
}

func (h *BranchHandler) ListBranches(c *gin.Context) {
	branches, err := h.branchService.ListBranches()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, branches)
}

func (h *BranchHandler) GetBranch(c *gin.Context) {
	id, err := ParseParamUint(c, "branchId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	branch, err := h.branchService.GetBranch(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, branch)
}

func (h *BranchHandler) CreateBranch(c *gin.Context) {
	var req dto.CreateBranchRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	branch, err := h.branchService.CreateBranch(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, branch)
}

func (h *BranchHandler) UpdateBranch(c *gin.Context) {
	id, err := ParseParamUint(c, "branchId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateBranchRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	branch, err := h.branchService.UpdateBranch(id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, branch)
}

func (h *BranchHandler) DeleteBranch(c *gin.Context) {
	id, err := ParseParamUint(c, "branchId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	branch, err := h.branchService.DeleteBranch(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, branch)
}
