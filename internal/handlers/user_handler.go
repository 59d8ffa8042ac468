package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"legalvault_backend/internal/middleware"
	"legalvault_backend/internal/models"
	"legalvault_backend/internal/services"
	"legalvault_backend/internal/services/dto"
	"legalvault_backend/internal/storage"
	"legalvault_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
	files       storage.Storage
	maxUpload   int64
}

func NewUserHandler(base *BaseHandler, userService services.UserService, files storage.Storage, maxUpload int64) *UserHandler {
	return &UserHandler{BaseHandler: base, userService: userService, files: files, maxUpload: maxUpload}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.GET("/me", h.GetMe)
		users.PUT("/me/password", h.ChangePassword)
		users.POST("/me/profile-image", h.UploadProfileImage)
		users.GET("/search", h.SearchUsers)
		users.GET("/lawyers/specialties", h.LawyersBySpecialty)
		users.GET("/:userId", h.GetUser)
		// Role changes go through the role policy in the service; Lawyers
		// must reach this to bootstrap the first Admin.
		users.PUT("/:userId/role", h.UpdateRole)
	}

	admin := r.Group("/users")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("", h.ListUsers)
		admin.GET("/count", h.CountUsers)
		admin.POST("", h.CreateUser)
		admin.PUT("/:userId", h.UpdateUser)
		admin.DELETE("/:userId", h.DeleteUser)
	}
}

func (h *UserHandler) GetMe(c *gin.Context) {
	userID, _, ok := h.GetActor(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := ParseParamUint(c, "userId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	user, err := h.userService.GetUser(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) CountUsers(c *gin.Context) {
	count, err := h.userService.CountUsers()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	actorID, _, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.CreateUserRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.userService.CreateUser(actorID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	actorID, _, ok := h.GetActor(c)
	if !ok {
		return
	}
	id, err := ParseParamUint(c, "userId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateUserRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateUser(actorID, id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := ParseParamUint(c, "userId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	user, err := h.userService.DeleteUser(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) SearchUsers(c *gin.Context) {
	term := c.Query("q")
	if term == "" {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Missing search term"))
		return
	}

	users, err := h.userService.SearchUsers(term)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) UpdateRole(c *gin.Context) {
	actorID, actorRole, ok := h.GetActor(c)
	if !ok {
		return
	}
	id, err := ParseParamUint(c, "userId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateRoleRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateRole(actorID, actorRole, id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID, _, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.userService.ChangePassword(userID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password changed"})
}

func (h *UserHandler) UploadProfileImage(c *gin.Context) {
	userID, _, ok := h.GetActor(c)
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Missing file field"))
		return
	}
	if file.Size > h.maxUpload {
		h.HandleServiceError(c, apperrors.NewBadRequestError("File exceeds the upload size limit"))
		return
	}

	src, err := file.Open()
	if err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}
	defer src.Close()

	path := fmt.Sprintf("profiles/%d/%d%s", userID, time.Now().UnixNano(), filepath.Ext(file.Filename))
	contentType := file.Header.Get("Content-Type")
	if err := h.files.Save(c.Request.Context(), path, src, contentType); err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}

	user, err := h.userService.SetProfileImage(userID, path)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) LawyersBySpecialty(c *gin.Context) {
	pairs, err := h.userService.LawyersBySpecialty()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, pairs)
}
