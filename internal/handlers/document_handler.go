package handlers

import (
	"encoding/json"
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

type DocumentHandler struct {
	*BaseHandler
	documentService services.DocumentService
	files           storage.Storage
	maxUpload       int64
}

func NewDocumentHandler(base *BaseHandler, documentService services.DocumentService, files storage.Storage, maxUpload int64) *DocumentHandler {
	return &DocumentHandler{BaseHandler: base, documentService: documentService, files: files, maxUpload: maxUpload}
}

func (h *DocumentHandler) RegisterRoutes(r *gin.RouterGroup) {
	docs := r.Group("/documents")
	docs.Use(middleware.AuthMiddleware())
	{
		docs.GET("", h.ListDocuments)
		docs.POST("", h.CreateDocument)
		docs.GET("/search", h.SearchDocuments)
		docs.GET("/counts", h.Counts)
		docs.GET("/counts/me", h.CountsForUser)
		docs.GET("/tasks/me", h.ListMyTasks)
		docs.GET("/case/:caseId", h.ListByCase)
		docs.GET("/submitter/:userId", h.ListBySubmitter)
		docs.GET("/lawyer/:userId", h.ListByLawyer)
		docs.GET("/:docId", h.GetDocument)
		docs.PUT("/:docId", h.UpdateDocument)
		docs.POST("/:docId/check-password", h.CheckPassword)
		docs.PUT("/:docId/trash", h.TrashDocument)
		docs.PUT("/:docId/restore", h.RestoreDocument)
		docs.DELETE("/:docId/reference", h.RemoveReference)
	}

	trash := r.Group("/documents")
	trash.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		trash.GET("/trash", h.ListTrash)
		trash.DELETE("/:docId", h.PurgeDocument)
	}
}

func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	docs, err := h.documentService.ListDocuments()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (h *DocumentHandler) ListTrash(c *gin.Context) {
	docs, err := h.documentService.ListTrash()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (h *DocumentHandler) GetDocument(c *gin.Context) {
	id, err := ParseParamUint(c, "docId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	doc, err := h.documentService.GetDocument(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// CreateDocument accepts multipart form data: a "payload" field with the
// JSON request and an optional "file" field with the document itself.
func (h *DocumentHandler) CreateDocument(c *gin.Context) {
	actorID, _, ok := h.GetActor(c)
	if !ok {
		return
	}

	payload := c.PostForm("payload")
	if payload == "" {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Missing payload field"))
		return
	}

	var req dto.CreateDocumentRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Invalid payload: "+err.Error()))
		return
	}
	if err := h.Validate(&req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var filePath string
	if file, err := c.FormFile("file"); err == nil {
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

		filePath = fmt.Sprintf("documents/%d/%d%s", actorID, time.Now().UnixNano(), filepath.Ext(file.Filename))
		if err := h.files.Save(c.Request.Context(), filePath, src, file.Header.Get("Content-Type")); err != nil {
			h.HandleServiceError(c, apperrors.InternalError(err))
			return
		}
	}

	doc, err := h.documentService.CreateDocument(actorID, &req, filePath)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doc)
}

func (h *DocumentHandler) UpdateDocument(c *gin.Context) {
	actorID, _, ok := h.GetActor(c)
	if !ok {
		return
	}
	id, err := ParseParamUint(c, "docId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateDocumentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	doc, err := h.documentService.UpdateDocument(actorID, id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *DocumentHandler) SearchDocuments(c *gin.Context) {
	term := c.Query("q")
	if term == "" {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Missing search term"))
		return
	}

	docs, err := h.documentService.SearchDocuments(term)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (h *DocumentHandler) TrashDocument(c *gin.Context) {
	actorID, _, ok := h.GetActor(c)
	if !ok {
		return
	}
	id, err := ParseParamUint(c, "docId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	doc, err := h.documentService.TrashDocument(actorID, id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *DocumentHandler) RestoreDocument(c *gin.Context) {
	id, err := ParseParamUint(c, "docId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	doc, err := h.documentService.RestoreDocument(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *DocumentHandler) PurgeDocument(c *gin.Context) {
	id, err := ParseParamUint(c, "docId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	doc, err := h.documentService.PurgeDocument(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *DocumentHandler) RemoveReference(c *gin.Context) {
	id, err := ParseParamUint(c, "docId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.RemoveReferenceRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	doc, err := h.documentService.RemoveReference(id, req.Path)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *DocumentHandler) CheckPassword(c *gin.Context) {
	id, err := ParseParamUint(c, "docId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req struct {
		Password string `json:"doc_password"`
	}
	if err := c.ShouldBind(&req); err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return
	}

	if err := h.documentService.CheckPassword(id, req.Password); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true})
}

func (h *DocumentHandler) ListByCase(c *gin.Context) {
	caseID, err := ParseParamUint(c, "caseId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	docs, err := h.documentService.ListByCase(caseID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (h *DocumentHandler) ListBySubmitter(c *gin.Context) {
	userID, err := ParseParamUint(c, "userId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	docs, err := h.documentService.ListBySubmitter(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (h *DocumentHandler) ListByLawyer(c *gin.Context) {
	userID, err := ParseParamUint(c, "userId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	docs, err := h.documentService.ListByLawyer(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (h *DocumentHandler) ListMyTasks(c *gin.Context) {
	actorID, _, ok := h.GetActor(c)
	if !ok {
		return
	}

	docs, err := h.documentService.ListTasksForUser(actorID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (h *DocumentHandler) Counts(c *gin.Context) {
	counts, err := h.documentService.Counts()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

func (h *DocumentHandler) CountsForUser(c *gin.Context) {
	actorID, _, ok := h.GetActor(c)
	if !ok {
		return
	}

	counts, err := h.documentService.CountsForUser(actorID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}
