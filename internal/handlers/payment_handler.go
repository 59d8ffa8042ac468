package handlers

import (
	"net/http"

	"legalvault_backend/internal/middleware"
	"legalvault_backend/internal/models"
	"legalvault_backend/internal/services"
	"legalvault_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	*BaseHandler
	paymentService services.PaymentService
}

func NewPaymentHandler(base *BaseHandler, paymentService services.PaymentService) *PaymentHandler {
	return &PaymentHandler{BaseHandler: base, paymentService: paymentService}
}

func (h *PaymentHandler) RegisterRoutes(r *gin.RouterGroup) {
	payments := r.Group("/payments")
	payments.Use(middleware.AuthMiddleware())
	{
		payments.GET("", h.ListPayments)
		payments.POST("", h.RecordPayment)
		payments.GET("/me", h.ListMyPayments)
		payments.GET("/case/:caseId", h.ListByCase)
		payments.GET("/:paymentId", h.GetPayment)
	}

	admin := r.Group("/payments")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.DELETE("/:paymentId", h.DeletePayment)
	}
}

func (h *PaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.paymentService.ListPayments()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id, err := ParseParamUint(c, "paymentId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	p, err := h.paymentService.GetPayment(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PaymentHandler) ListByCase(c *gin.Context) {
	caseID, err := ParseParamUint(c, "caseId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	payments, err := h.paymentService.ListByCase(caseID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *PaymentHandler) ListMyPayments(c *gin.Context) {
	actorID, _, ok := h.GetActor(c)
	if !ok {
		return
	}

	payments, err := h.paymentService.ListByLawyer(actorID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	actorID, _, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.RecordPaymentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	p, err := h.paymentService.RecordPayment(actorID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	id, err := ParseParamUint(c, "paymentId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	p, err := h.paymentService.DeletePayment(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
