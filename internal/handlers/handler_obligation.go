package handlers

import (
	"log/slog"
	"net/http"

	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	portssvc "github.com/fintrackio/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackio/fintrack_backend/internal/dto"
	"github.com/fintrackio/fintrack_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// obligationHandler handles HTTP requests related to receivables and payables.
type obligationHandler struct {
	obligationService portssvc.ObligationSvcFacade
}

func newObligationHandler(os portssvc.ObligationSvcFacade) *obligationHandler {
	return &obligationHandler{obligationService: os}
}

// registerObligationRoutes registers routes related to obligations.
func registerObligationRoutes(rg *gin.RouterGroup, os portssvc.ObligationSvcFacade) {
	h := newObligationHandler(os)

	obligations := rg.Group("/obligations")
	{
		obligations.POST("", h.createObligation)
		obligations.GET("", h.listObligations)
		obligations.GET("/:obligationID", h.getObligation)
		obligations.GET("/:obligationID/payments", h.listPayments)
		obligations.POST("/:obligationID/payments", h.recordPayment)
	}
}

// createObligation godoc
// @Summary Create an obligation
// @Description Creates a receivable or payable owed by or to a contact
// @Tags obligations
// @Accept  json
// @Produce  json
// @Param   obligation body dto.CreateObligationRequest true "Obligation details"
// @Success 201 {object} dto.ObligationResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Contact not found"
// @Failure 500 {object} map[string]string "Failed to create obligation"
// @Router /obligations [post]
func (h *obligationHandler) createObligation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateObligationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateObligation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	obligation, err := h.obligationService.CreateObligation(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "create obligation")
		return
	}

	logger.Info("Obligation created successfully", slog.String("obligation_id", obligation.ObligationID))
	c.JSON(http.StatusCreated, dto.ToObligationResponse(obligation))
}

// listObligations godoc
// @Summary List obligations
// @Description Lists obligations, optionally filtered by kind
// @Tags obligations
// @Produce  json
// @Param   kind query string false "RECEIVABLE or PAYABLE"
// @Success 200 {array} dto.ObligationResponse
// @Failure 400 {object} map[string]string "Invalid kind"
// @Failure 500 {object} map[string]string "Failed to list obligations"
// @Router /obligations [get]
func (h *obligationHandler) listObligations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var kind *domain.ObligationKind
	if raw := c.Query("kind"); raw != "" {
		k := domain.ObligationKind(raw)
		if k != domain.Receivable && k != domain.Payable {
			c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be RECEIVABLE or PAYABLE"})
			return
		}
		kind = &k
	}

	obligations, err := h.obligationService.ListObligations(c.Request.Context(), kind)
	if err != nil {
		respondServiceError(c, logger, err, "list obligations")
		return
	}

	responses := make([]dto.ObligationResponse, len(obligations))
	for i := range obligations {
		responses[i] = dto.ToObligationResponse(&obligations[i])
	}
	c.JSON(http.StatusOK, responses)
}

// getObligation godoc
// @Summary Get an obligation
// @Description Retrieves an obligation by ID
// @Tags obligations
// @Produce  json
// @Param   obligationID path string true "Obligation ID"
// @Success 200 {object} dto.ObligationResponse
// @Failure 404 {object} map[string]string "Obligation not found"
// @Failure 500 {object} map[string]string "Failed to retrieve obligation"
// @Router /obligations/{obligationID} [get]
func (h *obligationHandler) getObligation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	obligationID := c.Param("obligationID")

	obligation, err := h.obligationService.GetObligationByID(c.Request.Context(), obligationID)
	if err != nil {
		respondServiceError(c, logger, err, "retrieve obligation")
		return
	}

	c.JSON(http.StatusOK, dto.ToObligationResponse(obligation))
}

// listPayments godoc
// @Summary List an obligation's payments
// @Description Lists payments recorded against an obligation in paid-at order
// @Tags obligations
// @Produce  json
// @Param   obligationID path string true "Obligation ID"
// @Success 200 {array} dto.PaymentResponse
// @Failure 404 {object} map[string]string "Obligation not found"
// @Failure 500 {object} map[string]string "Failed to list payments"
// @Router /obligations/{obligationID}/payments [get]
func (h *obligationHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	obligationID := c.Param("obligationID")

	payments, err := h.obligationService.ListPayments(c.Request.Context(), obligationID)
	if err != nil {
		respondServiceError(c, logger, err, "list payments")
		return
	}

	responses := make([]dto.PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = dto.ToPaymentResponse(&payments[i])
	}
	c.JSON(http.StatusOK, responses)
}

// recordPayment godoc
// @Summary Record a payment
// @Description Applies a payment to an obligation and writes the matching ledger entry
// @Tags obligations
// @Accept  json
// @Produce  json
// @Param   obligationID path string true "Obligation ID"
// @Param   payment body dto.RecordPaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Obligation or account not found"
// @Failure 500 {object} map[string]string "Failed to record payment"
// @Router /obligations/{obligationID}/payments [post]
func (h *obligationHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	obligationID := c.Param("obligationID")

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	payment, err := h.obligationService.RecordPayment(c.Request.Context(), obligationID, req)
	if err != nil {
		respondServiceError(c, logger, err, "record payment")
		return
	}

	logger.Info("Payment recorded successfully",
		slog.String("obligation_id", obligationID),
		slog.String("payment_id", payment.PaymentID),
	)
	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}
