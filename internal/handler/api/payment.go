package api

import (
	"errors"
	"net/http"

	reqdto "car-rental-api/internal/handler/dto/request"
	resdto "car-rental-api/internal/handler/dto/response"
	"car-rental-api/internal/usecase/commands"
	"car-rental-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentCommands commands.PaymentCommands
	paymentQueries  queries.PaymentQueries
}

func NewPaymentHandler(paymentCommands commands.PaymentCommands, paymentQueries queries.PaymentQueries) *PaymentHandler {
	return &PaymentHandler{
		paymentCommands: paymentCommands,
		paymentQueries:  paymentQueries,
	}
}

// @Summary Record payment
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RecordPaymentRequest true "Payment"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /payments [post]
func (h *PaymentHandler) Record(c *gin.Context) {
	var req reqdto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.paymentCommands.RecordPayment(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRentalNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Rental not found",
			})
		case errors.Is(err, commands.ErrInvalidPayment):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid payment data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Get payment
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Success 200 {object} queries.PaymentView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /payments/{id} [get]
func (h *PaymentHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.paymentQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		respondReadError(c, err, "Payment not found")
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary List rental payments
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Success 200 {array} queries.PaymentView
// @Failure 400 {object} map[string]string
// @Router /rentals/{id}/payments [get]
func (h *PaymentHandler) ListByRental(c *gin.Context) {
	rentalID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	views, err := h.paymentQueries.ListByRental(c.Request.Context(), rentalID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary List failed payments
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.PaymentView
// @Router /payments/failed [get]
func (h *PaymentHandler) ListFailed(c *gin.Context) {
	views, err := h.paymentQueries.ListFailed(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Payments report
// @Description Sum and count of completed payments inside an inclusive date range
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} queries.PaymentsReportView
// @Failure 400 {object} map[string]string
// @Router /reports/payments [get]
func (h *PaymentHandler) Report(c *gin.Context) {
	from, ok := parseDateQuery(c, "from")
	if !ok {
		return
	}
	to, ok := parseDateQuery(c, "to")
	if !ok {
		return
	}

	report, err := h.paymentQueries.Report(c.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidReportRange) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Range start is after range end",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, report)
}
