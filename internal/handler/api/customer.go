package api

import (
	"errors"
	"net/http"
	"strings"

	reqdto "car-rental-api/internal/handler/dto/request"
	resdto "car-rental-api/internal/handler/dto/response"
	"car-rental-api/internal/usecase/commands"
	"car-rental-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	customerCommands commands.CustomerCommands
	customerQueries  queries.CustomerQueries
}

func NewCustomerHandler(customerCommands commands.CustomerCommands, customerQueries queries.CustomerQueries) *CustomerHandler {
	return &CustomerHandler{
		customerCommands: customerCommands,
		customerQueries:  customerQueries,
	}
}

// @Summary Create customer
// @Tags customers
// @Accept json
// @Produce json
// @Param request body reqdto.CustomerRequest true "Customer"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var req reqdto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.customerCommands.CreateCustomer(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDuplicateCustomer):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Email or driver license already registered",
			})
		case errors.Is(err, commands.ErrInvalidCustomer):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid customer data",
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

// @Summary List customers
// @Description List customers, optionally filtered by a name/email/phone substring
// @Tags customers
// @Produce json
// @Param search query string false "Substring match on name, email or phone"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} queries.CustomerView
// @Router /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	limit, offset := parseLimitOffset(c)

	var (
		views []*queries.CustomerView
		err   error
	)
	if term := strings.TrimSpace(c.Query("search")); term != "" {
		views, err = h.customerQueries.Search(c.Request.Context(), term, limit, offset)
	} else {
		views, err = h.customerQueries.List(c.Request.Context(), limit, offset)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Get customer
// @Description Get a customer with their membership profile
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} queries.CustomerDetailView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /customers/{id} [get]
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.customerQueries.GetDetailByID(c.Request.Context(), id)
	if err != nil {
		respondReadError(c, err, "Customer not found")
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Update customer
// @Tags customers
// @Accept json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Param request body reqdto.CustomerRequest true "Customer"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /customers/{id} [put]
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.customerCommands.UpdateCustomer(c.Request.Context(), id, req.ToInput()); err != nil {
		switch {
		case errors.Is(err, commands.ErrCustomerNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Customer not found",
			})
		case errors.Is(err, commands.ErrDuplicateCustomer):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Email or driver license already registered",
			})
		case errors.Is(err, commands.ErrInvalidCustomer):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid customer data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete customer
// @Tags customers
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /customers/{id} [delete]
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.customerCommands.DeleteCustomer(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrCustomerNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Customer not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Top customers by lifetime spending
// @Tags customers
// @Produce json
// @Param limit query int false "Number of customers"
// @Success 200 {array} queries.TopCustomerView
// @Router /customers/top [get]
func (h *CustomerHandler) Top(c *gin.Context) {
	limit, _ := parseLimitOffset(c)

	views, err := h.customerQueries.TopBySpending(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}
