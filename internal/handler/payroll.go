package handler

import (
	"net/http"
	"strconv"

	"staffhub/internal/middleware"
	"staffhub/internal/model"
	"staffhub/internal/service"

	"github.com/gin-gonic/gin"
)

// PayrollHandler handles payroll creation, listing, transition, and history
type PayrollHandler struct {
	payroll *service.PayrollService
}

func NewPayrollHandler(payroll *service.PayrollService) *PayrollHandler {
	return &PayrollHandler{payroll: payroll}
}

// Create handles POST /payroll
func (h *PayrollHandler) Create(c *gin.Context) {
	var req model.CreatePayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	record, err := h.payroll.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.NewSuccessResponse("payroll record created", record))
}

// List handles GET /payroll?status&month&year
func (h *PayrollHandler) List(c *gin.Context) {
	filter := model.PayrollFilter{
		Status: model.PayrollStatus(c.Query("status")),
		Month:  c.Query("month"),
	}
	if yearStr := c.Query("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, model.NewErrorResponse("year must be a number", ""))
			return
		}
		filter.Year = year
	}

	views, err := h.payroll.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("", views))
}

// Pay handles PATCH /payroll/:id, transitioning the record to Paid on
// behalf of the authenticated admin.
func (h *PayrollHandler) Pay(c *gin.Context) {
	approver := middleware.CallerEmail(c)

	paymentDate, err := h.payroll.Pay(c.Request.Context(), c.Param("id"), approver)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("payment completed", gin.H{
		"paymentDate": paymentDate,
	}))
}

// History handles GET /payment-history for the authenticated caller.
func (h *PayrollHandler) History(c *gin.Context) {
	records, err := h.payroll.PaymentHistory(c.Request.Context(), middleware.CallerEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("", records))
}
