package handler

import (
	"net/http"

	"staffhub/internal/middleware"
	"staffhub/internal/model"
	"staffhub/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles employee lookup and administration endpoints
type UserHandler struct {
	users   *service.UserService
	payroll *service.PayrollService
}

func NewUserHandler(users *service.UserService, payroll *service.PayrollService) *UserHandler {
	return &UserHandler{users: users, payroll: payroll}
}

// IsAdmin handles GET /user/admin/:email. Callers may only query their own
// identity; the answer for anyone else is forbidden, not false.
func (h *UserHandler) IsAdmin(c *gin.Context) {
	email := c.Param("email")
	if email != middleware.CallerEmail(c) {
		c.JSON(http.StatusForbidden, model.NewErrorResponse("forbidden access", ""))
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": h.users.HasRole(c.Request.Context(), email, model.RoleAdmin)})
}

// IsHR handles GET /user/hr/:email, self-only like IsAdmin.
func (h *UserHandler) IsHR(c *gin.Context) {
	email := c.Param("email")
	if email != middleware.CallerEmail(c) {
		c.JSON(http.StatusForbidden, model.NewErrorResponse("forbidden access", ""))
		return
	}
	c.JSON(http.StatusOK, gin.H{"hr": h.users.HasRole(c.Request.Context(), email, model.RoleHR)})
}

// List handles GET /employees
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("", users))
}

// Details handles GET /employees/:email, returning the employee profile
// together with their payment history.
func (h *UserHandler) Details(c *gin.Context) {
	email := c.Param("email")

	user, err := h.users.GetByEmail(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}

	payments, err := h.payroll.PaymentHistory(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.NewSuccessResponse("", gin.H{
		"employee": user.ToResponse(),
		"payments": payments,
	}))
}

// PromoteToHR handles PATCH /employees/:id/hr
func (h *UserHandler) PromoteToHR(c *gin.Context) {
	if err := h.users.PromoteToHR(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("employee promoted to HR", nil))
}

// Verify handles PATCH /employees/:id/verify
func (h *UserHandler) Verify(c *gin.Context) {
	var req struct {
		Verified *bool `json:"verified" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("verified flag is required", ""))
		return
	}

	if err := h.users.SetVerified(c.Request.Context(), c.Param("id"), *req.Verified); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("verification updated", nil))
}

// Fire handles PATCH /employees/:id/fire
func (h *UserHandler) Fire(c *gin.Context) {
	if err := h.users.Fire(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("employee terminated", nil))
}

// IncreaseSalary handles PATCH /employees/:id/salary
func (h *UserHandler) IncreaseSalary(c *gin.Context) {
	var req struct {
		Salary float64 `json:"salary" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("salary is required", ""))
		return
	}

	if err := h.users.IncreaseSalary(c.Request.Context(), c.Param("id"), req.Salary); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("salary updated", nil))
}
