package handler

import (
	"errors"
	"net/http"

	"staffhub/internal/model"
	"staffhub/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles token issuance, login, and registration
type AuthHandler struct {
	auth  *service.AuthService
	users *service.UserService
}

func NewAuthHandler(auth *service.AuthService, users *service.UserService) *AuthHandler {
	return &AuthHandler{auth: auth, users: users}
}

// IssueToken handles POST /jwt. The identity payload is trusted as already
// authenticated by the external login flow; this endpoint only signs it.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("invalid claims payload", ""))
		return
	}

	token, err := h.auth.Issue(payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Login handles POST /login: verifies the password against the stored hash,
// then issues a token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("email and password are required", ""))
		return
	}

	user, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.auth.IssueForUser(user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Register handles POST /users. A duplicate email is reported in-band with
// a null insertedId, matching the shape clients already depend on.
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	user, err := h.users.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			c.JSON(http.StatusOK, gin.H{"message": "user already exists", "insertedId": nil})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"insertedId": user.ID.Hex()})
}
