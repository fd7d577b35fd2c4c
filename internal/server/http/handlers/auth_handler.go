package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foodkart/foodkart/internal/domain/model"
	"github.com/foodkart/foodkart/internal/server/http/dto"
	"github.com/foodkart/foodkart/internal/server/http/middleware"
	"github.com/foodkart/foodkart/internal/usecase"
)

// AuthHandler processes registration, login and account management.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /api/auth/register. Public signup always creates a
// customer account; staff roles are assigned through the admin endpoints.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	user, token, err := h.facade.Register(c.Request.Context(), req.Name, req.Email, req.Password, model.RoleUser)
	if err != nil {
		writeError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusCreated, toUserResponse(user))
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	user, token, err := h.facade.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, toUserResponse(user))
}

// Google handles POST /api/auth/google. The provider token is verified
// server-side; a first-time visitor is registered automatically.
func (h *AuthHandler) Google(c *gin.Context) {
	var req dto.FederatedLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Token == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	user, token, err := h.facade.FederatedLogin(c.Request.Context(), req.Token)
	if err != nil {
		writeError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, toUserResponse(user))
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.facade.UserByID(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

// UpdateDetails handles PUT /api/auth/updatedetails.
func (h *AuthHandler) UpdateDetails(c *gin.Context) {
	var req dto.UpdateDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	user, err := h.facade.UpdateProfile(c.Request.Context(), CurrentUserID(c), usecase.ProfileUpdate{
		Name:    req.Name,
		Email:   req.Email,
		Avatar:  req.Avatar,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

// UpdatePassword handles PUT /api/auth/updatepassword. A fresh token is
// issued so existing sessions on other devices are not silently kept alive.
func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	var req dto.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	token, err := h.facade.UpdatePassword(c.Request.Context(), CurrentUserID(c), req.CurrentPassword, req.NewPassword)
	if err != nil {
		writeError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.Status(http.StatusOK)
}

// Users handles GET /api/auth/users.
func (h *AuthHandler) Users(c *gin.Context) {
	users, err := h.facade.Users(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, toUserResponse(&users[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// CreateUser handles POST /api/auth/users.
func (h *AuthHandler) CreateUser(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	role := model.Role(req.Role)
	if role == "" {
		role = model.RoleUser
	}

	user, err := h.facade.CreateUser(c.Request.Context(), req.Name, req.Email, req.Password, role)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toUserResponse(user))
}

// UpdateUser handles PUT /api/auth/users/:id.
func (h *AuthHandler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	user, err := h.facade.UpdateUser(c.Request.Context(), &model.User{
		ID:      id,
		Name:    req.Name,
		Email:   req.Email,
		Role:    model.Role(req.Role),
		Avatar:  req.Avatar,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

// DeleteUser handles DELETE /api/auth/users/:id.
func (h *AuthHandler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.facade.DeleteUser(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
