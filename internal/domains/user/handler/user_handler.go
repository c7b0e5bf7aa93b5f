package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"authorsite-backend/internal/domains/user"
	"authorsite-backend/internal/shared/middleware"
	"authorsite-backend/internal/shared/response"
)

type UserHandler struct {
	service user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{service: svc}
}

// Register - POST /v1/auth/register
func (h *UserHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "MISSING_FIELDS", "username, password and role are required")
		return
	}

	info, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, user.ToHTTPStatus(err), user.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, info)
}

// Login - POST /v1/auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "MISSING_FIELDS", "username and password are required")
		return
	}

	auth, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, user.ToHTTPStatus(err), user.ToErrorCode(err), err.Error())
		return
	}

	// The SPA also reads the token from an httpOnly cookie.
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("accessToken", auth.AccessToken, 3600, "/", "", true, true)

	response.Success(c, http.StatusOK, auth)
}

// Refresh - POST /v1/auth/refresh
func (h *UserHandler) Refresh(c *gin.Context) {
	var req user.RefreshRequest
	if err := c.BindJSON(&req); err != nil || req.RefreshToken == "" {
		response.Unauthorized(c, "INVALID_TOKEN", "refresh token is required")
		return
	}

	auth, err := h.service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.ErrorResponse(c, user.ToHTTPStatus(err), user.ToErrorCode(err), err.Error())
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("accessToken", auth.AccessToken, 3600, "/", "", true, true)

	response.Success(c, http.StatusOK, auth)
}

// Logout - POST /v1/auth/logout
func (h *UserHandler) Logout(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "NOT_AUTHENTICATED", "no session found")
		return
	}

	if err := h.service.Logout(c.Request.Context(), userID); err != nil {
		response.ErrorResponse(c, user.ToHTTPStatus(err), user.ToErrorCode(err), err.Error())
		return
	}

	c.SetCookie("accessToken", "", -1, "/", "", true, true)

	response.Success(c, http.StatusOK, gin.H{"message": "logged out"})
}

// Me - GET /v1/auth/me
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "NOT_AUTHENTICATED", "no session found")
		return
	}

	info, err := h.service.Me(c.Request.Context(), userID)
	if err != nil {
		response.ErrorResponse(c, user.ToHTTPStatus(err), user.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, info)
}
