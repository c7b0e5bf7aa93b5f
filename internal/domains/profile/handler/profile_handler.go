package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"authorsite-backend/internal/domains/profile"
	"authorsite-backend/internal/shared/response"
)

type ProfileHandler struct {
	service profile.Service
}

func NewProfileHandler(svc profile.Service) *ProfileHandler {
	return &ProfileHandler{service: svc}
}

// Get - GET /v1/profile
func (h *ProfileHandler) Get(c *gin.Context) {
	resp, err := h.service.Get(c.Request.Context())
	if err != nil {
		response.ErrorResponse(c, profile.ToHTTPStatus(err), profile.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Upsert - PUT /v1/profile
func (h *ProfileHandler) Upsert(c *gin.Context) {
	var req profile.UpsertProfileRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "MISSING_REQUIRED_FIELDS", "request body is required")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", err.Error())
		return
	}

	resp, err := h.service.Upsert(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, profile.ToHTTPStatus(err), profile.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}
