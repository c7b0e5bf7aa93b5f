package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"authorsite-backend/internal/domains/comment"
	"authorsite-backend/internal/shared/response"
)

type CommentHandler struct {
	service comment.Service
}

func NewCommentHandler(svc comment.Service) *CommentHandler {
	return &CommentHandler{service: svc}
}

// Submit - POST /v1/comments
func (h *CommentHandler) Submit(c *gin.Context) {
	var req comment.SubmitCommentRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "MISSING_FIELDS", "book id, rating and content are required")
		return
	}

	resp, err := h.service.Submit(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, comment.ToHTTPStatus(err), comment.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// ListApproved - GET /v1/comments?limit=
//
// Public feed. Always serves the approved set regardless of any status
// parameter the client sends.
func (h *CommentHandler) ListApproved(c *gin.Context) {
	var q comment.ListCommentsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "VALIDATION_ERROR", "invalid query parameters")
		return
	}
	q.Status = string(comment.StatusApproved)

	comments, err := h.service.List(c.Request.Context(), &q)
	if err != nil {
		response.ErrorResponse(c, comment.ToHTTPStatus(err), comment.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, comments)
}

// List - GET /v1/admin/comments?status=&limit=
func (h *CommentHandler) List(c *gin.Context) {
	var q comment.ListCommentsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "VALIDATION_ERROR", "invalid query parameters")
		return
	}

	comments, err := h.service.List(c.Request.Context(), &q)
	if err != nil {
		response.ErrorResponse(c, comment.ToHTTPStatus(err), comment.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, comments)
}

// Count - GET /v1/admin/comments/count?status=
func (h *CommentHandler) Count(c *gin.Context) {
	count, err := h.service.Count(c.Request.Context(), c.Query("status"))
	if err != nil {
		response.ErrorResponse(c, comment.ToHTTPStatus(err), comment.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"count": count})
}

// UpdateStatus - PATCH /v1/admin/comments/:id/status
func (h *CommentHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "VALIDATION_ERROR", "invalid comment id")
		return
	}

	var req comment.UpdateStatusRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "INVALID_STATUS", "status is required")
		return
	}

	resp, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		response.ErrorResponse(c, comment.ToHTTPStatus(err), comment.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}
