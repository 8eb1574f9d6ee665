package notification

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"servicehub/internal/pkg/response"
	"servicehub/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create stores a notification sent directly through the API.
func (h *Handler) Create(c *gin.Context) {
	var req CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, validator.Describe(err))
		return
	}

	n, err := h.service.Create(c.Request.Context(), req.toEntity())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, n)
}

// ListByReceiver returns every notification of the receiver, newest first.
func (h *Handler) ListByReceiver(c *gin.Context) {
	receiverID, ok := idParam(c)
	if !ok {
		return
	}

	list, err := h.service.ListByReceiver(c.Request.Context(), receiverID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) ListUnread(c *gin.Context) {
	receiverID, ok := idParam(c)
	if !ok {
		return
	}

	list, err := h.service.ListUnread(c.Request.Context(), receiverID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) CountUnread(c *gin.Context) {
	receiverID, ok := idParam(c)
	if !ok {
		return
	}

	count, err := h.service.CountUnread(c.Request.Context(), receiverID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, UnreadCountResponse{Count: count})
}

func (h *Handler) MarkAsRead(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	n, err := h.service.MarkRead(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, n)
}

func (h *Handler) MarkAllAsRead(c *gin.Context) {
	receiverID, ok := idParam(c)
	if !ok {
		return
	}

	if _, err := h.service.MarkAllRead(c.Request.Context(), receiverID); err != nil {
		response.FromError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "All notifications marked as read")
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Notification deleted successfully")
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}
