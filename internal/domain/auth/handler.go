package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/juju/errors"

	"servicehub/internal/pkg/response"
	"servicehub/internal/pkg/validator"
)

// Handler handles HTTP requests for authentication
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Test is a liveness probe for the auth surface.
func (h *Handler) Test(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"status":    "Backend is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Register godoc
// POST /api/auth/register
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, validator.Describe(err))
		return
	}

	summary, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.fail(c, "register", err)
		return
	}
	response.Success(c, http.StatusOK, summary)
}

// Login godoc
// POST /api/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, validator.Describe(err))
		return
	}

	summary, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.fail(c, "login", err)
		return
	}
	response.Success(c, http.StatusOK, summary)
}

// fail reports every typed auth failure as 400. Anything else is logged and
// hidden behind a generic server error.
func (h *Handler) fail(c *gin.Context, op string, err error) {
	if isTyped(err) {
		response.Error(c, http.StatusBadRequest, response.Text(err))
		return
	}
	_ = c.Error(err)
	logger.Errorf("%s failed: %s", op, errors.Details(err))
	response.Error(c, http.StatusInternalServerError, "Server error: unable to complete request")
}

func isTyped(err error) bool {
	return errors.IsNotValid(err) ||
		errors.IsAlreadyExists(err) ||
		errors.IsUnauthorized(err) ||
		errors.IsNotFound(err)
}
