package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/juju/errors"
	"github.com/juju/loggo"
)

var logger = loggo.GetLogger("servicehub.http")

// Success writes data as the raw JSON body.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// Message writes a {"message": ...} body.
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

// Error writes a {"message": ...} body and aborts the handler chain.
func Error(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, gin.H{"message": message})
}

// StatusFor maps an error kind to an HTTP status code.
func StatusFor(err error) int {
	switch {
	case errors.IsNotValid(err), errors.IsAlreadyExists(err):
		return http.StatusBadRequest
	case errors.IsUnauthorized(err):
		return http.StatusUnauthorized
	case errors.IsNotFound(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// FromError writes err using its kind. Unexpected errors are logged and
// replaced with a generic message.
func FromError(c *gin.Context, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		logger.Errorf("request_failed method=%s path=%s error=%s", c.Request.Method, c.Request.URL.Path, errors.Details(err))
		Error(c, status, "Internal server error")
		return
	}
	Error(c, status, Text(err))
}

// Text returns the user-facing message of a typed error without the
// annotations added along the way.
func Text(err error) string {
	if cause := errors.Cause(err); cause != nil {
		return cause.Error()
	}
	return err.Error()
}
