// Package response はハンドラー共通のエラーレスポンス形式を提供します。
package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"wealth_backend/internal/platform/apperror"
	"wealth_backend/internal/platform/validation"
)

// ErrorResponse is the body of every non-2xx response.
// "detail" matches what the web frontend already reads.
type ErrorResponse struct {
	Detail  string            `json:"detail"`
	Code    string            `json:"code"`
	Details map[string]string `json:"details,omitempty"`
}

// MessageResponse is returned by endpoints that only acknowledge an action.
type MessageResponse struct {
	Message string `json:"message"`
}

// Error aborts the request with the status and body derived from err.
// Unclassified errors are logged and hidden behind a generic message.
func Error(c *gin.Context, err error) {
	kind := apperror.KindOf(err)
	if kind == apperror.KindInternal {
		slog.ErrorContext(c.Request.Context(), "request failed",
			"error", err,
			"path", c.FullPath(),
			"request_id", c.GetString("request_id"),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
			Detail: "internal server error",
			Code:   kind.String(),
		})
		return
	}

	var ae *apperror.Error
	errors.As(err, &ae)
	c.AbortWithStatusJSON(kind.HTTPStatus(), ErrorResponse{Detail: ae.Message, Code: ae.Code})
}

// BindError aborts with 400 and per-field validation details.
func BindError(c *gin.Context, err error) {
	slog.WarnContext(c.Request.Context(), "request validation failed",
		"error", err,
		"path", c.FullPath(),
		"remote_addr", c.ClientIP(),
	)
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
		Detail:  "invalid request",
		Code:    apperror.KindInvalidRequest.String(),
		Details: validation.ToDetails(err),
	})
}

// Unauthenticated aborts with the single message used for every authentication failure.
func Unauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
		Detail: "Not authenticated",
		Code:   apperror.KindUnauthenticated.String(),
	})
}
