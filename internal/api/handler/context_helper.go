package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"swimtrack/backend/internal/api/middleware"
	pkgerrors "swimtrack/backend/pkg/errors"
	"swimtrack/backend/pkg/response"
	"swimtrack/backend/pkg/validation"
)

const msgInvalidInput = "Ungültige Eingabe"

// ParseID reads the positive integer path parameter "id". On failure it writes a
// 400 response and returns false; callers should return right away.
func ParseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		invalid(c, pkgerrors.NewValidationError("path.id", "must be a positive integer"))
		return 0, false
	}
	return id, true
}

// BindJSON binds and validates the request body. Issues are reported under "body".
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		if middleware.IsBodyTooLarge(err) {
			middleware.AbortBodyTooLarge(c)
			return false
		}
		invalid(c, validation.ToValidationError(err, "body"))
		return false
	}
	return true
}

// BindQuery binds and validates query parameters. Issues are reported under "query".
func BindQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		invalid(c, validation.ToValidationError(err, "query"))
		return false
	}
	return true
}

func invalid(c *gin.Context, ve *pkgerrors.ValidationError) {
	response.ErrorWithDetails(c, http.StatusBadRequest, response.CodeInvalidParam, msgInvalidInput, ve.Issues)
}

// WriteError maps a service error onto the envelope: not found → 404, invalid
// input → 400, anything else is logged and answered with 500.
func WriteError(c *gin.Context, logger *zap.Logger, code int, err error) {
	var ve *pkgerrors.ValidationError
	if errors.As(err, &ve) {
		invalid(c, ve)
		return
	}

	message := msgInvalidInput
	var classified *pkgerrors.Error
	if errors.As(err, &classified) {
		message = classified.Message
	}

	switch {
	case errors.Is(err, pkgerrors.ErrNotFound):
		response.NotFound(c, code, message)
	case errors.Is(err, pkgerrors.ErrInvalidInput):
		response.BadRequest(c, code, message)
	default:
		logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Error(err),
		)
		response.InternalError(c)
	}
}
