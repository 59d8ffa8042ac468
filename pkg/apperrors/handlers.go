package apperrors

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the envelope every failed request returns.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// GinErrorHandler writes an AppError as a JSON response. When Debug is
// false, internal errors are stripped of detail before leaving the process.
type GinErrorHandler struct {
	Debug bool
}

func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}
	if appErr.HTTPCode >= 500 && !h.Debug {
		appErr = &AppError{
			Code:     appErr.Code,
			Domain:   appErr.Domain,
			Message:  "Internal server error",
			HTTPCode: appErr.HTTPCode,
		}
	}
	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}

var defaultHandler = &GinErrorHandler{Debug: false}

// SetDebug switches detail exposure on internal errors; call once at startup.
func SetDebug(debug bool) {
	defaultHandler.Debug = debug
}

// HandleError is the shortcut used by handlers.
func HandleError(c *gin.Context, err error) {
	defaultHandler.HandleGinError(c, err)
}

// AsAppError extracts an *AppError from an error chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
