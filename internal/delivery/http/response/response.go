package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Envelope status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response is the unified API envelope. Every endpoint, success or failure,
// returns this shape.
type Response struct {
	Status  string `json:"status"`            // "success" or "error"
	Code    int    `json:"code"`              // HTTP status code, repeated in the body
	Message string `json:"message"`           // User-friendly message
	Data    any    `json:"data,omitempty"`    // Payload, omitted when empty
	Page    *int   `json:"page,omitempty"`    // Listing endpoints only
	Results *int   `json:"results,omitempty"` // Listing endpoints only
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Status:  StatusSuccess,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Paged successful listing response carrying pagination metadata.
func Paged(c echo.Context, page, results int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(http.StatusOK, Response{
		Status:  StatusSuccess,
		Code:    http.StatusOK,
		Message: message,
		Data:    data,
		Page:    &page,
		Results: &results,
	})
}

// Error error response. details, when non-empty, is exposed under data so
// clients have a single place to look for diagnostics.
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	var data any
	if details != "" {
		data = map[string]string{"error": errorCode, "details": details}
	} else if errorCode != "" {
		data = map[string]string{"error": errorCode}
	}

	return c.JSON(statusCode, Response{
		Status:  StatusError,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// BindingError binding error response
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// BadRequest 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, "")
}

// NotFound 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, "")
}

// Conflict 409 error
func Conflict(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusConflict, errorCode, message, "")
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, "")
}
