package response

import (
	"github.com/gin-gonic/gin"

	"labsite-backend/internal/shared/apperrors"
)

type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   *Error      `json:"error,omitempty"`
}

type Error struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Success writes a success envelope with the given status code.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
	})
}

// Message writes a success envelope carrying only an acknowledgement
// message (delete operations).
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
	})
}

// ErrorResponse writes an error envelope.
func ErrorResponse(c *gin.Context, statusCode int, code, message string, details interface{}) {
	c.JSON(statusCode, Response{
		Success: false,
		Error: &Error{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// FromError maps an apperrors error onto the wire: status code from the
// taxonomy, violation list as details when present.
func FromError(c *gin.Context, err error) {
	var details interface{}
	if v := apperrors.GetViolations(err); len(v) > 0 {
		details = v
	}
	ErrorResponse(c, apperrors.HTTPStatus(err), apperrors.GetCode(err), apperrors.GetMessage(err), details)
}

// BadRequest is the shortcut for malformed payloads caught before any
// domain validation runs.
func BadRequest(c *gin.Context, message string) {
	ErrorResponse(c, 400, "BAD_REQUEST", message, nil)
}

func Unauthorized(c *gin.Context, message string) {
	ErrorResponse(c, 401, apperrors.CodeUnauthorized, message, nil)
}
