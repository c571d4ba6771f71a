package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saase/requesthub/internal/shared/constants"
	"github.com/saase/requesthub/internal/shared/errors"
)

// APIResponse represents a standard API response structure
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ErrorInfo represents error information in API response
type ErrorInfo struct {
	Type    string              `json:"type"`
	Message string              `json:"message"`
	Details string              `json:"details,omitempty"`
	Fields  []errors.FieldError `json:"fields,omitempty"`
}

// ListResponse represents a paginated list response
type ListResponse struct {
	Items interface{} `json:"items"`
	Total int64       `json:"total"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
	Pages int         `json:"pages"`
}

// SuccessResponse sends a successful response with custom status code
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, APIResponse{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// CreatedResponse sends a created response
func CreatedResponse(c *gin.Context, data interface{}, message ...string) {
	msg := "Resource created successfully"
	if len(message) > 0 {
		msg = message[0]
	}
	c.JSON(http.StatusCreated, APIResponse{
		Success: true,
		Data:    data,
		Message: msg,
	})
}

// ErrorResponse sends an error response with custom status code and message
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, APIResponse{
		Success: false,
		Error: &ErrorInfo{
			Type:    "error",
			Message: message,
		},
	})
}

// ErrorResponseWithError sends an error response based on error type
func ErrorResponseWithError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		// Non-AppError details are never exposed
		c.JSON(http.StatusInternalServerError, APIResponse{
			Success: false,
			Error: &ErrorInfo{
				Type:    string(errors.ErrorTypeInternal),
				Message: constants.ErrMsgInternalServerError,
			},
		})
		return
	}

	c.JSON(appErr.Code, APIResponse{
		Success: false,
		Error: &ErrorInfo{
			Type:    string(appErr.Type),
			Message: appErr.Message,
			Details: appErr.Details,
			Fields:  appErr.Fields,
		},
	})
}

// ListSuccessResponse sends a successful list response with pagination
func ListSuccessResponse(c *gin.Context, items interface{}, total int64, page, limit int, message ...string) {
	resp := APIResponse{
		Success: true,
		Data: ListResponse{
			Items: items,
			Total: total,
			Page:  page,
			Limit: limit,
			Pages: TotalPages(total, limit),
		},
	}
	if len(message) > 0 {
		resp.Message = message[0]
	}
	c.JSON(http.StatusOK, resp)
}
