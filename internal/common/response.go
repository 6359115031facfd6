package common

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse standard API response structure
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

// Meta pagination and additional metadata
type Meta struct {
	Page  int   `json:"page,omitempty"`
	Limit int   `json:"limit,omitempty"`
	Total int64 `json:"total,omitempty"`
}

// ErrorInfo error details
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse returns a successful JSON response
func SuccessResponse(c *gin.Context, data interface{}, meta *Meta) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    data,
		Meta:    meta,
	})
}

// CreatedResponse returns a 201 Created response
func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{
		Success: true,
		Data:    data,
	})
}

// ErrorResponse returns an error JSON response
func ErrorResponse(c *gin.Context, status int, message string, err error) {
	errInfo := &ErrorInfo{
		Code:    getErrorCode(status),
		Message: message,
	}
	if err != nil {
		errInfo.Details = err.Error()
	}

	c.JSON(status, APIResponse{
		Success: false,
		Error:   errInfo,
	})
}

// ErrorFrom maps a business error to its transport status. Tenant-scope
// mismatches arrive here as plain NotFound, so cross-tenant existence is
// never distinguishable from true absence.
func ErrorFrom(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		ErrorResponse(c, http.StatusUnauthorized, "Authentication required", err)
	case errors.Is(err, ErrForbidden):
		ErrorResponse(c, http.StatusForbidden, "Permission denied", err)
	case errors.Is(err, ErrNotFound),
		errors.Is(err, ErrPostNotFound),
		errors.Is(err, ErrPageNotFound),
		errors.Is(err, ErrProductNotFound),
		errors.Is(err, ErrRevisionNotFound),
		errors.Is(err, ErrUserNotFound):
		ErrorResponse(c, http.StatusNotFound, "Not found", err)
	case errors.Is(err, ErrInvalidSchedule),
		errors.Is(err, ErrInvalidInput),
		IsUnknownContentType(err):
		ErrorResponse(c, http.StatusBadRequest, "Invalid request", err)
	default:
		ErrorResponse(c, http.StatusInternalServerError, "Internal server error", err)
	}
}

// getErrorCode generates error code from HTTP status
func getErrorCode(status int) string {
	switch status {
	case 400:
		return "BAD_REQUEST"
	case 401:
		return "UNAUTHORIZED"
	case 403:
		return "FORBIDDEN"
	case 404:
		return "NOT_FOUND"
	case 409:
		return "CONFLICT"
	case 429:
		return "RATE_LIMITED"
	case 500:
		return "INTERNAL_SERVER_ERROR"
	default:
		return "ERROR"
	}
}
