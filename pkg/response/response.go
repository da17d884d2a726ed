package response

import (
	"errors"
	"net/http"
	"time"

	"lnpos-gateway/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SuccessResponse is the envelope used by the admin API.
type SuccessResponse struct {
	Data      interface{} `json:"data"`
	RequestID string      `json:"request_id"`
	Timestamp string      `json:"timestamp"`
}

// ErrorResponse is the admin API error envelope.
type ErrorResponse struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

// LnurlStatus is the LNURL status envelope. Wallets read it even on HTTP 200.
type LnurlStatus struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// OK sends a 200 response with data.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{
		Data:      data,
		RequestID: getRequestID(c),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Created sends a 201 response with data.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, SuccessResponse{
		Data:      data,
		RequestID: getRequestID(c),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// NoContent sends a bare 204.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an admin-style error response. Anything that is not an
// *apperror.AppError becomes a 500.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, ErrorResponse{
			ErrorCode: appErr.Code,
			Message:   appErr.Message,
			RequestID: getRequestID(c),
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		ErrorCode: "SYS_000",
		Message:   "Internal server error",
		RequestID: getRequestID(c),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// LnurlRaw writes an LNURL document as-is, without the admin envelope.
func LnurlRaw(c *gin.Context, body interface{}) {
	c.JSON(http.StatusOK, body)
}

// LnurlOK writes {"status":"OK"}.
func LnurlOK(c *gin.Context) {
	c.JSON(http.StatusOK, LnurlStatus{Status: "OK"})
}

// LnurlError writes {"status":"ERROR","reason":...} with HTTP 200, which is
// how LNURL wallets expect failures to be reported.
func LnurlError(c *gin.Context, err error) {
	reason := "Internal server error"
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		reason = appErr.Message
	}
	c.JSON(http.StatusOK, LnurlStatus{Status: "ERROR", Reason: reason})
}

func getRequestID(c *gin.Context) string {
	if id, exists := c.Get("request_id"); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return uuid.New().String()
}
