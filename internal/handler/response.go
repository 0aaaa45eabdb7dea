package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bolextract/internal/analyzer"
	"bolextract/internal/domain"
)

// APIResponse is the standard envelope for error and auxiliary responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
// Provider failures carry the provider's own message.
func MapDomainError(err error) (status int, code, msg string) {
	var providerErr *analyzer.ProviderError
	switch {
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "Invalid file type. Only PDF/JPG/PNG allowed."
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size"
	case errors.Is(err, domain.ErrEmptyDocument):
		return http.StatusBadRequest, "EMPTY_DOCUMENT", "uploaded document is empty"
	case errors.Is(err, domain.ErrUnsupportedExportFormat):
		return http.StatusBadRequest, "UNSUPPORTED_EXPORT_FORMAT", "unsupported export format; allowed: csv, xlsx"
	case errors.Is(err, domain.ErrSourceDisabled):
		return http.StatusNotFound, "S3_SOURCE_DISABLED", "extraction from s3 is not enabled"
	case errors.Is(err, domain.ErrSourceNotAllowed):
		return http.StatusForbidden, "S3_BUCKET_NOT_ALLOWED", "bucket is not in the allowed list"
	case errors.Is(err, domain.ErrObjectNotFound):
		return http.StatusNotFound, "OBJECT_NOT_FOUND", "s3 object not found"
	case errors.Is(err, domain.ErrAnalysisThrottled):
		return http.StatusTooManyRequests, "ANALYSIS_THROTTLED", "document analysis is rate limited; retry later"
	case errors.As(err, &providerErr):
		return http.StatusInternalServerError, "ANALYSIS_FAILED", providerErr.Message
	case errors.Is(err, domain.ErrAnalysisFailed):
		return http.StatusInternalServerError, "ANALYSIS_FAILED", "document analysis failed"
	case errors.Is(err, domain.ErrCredentialsInvalid):
		return http.StatusServiceUnavailable, "CREDENTIALS_INVALID", "aws credentials are invalid"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	var throttled *analyzer.ThrottledError
	if errors.As(err, &throttled) {
		c.Header("Retry-After", strconv.Itoa(int(throttled.RetryAfter.Seconds())))
	}
	RespondError(c, status, code, msg)
}
