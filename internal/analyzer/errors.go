// Package analyzer holds the errors shared by document analysis providers.
package analyzer

import (
	"fmt"
	"time"

	"bolextract/internal/domain"
)

// ProviderError is a failed analysis call. Message is the provider's own text
// and is safe to show to API callers.
type ProviderError struct {
	Provider string
	Code     string
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s: %s", e.Provider, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

func (e *ProviderError) Unwrap() []error {
	return []error{domain.ErrAnalysisFailed, e.Err}
}

// ThrottledError indicates the provider rejected the call for rate reasons.
type ThrottledError struct {
	Err        error
	RetryAfter time.Duration
	Provider   string
}

func (e *ThrottledError) Error() string {
	return fmt.Sprintf("%s throttled (retry after %s): %v", e.Provider, e.RetryAfter, e.Err)
}

func (e *ThrottledError) Unwrap() []error {
	return []error{domain.ErrAnalysisThrottled, e.Err}
}

// NewThrottledError creates a ThrottledError. If retryAfterSecs is 0, defaults to 5s.
func NewThrottledError(provider string, err error, retryAfterSecs int) *ThrottledError {
	if retryAfterSecs <= 0 {
		retryAfterSecs = 5
	}
	return &ThrottledError{
		Err:        err,
		RetryAfter: time.Duration(retryAfterSecs) * time.Second,
		Provider:   provider,
	}
}
