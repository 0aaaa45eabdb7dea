package analyzer_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"bolextract/internal/analyzer"
	"bolextract/internal/domain"
)

func TestProviderError_Is(t *testing.T) {
	cause := errors.New("boom")
	err := &analyzer.ProviderError{Provider: "textract", Code: "InvalidParameterException", Message: "bad doc", Err: cause}

	assert.ErrorIs(t, err, domain.ErrAnalysisFailed)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "textract: InvalidParameterException: bad doc", err.Error())
}

func TestProviderError_NoCode(t *testing.T) {
	err := &analyzer.ProviderError{Provider: "textract", Message: "dial tcp: timeout"}

	assert.Equal(t, "textract: dial tcp: timeout", err.Error())
}

func TestNewThrottledError_DefaultRetryAfter(t *testing.T) {
	err := analyzer.NewThrottledError("textract", errors.New("slow down"), 0)

	assert.Equal(t, 5*time.Second, err.RetryAfter)
	assert.ErrorIs(t, err, domain.ErrAnalysisThrottled)
	assert.NotErrorIs(t, err, domain.ErrAnalysisFailed)
}

func TestNewThrottledError_ExplicitRetryAfter(t *testing.T) {
	err := analyzer.NewThrottledError("textract", errors.New("slow down"), 30)

	assert.Equal(t, 30*time.Second, err.RetryAfter)
}
