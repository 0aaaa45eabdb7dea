package port

import (
	"context"

	"bolextract/internal/domain"
)

// AnalyzeInput carries the raw document sent to the analysis provider.
type AnalyzeInput struct {
	Bytes       []byte
	ContentType string
}

// DocumentAnalyzer abstracts the external form/table detection service.
// Implementations return the provider's block graph unchanged in meaning.
type DocumentAnalyzer interface {
	Analyze(ctx context.Context, input AnalyzeInput) ([]domain.Block, error)
}
