package textract

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/textract"
	"github.com/aws/aws-sdk-go-v2/service/textract/types"
	"github.com/aws/smithy-go"

	"bolextract/internal/analyzer"
	"bolextract/internal/config"
	"bolextract/internal/domain"
	"bolextract/internal/port"
)

const providerName = "textract"

// API is the subset of the Textract client used by the analyzer.
type API interface {
	AnalyzeDocument(ctx context.Context, params *textract.AnalyzeDocumentInput, optFns ...func(*textract.Options)) (*textract.AnalyzeDocumentOutput, error)
}

type textractAnalyzer struct {
	client  API
	timeout time.Duration
}

// NewTextractAnalyzer creates a Textract-backed DocumentAnalyzer from a loaded aws.Config.
func NewTextractAnalyzer(awsCfg aws.Config, cfg *config.AWSConfig) port.DocumentAnalyzer {
	var opts []func(*textract.Options)
	if cfg.TextractEndpoint != "" {
		opts = append(opts, func(o *textract.Options) {
			o.BaseEndpoint = aws.String(cfg.TextractEndpoint)
		})
	}
	return NewWithClient(textract.NewFromConfig(awsCfg, opts...), cfg.Timeout())
}

// NewWithClient wraps an existing Textract API client.
func NewWithClient(client API, timeout time.Duration) port.DocumentAnalyzer {
	return &textractAnalyzer{client: client, timeout: timeout}
}

// Analyze requests form and table detection for a single document.
func (a *textractAnalyzer) Analyze(ctx context.Context, input port.AnalyzeInput) ([]domain.Block, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	start := time.Now()
	out, err := a.client.AnalyzeDocument(ctx, &textract.AnalyzeDocumentInput{
		Document:     &types.Document{Bytes: input.Bytes},
		FeatureTypes: []types.FeatureType{types.FeatureTypeForms, types.FeatureTypeTables},
	})
	if err != nil {
		log.Printf("textractAnalyzer.Analyze: call failed after %s: %v", time.Since(start), err)
		return nil, classifyError(err)
	}

	blocks := ConvertBlocks(out.Blocks)
	log.Printf("textractAnalyzer.Analyze: %d blocks in %s", len(blocks), time.Since(start))
	return blocks, nil
}

// classifyError maps Textract failures onto analyzer errors.
func classifyError(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "ThrottlingException", "ProvisionedThroughputExceededException", "LimitExceededException":
			return analyzer.NewThrottledError(providerName, err, 0)
		}
		return &analyzer.ProviderError{
			Provider: providerName,
			Code:     apiErr.ErrorCode(),
			Message:  apiErr.ErrorMessage(),
			Err:      err,
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &analyzer.ProviderError{Provider: providerName, Message: "request timed out", Err: err}
	}
	return &analyzer.ProviderError{Provider: providerName, Message: err.Error(), Err: err}
}

// ConvertBlocks translates Textract blocks into the provider-neutral graph model.
func ConvertBlocks(in []types.Block) []domain.Block {
	out := make([]domain.Block, 0, len(in))
	for i := range in {
		b := &in[i]
		block := domain.Block{
			ID:              aws.ToString(b.Id),
			Type:            domain.BlockType(b.BlockType),
			Text:            aws.ToString(b.Text),
			SelectionStatus: domain.SelectionStatus(b.SelectionStatus),
		}
		for _, et := range b.EntityTypes {
			block.EntityTypes = append(block.EntityTypes, domain.EntityType(et))
		}
		for _, rel := range b.Relationships {
			block.Relationships = append(block.Relationships, domain.Relationship{
				Type: domain.RelationshipType(rel.Type),
				IDs:  rel.Ids,
			})
		}
		out = append(out, block)
	}
	return out
}
