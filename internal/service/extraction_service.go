package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"bolextract/internal/config"
	"bolextract/internal/domain"
	"bolextract/internal/extraction"
	"bolextract/internal/port"
)

// UploadInput is the DTO for documents posted directly to the API.
type UploadInput struct {
	FileName    string
	ContentType string
	Size        int64
	File        io.Reader
}

// S3Input identifies a document stored in S3.
type S3Input struct {
	Bucket string `json:"bucket" binding:"required"`
	Key    string `json:"key" binding:"required"`
}

// ExtractionService defines the document extraction contract.
type ExtractionService interface {
	ExtractUpload(ctx context.Context, input UploadInput) (*domain.ExtractionResult, error)
	ExtractS3(ctx context.Context, input S3Input) (*domain.ExtractionResult, error)
}

type extractionService struct {
	analyzer  port.DocumentAnalyzer
	source    port.ObjectSource
	uploadCfg *config.UploadConfig
	sourceCfg *config.S3SourceConfig
}

// NewExtractionService creates a new ExtractionService implementation.
// source may be nil when S3 extraction is disabled.
func NewExtractionService(
	analyzer port.DocumentAnalyzer,
	source port.ObjectSource,
	uploadCfg *config.UploadConfig,
	sourceCfg *config.S3SourceConfig,
) ExtractionService {
	return &extractionService{
		analyzer:  analyzer,
		source:    source,
		uploadCfg: uploadCfg,
		sourceCfg: sourceCfg,
	}
}

func (s *extractionService) ExtractUpload(ctx context.Context, input UploadInput) (*domain.ExtractionResult, error) {
	contentType := normalizeContentType(input.ContentType)
	if _, ok := domain.AllowedContentTypes[contentType]; !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	maxBytes := s.uploadCfg.MaxBytes()
	if input.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	// Read one byte past the limit so an understated Size is still caught.
	data, err := io.ReadAll(io.LimitReader(input.File, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	log.Printf("extractionService.ExtractUpload: %s (%s, %d bytes)", input.FileName, contentType, len(data))

	return s.extract(ctx, "upload:"+input.FileName, contentType, data)
}

func (s *extractionService) ExtractS3(ctx context.Context, input S3Input) (*domain.ExtractionResult, error) {
	if !s.sourceCfg.Enabled || s.source == nil {
		return nil, domain.ErrSourceDisabled
	}
	if !s.sourceCfg.BucketAllowed(input.Bucket) {
		return nil, domain.ErrSourceNotAllowed
	}

	info, err := s.source.Head(ctx, input.Bucket, input.Key)
	if err != nil {
		return nil, err
	}
	contentType := normalizeContentType(info.ContentType)
	if _, ok := domain.AllowedContentTypes[contentType]; !ok {
		return nil, domain.ErrUnsupportedFileType
	}
	maxBytes := s.uploadCfg.MaxBytes()
	if info.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	log.Printf("extractionService.ExtractS3: s3://%s/%s (%s, %d bytes)", input.Bucket, input.Key, contentType, info.Size)

	data, err := s.source.Download(ctx, input.Bucket, input.Key, maxBytes)
	if err != nil {
		return nil, err
	}
	return s.extract(ctx, fmt.Sprintf("s3://%s/%s", input.Bucket, input.Key), contentType, data)
}

// extract runs analysis, graph resolution and field mapping for one document.
func (s *extractionService) extract(ctx context.Context, source, contentType string, data []byte) (*domain.ExtractionResult, error) {
	if len(data) == 0 {
		return nil, domain.ErrEmptyDocument
	}

	if !matchesContentType(contentType, data) {
		log.Printf("extractionService.extract: %s declared %s but content does not match", source, contentType)
		return nil, domain.ErrUnsupportedFileType
	}

	meta := domain.ExtractionMeta{
		ID:          uuid.New(),
		Source:      source,
		ContentType: contentType,
		Size:        int64(len(data)),
	}

	blocks, err := s.analyzer.Analyze(ctx, port.AnalyzeInput{Bytes: data, ContentType: contentType})
	if err != nil {
		log.Printf("extractionService.extract: analysis failed for %s (%s): %v", meta.ID, source, err)
		return nil, fmt.Errorf("analyzing document: %w", err)
	}

	out := extraction.Extract(blocks)
	meta.BlockCount = len(blocks)
	meta.ProcessedAt = time.Now().UTC()

	log.Printf("extractionService.extract: %s resolved %d form pairs, %d lines, %d canonical fields",
		meta.ID, out.RawForms.Len(), len(out.Data), countPresent(&out.CanonicalRecord))

	return &domain.ExtractionResult{Meta: meta, Extraction: out}, nil
}

func normalizeContentType(ct string) string {
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	return strings.ToLower(strings.TrimSpace(ct))
}

func countPresent(rec *domain.CanonicalRecord) int {
	n := 0
	for _, f := range domain.CanonicalFields {
		if _, ok := rec.Value(f); ok {
			n++
		}
	}
	return n
}
