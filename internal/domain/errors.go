package domain

import "errors"

var (
	ErrUnsupportedFileType     = errors.New("unsupported file type")
	ErrFileTooLarge            = errors.New("file exceeds maximum allowed size")
	ErrEmptyDocument           = errors.New("document is empty")
	ErrAnalysisFailed          = errors.New("document analysis failed")
	ErrAnalysisThrottled       = errors.New("document analysis throttled")
	ErrSourceDisabled          = errors.New("s3 document source is disabled")
	ErrSourceNotAllowed        = errors.New("s3 bucket is not allowed")
	ErrObjectNotFound          = errors.New("s3 object not found")
	ErrUnsupportedExportFormat = errors.New("unsupported export format")
	ErrCredentialsInvalid      = errors.New("aws credentials are invalid")
)
