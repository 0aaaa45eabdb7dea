package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bolextract/internal/domain"
	"bolextract/internal/export"
	"bolextract/internal/service"
)

// ExtractionHandler handles bill-of-lading extraction endpoints.
type ExtractionHandler struct {
	extractionService service.ExtractionService
}

// NewExtractionHandler creates a new ExtractionHandler.
func NewExtractionHandler(extractionService service.ExtractionService) *ExtractionHandler {
	return &ExtractionHandler{extractionService: extractionService}
}

// ExtractBOL handles POST /extract/bol
// @Summary Extract bill-of-lading fields
// @Description Upload a PDF/JPG/PNG and get its lines, raw form pairs and canonical fields
// @Tags extraction
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document to analyze"
// @Success 200 {object} domain.Extraction
// @Failure 400 {object} APIResponse "Missing file or unsupported type"
// @Failure 413 {object} APIResponse "File too large"
// @Failure 500 {object} APIResponse "Analysis failed"
// @Router /extract/bol [post]
func (h *ExtractionHandler) ExtractBOL(c *gin.Context) {
	result, ok := h.extractUpload(c)
	if !ok {
		return
	}
	c.Header("X-Extraction-ID", result.Meta.ID.String())
	c.JSON(http.StatusOK, result.Extraction)
}

// ExtractBOLFromS3 handles POST /extract/bol/s3
// @Summary Extract bill-of-lading fields from an S3 object
// @Tags extraction
// @Accept json
// @Produce json
// @Param request body service.S3Input true "Object location"
// @Success 200 {object} domain.Extraction
// @Failure 400 {object} APIResponse "Invalid request"
// @Failure 403 {object} APIResponse "Bucket not allowed"
// @Failure 404 {object} APIResponse "Source disabled or object not found"
// @Router /extract/bol/s3 [post]
func (h *ExtractionHandler) ExtractBOLFromS3(c *gin.Context) {
	var input service.S3Input
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "bucket and key are required")
		return
	}

	result, err := h.extractionService.ExtractS3(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	c.Header("X-Extraction-ID", result.Meta.ID.String())
	c.JSON(http.StatusOK, result.Extraction)
}

// Export handles POST /extract/bol/export?format=csv|xlsx
// @Summary Extract and download as CSV or XLSX
// @Tags extraction
// @Accept multipart/form-data
// @Produce octet-stream
// @Param file formData file true "Document to analyze"
// @Param format query string false "csv or xlsx" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} APIResponse "Invalid format, missing file or unsupported type"
// @Router /extract/bol/export [post]
func (h *ExtractionHandler) Export(c *gin.Context) {
	format, err := export.ParseFormat(c.DefaultQuery("format", string(domain.ExportFormatCSV)))
	if err != nil {
		HandleError(c, err)
		return
	}

	result, ok := h.extractUpload(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	switch format {
	case domain.ExportFormatXLSX:
		err = export.WriteXLSX(&buf, result)
	default:
		err = export.WriteCSV(&buf, result)
	}
	if err != nil {
		HandleError(c, fmt.Errorf("writing %s export: %w", format, err))
		return
	}

	fileName := export.BuildFilename(strings.TrimPrefix(result.Meta.Source, "upload:"), format)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, fileName))
	c.Header("X-Extraction-ID", result.Meta.ID.String())
	c.Data(http.StatusOK, domain.ExportContentTypes[format], buf.Bytes())
}

// extractUpload reads the multipart "file" field and runs the extraction.
// Returns false if an error response has already been written.
func (h *ExtractionHandler) extractUpload(c *gin.Context) (*domain.ExtractionResult, bool) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return nil, false
	}
	defer func() { _ = file.Close() }()

	result, err := h.extractionService.ExtractUpload(c.Request.Context(), service.UploadInput{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		File:        file,
	})
	if err != nil {
		HandleError(c, err)
		return nil, false
	}
	return result, true
}
