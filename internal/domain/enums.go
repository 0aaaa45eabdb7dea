package domain

// FileType represents the document formats accepted for extraction.
type FileType string

const (
	FileTypePDF FileType = "pdf"
	FileTypeJPG FileType = "jpg"
	FileTypePNG FileType = "png"
)

// AllowedFileTypes maps FileType to its MIME content type.
var AllowedFileTypes = map[FileType]string{
	FileTypePDF: "application/pdf",
	FileTypeJPG: "image/jpeg",
	FileTypePNG: "image/png",
}

// AllowedContentTypes maps MIME content types back to FileType.
var AllowedContentTypes = map[string]FileType{
	"application/pdf": FileTypePDF,
	"image/jpeg":      FileTypeJPG,
	"image/png":       FileTypePNG,
}

// BlockType is the provider-defined kind of an analysis block.
type BlockType string

const (
	BlockTypeKeyValueSet      BlockType = "KEY_VALUE_SET"
	BlockTypeLine             BlockType = "LINE"
	BlockTypeWord             BlockType = "WORD"
	BlockTypeSelectionElement BlockType = "SELECTION_ELEMENT"
	BlockTypePage             BlockType = "PAGE"
	BlockTypeTable            BlockType = "TABLE"
	BlockTypeCell             BlockType = "CELL"
)

// EntityType marks which half of a form field a KEY_VALUE_SET block holds.
type EntityType string

const (
	EntityTypeKey   EntityType = "KEY"
	EntityTypeValue EntityType = "VALUE"
)

// RelationshipType labels an edge between blocks.
type RelationshipType string

const (
	RelationshipTypeChild RelationshipType = "CHILD"
	RelationshipTypeValue RelationshipType = "VALUE"
)

// SelectionStatus is the state of a checkbox or radio element.
type SelectionStatus string

const (
	SelectionStatusSelected    SelectionStatus = "SELECTED"
	SelectionStatusNotSelected SelectionStatus = "NOT_SELECTED"
)

// ExportFormat is a downloadable rendition of an extraction.
type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatXLSX ExportFormat = "xlsx"
)

// ExportContentTypes maps ExportFormat to the response content type.
var ExportContentTypes = map[ExportFormat]string{
	ExportFormatCSV:  "text/csv; charset=utf-8",
	ExportFormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}
