package handler_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var pdfBytes = []byte("%PDF-1.4 test content")

// multipartBody builds a form with a single "file" part of the given content type.
func multipartBody(t *testing.T, fileName, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+fileName+`"`)
	h.Set("Content-Type", contentType)
	part, err := writer.CreatePart(h)
	if err != nil {
		t.Fatal(err)
	}
	_, _ = part.Write(content)
	_ = writer.Close()
	return body, writer.FormDataContentType()
}

func newUploadContext(t *testing.T, w http.ResponseWriter, path, fileName, contentType string, content []byte) *gin.Context {
	t.Helper()
	body, formType := multipartBody(t, fileName, contentType, content)
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, path, body)
	c.Request.Header.Set("Content-Type", formType)
	return c
}

var fixedID = uuid.MustParse("0b7c8f5e-2d7e-4b8e-9a4c-6c2f1e0a9d33")
