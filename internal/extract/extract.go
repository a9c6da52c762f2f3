package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

const (
	mimePDF  = "application/pdf"
	mimeText = "text/plain"
	mimeDOC  = "application/msword"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// ErrUnsupportedFormat is returned for resume formats the service does not accept.
// Word documents are rejected up front instead of being parsed as empty text.
var ErrUnsupportedFormat = errors.New("unsupported resume format")

// TextFromBytes extracts plain text from an in-memory resume payload.
// Supported formats: PDF (github.com/ledongthuc/pdf) and plain text.
func TextFromBytes(ctx context.Context, data []byte, mimeType string, fileName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	switch normalizeMimeType(mimeType, fileName) {
	case mimePDF:
		return extractPDF(data)
	case mimeText:
		return extractPlainText(data)
	case mimeDOC, mimeDOCX:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, friendlyName(mimeType, fileName))
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, friendlyName(mimeType, fileName))
	}
}

func extractPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("pdf plain text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func extractPlainText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", errors.New("text resume is not valid UTF-8")
	}
	return strings.TrimSpace(string(data)), nil
}

func normalizeMimeType(mimeType string, fileName string) string {
	clean := strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
	switch clean {
	case mimePDF, mimeText, mimeDOC, mimeDOCX:
		return clean
	}

	// http.DetectContentType reports generic types for many uploads; fall
	// back to the file extension before giving up.
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return mimePDF
	case ".txt", ".text", ".md":
		return mimeText
	case ".doc":
		return mimeDOC
	case ".docx":
		return mimeDOCX
	default:
		return clean
	}
}

func friendlyName(mimeType string, fileName string) string {
	if ext := strings.ToLower(filepath.Ext(fileName)); ext != "" {
		return ext
	}
	clean := strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
	if clean == "" {
		return "unknown"
	}
	return clean
}
