package ingest

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/athapong/docsense/pkg/analysis"
	"github.com/athapong/docsense/pkg/metrics"
)

// DefaultMaxBytes is the upload size cap
const DefaultMaxBytes int64 = 10 * 1024 * 1024

const (
	mimePDF   = "application/pdf"
	mimePlain = "text/plain"
)

// Upload is a file received from a client
type Upload struct {
	Filename string
	MimeType string
	Content  []byte
}

// UnsupportedFormatError rejects uploads outside the PDF / plain text whitelist
type UnsupportedFormatError struct {
	Filename string
	MimeType string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file type %q for %q: only PDF and TXT files are allowed", e.MimeType, e.Filename)
}

// TooLargeError rejects uploads above the size cap
type TooLargeError struct {
	Size  int64
	Limit int64
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("file of %d bytes exceeds the %d byte limit", e.Size, e.Limit)
}

// Extractor turns whitelisted uploads into plain text documents
type Extractor struct {
	maxBytes int64
	logger   *logrus.Logger
}

// NewExtractor creates an extractor; a non-positive maxBytes selects DefaultMaxBytes
func NewExtractor(maxBytes int64, logger *logrus.Logger) *Extractor {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return &Extractor{maxBytes: maxBytes, logger: logger}
}

// MaxBytes returns the size cap
func (e *Extractor) MaxBytes() int64 {
	return e.maxBytes
}

// Detect returns the document format of an upload. Both the MIME type and the
// file extension must name the same whitelisted format.
func Detect(filename, mimeType string, content []byte) (analysis.Format, error) {
	mediaType := mimeType
	if mediaType == "" || mediaType == "application/octet-stream" {
		mediaType = http.DetectContentType(content)
	}
	if parsed, _, err := mime.ParseMediaType(mediaType); err == nil {
		mediaType = parsed
	}

	ext := strings.ToLower(filepath.Ext(filename))
	switch {
	case mediaType == mimePDF && ext == ".pdf":
		return analysis.FormatPDFExtracted, nil
	case mediaType == mimePlain && ext == ".txt":
		return analysis.FormatPlain, nil
	}
	return "", &UnsupportedFormatError{Filename: filename, MimeType: mimeType}
}

// Extract validates an upload and returns its text
func (e *Extractor) Extract(ctx context.Context, upload Upload) (analysis.Document, error) {
	size := int64(len(upload.Content))
	if size > e.maxBytes {
		metrics.IngestErrors.WithLabelValues("too_large").Inc()
		return analysis.Document{}, &TooLargeError{Size: size, Limit: e.maxBytes}
	}

	format, err := Detect(upload.Filename, upload.MimeType, upload.Content)
	if err != nil {
		metrics.IngestErrors.WithLabelValues("unsupported_format").Inc()
		return analysis.Document{}, err
	}

	e.logger.WithFields(logrus.Fields{
		"filename": upload.Filename,
		"format":   format,
		"size":     size,
	}).Info("Extracting document text")

	var text string
	switch format {
	case analysis.FormatPDFExtracted:
		text, err = e.pdfText(upload.Content)
		if err != nil {
			metrics.IngestErrors.WithLabelValues("unreadable").Inc()
			return analysis.Document{}, errors.Wrapf(err, "failed to read PDF %q", upload.Filename)
		}
	default:
		text = string(upload.Content)
		if !utf8.ValidString(text) {
			text = strings.ToValidUTF8(text, "�")
		}
	}

	metrics.UploadBytes.Observe(float64(size))
	return analysis.Document{Text: text, Format: format}, nil
}

func (e *Extractor) pdfText(content []byte) (text string, err error) {
	// the pdf reader panics on some malformed files
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("malformed PDF: %v", rec)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		p := r.Page(pageIndex)
		if p.V.IsNull() {
			continue
		}

		pageText, err := p.GetPlainText(nil)
		if err != nil {
			e.logger.WithError(err).WithField("page", pageIndex).Warn("Skipping unreadable PDF page")
			continue
		}
		b.WriteString(pageText)
	}

	return b.String(), nil
}
