package server

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/athapong/docsense/pkg/analysis"
	"github.com/athapong/docsense/pkg/ingest"
	"github.com/athapong/docsense/pkg/metrics"
	"github.com/athapong/docsense/pkg/storage"
)

// UploadField is the multipart field carrying the document
const UploadField = "document"

// multipartOverhead is allowed on top of the file size for form boundaries and headers
const multipartOverhead = 1 << 20

// Handler serves document uploads
type Handler struct {
	logger    *logrus.Logger
	extractor *ingest.Extractor
	analyzer  *analysis.Analyzer
	store     storage.Store
	uploadDir string
}

func NewHandler(
	logger *logrus.Logger,
	extractor *ingest.Extractor,
	analyzer *analysis.Analyzer,
	store storage.Store,
	uploadDir string,
) *Handler {
	if store == nil {
		store = storage.NopStore{}
	}
	return &Handler{
		logger:    logger,
		extractor: extractor,
		analyzer:  analyzer,
		store:     store,
		uploadDir: uploadDir,
	}
}

func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqID := RequestID(ctx)
	log := h.logger.WithField("request_id", reqID)

	r.Body = http.MaxBytesReader(w, r.Body, h.extractor.MaxBytes()+multipartOverhead)

	upload, err := h.receive(r)
	if err != nil {
		log.WithError(err).Warn("Rejected upload")
		metrics.UploadsTotal.WithLabelValues("unknown", "rejected").Inc()
		HandleError(w, err)
		return
	}

	log = log.WithField("filename", upload.Filename)
	log.Info("Received upload")

	doc, err := h.extractor.Extract(ctx, upload)
	if err != nil {
		log.WithError(err).Warn("Failed to extract document")
		metrics.UploadsTotal.WithLabelValues("unknown", "rejected").Inc()
		HandleError(w, err)
		return
	}

	result, err := h.analyzer.Analyze(ctx, doc.Text)
	if err != nil {
		log.WithError(err).Error("Error analyzing document")
		metrics.UploadsTotal.WithLabelValues(string(doc.Format), "error").Inc()
		HandleError(w, err)
		return
	}

	record := &storage.Record{
		ID:         uuid.New().String(),
		Filename:   upload.Filename,
		FileType:   string(doc.Format),
		Content:    doc.Text,
		UploadDate: time.Now().UTC(),
		Analysis:   result,
	}
	if err := h.store.Save(ctx, record); err != nil {
		log.WithError(err).WithField("record_id", record.ID).Error("Failed to store analysis record")
	}

	metrics.UploadsTotal.WithLabelValues(string(doc.Format), "success").Inc()
	log.WithFields(logrus.Fields{
		"record_id":  record.ID,
		"word_count": result.WordCount,
	}).Info("File analyzed successfully")

	if err := JSONResponse(w, http.StatusOK, UploadResponse{
		Success:  true,
		ID:       record.ID,
		Filename: upload.Filename,
		Analysis: result,
		Message:  "File analyzed successfully",
	}); err != nil {
		log.WithError(err).Error("Error sending response")
	}
}

// receive stores the uploaded file under the upload dir, reads it back and
// removes it
func (h *Handler) receive(r *http.Request) (ingest.Upload, error) {
	if err := r.ParseMultipartForm(h.extractor.MaxBytes()); err != nil {
		var maxBytes *http.MaxBytesError
		if errors.As(err, &maxBytes) {
			return ingest.Upload{}, err
		}
		return ingest.Upload{}, &HTTPError{Code: http.StatusBadRequest, Message: "No file uploaded"}
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(UploadField)
	if err != nil {
		return ingest.Upload{}, &HTTPError{Code: http.StatusBadRequest, Message: "No file uploaded"}
	}
	defer file.Close()

	if header.Size > h.extractor.MaxBytes() {
		return ingest.Upload{}, &ingest.TooLargeError{Size: header.Size, Limit: h.extractor.MaxBytes()}
	}

	if err := os.MkdirAll(h.uploadDir, 0755); err != nil {
		return ingest.Upload{}, errors.Wrap(err, "failed to create upload directory")
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	tmp, err := os.CreateTemp(h.uploadDir, "upload-*"+ext)
	if err != nil {
		return ingest.Upload{}, errors.Wrap(err, "failed to create upload file")
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err := io.Copy(tmp, file); err != nil {
		return ingest.Upload{}, errors.Wrap(err, "failed to save upload")
	}

	content, err := os.ReadFile(tmp.Name())
	if err != nil {
		return ingest.Upload{}, errors.Wrap(err, "failed to read upload")
	}

	return ingest.Upload{
		Filename: header.Filename,
		MimeType: header.Header.Get("Content-Type"),
		Content:  content,
	}, nil
}

func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	JSONResponse(w, http.StatusOK, map[string]any{
		"status": "ok",
		"stages": h.analyzer.Stages().Names(),
	})
}
