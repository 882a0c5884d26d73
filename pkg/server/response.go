package server

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"

	"github.com/athapong/docsense/pkg/analysis"
	"github.com/athapong/docsense/pkg/ingest"
)

// HTTPError is an error with the status code it should be reported with
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// UploadResponse is the body of a successful upload
type UploadResponse struct {
	Success  bool             `json:"success"`
	ID       string           `json:"id"`
	Filename string           `json:"filename"`
	Analysis *analysis.Result `json:"analysis"`
	Message  string           `json:"message"`
}

func JSONResponse(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

func JSONError(w http.ResponseWriter, status int, message string) error {
	return JSONResponse(w, status, ErrorResponse{
		Success: false,
		Message: message,
	})
}

// HandleError writes err with the status its type maps to
func HandleError(w http.ResponseWriter, err error) {
	code, message := classify(err)
	JSONError(w, code, message)
}

func classify(err error) (int, string) {
	var (
		httpErr     *HTTPError
		unsupported *ingest.UnsupportedFormatError
		tooLarge    *ingest.TooLargeError
		maxBytes    *http.MaxBytesError
		failed      *analysis.AnalysisFailedError
	)

	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code, httpErr.Message
	case analysis.IsEmptyDocument(err):
		return http.StatusUnprocessableEntity, "Document is empty or could not be read"
	case errors.As(err, &unsupported):
		return http.StatusUnsupportedMediaType, "Only PDF and TXT files are allowed"
	case errors.As(err, &tooLarge), errors.As(err, &maxBytes):
		return http.StatusRequestEntityTooLarge, "File is too large"
	case errors.As(err, &failed):
		return http.StatusInternalServerError, "Error analyzing document: " + failed.Stage + " failed"
	}
	return http.StatusInternalServerError, "Error analyzing document"
}
