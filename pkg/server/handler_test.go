package server

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/athapong/docsense/pkg/analysis"
	"github.com/athapong/docsense/pkg/analysis/processors"
	"github.com/athapong/docsense/pkg/ingest"
	"github.com/athapong/docsense/pkg/storage"
)

const scenario = "John went to Paris. He works at Acme Corp. It was a great trip!"

type testEnv struct {
	router    http.Handler
	uploadDir string
	store     *storage.JSONStore
}

func newTestEnv(t *testing.T, maxBytes int64) *testEnv {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	tools, err := processors.NewToolkit(processors.ToolkitConfig{Logger: logger})
	require.NoError(t, err)
	analyzer, err := analysis.NewAnalyzer(tools, analysis.WithLogger(logger))
	require.NoError(t, err)

	dir := t.TempDir()
	env := &testEnv{
		uploadDir: filepath.Join(dir, "uploads"),
		store:     storage.NewJSONStore(filepath.Join(dir, "records")),
	}
	handler := NewHandler(logger, ingest.NewExtractor(maxBytes, logger), analyzer, env.store, env.uploadDir)
	env.router = NewRouter(logger, handler)
	return env
}

func multipartBody(t *testing.T, field, filename, mimeType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	header.Set("Content-Type", mimeType)
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	return &body, mw.FormDataContentType()
}

func (e *testEnv) upload(t *testing.T, field, filename, mimeType string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := multipartBody(t, field, filename, mimeType, content)

	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) assertUploadDirEmpty(t *testing.T) {
	t.Helper()
	entries, err := os.ReadDir(e.uploadDir)
	if os.IsNotExist(err) {
		return
	}
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUploadPlainText(t *testing.T) {
	env := newTestEnv(t, 0)

	rec := env.upload(t, UploadField, "trip.txt", "text/plain", []byte(scenario))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	body := rec.Body.String()
	assert.True(t, gjson.Get(body, "success").Bool())
	assert.Equal(t, "File analyzed successfully", gjson.Get(body, "message").String())
	assert.Equal(t, "trip.txt", gjson.Get(body, "filename").String())
	assert.Equal(t, int64(14), gjson.Get(body, "analysis.wordCount").Int())
	assert.Equal(t, int64(3), gjson.Get(body, "analysis.sentenceCount").Int())
	assert.Equal(t, int64(1), gjson.Get(body, "analysis.readingTime").Int())
	assert.Equal(t, "comparative", gjson.Get(body, "analysis.sentiment.mode").String())
	assert.Equal(t, "positive", gjson.Get(body, "analysis.sentiment.label").String())
	assert.Contains(t, gjson.Get(body, "analysis.entities.people").String(), "John")
	assert.Contains(t, gjson.Get(body, "analysis.entities.locations").String(), "Paris")
	assert.True(t, gjson.Get(body, "analysis.keyPhrases.0.term").Exists())
	assert.False(t, gjson.Get(body, "analysis.characterCount").Exists())

	id := gjson.Get(body, "id").String()
	require.NotEmpty(t, id)
	stored, err := os.ReadFile(env.store.Path(id))
	require.NoError(t, err)
	assert.Equal(t, "plain", gjson.GetBytes(stored, "fileType").String())
	assert.Equal(t, scenario, gjson.GetBytes(stored, "content").String())

	env.assertUploadDirEmpty(t)
}

func TestUploadUnreadablePDF(t *testing.T) {
	env := newTestEnv(t, 0)

	rec := env.upload(t, UploadField, "broken.pdf", "application/pdf", []byte("not really a pdf"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, gjson.Get(rec.Body.String(), "success").Bool())
	env.assertUploadDirEmpty(t)
}

func TestUploadErrors(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		filename string
		mimeType string
		content  string
		code     int
		message  string
	}{
		{
			name: "empty document", field: UploadField, filename: "empty.txt", mimeType: "text/plain",
			content: "   \n ", code: http.StatusUnprocessableEntity, message: "Document is empty or could not be read",
		},
		{
			name: "unsupported type", field: UploadField, filename: "cv.docx", mimeType: "application/msword",
			content: "binary", code: http.StatusUnsupportedMediaType, message: "Only PDF and TXT files are allowed",
		},
		{
			name: "extension mismatch", field: UploadField, filename: "notes.pdf", mimeType: "text/plain",
			content: "hello", code: http.StatusUnsupportedMediaType, message: "Only PDF and TXT files are allowed",
		},
		{
			name: "wrong field", field: "file", filename: "notes.txt", mimeType: "text/plain",
			content: "hello", code: http.StatusBadRequest, message: "No file uploaded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, 0)
			rec := env.upload(t, tt.field, tt.filename, tt.mimeType, []byte(tt.content))

			assert.Equal(t, tt.code, rec.Code)
			body := rec.Body.String()
			assert.False(t, gjson.Get(body, "success").Bool())
			assert.True(t, gjson.Get(body, "success").Exists())
			assert.Equal(t, tt.message, gjson.Get(body, "message").String())
			env.assertUploadDirEmpty(t)
		})
	}
}

func TestUploadTooLarge(t *testing.T) {
	env := newTestEnv(t, 16)

	rec := env.upload(t, UploadField, "big.txt", "text/plain", []byte(strings.Repeat("word ", 40)))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "File is too large", gjson.Get(rec.Body.String(), "message").String())
}

func TestUploadNotMultipart(t *testing.T) {
	env := newTestEnv(t, 0)

	req := httptest.NewRequest(http.MethodPost, "/api/upload", strings.NewReader(`{"text":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	env := newTestEnv(t, 0)

	req := httptest.NewRequest(http.MethodOptions, "/api/upload", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestHealthAndMetrics(t *testing.T) {
	env := newTestEnv(t, 0)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-42", rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "ok", gjson.Get(rec.Body.String(), "status").String())
	assert.Equal(t, int64(4), gjson.Get(rec.Body.String(), "stages.#").Int())

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec = httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "system_goroutines")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{analysis.ErrEmptyDocument, http.StatusUnprocessableEntity},
		{errors.Wrap(&ingest.UnsupportedFormatError{Filename: "a.doc"}, "ingest"), http.StatusUnsupportedMediaType},
		{&ingest.TooLargeError{Size: 2, Limit: 1}, http.StatusRequestEntityTooLarge},
		{&http.MaxBytesError{Limit: 1}, http.StatusRequestEntityTooLarge},
		{&analysis.AnalysisFailedError{Stage: "entities", Err: errors.New("boom")}, http.StatusInternalServerError},
		{&HTTPError{Code: http.StatusBadRequest, Message: "bad"}, http.StatusBadRequest},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		code, message := classify(tt.err)
		assert.Equal(t, tt.code, code, tt.err.Error())
		assert.NotEmpty(t, message)
	}

	_, message := classify(&analysis.AnalysisFailedError{Stage: "entities", Err: errors.New("boom")})
	assert.Contains(t, message, "entities")
}

func TestServerPortInUse(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer ln.Close()
	port := ln.Addr().(*net.TCPAddr).Port

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	err = New(logger, port, http.NotFoundHandler()).Run(context.Background())
	var inUse *PortInUseError
	require.True(t, errors.As(err, &inUse))
	assert.Equal(t, port, inUse.Port)
	assert.Contains(t, err.Error(), "already in use")
}

func TestServerGracefulShutdown(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- New(logger, 0, http.NotFoundHandler()).Run(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
