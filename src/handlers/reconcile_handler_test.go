package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/username/commrec/backend/src/config"
	"github.com/username/commrec/backend/src/services"
)

func init() {
	config.Cfg = &config.AppConfig{MaxUploadSizeBytes: 10 * 1024 * 1024}
}

func multipartUpload(t *testing.T, carrierID, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(carrierID, filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("writing part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("closing writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

const centeneCSV = "Writing Broker Name,Payment Amount\nAlice Adams,100\n"

func TestHandleReconcileAcceptsCSVUpload(t *testing.T) {
	captured := &stubService{result: sampleResult()}
	h := NewReconcileHandler(captured)

	body, contentType := multipartUpload(t, "centene", "Centene 06.2024 Commission.csv", centeneCSV)
	req := httptest.NewRequest(http.MethodPost, "/api/reconcile", body)
	req.Header.Set("Content-Type", contentType)

	rr := httptest.NewRecorder()
	h.HandleReconcile(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rr.Code, rr.Body.String())
	}
}

func TestHandleReconcilePeriodFromFilenameFallback(t *testing.T) {
	h := NewReconcileHandler(&stubService{result: sampleResult()})

	// Filename with no period segment and no period form field.
	body, contentType := multipartUpload(t, "centene", "export.csv", centeneCSV)
	req := httptest.NewRequest(http.MethodPost, "/api/reconcile", body)
	req.Header.Set("Content-Type", contentType)

	rr := httptest.NewRecorder()
	h.HandleReconcile(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 when period cannot be determined", rr.Code)
	}
}

func TestHandleReconcileExplicitPeriodOverridesFilename(t *testing.T) {
	h := NewReconcileHandler(&stubService{result: sampleResult()})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("period", "2024-06"); err != nil {
		t.Fatalf("WriteField: %v", err)
	}
	part, err := mw.CreateFormFile("centene", "export.csv")
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	part.Write([]byte(centeneCSV))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/reconcile", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rr := httptest.NewRecorder()
	h.HandleReconcile(rr, req)
	if rr.Code != http.StatusOK {
		t.Errorf("status = %d, want 200, body %s", rr.Code, rr.Body.String())
	}
}

func TestHandleReconcileNoFiles(t *testing.T) {
	h := NewReconcileHandler(&stubService{result: sampleResult()})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("period", "2024-06")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/reconcile", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rr := httptest.NewRecorder()
	h.HandleReconcile(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 when no files attached", rr.Code)
	}
}

func TestHandleReconcileServiceErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"parsing failure", services.ErrParsingFailed, http.StatusBadRequest},
		{"internal error", bytes.ErrTooLarge, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewReconcileHandler(&stubService{err: tt.err})
			body, contentType := multipartUpload(t, "centene", "Centene 06.2024 Commission.csv", centeneCSV)
			req := httptest.NewRequest(http.MethodPost, "/api/reconcile", body)
			req.Header.Set("Content-Type", contentType)

			rr := httptest.NewRecorder()
			h.HandleReconcile(rr, req)
			if rr.Code != tt.want {
				t.Errorf("status = %d, want %d", rr.Code, tt.want)
			}
		})
	}
}
