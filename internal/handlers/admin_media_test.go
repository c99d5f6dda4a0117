package handlers

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"archfolio/internal/storage"
)

// uploadBody builds the JSON body for the asset upload endpoint.
func uploadBody(t *testing.T, filename string, data []byte) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(uploadRequest{
		Filename: filename,
		Data:     base64.StdEncoding.EncodeToString(data),
	})
	if err != nil {
		t.Fatalf("marshal upload body: %v", err)
	}
	return bytes.NewBuffer(body)
}

func uploadErrorOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("upload response is not JSON: %v; body: %s", err, w.Body.String())
	}
	return resp["error"]
}

func TestAssetUploadWithoutStorage(t *testing.T) {
	a := &Admin{} // no storage client configured

	req := httptest.NewRequest("POST", "/admin/upload", uploadBody(t, "a.png", []byte("x")))
	w := httptest.NewRecorder()
	a.AssetUpload(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", w.Code)
	}
	if msg := uploadErrorOf(t, w); !strings.Contains(msg, "not configured") {
		t.Errorf("unexpected error message: %q", msg)
	}
}

func TestAssetUploadBadRequests(t *testing.T) {
	// A storage client value (not nil) gets the request past the config
	// check; every case below fails validation before storage is touched.
	a := &Admin{storageClient: &storage.Client{}}

	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{"invalid json", "{not json", http.StatusBadRequest},
		{"bad base64", `{"filename":"a.png","data":"!!!not-base64!!!"}`, http.StatusBadRequest},
		{"empty data", `{"filename":"a.png","data":""}`, http.StatusBadRequest},
		{
			"disallowed type",
			`{"filename":"a.bin","data":"` + base64.StdEncoding.EncodeToString([]byte("plain text, not an image")) + `"}`,
			http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/admin/upload", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			a.AssetUpload(w, req)

			if w.Code != tt.wantCode {
				t.Errorf("expected %d, got %d; body: %s", tt.wantCode, w.Code, w.Body.String())
			}
			if msg := uploadErrorOf(t, w); msg == "" {
				t.Error("expected a JSON error message")
			}
		})
	}
}

func TestExtensionFromType(t *testing.T) {
	tests := []struct {
		contentType string
		want        string
	}{
		{"image/jpeg", ".jpg"},
		{"image/png", ".png"},
		{"image/gif", ".gif"},
		{"image/webp", ".webp"},
		{"image/svg+xml", ".svg"},
		{"application/pdf", ".pdf"},
		{"application/octet-stream", ""},
	}

	for _, tt := range tests {
		if got := extensionFromType(tt.contentType); got != tt.want {
			t.Errorf("extensionFromType(%q) = %q, want %q", tt.contentType, got, tt.want)
		}
	}
}
