// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"archfolio/internal/imaging"
)

const (
	// maxUploadSize is the maximum allowed decoded upload size (25 MB).
	maxUploadSize = 25 << 20

	// thumbMaxWidth is the maximum thumbnail width in pixels.
	thumbMaxWidth = 400
)

// allowedUploadTypes defines MIME types accepted by the asset endpoint.
var allowedUploadTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

// uploadRequest is the JSON body for the asset upload endpoint. Data
// carries the file content base64-encoded; Folder picks the logical
// key prefix (hero, projects, team) and defaults to "assets".
type uploadRequest struct {
	Filename string `json:"filename"`
	Folder   string `json:"folder"`
	Data     string `json:"data"`
}

// folderRe restricts upload folders to simple path segments.
var folderRe = regexp.MustCompile(`^[a-z0-9-]{1,40}$`)

// AssetUpload accepts a base64-encoded image, stores the original (and
// a thumbnail when the image is large enough) in the public bucket,
// and returns their URLs. Admin forms paste the returned URL into the
// entity's image field.
func (a *Admin) AssetUpload(w http.ResponseWriter, r *http.Request) {
	if a.storageClient == nil {
		writeUploadError(w, "Object storage is not configured.", http.StatusServiceUnavailable)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize*4/3+4096)
	var req uploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeUploadError(w, "Invalid request body.", http.StatusBadRequest)
		return
	}

	data, err := base64.StdEncoding.DecodeString(req.Data)
	if err != nil {
		writeUploadError(w, "File data is not valid base64.", http.StatusBadRequest)
		return
	}
	if len(data) == 0 {
		writeUploadError(w, "No file provided.", http.StatusBadRequest)
		return
	}
	if len(data) > maxUploadSize {
		writeUploadError(w, "File too large. Maximum size is 25 MB.", http.StatusRequestEntityTooLarge)
		return
	}

	// Detect content type by sniffing, never by trusting the client.
	contentType := http.DetectContentType(data)
	if strings.HasSuffix(strings.ToLower(req.Filename), ".svg") &&
		(strings.Contains(contentType, "xml") || strings.Contains(contentType, "text/plain")) {
		contentType = "image/svg+xml"
	}
	if !allowedUploadTypes[contentType] {
		writeUploadError(w, fmt.Sprintf("File type %q is not allowed.", contentType), http.StatusBadRequest)
		return
	}

	now := time.Now()
	ext := filepath.Ext(req.Filename)
	if ext == "" {
		ext = extensionFromType(contentType)
	}
	folder := strings.ToLower(strings.TrimSpace(req.Folder))
	if !folderRe.MatchString(folder) {
		folder = "assets"
	}
	fileID := uuid.New().String()
	key := fmt.Sprintf("%s/%d/%02d/%s%s", folder, now.Year(), now.Month(), fileID, ext)

	ctx := r.Context()
	url, err := a.storageClient.UploadPublic(ctx, key, contentType, data)
	if err != nil {
		slog.Error("asset upload failed", "error", err, "key", key)
		writeUploadError(w, "Failed to upload file.", http.StatusInternalServerError)
		return
	}

	// Thumbnail for raster types, best-effort. Small images skip it.
	var thumbURL string
	if imaging.Thumbable(contentType) {
		thumbData, err := imaging.Thumbnail(data, thumbMaxWidth)
		if err != nil {
			slog.Warn("thumbnail generation failed", "error", err, "key", key)
		} else if thumbData != nil {
			thumbKey := fmt.Sprintf("%s/%d/%02d/%s_thumb.jpg", folder, now.Year(), now.Month(), fileID)
			tu, err := a.storageClient.UploadPublic(ctx, thumbKey, "image/jpeg", thumbData)
			if err != nil {
				slog.Warn("thumbnail upload failed", "error", err, "key", thumbKey)
			} else {
				thumbURL = tu
			}
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]any{
		"url":       url,
		"thumb_url": thumbURL,
		"type":      contentType,
		"size":      len(data),
	})
}

// extensionFromType returns a file extension for known MIME types.
func extensionFromType(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "image/svg+xml":
		return ".svg"
	case "application/pdf":
		return ".pdf"
	default:
		return ""
	}
}

// writeUploadError writes a JSON error response for upload operations.
func writeUploadError(w http.ResponseWriter, msg string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
