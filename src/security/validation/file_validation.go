package validation

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/username/commrec/backend/src/logger"
)

// AllowedClientContentTypes is a map for quick lookup of allowed
// client-declared MIME types for carrier export uploads.
var AllowedClientContentTypes = map[string]bool{
	"text/csv":                 true,
	"application/csv":          true,
	"application/vnd.ms-excel": true,
	"text/plain":               true,
	"application/octet-stream": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true, // .xlsx
}

// ValidateClientContentType checks the Content-Type header provided by the
// client for a file part.
func ValidateClientContentType(contentType string) error {
	if contentType == "" {
		return nil // multipart parts frequently omit it
	}
	if allowed, exists := AllowedClientContentTypes[strings.ToLower(contentType)]; !exists || !allowed {
		logger.L.Warn("Disallowed client-declared Content-Type", "contentType", contentType)
		return fmt.Errorf("client-declared file type %q is not allowed for commission uploads", contentType)
	}
	return nil
}

// ValidateFileContentByMagicBytes checks the actual file content signature.
// It returns the detected content type and an error if validation fails.
func ValidateFileContentByMagicBytes(file io.ReadSeeker) (string, error) {
	if file == nil {
		return "", fmt.Errorf("file is nil")
	}

	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read file for content type checking: %w", err)
	}

	// Reset so the actual reader sees the full file.
	if _, seekErr := file.Seek(0, io.SeekStart); seekErr != nil {
		return "", fmt.Errorf("failed to reset file read pointer: %w", seekErr)
	}

	detectedContentType := http.DetectContentType(buffer[:n])
	detectedContentType = strings.ToLower(strings.Split(detectedContentType, ";")[0])

	// xlsx workbooks are zip archives; CSVs detect as plain text.
	allowedDetectedTypes := map[string]bool{
		"text/plain":      true,
		"text/csv":        true,
		"application/csv": true,
		"application/zip": true,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
		"application/octet-stream":                                         true,
	}

	if !allowedDetectedTypes[detectedContentType] {
		logger.L.Warn("Disallowed detected file content type (magic bytes)", "detectedContentType", detectedContentType)
		return detectedContentType, fmt.Errorf("detected file content type %q is not consistent with a carrier export", detectedContentType)
	}

	return detectedContentType, nil
}
