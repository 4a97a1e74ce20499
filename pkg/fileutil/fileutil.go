package fileutil

import (
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Error variables define the failure scenarios for file helpers.
var (
	// ErrFileNotFound indicates the requested path does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrFileRead indicates the file exists but could not be read.
	ErrFileRead = errors.New("failed to read file")
)

// byteUnits are binary (1024-based), matching the sizes users see in
// their file managers.
var byteUnits = []string{"B", "KB", "MB", "GB", "TB", "PB"}

// Exists reports whether path exists on disk, regardless of type.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// DataURL reads the file at path and returns it as a base64 data URL
// suitable for inlining into src or href attributes. The MIME type comes
// from the file extension, falling back to content sniffing for unknown
// extensions.
func DataURL(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return "", fmt.Errorf("%w: %s", ErrFileRead, path)
	}

	return "data:" + mimeType(path, data) + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// FileSize returns the size of the file at path in human-readable form,
// e.g. "1.5 MB".
func FileSize(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return "", fmt.Errorf("%w: %s", ErrFileRead, path)
	}

	return FormatBytes(info.Size()), nil
}

// FormatBytes renders a byte count using binary units with at most one
// decimal place. Whole values drop the decimal: "2 KB", not "2.0 KB".
func FormatBytes(n int64) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}

	value := float64(n)
	unit := 0
	for value >= 1024 && unit < len(byteUnits)-1 {
		value /= 1024
		unit++
	}

	formatted := strings.TrimSuffix(fmt.Sprintf("%.1f", value), ".0")
	return formatted + " " + byteUnits[unit]
}

// mimeType resolves the MIME type by extension first, sniffing the
// content when the extension is unknown. Parameters such as charset are
// stripped so the result slots directly into a data URL.
func mimeType(path string, data []byte) string {
	if t := mime.TypeByExtension(filepath.Ext(path)); t != "" {
		if media, _, err := mime.ParseMediaType(t); err == nil {
			return media
		}
		return t
	}
	media, _, err := mime.ParseMediaType(http.DetectContentType(data))
	if err != nil {
		return "application/octet-stream"
	}
	return media
}
