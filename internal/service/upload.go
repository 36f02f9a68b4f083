package service

import (
	"net/http"
	"strings"

	"github.com/dustin/go-humanize"

	appErrors "github.com/noah-isme/coop-office-api/pkg/errors"
)

// checkUploadSize rejects buffers over the configured ceiling. The message
// carries the humanized limit so callers know what to trim to.
func checkUploadSize(data []byte, max int64) error {
	if max > 0 && int64(len(data)) > max {
		return appErrors.Clone(appErrors.ErrValidation, "file exceeds the maximum size of "+humanize.IBytes(uint64(max)))
	}
	return nil
}

// sniffPDF verifies the buffer's content is a PDF. The check runs before any
// upload so a rejected file never reaches the blob store.
func sniffPDF(data []byte) error {
	if len(data) == 0 {
		return appErrors.Clone(appErrors.ErrValidation, "file is required")
	}
	if contentType := http.DetectContentType(data); !strings.HasPrefix(contentType, "application/pdf") {
		return appErrors.Clone(appErrors.ErrValidation, "only PDF files are accepted")
	}
	return nil
}
