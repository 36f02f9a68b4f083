package handler

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"os"
	"path"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/coop-office-api/pkg/errors"
	"github.com/noah-isme/coop-office-api/pkg/response"
	"github.com/noah-isme/coop-office-api/pkg/storage"
)

// FileHandler streams stored blobs after validating signed download tokens.
type FileHandler struct {
	blobs  storage.BlobStore
	signer *storage.SignedURLSigner
}

// NewFileHandler constructs FileHandler.
func NewFileHandler(blobs storage.BlobStore, signer *storage.SignedURLSigner) *FileHandler {
	return &FileHandler{blobs: blobs, signer: signer}
}

// Download godoc
// @Summary Stream a blob referenced by a signed token
// @Tags Files
// @Produce octet-stream
// @Param token query string true "Signed download token"
// @Success 200 {file} binary
// @Router /files/download [get]
func (h *FileHandler) Download(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "download token is required"))
		return
	}

	publicID, _, err := h.signer.Parse(token)
	if err != nil {
		if errors.Is(err, storage.ErrTokenExpired) {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "download link has expired"))
			return
		}
		response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "invalid download token"))
		return
	}

	file, err := h.blobs.Open(publicID)
	if err != nil {
		if os.IsNotExist(errors.Unwrap(err)) || os.IsNotExist(err) {
			response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "file not found"))
			return
		}
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to open file"))
		return
	}
	defer file.Close()

	contentType := mime.TypeByExtension(path.Ext(publicID))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	c.Header("Content-Disposition", `attachment; filename="`+path.Base(publicID)+`"`)
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, file)
}
