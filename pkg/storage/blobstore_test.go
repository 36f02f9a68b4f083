package storage

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalBlobStoreRoundTrip(t *testing.T) {
	store, err := NewLocalBlobStore(t.TempDir(), "/api/v1")
	require.NoError(t, err)

	obj, err := store.Upload("pdfs", []byte("%PDF-1.4 test"), ".pdf")
	require.NoError(t, err)
	assert.Contains(t, obj.Location, "/api/v1/files/pdfs/")
	assert.Contains(t, obj.PublicID, "pdfs/")

	file, err := store.Open(obj.PublicID)
	require.NoError(t, err)
	defer file.Close()
	data, err := io.ReadAll(file)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 test"), data)

	require.NoError(t, store.Destroy(obj.PublicID))
	_, err = store.Open(obj.PublicID)
	require.Error(t, err)
}

func TestLocalBlobStoreDestroyMissingIsNoop(t *testing.T) {
	store, err := NewLocalBlobStore(t.TempDir(), "/api/v1")
	require.NoError(t, err)
	assert.NoError(t, store.Destroy("pdfs/nope.pdf"))
}

func TestLocalBlobStoreResolveStaysInsideBase(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalBlobStore(dir, "/api/v1")
	require.NoError(t, err)

	_, err = store.Open("../../etc/passwd")
	require.Error(t, err)
	if _, statErr := os.Stat(dir); statErr != nil {
		t.Fatalf("base dir missing: %v", statErr)
	}
}

func TestPublicIDFromLocation(t *testing.T) {
	assert.Equal(t, "pdfs/abc123.pdf", PublicIDFromLocation("/api/v1/files/pdfs/abc123.pdf"))
	assert.Equal(t, "gallery/img.png", PublicIDFromLocation("https://cdn.example.com/files/gallery/img.png"))
}
