package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSignedURLSignerGenerateAndParse(t *testing.T) {
	signer := NewSignedURLSigner("secret", time.Hour)
	token, expiresAt, err := signer.Generate("pdfs/file.pdf")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.False(t, expiresAt.IsZero())

	publicID, parsedExpiry, err := signer.Parse(token)
	require.NoError(t, err)
	require.Equal(t, "pdfs/file.pdf", publicID)
	require.WithinDuration(t, expiresAt, parsedExpiry, time.Second)
}

func TestSignedURLSignerExpired(t *testing.T) {
	signer := NewSignedURLSigner("secret", time.Millisecond*10)
	token, _, err := signer.Generate("pdfs/file.pdf")
	require.NoError(t, err)
	time.Sleep(time.Millisecond * 20)

	_, _, err = signer.Parse(token)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestSignedURLSignerRejectsTampering(t *testing.T) {
	signer := NewSignedURLSigner("secret", time.Hour)
	token, _, err := signer.Generate("pdfs/file.pdf")
	require.NoError(t, err)

	_, _, err = NewSignedURLSigner("other", time.Hour).Parse(token)
	require.Error(t, err)
}

func TestSignedURL(t *testing.T) {
	signer := NewSignedURLSigner("secret", time.Hour)
	url, expiresAt, err := signer.SignedURL("/api/v1", "gallery/pic.png")
	require.NoError(t, err)
	require.Contains(t, url, "/api/v1/files/download?token=")
	require.True(t, expiresAt.After(time.Now()))
}
