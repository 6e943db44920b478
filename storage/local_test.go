package storage_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dinehub/restaurant-backend/storage"
)

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("image", filename)
	assert.NoError(t, err)
	_, err = fw.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	assert.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["image"][0]
}

func TestLocalStoreSave(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewLocalStore(dir, "")
	assert.NoError(t, err)

	ref, err := store.Save(context.Background(), fileHeader(t, "burger.png", []byte("png data")))
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "/images/"))
	assert.True(t, strings.HasSuffix(ref, ".png"))

	data, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(ref, "/images/")))
	assert.NoError(t, err)
	assert.Equal(t, []byte("png data"), data)
}

func TestLocalStoreBaseURL(t *testing.T) {
	store, err := storage.NewLocalStore(t.TempDir(), "http://menu.example.com")
	assert.NoError(t, err)

	ref, err := store.Save(context.Background(), fileHeader(t, "pasta.jpg", []byte("jpg")))
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "http://menu.example.com/images/"))
}

func TestLocalStoreUniqueNames(t *testing.T) {
	store, err := storage.NewLocalStore(t.TempDir(), "")
	assert.NoError(t, err)

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		ref, err := store.Save(context.Background(), fileHeader(t, "same.png", []byte("x")))
		assert.NoError(t, err)
		assert.False(t, seen[ref], "duplicate reference %s", ref)
		seen[ref] = true
	}
}

func TestLocalStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "images")
	_, err := storage.NewLocalStore(dir, "")
	assert.NoError(t, err)

	info, err := os.Stat(dir)
	assert.NoError(t, err)
	assert.True(t, info.IsDir())
}
