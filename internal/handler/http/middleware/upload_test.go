package middleware_test

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peiwenliu/sharecircle/internal/handler/http/middleware"
)

type fakeStorage struct {
	uploaded    bool
	contentType string
	size        int64
}

func (f *fakeStorage) Upload(ctx context.Context, filename, contentType string, size int64, r io.Reader) (string, error) {
	f.uploaded = true
	f.contentType = contentType
	f.size = size
	_, _ = io.Copy(io.Discard, r)
	return "http://cdn.local/images/" + filename, nil
}

func uploadRouter(storage *fakeStorage, required bool) *gin.Engine {
	r := gin.New()
	r.POST("/upload", middleware.Upload(storage, required), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"image": middleware.UploadedImage(c)})
	})
	return r
}

func multipartImage(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	fw, err := mw.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func postUpload(r *gin.Engine, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", "/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// pngBytes starts with the PNG signature so content sniffing sees a real
// image.
func pngBytes() []byte {
	return append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 64)...)
}

func TestUpload_AcceptsPNG(t *testing.T) {
	storage := &fakeStorage{}
	r := uploadRouter(storage, true)

	body, ct := multipartImage(t, "photo.png", pngBytes())
	w := postUpload(r, body, ct)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, storage.uploaded)
	assert.Equal(t, "image/png", storage.contentType)
	assert.Contains(t, w.Body.String(), "http://cdn.local/images/photo.png")
}

func TestUpload_RejectsNonImage(t *testing.T) {
	storage := &fakeStorage{}
	r := uploadRouter(storage, true)

	body, ct := multipartImage(t, "notes.txt", []byte("just some text, not an image"))
	w := postUpload(r, body, ct)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, storage.uploaded)
	assert.Contains(t, w.Body.String(), "only jpeg and png")
}

func TestUpload_RejectsOversize(t *testing.T) {
	storage := &fakeStorage{}
	r := uploadRouter(storage, true)

	big := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, middleware.MaxImageSize)...)
	body, ct := multipartImage(t, "huge.png", big)
	w := postUpload(r, body, ct)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, storage.uploaded)
	assert.Contains(t, w.Body.String(), "1MB")
}

func TestUpload_MissingImage(t *testing.T) {
	storage := &fakeStorage{}

	// Required: reject.
	r := uploadRouter(storage, true)
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	require.NoError(t, mw.Close())
	w := postUpload(r, body, mw.FormDataContentType())
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Optional: pass through with no image on the context.
	r = uploadRouter(storage, false)
	body = &bytes.Buffer{}
	mw = multipart.NewWriter(body)
	require.NoError(t, mw.Close())
	w = postUpload(r, body, mw.FormDataContentType())
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"image":""`)
	assert.False(t, storage.uploaded)
}
