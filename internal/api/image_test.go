package api

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recetario/backend/internal/service"
)

// newImageTestEnv adds the image routes on top of the shared test env. The
// S3 client stays nil: every asserted path rejects before reaching storage.
func newImageTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := newTestEnv(t)
	NewImageHandler(service.NewImageService(nil, "recetario-images"), env.auth).RegisterRoutes(env.router)
	return env
}

func multipartImage(t *testing.T, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="foto.bin"`)
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

func (e *testEnv) doUpload(t *testing.T, token string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/admin/images", body)
	req.Header.Set("Content-Type", contentType)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func TestUploadImageIsAdminOnly(t *testing.T) {
	env := newImageTestEnv(t)
	body, contentType := multipartImage(t, "image/png", []byte("png bytes"))

	rec := env.doUpload(t, "", body, contentType)
	requireStatus(t, rec, http.StatusUnauthorized)

	body, contentType = multipartImage(t, "image/png", []byte("png bytes"))
	rec = env.doUpload(t, env.userToken(t), body, contentType)
	requireStatus(t, rec, http.StatusForbidden)
}

func TestUploadImageRequiresFile(t *testing.T) {
	env := newImageTestEnv(t)

	rec := env.doUpload(t, env.adminToken(t), bytes.NewBuffer(nil), "multipart/form-data; boundary=empty")
	requireStatus(t, rec, http.StatusBadRequest)
	assert.Equal(t, "Se requiere un archivo de imagen", decodeBody(t, rec)["error"])
}

func TestUploadImageRejectsUnsupportedContentType(t *testing.T) {
	env := newImageTestEnv(t)

	body, contentType := multipartImage(t, "text/plain", []byte("plain text"))
	rec := env.doUpload(t, env.adminToken(t), body, contentType)
	requireStatus(t, rec, http.StatusBadRequest)
	assert.Equal(t, "formato de imagen no soportado", decodeBody(t, rec)["error"])
}

func TestUploadImageRejectsOversizedFile(t *testing.T) {
	env := newImageTestEnv(t)

	body, contentType := multipartImage(t, "image/jpeg", bytes.Repeat([]byte("x"), maxImageSize+1))
	rec := env.doUpload(t, env.adminToken(t), body, contentType)
	requireStatus(t, rec, http.StatusBadRequest)
	assert.Equal(t, "La imagen es demasiado grande", decodeBody(t, rec)["error"])
}
