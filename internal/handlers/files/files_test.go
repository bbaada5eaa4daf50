package files

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/watchearn/watchearn/internal/domain"
	"github.com/watchearn/watchearn/internal/dto"
	"github.com/watchearn/watchearn/internal/service/fileservice"
	"github.com/watchearn/watchearn/pkg/auth"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*FileHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func multipartRequest(t *testing.T, fieldName, fileName, contentType string, data []byte) *http.Request {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="`+fieldName+`"; filename="`+fileName+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	assert.NoError(t, err)
	_, err = part.Write(data)
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	r := httptest.NewRequest(http.MethodPost, "/api/uploads", &buf)
	r.Header.Set("Content-Type", writer.FormDataContentType())
	return r.WithContext(context.WithValue(context.Background(), auth.UserIDKey, 1))
}

func TestUploadHandler(t *testing.T) {
	handler, service := NewMock(t)
	payload := []byte("fake png bytes")

	t.Run("File uploaded", func(t *testing.T) {
		service.EXPECT().
			Upload(gomock.Any(), 1, "proof.png", "image/png", payload).
			Return(&domain.FileUpload{ID: 5, UserID: 1, FileName: "proof.png", FileType: "image/png"}, nil)

		r := multipartRequest(t, "file", "proof.png", "image/png", payload)
		w := httptest.NewRecorder()

		handler.Upload(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
		var body dto.UploadResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Equal(t, "File uploaded successfully", body.Message)
		assert.Equal(t, "/api/files/5", body.FileURL)
	})

	t.Run("No file part", func(t *testing.T) {
		r := multipartRequest(t, "document", "proof.png", "image/png", payload)
		w := httptest.NewRecorder()

		handler.Upload(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "No file provided")
	})

	t.Run("Not an image", func(t *testing.T) {
		service.EXPECT().
			Upload(gomock.Any(), 1, "notes.txt", "text/plain", payload).
			Return(nil, fileservice.ErrNotAnImage)

		r := multipartRequest(t, "file", "notes.txt", "text/plain", payload)
		w := httptest.NewRecorder()

		handler.Upload(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Storage failure", func(t *testing.T) {
		service.EXPECT().
			Upload(gomock.Any(), 1, "proof.png", "image/png", payload).
			Return(nil, errors.New("error"))

		r := multipartRequest(t, "file", "proof.png", "image/png", payload)
		w := httptest.NewRecorder()

		handler.Upload(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func serveRequest(id string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/api/files/"+id, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(context.Background(), chi.RouteCtxKey, rctx))
}

func TestServeHandler(t *testing.T) {
	handler, service := NewMock(t)
	payload := []byte("fake png bytes")

	t.Run("File served", func(t *testing.T) {
		service.EXPECT().
			Get(gomock.Any(), 5).
			Return(&domain.FileUpload{ID: 5, FileType: "image/png", FileSize: int64(len(payload))}, payload, nil)

		w := httptest.NewRecorder()
		handler.Serve(w, serveRequest("5"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
		assert.Equal(t, "14", w.Header().Get("Content-Length"))
		assert.Equal(t, "public, max-age=86400", w.Header().Get("Cache-Control"))
		assert.Equal(t, payload, w.Body.Bytes())
	})

	t.Run("Non-numeric id", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Serve(w, serveRequest("abc"))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("File not found", func(t *testing.T) {
		service.EXPECT().
			Get(gomock.Any(), 9).
			Return(nil, nil, fileservice.ErrFileNotFound)

		w := httptest.NewRecorder()
		handler.Serve(w, serveRequest("9"))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "File not found")
	})

	t.Run("Storage failure", func(t *testing.T) {
		service.EXPECT().
			Get(gomock.Any(), 9).
			Return(nil, nil, errors.New("error"))

		w := httptest.NewRecorder()
		handler.Serve(w, serveRequest("9"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
