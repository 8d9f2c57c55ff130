package http_test

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

	"github.com/danielmek/hotelhub/internal/domain/apperr"
	"github.com/danielmek/hotelhub/internal/domain/contract"
	"github.com/danielmek/hotelhub/internal/domain/entity"
	handler "github.com/danielmek/hotelhub/internal/handler/http"
)

// fakeStorage keeps uploads in memory.
type fakeStorage struct {
	saved map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{saved: make(map[string][]byte)}
}

func (s *fakeStorage) Save(fileName string, content io.Reader) (string, error) {
	data, err := io.ReadAll(content)
	if err != nil {
		return "", err
	}
	s.saved[fileName] = data
	return "/uploads/" + fileName, nil
}

// fakeMediaRepo is an in-memory IMediaRepository.
type fakeMediaRepo struct {
	media map[string]*entity.Media
}

var _ contract.IMediaRepository = (*fakeMediaRepo)(nil)

func newFakeMediaRepo() *fakeMediaRepo {
	return &fakeMediaRepo{media: make(map[string]*entity.Media)}
}

func (r *fakeMediaRepo) CreateMedia(ctx context.Context, media *entity.Media) error {
	copied := *media
	r.media[media.ID] = &copied
	return nil
}

func (r *fakeMediaRepo) GetMediaByID(ctx context.Context, mediaID string) (*entity.Media, error) {
	m, ok := r.media[mediaID]
	if !ok {
		return nil, apperr.NotFound("media not found")
	}
	copied := *m
	return &copied, nil
}

func (r *fakeMediaRepo) GetMedia(ctx context.Context, opts *contract.MediaFilterOptions) ([]*entity.Media, error) {
	var out []*entity.Media
	for _, m := range r.media {
		if opts.UploadedByUserID != nil && m.UploadedByUserID != *opts.UploadedByUserID {
			continue
		}
		copied := *m
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeMediaRepo) DeleteMedia(ctx context.Context, mediaID string) error {
	if _, ok := r.media[mediaID]; !ok {
		return apperr.NotFound("media not found")
	}
	delete(r.media, mediaID)
	return nil
}

type seqUUIDGen struct{ n int }

func (g *seqUUIDGen) NewUUID() string {
	g.n++
	return "upload-id-" + string(rune('0'+g.n))
}

func setupUploadRouter(storage contract.IFileStorage, mediaRepo contract.IMediaRepository, user *entity.User) *gin.Engine {
	h := handler.NewUploadHandler(storage, mediaRepo, &seqUUIDGen{}, 1)
	r := gin.New()
	g := r.Group("/")
	if user != nil {
		g.Use(injectUser(user))
	}
	g.POST("/upload/single", h.UploadFile)
	g.POST("/upload/multiple", h.UploadFiles)
	g.GET("/uploads", h.ListUploads)
	g.DELETE("/uploads/:id", h.DeleteUpload)
	return r
}

func multipartRequest(t *testing.T, r *gin.Engine, path, field, fileName string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, fileName)
	assert.NoError(t, err)
	_, err = part.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	r.ServeHTTP(w, req)
	return w
}

func TestUploadFile(t *testing.T) {
	storage := newFakeStorage()
	mediaRepo := newFakeMediaRepo()
	r := setupUploadRouter(storage, mediaRepo, merchantUser())

	w := multipartRequest(t, r, "/upload/single", "file", "photo.jpg", []byte("fake image bytes"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "file uploaded")
	assert.Contains(t, w.Body.String(), "/uploads/")
	assert.Len(t, storage.saved, 1)
	assert.Len(t, mediaRepo.media, 1)
	for _, m := range mediaRepo.media {
		assert.Equal(t, "mock-user-id", m.UploadedByUserID)
	}
}

func TestUploadFile_UnsupportedType(t *testing.T) {
	storage := newFakeStorage()
	mediaRepo := newFakeMediaRepo()
	r := setupUploadRouter(storage, mediaRepo, merchantUser())

	w := multipartRequest(t, r, "/upload/single", "file", "script.sh", []byte("#!/bin/sh"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unsupported file type")
	assert.Empty(t, storage.saved)
}

func TestUploadFile_TooLarge(t *testing.T) {
	storage := newFakeStorage()
	mediaRepo := newFakeMediaRepo()
	r := setupUploadRouter(storage, mediaRepo, merchantUser())

	// Router configured with a 1 MB limit.
	big := bytes.Repeat([]byte("a"), 2<<20)
	w := multipartRequest(t, r, "/upload/single", "file", "big.jpg", big)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "limit")
}

func TestUploadFile_Unauthenticated(t *testing.T) {
	r := setupUploadRouter(newFakeStorage(), newFakeMediaRepo(), nil)

	w := multipartRequest(t, r, "/upload/single", "file", "photo.jpg", []byte("bytes"))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListUploads_ScopedToCaller(t *testing.T) {
	mediaRepo := newFakeMediaRepo()
	_ = mediaRepo.CreateMedia(context.Background(), &entity.Media{ID: "m1", UploadedByUserID: "mock-user-id", FileName: "mine.jpg"})
	_ = mediaRepo.CreateMedia(context.Background(), &entity.Media{ID: "m2", UploadedByUserID: "someone-else", FileName: "theirs.jpg"})
	r := setupUploadRouter(newFakeStorage(), mediaRepo, merchantUser())

	w := jsonRequest(t, r, "GET", "/uploads", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mine.jpg")
	assert.NotContains(t, w.Body.String(), "theirs.jpg")
}

func TestDeleteUpload_OwnershipEnforced(t *testing.T) {
	mediaRepo := newFakeMediaRepo()
	_ = mediaRepo.CreateMedia(context.Background(), &entity.Media{ID: "m1", UploadedByUserID: "someone-else"})
	r := setupUploadRouter(newFakeStorage(), mediaRepo, merchantUser())

	w := jsonRequest(t, r, "DELETE", "/uploads/m1", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	_ = mediaRepo.CreateMedia(context.Background(), &entity.Media{ID: "m2", UploadedByUserID: "mock-user-id"})
	w = jsonRequest(t, r, "DELETE", "/uploads/m2", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "upload deleted")
}
