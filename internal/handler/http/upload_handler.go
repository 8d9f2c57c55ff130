package http

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/danielmek/hotelhub/internal/domain/apperr"
	"github.com/danielmek/hotelhub/internal/domain/contract"
	"github.com/danielmek/hotelhub/internal/domain/entity"
	"github.com/danielmek/hotelhub/internal/handler/http/dto"
)

var allowedUploadExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// UploadHandler stores uploaded files and records them as media entities.
type UploadHandler struct {
	storage       contract.IFileStorage
	mediaRepo     contract.IMediaRepository
	uuidGenerator contract.IUUIDGenerator
	maxSizeBytes  int64
}

func NewUploadHandler(storage contract.IFileStorage, mediaRepo contract.IMediaRepository, uuidGenerator contract.IUUIDGenerator, maxSizeMB int64) *UploadHandler {
	return &UploadHandler{
		storage:       storage,
		mediaRepo:     mediaRepo,
		uuidGenerator: uuidGenerator,
		maxSizeBytes:  maxSizeMB << 20,
	}
}

// UploadFile handles a single multipart upload under the "file" field.
func (h *UploadHandler) UploadFile(c *gin.Context) {
	caller, ok := CurrentUser(c)
	if !ok {
		RespondError(c, apperr.Authentication("authentication required"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondError(c, apperr.Validation("no file uploaded"))
		return
	}

	resp, err := h.saveOne(c, caller, fileHeader)
	if err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, resp, "file uploaded")
}

// UploadFiles handles a multipart upload of several files under the
// "files" field.
func (h *UploadHandler) UploadFiles(c *gin.Context) {
	caller, ok := CurrentUser(c)
	if !ok {
		RespondError(c, apperr.Authentication("authentication required"))
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		RespondError(c, apperr.Validation("invalid multipart form"))
		return
	}
	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		RespondError(c, apperr.Validation("no files uploaded"))
		return
	}

	responses := make([]dto.UploadedFileResponse, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		resp, err := h.saveOne(c, caller, fh)
		if err != nil {
			RespondError(c, err)
			return
		}
		responses = append(responses, resp)
	}
	MessageHandler(c, http.StatusOK, responses, "files uploaded")
}

// ListUploads returns the caller's upload records, newest first. Admins see
// everyone's uploads.
func (h *UploadHandler) ListUploads(c *gin.Context) {
	caller, ok := CurrentUser(c)
	if !ok {
		RespondError(c, apperr.Authentication("authentication required"))
		return
	}

	opts := &contract.MediaFilterOptions{}
	if !caller.Role.IsAdmin() {
		opts.UploadedByUserID = &caller.ID
	}

	media, err := h.mediaRepo.GetMedia(c.Request.Context(), opts)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, media)
}

// DeleteUpload removes an upload record. Owners may delete their own
// uploads; admins may delete any.
func (h *UploadHandler) DeleteUpload(c *gin.Context) {
	caller, ok := CurrentUser(c)
	if !ok {
		RespondError(c, apperr.Authentication("authentication required"))
		return
	}

	media, err := h.mediaRepo.GetMediaByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	if !caller.Role.IsAdmin() && media.UploadedByUserID != caller.ID {
		RespondError(c, apperr.Authorization("you do not have access to this upload"))
		return
	}

	if err := h.mediaRepo.DeleteMedia(c.Request.Context(), media.ID); err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, nil, "upload deleted")
}

func (h *UploadHandler) saveOne(c *gin.Context, caller *entity.User, fh *multipart.FileHeader) (dto.UploadedFileResponse, error) {
	if fh.Size > h.maxSizeBytes {
		return dto.UploadedFileResponse{}, apperr.Validation(fmt.Sprintf("file exceeds the %d MB limit", h.maxSizeBytes>>20))
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedUploadExtensions[ext] {
		return dto.UploadedFileResponse{}, apperr.Validation("unsupported file type")
	}

	src, err := fh.Open()
	if err != nil {
		return dto.UploadedFileResponse{}, apperr.Wrap(apperr.KindUnexpected, "failed to read upload", err)
	}
	defer src.Close()

	fileName := h.uuidGenerator.NewUUID() + ext
	url, err := h.storage.Save(fileName, src)
	if err != nil {
		return dto.UploadedFileResponse{}, apperr.Wrap(apperr.KindUnexpected, "failed to store upload", err)
	}

	media := &entity.Media{
		ID:               h.uuidGenerator.NewUUID(),
		FileName:         fileName,
		URL:              url,
		MimeType:         fh.Header.Get("Content-Type"),
		SizeBytes:        fh.Size,
		UploadedByUserID: caller.ID,
		CreatedAt:        time.Now(),
	}
	if err := h.mediaRepo.CreateMedia(c.Request.Context(), media); err != nil {
		return dto.UploadedFileResponse{}, err
	}

	return dto.UploadedFileResponse{URL: url, Filename: fileName}, nil
}
