package files

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/watchearn/watchearn/internal/domain"
	"github.com/watchearn/watchearn/internal/dto"
	"github.com/watchearn/watchearn/internal/service/fileservice"
	"github.com/watchearn/watchearn/pkg/auth"
	"github.com/watchearn/watchearn/pkg/utils"
)

// multipart bodies are capped slightly above the 5MB file limit to leave
// room for form framing.
const maxUploadBody = 6 * 1024 * 1024

type Service interface {
	Upload(ctx context.Context, userID int, fileName, contentType string, data []byte) (*domain.FileUpload, error)
	Get(ctx context.Context, fileID int) (*domain.FileUpload, []byte, error)
}

type FileHandler struct {
	fileService Service
}

func New(fileService Service) *FileHandler {
	return &FileHandler{
		fileService: fileService,
	}
}

// Upload godoc
//
//	@Summary		Upload a payment proof image
//	@Description	Store an image (max 5MB) and return the URL it is served from
//	@Tags			Files
//	@Security		BearerAuth
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"Image file"
//	@Success		201		{object}	dto.UploadResponseDTO
//	@Failure		400		{object}	utils.Response	"Missing or invalid file"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/uploads [post]
func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBody)
	file, header, err := r.FormFile("file")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Can't read file")
		return
	}

	stored, err := h.fileService.Upload(r.Context(), userID, header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		switch {
		case errors.Is(err, fileservice.ErrNoFile),
			errors.Is(err, fileservice.ErrNotAnImage),
			errors.Is(err, fileservice.ErrFileTooLarge):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.UploadResponseDTO{
		Message: "File uploaded successfully",
		FileURL: fmt.Sprintf("/api/files/%d", stored.ID),
	})
}

// Serve godoc
//
//	@Summary		Serve an uploaded file
//	@Description	Return the stored file bytes with the original content type
//	@Tags			Files
//	@Produce		octet-stream
//	@Param			id	path	int	true	"File ID"
//	@Success		200
//	@Failure		404	{object}	utils.Response	"File not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/files/{id} [get]
func (h *FileHandler) Serve(w http.ResponseWriter, r *http.Request) {
	fileID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "File not found")
		return
	}

	file, data, err := h.fileService.Get(r.Context(), fileID)
	if err != nil {
		switch {
		case errors.Is(err, fileservice.ErrFileNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "File not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	w.Header().Set("Content-Type", file.FileType)
	w.Header().Set("Content-Length", strconv.FormatInt(file.FileSize, 10))
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
