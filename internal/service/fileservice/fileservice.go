package fileservice

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/watchearn/watchearn/internal/domain"
	"go.uber.org/zap"
)

const maxFileSize = 5 * 1024 * 1024

type FileRepo interface {
	Save(ctx context.Context, file *domain.FileUpload) (*domain.FileUpload, error)
	FindByID(ctx context.Context, fileID int) (*domain.FileUpload, error)
}

var (
	ErrNoFile          = errors.New("no file provided")
	ErrNotAnImage      = errors.New("only image files are allowed")
	ErrFileTooLarge    = errors.New("file size should be less than 5MB")
	ErrFileNotFound    = errors.New("file not found")
	ErrCorruptFileData = errors.New("stored file data is corrupt")
)

type Service struct {
	fileRepo FileRepo
	now      func() time.Time
}

func New(fileRepo FileRepo) *Service {
	return &Service{
		fileRepo: fileRepo,
		now:      time.Now,
	}
}

// Upload validates a payment-proof image and stores it base64-encoded in a
// relational row, returning the stored record.
func (s *Service) Upload(ctx context.Context, userID int, fileName, contentType string, data []byte) (*domain.FileUpload, error) {
	if len(data) == 0 {
		return nil, ErrNoFile
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrNotAnImage
	}
	if len(data) > maxFileSize {
		return nil, ErrFileTooLarge
	}

	file := &domain.FileUpload{
		UserID:   userID,
		FileName: fmt.Sprintf("%d_%s", s.now().UnixMilli(), fileName),
		FileType: contentType,
		FileSize: int64(len(data)),
		FileData: base64.StdEncoding.EncodeToString(data),
	}

	saved, err := s.fileRepo.Save(ctx, file)
	if err != nil {
		zap.L().Error("can't store file upload", zap.Error(err))
		return nil, err
	}

	zap.L().Info("file uploaded",
		zap.Int("user_id", userID),
		zap.String("file_name", saved.FileName),
		zap.Int64("file_size", saved.FileSize),
	)
	return saved, nil
}

// Get returns the stored file record along with its decoded bytes.
func (s *Service) Get(ctx context.Context, fileID int) (*domain.FileUpload, []byte, error) {
	file, err := s.fileRepo.FindByID(ctx, fileID)
	if err != nil {
		return nil, nil, err
	}
	if file == nil {
		return nil, nil, ErrFileNotFound
	}

	data, err := base64.StdEncoding.DecodeString(file.FileData)
	if err != nil {
		zap.L().Error("can't decode stored file", zap.Int("file_id", fileID), zap.Error(err))
		return nil, nil, ErrCorruptFileData
	}
	return file, data, nil
}
