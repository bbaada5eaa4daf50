package filerepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/watchearn/watchearn/internal/domain"
	"github.com/watchearn/watchearn/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Save(ctx context.Context, file *domain.FileUpload) (*domain.FileUpload, error) {
	query := `
        INSERT INTO file_uploads (user_id, file_name, file_type, file_size, file_data)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, file.UserID, file.FileName, file.FileType, file.FileSize, file.FileData).
		Scan(&file.ID, &file.CreatedAt)
	if err != nil {
		zap.L().Error("can't save file upload", zap.Error(err))
		return nil, err
	}
	return file, nil
}

func (r *Repository) FindByID(ctx context.Context, fileID int) (*domain.FileUpload, error) {
	query := `
        SELECT id, user_id, file_name, file_type, file_size, file_data, created_at
        FROM file_uploads
        WHERE id = $1
    `
	var file domain.FileUpload
	err := r.db.QueryRow(ctx, query, fileID).
		Scan(&file.ID, &file.UserID, &file.FileName, &file.FileType, &file.FileSize, &file.FileData, &file.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find file upload", zap.Error(err))
		return nil, err
	}
	return &file, nil
}
