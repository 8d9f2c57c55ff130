package contract

import (
	"context"

	"github.com/danielmek/hotelhub/internal/domain/entity"
)

// MediaFilterOptions holds database-agnostic parameters for filtering and
// pagination of media records.
type MediaFilterOptions struct {
	UploadedByUserID *string
	MimeType         *string
	Page             int64
	Limit            int64
}

// IMediaRepository defines the interface for media data persistence.
type IMediaRepository interface {
	CreateMedia(ctx context.Context, media *entity.Media) error
	GetMediaByID(ctx context.Context, mediaID string) (*entity.Media, error)
	GetMedia(ctx context.Context, opts *MediaFilterOptions) ([]*entity.Media, error)
	DeleteMedia(ctx context.Context, mediaID string) error
}
