package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/danielmek/hotelhub/internal/domain/apperr"
	"github.com/danielmek/hotelhub/internal/domain/contract"
	"github.com/danielmek/hotelhub/internal/domain/entity"
)

// MediaRepository represents the MongoDB implementation of the
// IMediaRepository interface.
type MediaRepository struct {
	collection *mongo.Collection
}

// NewMediaRepository creates and returns a new MediaRepository instance.
func NewMediaRepository(db *mongo.Database) *MediaRepository {
	return &MediaRepository{
		collection: db.Collection("media"),
	}
}

var _ contract.IMediaRepository = (*MediaRepository)(nil)

// CreateMedia inserts a new media record into the database.
func (r *MediaRepository) CreateMedia(ctx context.Context, media *entity.Media) error {
	if media.CreatedAt.IsZero() {
		media.CreatedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, media)
	if err != nil {
		return apperr.Wrap(apperr.KindUnexpected, "failed to create media record", err)
	}
	return nil
}

// GetMediaByID retrieves a single media record by its unique ID.
func (r *MediaRepository) GetMediaByID(ctx context.Context, mediaID string) (*entity.Media, error) {
	var media entity.Media
	err := r.collection.FindOne(ctx, bson.M{"_id": mediaID}).Decode(&media)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("media not found")
		}
		return nil, apperr.Wrap(apperr.KindUnexpected, "failed to retrieve media record", err)
	}
	return &media, nil
}

// GetMedia retrieves a list of media records based on the provided filters.
func (r *MediaRepository) GetMedia(ctx context.Context, filterOptions *contract.MediaFilterOptions) ([]*entity.Media, error) {
	filter := bson.M{}
	if filterOptions.UploadedByUserID != nil {
		filter["uploaded_by_user_id"] = *filterOptions.UploadedByUserID
	}
	if filterOptions.MimeType != nil {
		filter["mime_type"] = *filterOptions.MimeType
	}

	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if filterOptions.Limit > 0 {
		opts.SetLimit(filterOptions.Limit)
		if filterOptions.Page > 1 {
			opts.SetSkip((filterOptions.Page - 1) * filterOptions.Limit)
		}
	}

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnexpected, "failed to retrieve media records", err)
	}
	defer cursor.Close(ctx)

	var mediaList []*entity.Media
	if err = cursor.All(ctx, &mediaList); err != nil {
		return nil, apperr.Wrap(apperr.KindUnexpected, "failed to decode media records", err)
	}
	if mediaList == nil {
		mediaList = []*entity.Media{}
	}
	return mediaList, nil
}

// DeleteMedia removes a media record by its ID.
func (r *MediaRepository) DeleteMedia(ctx context.Context, mediaID string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": mediaID})
	if err != nil {
		return apperr.Wrap(apperr.KindUnexpected, "failed to delete media record", err)
	}
	if result.DeletedCount == 0 {
		return apperr.NotFound("media not found")
	}
	return nil
}
