package mongodb

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/danielmek/hotelhub/internal/domain/apperr"
	"github.com/danielmek/hotelhub/internal/domain/contract"
	"github.com/danielmek/hotelhub/internal/domain/entity"
)

// HotelRepository represents the MongoDB implementation of the
// IHotelRepository interface.
type HotelRepository struct {
	collection *mongo.Collection
}

// NewHotelRepository creates and returns a new HotelRepository instance.
func NewHotelRepository(db *mongo.Database) *HotelRepository {
	return &HotelRepository{
		collection: db.Collection("hotels"),
	}
}

var _ contract.IHotelRepository = (*HotelRepository)(nil)

// EnsureIndexes creates the query indexes the list and stats operations rely
// on.
func (r *HotelRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "creator_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "star_rating", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	})
	return err
}

// buildHotelFilter creates a BSON filter from HotelFilterOptions. The keyword
// matches name, English name, or address as a case-insensitive substring.
func buildHotelFilter(opts *contract.HotelFilterOptions) bson.M {
	filter := bson.M{}

	if opts.CreatorID != nil && *opts.CreatorID != "" {
		filter["creator_id"] = *opts.CreatorID
	}
	if opts.Status != nil {
		filter["status"] = *opts.Status
	}
	if opts.StarRating != nil {
		filter["star_rating"] = *opts.StarRating
	}
	if opts.Keyword != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(opts.Keyword), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"name_en": pattern},
			bson.M{"address": pattern},
		}
	}
	return filter
}

// CreateHotel inserts a new hotel record into the database.
func (r *HotelRepository) CreateHotel(ctx context.Context, hotel *entity.Hotel) error {
	if hotel.CreatedAt.IsZero() {
		hotel.CreatedAt = time.Now()
	}
	hotel.UpdatedAt = hotel.CreatedAt
	_, err := r.collection.InsertOne(ctx, hotel)
	if err != nil {
		return apperr.Wrap(apperr.KindUnexpected, "failed to create hotel", err)
	}
	return nil
}

// GetHotelByID retrieves a single hotel by its unique id.
func (r *HotelRepository) GetHotelByID(ctx context.Context, hotelID string) (*entity.Hotel, error) {
	var hotel entity.Hotel
	err := r.collection.FindOne(ctx, bson.M{"_id": hotelID}).Decode(&hotel)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("hotel not found")
		}
		return nil, apperr.Wrap(apperr.KindUnexpected, "failed to retrieve hotel", err)
	}
	return &hotel, nil
}

// GetHotels retrieves a page of hotels ordered by creation time descending,
// with the total matching count computed independently of the page size.
func (r *HotelRepository) GetHotels(ctx context.Context, filterOptions *contract.HotelFilterOptions) ([]*entity.Hotel, int64, error) {
	filter := buildHotelFilter(filterOptions)

	totalCount, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, apperr.Wrap(apperr.KindUnexpected, "failed to count hotels", err)
	}

	skip := int64((filterOptions.Page - 1) * filterOptions.PageSize)
	opts := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetSkip(skip).
		SetLimit(int64(filterOptions.PageSize))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, apperr.Wrap(apperr.KindUnexpected, "failed to retrieve hotels", err)
	}
	defer cursor.Close(ctx)

	var hotels []*entity.Hotel
	if err := cursor.All(ctx, &hotels); err != nil {
		return nil, 0, apperr.Wrap(apperr.KindUnexpected, "failed to decode hotels", err)
	}
	if hotels == nil {
		hotels = []*entity.Hotel{}
	}

	return hotels, totalCount, nil
}

// UpdateHotel updates a hotel with the provided fields.
func (r *HotelRepository) UpdateHotel(ctx context.Context, hotelID string, updates map[string]interface{}) error {
	if _, ok := updates["updated_at"]; !ok {
		updates["updated_at"] = time.Now()
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": hotelID}, bson.M{"$set": updates})
	if err != nil {
		return apperr.Wrap(apperr.KindUnexpected, "failed to update hotel", err)
	}
	if result.MatchedCount == 0 {
		return apperr.NotFound("hotel not found")
	}
	return nil
}

// DeleteHotel permanently removes a hotel record.
func (r *HotelRepository) DeleteHotel(ctx context.Context, hotelID string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": hotelID})
	if err != nil {
		return apperr.Wrap(apperr.KindUnexpected, "failed to delete hotel", err)
	}
	if result.DeletedCount == 0 {
		return apperr.NotFound("hotel not found")
	}
	return nil
}

// CountByStatus groups hotels by lifecycle status, optionally scoped to a
// single creator.
func (r *HotelRepository) CountByStatus(ctx context.Context, creatorID *string) (*contract.HotelStats, error) {
	match := bson.M{}
	if creatorID != nil && *creatorID != "" {
		match["creator_id"] = *creatorID
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnexpected, "failed to aggregate hotel stats", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Status entity.HotelStatus `bson:"_id"`
		Count  int64              `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, apperr.Wrap(apperr.KindUnexpected, "failed to decode hotel stats", err)
	}

	stats := &contract.HotelStats{}
	for _, row := range rows {
		stats.Total += row.Count
		switch row.Status {
		case entity.HotelStatusDraft:
			stats.Draft = row.Count
		case entity.HotelStatusPending:
			stats.Pending = row.Count
		case entity.HotelStatusOnline:
			stats.Online = row.Count
		case entity.HotelStatusOffline:
			stats.Offline = row.Count
		}
	}
	return stats, nil
}
