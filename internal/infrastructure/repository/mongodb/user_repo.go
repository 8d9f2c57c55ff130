package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/danielmek/hotelhub/internal/domain/apperr"
	"github.com/danielmek/hotelhub/internal/domain/contract"
	"github.com/danielmek/hotelhub/internal/domain/entity"
)

type MongoUserRepository struct {
	collection *mongo.Collection
}

func NewMongoUserRepository(collection *mongo.Collection) *MongoUserRepository {
	return &MongoUserRepository{collection: collection}
}

var _ contract.IUserRepository = (*MongoUserRepository)(nil)

// EnsureIndexes creates the unique username index.
func (r *MongoUserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *MongoUserRepository) CreateUser(ctx context.Context, user *entity.User) error {
	_, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperr.Conflict("username already exists")
		}
		return apperr.Wrap(apperr.KindUnexpected, "failed to create user", err)
	}
	return nil
}

func (r *MongoUserRepository) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.Wrap(apperr.KindUnexpected, "failed to retrieve user", err)
	}
	return &user, nil
}

func (r *MongoUserRepository) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	var user entity.User
	err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.Wrap(apperr.KindUnexpected, "failed to retrieve user", err)
	}
	return &user, nil
}

// UpdateUser updates an existing user and returns the updated user
func (r *MongoUserRepository) UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	user.UpdatedAt = time.Now()
	filter := bson.M{"_id": user.ID}
	update := bson.M{"$set": user}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperr.Conflict("username already exists")
		}
		return nil, apperr.Wrap(apperr.KindUnexpected, "failed to update user", err)
	}
	if result.MatchedCount == 0 {
		return nil, apperr.NotFound("user not found")
	}
	var updatedUser entity.User
	if err := r.collection.FindOne(ctx, filter).Decode(&updatedUser); err != nil {
		return nil, apperr.Wrap(apperr.KindUnexpected, "failed to reload user", err)
	}
	return &updatedUser, nil
}

func (r *MongoUserRepository) UpdateUserPassword(ctx context.Context, id string, hashedPassword string) error {
	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{"password_hash": hashedPassword, "updated_at": time.Now()}}
	count, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return apperr.Wrap(apperr.KindUnexpected, "failed to update password", err)
	}
	if count.MatchedCount == 0 {
		return apperr.NotFound("user not found")
	}
	return nil
}

// GetUsersByRoles retrieves users whose role is in the given set, newest
// first.
func (r *MongoUserRepository) GetUsersByRoles(ctx context.Context, roles []entity.UserRole) ([]*entity.User, error) {
	filter := bson.M{"role": bson.M{"$in": roles}}
	opts := options.Find().SetSort(bson.M{"created_at": -1})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnexpected, "failed to retrieve users", err)
	}
	defer cursor.Close(ctx)

	var users []*entity.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, apperr.Wrap(apperr.KindUnexpected, "failed to decode users", err)
	}
	return users, nil
}

// UpdateUserStatus sets the account status by ID.
func (r *MongoUserRepository) UpdateUserStatus(ctx context.Context, id string, status entity.UserStatus) error {
	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	count, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return apperr.Wrap(apperr.KindUnexpected, "failed to update user status", err)
	}
	if count.MatchedCount == 0 {
		return apperr.NotFound("user not found")
	}
	return nil
}
