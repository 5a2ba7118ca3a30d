package persistence

import (
	"context"
	"errors"

	"youtube-lite/domain/model"
	"youtube-lite/domain/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// UserRepository stores channel profiles keyed by the provider uid.
type UserRepository struct {
	client *mongo.Client
	dbName string
}

func NewUserRepository(client *mongo.Client, dbName string) repository.IUser {
	return &UserRepository{client: client, dbName: dbName}
}

func (r *UserRepository) users() *mongo.Collection {
	return r.client.Database(r.dbName).Collection("users")
}

func (r *UserRepository) GetByUID(ctx context.Context, uid string) (*model.UserProfile, error) {
	var profile model.UserProfile
	err := r.users().FindOne(ctx, bson.D{{Key: "_id", Value: uid}}).Decode(&profile)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Upsert merges profile fields without touching the subscriber counter, which
// only the subscription transaction adjusts.
func (r *UserRepository) Upsert(ctx context.Context, profile *model.UserProfile) error {
	set := bson.D{
		{Key: "displayName", Value: profile.DisplayName},
		{Key: "photoURL", Value: profile.PhotoURL},
		{Key: "description", Value: profile.Description},
		{Key: "email", Value: profile.Email},
	}
	if profile.BannerURL != "" {
		set = append(set, bson.E{Key: "bannerURL", Value: profile.BannerURL})
	}
	update := bson.D{
		{Key: "$set", Value: set},
		{Key: "$setOnInsert", Value: bson.D{{Key: "subscribers", Value: int64(0)}}},
	}
	_, err := r.users().UpdateByID(ctx, profile.UID, update, options.UpdateOne().SetUpsert(true))
	return err
}

// IncrementSubscribers applies a clamped delta with a pipeline update so the
// counter never drops below zero.
func (r *UserRepository) IncrementSubscribers(ctx context.Context, uid string, delta int64) error {
	update := bson.A{bson.M{"$set": bson.M{"subscribers": clampedAdd("subscribers", delta)}}}
	res, err := r.users().UpdateByID(ctx, uid, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
