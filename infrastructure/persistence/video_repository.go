package persistence

import (
	"context"
	"errors"
	"regexp"

	"youtube-lite/domain/dto"
	"youtube-lite/domain/model"
	"youtube-lite/domain/repository"
	"youtube-lite/infrastructure/logger"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const searchResultLimit = 20

// VideoRepository implements repository.IVideo on the videos collection.
type VideoRepository struct {
	client *mongo.Client
	dbName string
}

func NewVideoRepository(client *mongo.Client, dbName string) repository.IVideo {
	return &VideoRepository{client: client, dbName: dbName}
}

func (r *VideoRepository) videos() *mongo.Collection {
	return r.client.Database(r.dbName).Collection("videos")
}

func (r *VideoRepository) List(ctx context.Context) ([]model.Video, error) {
	cursor, err := r.videos().Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "uploadDate", Value: -1}}))
	if err != nil {
		return nil, err
	}
	return decodeVideos(ctx, cursor)
}

func (r *VideoRepository) GetByID(ctx context.Context, videoID string) (*model.Video, error) {
	var video model.Video
	err := r.videos().FindOne(ctx, bson.D{{Key: "_id", Value: videoID}}).Decode(&video)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *VideoRepository) ListByChannel(ctx context.Context, channelUID string) ([]model.Video, error) {
	filter := bson.D{{Key: "uploaderId", Value: channelUID}}
	cursor, err := r.videos().Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "uploadDate", Value: -1}}))
	if err != nil {
		return nil, err
	}
	return decodeVideos(ctx, cursor)
}

func (r *VideoRepository) Search(ctx context.Context, term string, limit int) ([]model.Video, error) {
	if limit <= 0 || limit > searchResultLimit {
		limit = searchResultLimit
	}
	filter := bson.D{{Key: "title", Value: bson.D{
		{Key: "$regex", Value: regexp.QuoteMeta(term)},
		{Key: "$options", Value: "i"},
	}}}
	cursor, err := r.videos().Find(ctx, filter, options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}
	return decodeVideos(ctx, cursor)
}

func (r *VideoRepository) Create(ctx context.Context, video *model.Video) (string, error) {
	if video.ID == "" {
		video.ID = bson.NewObjectID().Hex()
	}
	// Counters always start at zero regardless of what the caller set.
	video.Views, video.Likes, video.Dislikes = 0, 0, 0
	if _, err := r.videos().InsertOne(ctx, video); err != nil {
		return "", err
	}
	return video.ID, nil
}

func (r *VideoRepository) Update(ctx context.Context, videoID string, updates *dto.VideoUpdateRequest) error {
	set := bson.D{}
	if updates.Title != nil {
		set = append(set, bson.E{Key: "title", Value: *updates.Title})
	}
	if updates.Description != nil {
		set = append(set, bson.E{Key: "description", Value: *updates.Description})
	}
	if updates.Category != nil {
		set = append(set, bson.E{Key: "category", Value: *updates.Category})
	}
	if updates.Visibility != nil {
		set = append(set, bson.E{Key: "visibility", Value: *updates.Visibility})
	}
	if len(set) == 0 {
		return nil
	}
	res, err := r.videos().UpdateByID(ctx, videoID, bson.D{{Key: "$set", Value: set}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *VideoRepository) Delete(ctx context.Context, videoID string) error {
	res, err := r.videos().DeleteOne(ctx, bson.D{{Key: "_id", Value: videoID}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *VideoRepository) IncrementViews(ctx context.Context, videoID string, delta int64) error {
	res, err := r.videos().UpdateByID(ctx, videoID, bson.M{"$inc": bson.M{"views": delta}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// ApplyVoteDelta adjusts both counters in one atomic update, clamped at zero.
func (r *VideoRepository) ApplyVoteDelta(ctx context.Context, videoID string, likes, dislikes int64) error {
	if likes == 0 && dislikes == 0 {
		return nil
	}
	pipeline := bson.A{bson.M{"$set": bson.M{
		"likes":    clampedAdd("likes", likes),
		"dislikes": clampedAdd("dislikes", dislikes),
	}}}
	res, err := r.videos().UpdateByID(ctx, videoID, pipeline)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func decodeVideos(ctx context.Context, cursor *mongo.Cursor) ([]model.Video, error) {
	defer func() {
		if err := cursor.Close(ctx); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while closing cursor")
		}
	}()

	var videos []model.Video
	for cursor.Next(ctx) {
		var video model.Video
		if err := cursor.Decode(&video); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while decoding video")
			continue
		}
		videos = append(videos, video)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return videos, nil
}
