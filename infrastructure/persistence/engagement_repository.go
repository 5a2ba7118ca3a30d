package persistence

import (
	"context"

	"youtube-lite/domain/model"
	"youtube-lite/domain/repository"
	"youtube-lite/infrastructure/logger"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EngagementRepository backs the history, liked and watch-later lists. Each
// kind maps to its own collection; entries are keyed by (userId, videoId).
type EngagementRepository struct {
	client *mongo.Client
	dbName string
}

func NewEngagementRepository(client *mongo.Client, dbName string) repository.IEngagement {
	return &EngagementRepository{client: client, dbName: dbName}
}

func (r *EngagementRepository) coll(kind model.EngagementKind) *mongo.Collection {
	return r.client.Database(r.dbName).Collection(string(kind))
}

func (r *EngagementRepository) Record(ctx context.Context, kind model.EngagementKind, entry *model.EngagementEntry) error {
	filter := bson.D{{Key: "userId", Value: entry.UserID}, {Key: "videoId", Value: entry.VideoID}}
	update := bson.D{{Key: "$set", Value: entry}}
	_, err := r.coll(kind).UpdateOne(ctx, filter, update, options.UpdateOne().SetUpsert(true))
	return err
}

func (r *EngagementRepository) Remove(ctx context.Context, kind model.EngagementKind, userID, videoID string) error {
	filter := bson.D{{Key: "userId", Value: userID}, {Key: "videoId", Value: videoID}}
	_, err := r.coll(kind).DeleteOne(ctx, filter)
	return err
}

func (r *EngagementRepository) List(ctx context.Context, kind model.EngagementKind, userID string) ([]model.EngagementEntry, error) {
	filter := bson.D{{Key: "userId", Value: userID}}
	cursor, err := r.coll(kind).Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := cursor.Close(ctx); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while closing cursor")
		}
	}()

	var entries []model.EngagementEntry
	for cursor.Next(ctx) {
		var entry model.EngagementEntry
		if err := cursor.Decode(&entry); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while decoding entry")
			continue
		}
		entries = append(entries, entry)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *EngagementRepository) ListKeys(ctx context.Context, kind model.EngagementKind, userID string) ([]string, error) {
	filter := bson.D{{Key: "userId", Value: userID}}
	projection := options.Find().SetProjection(bson.D{{Key: "videoId", Value: 1}})
	cursor, err := r.coll(kind).Find(ctx, filter, projection)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var keys []string
	for cursor.Next(ctx) {
		var row struct {
			VideoID string `bson:"videoId"`
		}
		if err := cursor.Decode(&row); err != nil {
			continue
		}
		keys = append(keys, row.VideoID)
	}
	return keys, cursor.Err()
}
