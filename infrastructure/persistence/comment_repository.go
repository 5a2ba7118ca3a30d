package persistence

import (
	"context"

	"youtube-lite/domain/model"
	"youtube-lite/domain/repository"
	"youtube-lite/infrastructure/logger"
	"youtube-lite/infrastructure/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// CommentRepository stores per-video comments with a server-assigned timestamp.
type CommentRepository struct {
	client *mongo.Client
	dbName string
}

func NewCommentRepository(client *mongo.Client, dbName string) repository.IComment {
	return &CommentRepository{client: client, dbName: dbName}
}

func (r *CommentRepository) comments() *mongo.Collection {
	return r.client.Database(r.dbName).Collection("comments")
}

func (r *CommentRepository) Add(ctx context.Context, comment *model.Comment) (string, error) {
	if comment.ID == "" {
		comment.ID = bson.NewObjectID().Hex()
	}
	comment.Timestamp = utils.GetCurrentTime()
	if _, err := r.comments().InsertOne(ctx, comment); err != nil {
		return "", err
	}
	return comment.ID, nil
}

func (r *CommentRepository) ListByVideo(ctx context.Context, videoID string) ([]model.Comment, error) {
	filter := bson.D{{Key: "videoId", Value: videoID}}
	cursor, err := r.comments().Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := cursor.Close(ctx); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while closing cursor")
		}
	}()

	var comments []model.Comment
	for cursor.Next(ctx) {
		var comment model.Comment
		if err := cursor.Decode(&comment); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while decoding comment")
			continue
		}
		comments = append(comments, comment)
	}
	return comments, cursor.Err()
}
