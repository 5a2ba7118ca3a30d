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

// VoteRepository stores one vote document per (user, video).
type VoteRepository struct {
	client *mongo.Client
	dbName string
}

func NewVoteRepository(client *mongo.Client, dbName string) repository.IVote {
	return &VoteRepository{client: client, dbName: dbName}
}

func (r *VoteRepository) votes() *mongo.Collection {
	return r.client.Database(r.dbName).Collection("video_votes")
}

func (r *VoteRepository) Get(ctx context.Context, userID, videoID string) (*model.VideoVote, error) {
	var vote model.VideoVote
	filter := bson.D{{Key: "userId", Value: userID}, {Key: "videoId", Value: videoID}}
	err := r.votes().FindOne(ctx, filter).Decode(&vote)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &vote, nil
}

func (r *VoteRepository) Set(ctx context.Context, vote *model.VideoVote) error {
	filter := bson.D{{Key: "userId", Value: vote.UserID}, {Key: "videoId", Value: vote.VideoID}}
	update := bson.D{{Key: "$set", Value: vote}}
	_, err := r.votes().UpdateOne(ctx, filter, update, options.UpdateOne().SetUpsert(true))
	return err
}

func (r *VoteRepository) Delete(ctx context.Context, userID, videoID string) error {
	filter := bson.D{{Key: "userId", Value: userID}, {Key: "videoId", Value: videoID}}
	_, err := r.votes().DeleteOne(ctx, filter)
	return err
}
