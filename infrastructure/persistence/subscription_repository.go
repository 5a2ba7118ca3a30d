package persistence

import (
	"context"
	"errors"
	"strings"

	"youtube-lite/domain/model"
	"youtube-lite/domain/repository"
	"youtube-lite/infrastructure/logger"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// SubscriptionRepository couples the subscription document with the target
// channel's subscriber counter. Both writes run inside one transaction so a
// crash between them cannot desync the pair; on stores without transaction
// support (standalone, no replica set) it degrades to sequential writes.
type SubscriptionRepository struct {
	client *mongo.Client
	dbName string
}

func NewSubscriptionRepository(client *mongo.Client, dbName string) repository.ISubscription {
	return &SubscriptionRepository{client: client, dbName: dbName}
}

func (r *SubscriptionRepository) subs() *mongo.Collection {
	return r.client.Database(r.dbName).Collection("subscriptions")
}

func (r *SubscriptionRepository) users() *mongo.Collection {
	return r.client.Database(r.dbName).Collection("users")
}

func (r *SubscriptionRepository) Subscribe(ctx context.Context, sub *model.Subscription) error {
	return r.inTransaction(ctx, func(ctx context.Context) error {
		// Read-check-write so a concurrent double-subscribe cannot
		// increment the counter twice.
		existing, err := r.Get(ctx, sub.SubscriberUID, sub.ChannelUID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		if existing != nil {
			return nil
		}
		if _, err := r.subs().InsertOne(ctx, sub); err != nil {
			return err
		}
		update := bson.D{
			{Key: "$inc", Value: bson.D{{Key: "subscribers", Value: 1}}},
		}
		_, err = r.users().UpdateByID(ctx, sub.ChannelUID, update, options.UpdateOne().SetUpsert(true))
		return err
	})
}

func (r *SubscriptionRepository) Unsubscribe(ctx context.Context, subscriberUID, channelUID string) error {
	return r.inTransaction(ctx, func(ctx context.Context) error {
		filter := bson.D{{Key: "subscriberUid", Value: subscriberUID}, {Key: "channelUid", Value: channelUID}}
		res, err := r.subs().DeleteOne(ctx, filter)
		if err != nil {
			return err
		}
		if res.DeletedCount == 0 {
			// Not subscribed; leave the counter untouched.
			return nil
		}
		pipeline := bson.A{bson.M{"$set": bson.M{"subscribers": clampedAdd("subscribers", -1)}}}
		_, err = r.users().UpdateByID(ctx, channelUID, pipeline)
		return err
	})
}

func (r *SubscriptionRepository) Get(ctx context.Context, subscriberUID, channelUID string) (*model.Subscription, error) {
	var sub model.Subscription
	filter := bson.D{{Key: "subscriberUid", Value: subscriberUID}, {Key: "channelUid", Value: channelUID}}
	err := r.subs().FindOne(ctx, filter).Decode(&sub)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionRepository) List(ctx context.Context, subscriberUID string) ([]model.Subscription, error) {
	filter := bson.D{{Key: "subscriberUid", Value: subscriberUID}}
	cursor, err := r.subs().Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "subscribedAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var subs []model.Subscription
	for cursor.Next(ctx) {
		var sub model.Subscription
		if err := cursor.Decode(&sub); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while decoding subscription")
			continue
		}
		subs = append(subs, sub)
	}
	return subs, cursor.Err()
}

func (r *SubscriptionRepository) inTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := r.client.StartSession()
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Sessions unavailable - running subscription writes without transaction")
		return fn(ctx)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(ctx context.Context) (interface{}, error) {
		return nil, fn(ctx)
	})
	if err != nil && transactionsUnsupported(err) {
		logger.GetLogger().WithField("error", err).Warn("Transactions unsupported by this deployment - running subscription writes sequentially")
		return fn(ctx)
	}
	return err
}

func transactionsUnsupported(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "Transaction numbers") || strings.Contains(msg, "transactions are not supported")
}
