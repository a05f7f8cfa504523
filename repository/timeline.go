package repository

import (
	"context"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TimelineRepo struct {
	MongoCollection *mongo.Collection
}

func GetTimelineRepo(client *mongo.Client) *TimelineRepo {
	dbName := utils.GetEnvAsString("MONGO_DB", "mswitch")
	collectionName := utils.GetEnvAsString("TIMELINE_COLLECTION", "timeline")
	return &TimelineRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *TimelineRepo) List(ctx context.Context, userID string) ([]*model.TimelineEntry, error) {
	timer := utils.TrackDBOperation("find", "timeline")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []*model.TimelineEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *TimelineRepo) Append(ctx context.Context, entry *model.TimelineEntry) error {
	timer := utils.TrackDBOperation("insert", "timeline")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, entry)
	return err
}

func (r *TimelineRepo) DeleteByTodo(ctx context.Context, userID, todoID string, key model.DateKey) error {
	timer := utils.TrackDBOperation("delete", "timeline")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.DeleteMany(ctx, bson.M{
		"user_id":  userID,
		"todo_id":  todoID,
		"date_key": key,
	})
	return err
}

func (r *TimelineRepo) DeleteByCategory(ctx context.Context, userID, categoryID string) error {
	timer := utils.TrackDBOperation("delete", "timeline")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.DeleteMany(ctx, bson.M{
		"user_id":     userID,
		"category_id": categoryID,
	})
	return err
}

func (r *TimelineRepo) Count(ctx context.Context, userID string) (int, error) {
	timer := utils.TrackDBOperation("count", "timeline")
	defer timer.ObserveDuration()

	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, err
	}
	return int(count), nil
}
