package repository

import (
	"context"
	"time"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DayMarksRepo records which (user, category, day) buckets have been seeded,
// so clearing a day's items does not re-trigger the default seed.
type DayMarksRepo struct {
	MongoCollection *mongo.Collection
}

func GetDayMarksRepo(client *mongo.Client) *DayMarksRepo {
	dbName := utils.GetEnvAsString("MONGO_DB", "mswitch")
	collectionName := utils.GetEnvAsString("DAY_MARKS_COLLECTION", "day_marks")
	return &DayMarksRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *DayMarksRepo) Marked(ctx context.Context, userID, categoryID string, key model.DateKey) (bool, error) {
	timer := utils.TrackDBOperation("count", "day_marks")
	defer timer.ObserveDuration()

	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{
		"user_id":     userID,
		"category_id": categoryID,
		"date_key":    key,
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *DayMarksRepo) Mark(ctx context.Context, userID, categoryID string, key model.DateKey) error {
	timer := utils.TrackDBOperation("update", "day_marks")
	defer timer.ObserveDuration()

	filter := bson.M{
		"user_id":     userID,
		"category_id": categoryID,
		"date_key":    key,
	}
	update := bson.M{"$setOnInsert": bson.M{"marked_at": time.Now()}}
	opts := options.Update().SetUpsert(true)

	_, err := r.MongoCollection.UpdateOne(ctx, filter, update, opts)
	return err
}

func (r *DayMarksRepo) DeleteByCategory(ctx context.Context, userID, categoryID string) error {
	timer := utils.TrackDBOperation("delete", "day_marks")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.DeleteMany(ctx, bson.M{
		"user_id":     userID,
		"category_id": categoryID,
	})
	return err
}
