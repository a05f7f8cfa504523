package repository

import (
	"context"
	"fmt"
	"time"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TodosRepo struct {
	MongoCollection *mongo.Collection
}

func GetTodosRepo(client *mongo.Client) *TodosRepo {
	dbName := utils.GetEnvAsString("MONGO_DB", "mswitch")
	collectionName := utils.GetEnvAsString("TODOS_COLLECTION", "todos")
	return &TodosRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *TodosRepo) ListDay(ctx context.Context, userID, categoryID string, key model.DateKey) ([]*model.TodoItem, error) {
	timer := utils.TrackDBOperation("find", "todos")
	defer timer.ObserveDuration()

	filter := bson.M{
		"user_id":     userID,
		"category_id": categoryID,
		"date_key":    key,
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.MongoCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []*model.TodoItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *TodosRepo) ListAll(ctx context.Context, userID string) ([]*model.TodoItem, error) {
	timer := utils.TrackDBOperation("find", "todos")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{
		{Key: "date_key", Value: 1},
		{Key: "created_at", Value: 1},
	})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []*model.TodoItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *TodosRepo) Get(ctx context.Context, userID, todoID string) (*model.TodoItem, error) {
	timer := utils.TrackDBOperation("find", "todos")
	defer timer.ObserveDuration()

	var item model.TodoItem
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": todoID, "user_id": userID}).Decode(&item)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *TodosRepo) Insert(ctx context.Context, item *model.TodoItem) error {
	timer := utils.TrackDBOperation("insert", "todos")
	defer timer.ObserveDuration()

	if item.UserID == "" {
		utils.TrackError("database", "invalid_todo_data")
		return fmt.Errorf("user ID is required")
	}
	_, err := r.MongoCollection.InsertOne(ctx, item)
	return err
}

func (r *TodosRepo) InsertMany(ctx context.Context, items []*model.TodoItem) error {
	if len(items) == 0 {
		return nil
	}
	timer := utils.TrackDBOperation("insert", "todos")
	defer timer.ObserveDuration()

	docs := make([]interface{}, len(items))
	for i, item := range items {
		docs[i] = item
	}
	_, err := r.MongoCollection.InsertMany(ctx, docs)
	return err
}

func (r *TodosRepo) SetDone(ctx context.Context, userID, todoID string, done bool, at time.Time) error {
	timer := utils.TrackDBOperation("update", "todos")
	defer timer.ObserveDuration()

	filter := bson.M{"_id": todoID, "user_id": userID}
	update := bson.M{"$set": bson.M{"done": done, "updated_at": at}}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("todo not found")
	}
	return nil
}

func (r *TodosRepo) Delete(ctx context.Context, userID, todoID string) error {
	timer := utils.TrackDBOperation("delete", "todos")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": todoID, "user_id": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("todo not found")
	}
	return nil
}

func (r *TodosRepo) DeleteByCategory(ctx context.Context, userID, categoryID string) error {
	timer := utils.TrackDBOperation("delete", "todos")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.DeleteMany(ctx, bson.M{
		"user_id":     userID,
		"category_id": categoryID,
	})
	return err
}

func (r *TodosRepo) CountDone(ctx context.Context, userID, categoryID string, keys []model.DateKey) (int, error) {
	timer := utils.TrackDBOperation("count", "todos")
	defer timer.ObserveDuration()

	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{
		"user_id":     userID,
		"category_id": categoryID,
		"date_key":    bson.M{"$in": keys},
		"done":        true,
	})
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *TodosRepo) Count(ctx context.Context, userID string, done *bool) (int, error) {
	timer := utils.TrackDBOperation("count", "todos")
	defer timer.ObserveDuration()

	filter := bson.M{"user_id": userID}
	if done != nil {
		filter["done"] = *done
	}
	count, err := r.MongoCollection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, err
	}
	return int(count), nil
}
