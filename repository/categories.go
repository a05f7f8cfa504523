package repository

import (
	"context"
	"fmt"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CategoriesRepo struct {
	MongoCollection *mongo.Collection
}

func GetCategoriesRepo(client *mongo.Client) *CategoriesRepo {
	dbName := utils.GetEnvAsString("MONGO_DB", "mswitch")
	collectionName := utils.GetEnvAsString("CATEGORIES_COLLECTION", "categories")
	return &CategoriesRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *CategoriesRepo) List(ctx context.Context, userID string) ([]*model.Category, error) {
	timer := utils.TrackDBOperation("find", "categories")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var cats []*model.Category
	if err := cursor.All(ctx, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

func (r *CategoriesRepo) Get(ctx context.Context, userID, categoryID string) (*model.Category, error) {
	timer := utils.TrackDBOperation("find", "categories")
	defer timer.ObserveDuration()

	var cat model.Category
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": categoryID, "user_id": userID}).Decode(&cat)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &cat, nil
}

func (r *CategoriesRepo) FindByName(ctx context.Context, userID, name string) (*model.Category, error) {
	timer := utils.TrackDBOperation("find", "categories")
	defer timer.ObserveDuration()

	var cat model.Category
	err := r.MongoCollection.FindOne(ctx, bson.M{"user_id": userID, "name": name}).Decode(&cat)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &cat, nil
}

func (r *CategoriesRepo) Insert(ctx context.Context, cat *model.Category) error {
	timer := utils.TrackDBOperation("insert", "categories")
	defer timer.ObserveDuration()

	if cat.UserID == "" {
		utils.TrackError("database", "invalid_category_data")
		return fmt.Errorf("user ID is required")
	}
	_, err := r.MongoCollection.InsertOne(ctx, cat)
	return err
}

func (r *CategoriesRepo) Delete(ctx context.Context, userID, categoryID string) error {
	timer := utils.TrackDBOperation("delete", "categories")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": categoryID, "user_id": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("category not found")
	}
	return nil
}
