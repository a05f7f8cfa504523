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

type MaterialsRepo struct {
	MongoCollection *mongo.Collection
}

func GetMaterialsRepo(client *mongo.Client) *MaterialsRepo {
	dbName := utils.GetEnvAsString("MONGO_DB", "mswitch")
	collectionName := utils.GetEnvAsString("MATERIALS_COLLECTION", "materials")
	return &MaterialsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *MaterialsRepo) List(ctx context.Context, userID string) ([]*model.Material, error) {
	timer := utils.TrackDBOperation("find", "materials")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var materials []*model.Material
	if err := cursor.All(ctx, &materials); err != nil {
		return nil, err
	}
	return materials, nil
}

func (r *MaterialsRepo) Get(ctx context.Context, userID, materialID string) (*model.Material, error) {
	timer := utils.TrackDBOperation("find", "materials")
	defer timer.ObserveDuration()

	var mat model.Material
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": materialID, "user_id": userID}).Decode(&mat)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &mat, nil
}

func (r *MaterialsRepo) Insert(ctx context.Context, mat *model.Material) error {
	timer := utils.TrackDBOperation("insert", "materials")
	defer timer.ObserveDuration()

	if mat.UserID == "" {
		utils.TrackError("database", "invalid_material_data")
		return fmt.Errorf("user ID is required")
	}
	_, err := r.MongoCollection.InsertOne(ctx, mat)
	return err
}

func (r *MaterialsRepo) SetSegmentDone(ctx context.Context, userID, materialID, segmentID string, done bool, doneAt *time.Time) error {
	timer := utils.TrackDBOperation("update", "materials")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":                 materialID,
		"user_id":             userID,
		"segments.segment_id": segmentID,
	}
	update := bson.M{"$set": bson.M{
		"segments.$.completed": done,
		"segments.$.done_at":   doneAt,
		"updated_at":           time.Now(),
	}}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("segment not found")
	}
	return nil
}

func (r *MaterialsRepo) Delete(ctx context.Context, userID, materialID string) error {
	timer := utils.TrackDBOperation("delete", "materials")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": materialID, "user_id": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("material not found")
	}
	return nil
}
