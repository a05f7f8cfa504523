package repository

import (
	"context"
	"fmt"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type JourneysRepo struct {
	MongoCollection *mongo.Collection
}

func GetJourneysRepo(client *mongo.Client) *JourneysRepo {
	dbName := utils.GetEnvAsString("MONGO_DB", "mswitch")
	collectionName := utils.GetEnvAsString("JOURNEYS_COLLECTION", "journeys")
	return &JourneysRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *JourneysRepo) Get(ctx context.Context, userID, journeyID string) (*model.Journey, error) {
	timer := utils.TrackDBOperation("find", "journeys")
	defer timer.ObserveDuration()

	var j model.Journey
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": journeyID, "user_id": userID}).Decode(&j)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &j, nil
}

func (r *JourneysRepo) Insert(ctx context.Context, j *model.Journey) error {
	timer := utils.TrackDBOperation("insert", "journeys")
	defer timer.ObserveDuration()

	if j.UserID == "" {
		utils.TrackError("database", "invalid_journey_data")
		return fmt.Errorf("user ID is required")
	}
	_, err := r.MongoCollection.InsertOne(ctx, j)
	return err
}

func (r *JourneysRepo) Update(ctx context.Context, j *model.Journey) error {
	timer := utils.TrackDBOperation("update", "journeys")
	defer timer.ObserveDuration()

	filter := bson.M{"_id": j.JourneyID, "user_id": j.UserID}
	result, err := r.MongoCollection.ReplaceOne(ctx, filter, j)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("journey not found")
	}
	return nil
}
