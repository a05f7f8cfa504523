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

type SuggestionsRepo struct {
	MongoCollection *mongo.Collection
}

func GetSuggestionsRepo(client *mongo.Client) *SuggestionsRepo {
	dbName := utils.GetEnvAsString("MONGO_DB", "mswitch")
	collectionName := utils.GetEnvAsString("SUGGESTIONS_COLLECTION", "suggestions")
	return &SuggestionsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// List returns suggestions for a user, filtered by status unless status is
// empty.
func (r *SuggestionsRepo) List(ctx context.Context, userID string, status model.SuggestionStatus) ([]*model.Suggestion, error) {
	timer := utils.TrackDBOperation("find", "suggestions")
	defer timer.ObserveDuration()

	filter := bson.M{"user_id": userID}
	if status != "" {
		filter["status"] = status
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.MongoCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var suggestions []*model.Suggestion
	if err := cursor.All(ctx, &suggestions); err != nil {
		return nil, err
	}
	return suggestions, nil
}

func (r *SuggestionsRepo) Get(ctx context.Context, userID, suggestionID string) (*model.Suggestion, error) {
	timer := utils.TrackDBOperation("find", "suggestions")
	defer timer.ObserveDuration()

	var s model.Suggestion
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": suggestionID, "user_id": userID}).Decode(&s)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *SuggestionsRepo) InsertMany(ctx context.Context, suggestions []*model.Suggestion) error {
	if len(suggestions) == 0 {
		return nil
	}
	timer := utils.TrackDBOperation("insert", "suggestions")
	defer timer.ObserveDuration()

	docs := make([]interface{}, len(suggestions))
	for i, s := range suggestions {
		docs[i] = s
	}
	_, err := r.MongoCollection.InsertMany(ctx, docs)
	return err
}

func (r *SuggestionsRepo) SetStatus(ctx context.Context, userID, suggestionID string, status model.SuggestionStatus, at time.Time) error {
	timer := utils.TrackDBOperation("update", "suggestions")
	defer timer.ObserveDuration()

	filter := bson.M{"_id": suggestionID, "user_id": userID}
	update := bson.M{"$set": bson.M{"status": status, "updated_at": at}}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("suggestion not found")
	}
	return nil
}

func (r *SuggestionsRepo) CountByStatus(ctx context.Context, userID string) (map[model.SuggestionStatus]int, error) {
	timer := utils.TrackDBOperation("aggregate", "suggestions")
	defer timer.ObserveDuration()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user_id": userID}}},
		{{Key: "$group", Value: bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}}},
	}
	cursor, err := r.MongoCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Status model.SuggestionStatus `bson:"_id"`
		Count  int                    `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	counts := make(map[model.SuggestionStatus]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *SuggestionsRepo) CountOpenBySeverity(ctx context.Context, userID string, severity model.SuggestionSeverity) (int, error) {
	timer := utils.TrackDBOperation("count", "suggestions")
	defer timer.ObserveDuration()

	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{
		"user_id":  userID,
		"status":   model.SuggestionOpen,
		"severity": severity,
	})
	if err != nil {
		return 0, err
	}
	return int(count), nil
}
