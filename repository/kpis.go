package repository

import (
	"context"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type KPIRepo struct {
	MongoCollection *mongo.Collection
}

func GetKPIRepo(client *mongo.Client) *KPIRepo {
	dbName := utils.GetEnvAsString("MONGO_DB", "mswitch")
	collectionName := utils.GetEnvAsString("KPI_COLLECTION", "kpi_rows")
	return &KPIRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *KPIRepo) List(ctx context.Context, userID string) ([]*model.KPIRow, error) {
	timer := utils.TrackDBOperation("find", "kpi_rows")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []*model.KPIRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *KPIRepo) InsertMany(ctx context.Context, rows []*model.KPIRow) error {
	if len(rows) == 0 {
		return nil
	}
	timer := utils.TrackDBOperation("insert", "kpi_rows")
	defer timer.ObserveDuration()

	docs := make([]interface{}, len(rows))
	for i, row := range rows {
		docs[i] = row
	}
	_, err := r.MongoCollection.InsertMany(ctx, docs)
	return err
}
