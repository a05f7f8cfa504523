package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func SetupIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	todoIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "category_id", Value: 1},
				{Key: "date_key", Value: 1},
			},
			Options: options.Index().
				SetName("user_category_day").
				SetUnique(false),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "date_key", Value: 1},
				{Key: "done", Value: 1},
			},
			Options: options.Index().
				SetName("user_day_done"),
		},
	}

	dayMarkIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "category_id", Value: 1},
				{Key: "date_key", Value: 1},
			},
			Options: options.Index().
				SetName("user_category_day").
				SetUnique(true),
		},
	}

	categoryIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "name", Value: 1},
			},
			Options: options.Index().
				SetName("user_category_name").
				SetUnique(true),
		},
	}

	timelineIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "created_at", Value: 1},
			},
			Options: options.Index().
				SetName("user_timeline_order"),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "todo_id", Value: 1},
				{Key: "date_key", Value: 1},
			},
			Options: options.Index().
				SetName("user_todo_day"),
		},
	}

	suggestionIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "status", Value: 1},
			},
			Options: options.Index().
				SetName("user_suggestion_status"),
		},
	}

	materialIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "created_at", Value: 1},
			},
			Options: options.Index().
				SetName("user_materials_date"),
		},
	}

	userIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetName("username_unique").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetName("user_id_unique").SetUnique(true),
		},
	}

	sessionIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "session_id", Value: 1}},
			Options: options.Index().SetName("session_id_unique").SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "is_active", Value: 1},
				{Key: "expires_at", Value: 1},
			},
			Options: options.Index().SetName("user_active_sessions"),
		},
		{
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetName("session_expiry"),
		},
	}

	byCollection := map[string][]mongo.IndexModel{
		"todos":       todoIndexes,
		"day_marks":   dayMarkIndexes,
		"categories":  categoryIndexes,
		"timeline":    timelineIndexes,
		"suggestions": suggestionIndexes,
		"materials":   materialIndexes,
		"users":       userIndexes,
		"sessions":    sessionIndexes,
	}

	for name, indexes := range byCollection {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, indexes); err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", name, err)
		}
	}

	log.Println("Successfully created all indexes")
	return nil
}
