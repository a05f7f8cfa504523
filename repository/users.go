package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepo struct {
	MongoCollection *mongo.Collection
}

func GetUserRepo(client *mongo.Client) *UserRepo {
	dbName := utils.GetEnvAsString("MONGO_DB", "mswitch")
	collectionName := utils.GetEnvAsString("USERS_COLLECTION", "users")
	return &UserRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *UserRepo) AddUser(ctx context.Context, user *model.User) (interface{}, error) {
	timer := utils.TrackDBOperation("insert", "users")
	defer timer.ObserveDuration()

	if user.Username == "" || user.Password == "" {
		utils.TrackError("database", "invalid_user_data")
		return nil, errors.New("username and password required")
	}

	result, err := r.MongoCollection.InsertOne(ctx, user)
	if err != nil {
		utils.TrackError("database", "user_creation_failed")
		return nil, errors.New("failed to add user to database")
	}
	return result.InsertedID, nil
}

func (r *UserRepo) FindUserByUsername(username string) (*model.User, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	var user model.User
	filter := bson.D{{Key: "username", Value: username}}

	err := r.MongoCollection.FindOne(context.Background(), filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "user_lookup_error")
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) FindUser(userID string) (*model.User, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	var user model.User
	filter := bson.D{{Key: "user_id", Value: userID}}

	err := r.MongoCollection.FindOne(context.Background(), filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "user_lookup_error")
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) UpdateUserPassword(userID string, hashedPassword string) (int64, error) {
	timer := utils.TrackDBOperation("update", "users")
	defer timer.ObserveDuration()

	if hashedPassword == "" {
		utils.TrackError("database", "invalid_password_hash")
		return 0, fmt.Errorf("password hashing error")
	}

	filter := bson.M{"user_id": userID}
	update := bson.M{"$set": bson.M{"password": hashedPassword}}

	result, err := r.MongoCollection.UpdateOne(context.Background(), filter, update)
	if err != nil {
		utils.TrackError("database", "password_update_failed")
		return 0, fmt.Errorf("failed to update password: %w", err)
	}
	return result.ModifiedCount, nil
}

func (r *UserRepo) UpdateLastActive(userID string, at time.Time) error {
	timer := utils.TrackDBOperation("update", "users")
	defer timer.ObserveDuration()

	filter := bson.M{"user_id": userID}
	update := bson.M{"$set": bson.M{"last_active_at": at}}

	_, err := r.MongoCollection.UpdateOne(context.Background(), filter, update)
	return err
}

func (r *UserRepo) DeleteUserByID(userID string) (int64, error) {
	timer := utils.TrackDBOperation("delete", "users")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(context.Background(),
		bson.D{{Key: "user_id", Value: userID}})
	if err != nil {
		utils.TrackError("database", "user_deletion_failed")
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *UserRepo) Enable2FAWithRecoveryCodes(userID, secret string, recoveryCodes []string) error {
	timer := utils.TrackDBOperation("update", "users")
	defer timer.ObserveDuration()

	filter := bson.M{"user_id": userID}
	update := bson.M{
		"$set": bson.M{
			"two_factor_enabled": true,
			"two_factor_secret":  secret,
			"recovery_codes":     recoveryCodes,
		},
	}

	result, err := r.MongoCollection.UpdateOne(context.Background(), filter, update)
	if err != nil {
		utils.TrackError("database", "2fa_enable_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("user not found")
	}
	return nil
}

func (r *UserRepo) Disable2FA(userID string) error {
	timer := utils.TrackDBOperation("update", "users")
	defer timer.ObserveDuration()

	filter := bson.M{"user_id": userID}
	update := bson.M{
		"$set": bson.M{"two_factor_enabled": false},
		"$unset": bson.M{
			"two_factor_secret": "",
			"recovery_codes":    "",
		},
	}

	result, err := r.MongoCollection.UpdateOne(context.Background(), filter, update)
	if err != nil {
		utils.TrackError("database", "2fa_disable_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("user not found")
	}
	return nil
}

// UpdateRecoveryCodes replaces the stored (hashed) recovery code set, used
// after one is consumed.
func (r *UserRepo) UpdateRecoveryCodes(userID string, recoveryCodes []string) error {
	timer := utils.TrackDBOperation("update", "users")
	defer timer.ObserveDuration()

	filter := bson.M{"user_id": userID}
	update := bson.M{"$set": bson.M{"recovery_codes": recoveryCodes}}

	result, err := r.MongoCollection.UpdateOne(context.Background(), filter, update)
	if err != nil {
		utils.TrackError("database", "recovery_codes_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("user not found")
	}
	return nil
}
