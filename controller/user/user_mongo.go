package user

import (
	"context"

	"oldcarhat/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoUserStore struct {
	db *mongo.Database
}

func NewMongoUserStore(db *mongo.Database) UserStore {
	return &mongoUserStore{db: db}
}

func (s *mongoUserStore) FindByUID(ctx context.Context, uid string) (*model.User, error) {
	var user model.User
	err := s.db.Collection("users").FindOne(ctx, bson.M{"uid": uid}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *mongoUserStore) Insert(ctx context.Context, user model.User) (interface{}, error) {
	result, err := s.db.Collection("users").InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return nil, ErrDuplicateUID
	}
	if err != nil {
		return nil, err
	}
	return result.InsertedID, nil
}

func (s *mongoUserStore) FindByRole(ctx context.Context, role string) ([]model.User, error) {
	cursor, err := s.db.Collection("users").Find(ctx, bson.M{"role": role})
	if err != nil {
		return nil, err
	}

	users := []model.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *mongoUserStore) Verify(ctx context.Context, id primitive.ObjectID) (int64, int64, error) {
	result, err := s.db.Collection("users").UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": model.StatusVerified}},
	)
	if err != nil {
		return 0, 0, err
	}
	return result.MatchedCount, result.ModifiedCount, nil
}

func (s *mongoUserStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := s.db.Collection("users").DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
