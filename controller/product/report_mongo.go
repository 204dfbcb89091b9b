package product

import (
	"context"

	"oldcarhat/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoReportStore struct {
	db *mongo.Database
}

func NewMongoReportStore(db *mongo.Database) ReportStore {
	return &mongoReportStore{db: db}
}

func (s *mongoReportStore) Report(ctx context.Context, id primitive.ObjectID) (*ReportResult, error) {
	result, err := s.db.Collection("products").UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$set": bson.M{"reported": true},
			"$inc": bson.M{"reportCount": 1},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, err
	}
	return &ReportResult{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
		UpsertedID:    result.UpsertedID,
	}, nil
}

func (s *mongoReportStore) Clear(ctx context.Context, id primitive.ObjectID) (*ReportResult, error) {
	result, err := s.db.Collection("products").UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"reported": false, "reportCount": 0}},
	)
	if err != nil {
		return nil, err
	}
	return &ReportResult{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}

func (s *mongoReportStore) ListReported(ctx context.Context) ([]model.Product, error) {
	cursor, err := s.db.Collection("products").Find(ctx,
		bson.M{"reported": true},
		options.Find().SetSort(bson.D{{Key: "reportCount", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}

	products := []model.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *mongoReportStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := s.db.Collection("products").DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
