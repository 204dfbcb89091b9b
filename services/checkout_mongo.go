package services

import (
	"context"
	"fmt"

	"oldcarhat/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoCheckoutStore struct {
	db *mongo.Database
}

func NewMongoCheckoutStore(db *mongo.Database) CheckoutStore {
	return &mongoCheckoutStore{db: db}
}

func (s *mongoCheckoutStore) InsertPayment(ctx context.Context, payment model.Payment) (primitive.ObjectID, error) {
	res, err := s.db.Collection("payments").InsertOne(ctx, payment)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

func (s *mongoCheckoutStore) MarkOrderPaid(ctx context.Context, orderID primitive.ObjectID) (int64, error) {
	res, err := s.db.Collection("orders").UpdateOne(ctx,
		bson.M{"_id": orderID},
		bson.M{"$set": bson.M{"order_status": true}},
	)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (s *mongoCheckoutStore) MarkProductSold(ctx context.Context, productID primitive.ObjectID) (int64, error) {
	res, err := s.db.Collection("products").UpdateOne(ctx,
		bson.M{"_id": productID},
		bson.M{"$set": bson.M{"order_status": true, "promote": false}},
	)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (s *mongoCheckoutStore) DeletePayment(ctx context.Context, paymentID primitive.ObjectID) error {
	_, err := s.db.Collection("payments").DeleteOne(ctx, bson.M{"_id": paymentID})
	return err
}
