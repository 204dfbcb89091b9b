package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is written exactly once per successful checkout and never mutated.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	OrderID       string             `bson:"orderId" json:"orderId"`
	ProductID     string             `bson:"product_id" json:"product_id"`
	BuyerUID      string             `bson:"buyer_uid" json:"buyer_uid"`
	Email         string             `bson:"email,omitempty" json:"email,omitempty"`
	Amount        float64            `bson:"amount" json:"amount"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	CreateAt      time.Time          `bson:"createAt" json:"createAt"`
}
