package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CustomerInfo struct {
	CustomerUID string `bson:"customer_uid" json:"customer_uid"`
	Name        string `bson:"name,omitempty" json:"name,omitempty"`
	Email       string `bson:"email,omitempty" json:"email,omitempty"`
	Phone       string `bson:"phone,omitempty" json:"phone,omitempty"`
	Address     string `bson:"address,omitempty" json:"address,omitempty"`
}

type ProductInfo struct {
	ProductID   string  `bson:"product_id" json:"product_id"`
	Name        string  `bson:"name,omitempty" json:"name,omitempty"`
	ResellPrice float64 `bson:"resell_price,omitempty" json:"resell_price,omitempty"`
}

type Order struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	CustomerInfo CustomerInfo       `bson:"customer_info" json:"customer_info"`
	ProductInfo  ProductInfo        `bson:"product_info" json:"product_info"`
	OrderStatus  bool               `bson:"order_status" json:"order_status"`
	CreateAt     time.Time          `bson:"createAt" json:"createAt"`
}
