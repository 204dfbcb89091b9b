package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name          string             `bson:"name" json:"name"`
	Image         string             `bson:"image,omitempty" json:"image,omitempty"`
	SellerUID     string             `bson:"seller_uid" json:"seller_uid"`
	SellerName    string             `bson:"seller_name,omitempty" json:"seller_name,omitempty"`
	CategoryID    string             `bson:"category_id" json:"category_id"`
	ResellPrice   float64            `bson:"resell_price" json:"resell_price"`
	OriginalPrice float64            `bson:"original_price,omitempty" json:"original_price,omitempty"`
	YearsUsed     int                `bson:"years_used,omitempty" json:"years_used,omitempty"`
	Location      string             `bson:"location,omitempty" json:"location,omitempty"`
	Phone         string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Reported      bool               `bson:"reported" json:"reported"`
	ReportCount   int                `bson:"reportCount" json:"reportCount"`
	Promote       bool               `bson:"promote" json:"promote"`
	OrderStatus   bool               `bson:"order_status" json:"order_status"`
	CreateAt      time.Time          `bson:"createAt" json:"createAt"`
}
