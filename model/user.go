package model

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
	RoleAdmin  = "admin"

	StatusVerified = "verified"
)

type User struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UID    string             `bson:"uid" json:"uid"`
	Name   string             `bson:"name,omitempty" json:"name,omitempty"`
	Email  string             `bson:"email,omitempty" json:"email,omitempty"`
	Role   string             `bson:"role" json:"role"` // "buyer", "seller" or "admin"
	Status string             `bson:"status,omitempty" json:"status,omitempty"`
}
