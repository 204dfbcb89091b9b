package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Blog struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title    string             `bson:"title" json:"title"`
	Content  string             `bson:"content" json:"content"`
	Author   string             `bson:"author,omitempty" json:"author,omitempty"`
	Image    string             `bson:"image,omitempty" json:"image,omitempty"`
	CreateAt time.Time          `bson:"createAt" json:"createAt"`
}
