package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Comment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Post      primitive.ObjectID `bson:"post" json:"post"`
	Author    primitive.ObjectID `bson:"author" json:"-"`
	Text      string             `bson:"text" json:"text"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`

	// Populated in responses only.
	AuthorInfo *AuthorRef `bson:"-" json:"author,omitempty"`
}
