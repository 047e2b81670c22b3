package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	Bio          string             `bson:"bio,omitempty" json:"bio"`
	Avatar       string             `bson:"avatar,omitempty" json:"avatar"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// AuthorRef is the slimmed-down user object embedded in post, comment
// and liker responses. Never stored, always resolved from the users
// collection at read time.
type AuthorRef struct {
	ID     primitive.ObjectID `bson:"-" json:"_id"`
	Name   string             `bson:"-" json:"name"`
	Avatar string             `bson:"-" json:"avatar"`
}

func (u *User) Ref() AuthorRef {
	return AuthorRef{ID: u.ID, Name: u.Name, Avatar: u.Avatar}
}
