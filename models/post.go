package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mood is a closed classification tag on a post. Anything outside the
// six known values is dropped before it ever reaches the store.
type Mood string

const (
	MoodHappy     Mood = "Happy"
	MoodCalm      Mood = "Calm"
	MoodSad       Mood = "Sad"
	MoodAnxious   Mood = "Anxious"
	MoodEnergetic Mood = "Energetic"
	MoodFocused   Mood = "Focused"
)

var validMoods = map[Mood]bool{
	MoodHappy:     true,
	MoodCalm:      true,
	MoodSad:       true,
	MoodAnxious:   true,
	MoodEnergetic: true,
	MoodFocused:   true,
}

func (m Mood) Valid() bool {
	return validMoods[m]
}

type Post struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Title         string               `bson:"title" json:"title"`
	Content       string               `bson:"content,omitempty" json:"content"`
	FeaturedImage string               `bson:"featuredImage,omitempty" json:"featuredImage"`
	Tags          []string             `bson:"tags" json:"tags"`
	Mood          Mood                 `bson:"mood,omitempty" json:"mood,omitempty"`
	Author        primitive.ObjectID   `bson:"author" json:"-"`
	Likes         []primitive.ObjectID `bson:"likes" json:"likes"`
	Views         int                  `bson:"views" json:"views"`
	CreatedAt     time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time            `bson:"updatedAt" json:"updatedAt"`

	// Populated in responses only.
	AuthorInfo *AuthorRef `bson:"-" json:"author,omitempty"`
}
