package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shravani101006/serene-write/models"
)

// ErrNotFound is returned by every lookup that misses, regardless of
// which backing engine is in use.
var ErrNotFound = errors.New("not found")

// PostFilter is a compound predicate over posts. Zero value matches
// everything. All set fields combine with AND.
type PostFilter struct {
	// Query matches title, tags or content as a case-insensitive
	// substring.
	Query string
	// Mood is an exact match when set.
	Mood models.Mood
	// Authors restricts to the given author ids. Distinguish "no
	// author filter" (nil) from "no authors matched" (empty slice):
	// an empty slice matches nothing.
	Authors []primitive.ObjectID
}

// Store holds users, posts and comments. Results that list posts or
// comments are always ordered newest-first.
type Store interface {
	CreateUser(ctx context.Context, u *models.User) error
	UserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	UsersByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error)
	UsersByName(ctx context.Context, name string) ([]models.User, error)
	UpdateUser(ctx context.Context, u *models.User) error

	CreatePost(ctx context.Context, p *models.Post) error
	PostByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error)
	UpdatePost(ctx context.Context, p *models.Post) error
	DeletePost(ctx context.Context, id primitive.ObjectID) error
	FindPosts(ctx context.Context, f PostFilter) ([]models.Post, error)

	CreateComment(ctx context.Context, c *models.Comment) error
	CommentByID(ctx context.Context, id primitive.ObjectID) (*models.Comment, error)
	DeleteComment(ctx context.Context, id primitive.ObjectID) error
	CommentsByPost(ctx context.Context, postID primitive.ObjectID) ([]models.Comment, error)
	DeleteCommentsByPost(ctx context.Context, postID primitive.ObjectID) (int64, error)
}
