package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shravani101006/serene-write/models"
	"github.com/shravani101006/serene-write/store"
)

// Search composes the q/author/mood filters over the feed. All present
// filters AND together; with none present this is the plain feed.
//
// The author filter accepts either a post author's id or a fragment of
// a display name. A name fragment that matches no user yields an empty
// result, it never falls back to the unfiltered feed.
func (s *Service) Search(ctx context.Context, q, author, mood string) ([]models.Post, error) {
	filter := store.PostFilter{
		Query: q,
		Mood:  models.Mood(mood),
	}

	if author != "" {
		if id, err := primitive.ObjectIDFromHex(author); err == nil {
			filter.Authors = []primitive.ObjectID{id}
		} else {
			users, err := s.store.UsersByName(ctx, author)
			if err != nil {
				return nil, err
			}
			ids := make([]primitive.ObjectID, 0, len(users))
			for i := range users {
				ids = append(ids, users[i].ID)
			}
			// Non-nil and possibly empty: no matching users means
			// no matching posts.
			filter.Authors = ids
		}
	}

	posts, err := s.store.FindPosts(ctx, filter)
	if err != nil {
		return nil, err
	}
	if err := s.attachAuthors(ctx, posts); err != nil {
		return nil, err
	}
	return posts, nil
}
