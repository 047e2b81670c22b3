// Package service holds the business rules of the platform: who may
// touch which resource, how posts and comments live and die, and how
// the feed is filtered. Handlers stay thin and map the error kinds
// returned here onto HTTP statuses.
package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shravani101006/serene-write/models"
	"github.com/shravani101006/serene-write/store"
)

type Service struct {
	store store.Store
}

func New(st store.Store) *Service {
	return &Service{store: st}
}

// attachAuthors resolves author references to {_id, name, avatar}
// objects across a batch of posts, one store round-trip total.
func (s *Service) attachAuthors(ctx context.Context, posts []models.Post) error {
	if len(posts) == 0 {
		return nil
	}

	ids := make([]primitive.ObjectID, 0, len(posts))
	seen := map[primitive.ObjectID]bool{}
	for i := range posts {
		if !seen[posts[i].Author] {
			seen[posts[i].Author] = true
			ids = append(ids, posts[i].Author)
		}
	}

	users, err := s.store.UsersByIDs(ctx, ids)
	if err != nil {
		return err
	}

	refs := make(map[primitive.ObjectID]models.AuthorRef, len(users))
	for i := range users {
		refs[users[i].ID] = users[i].Ref()
	}
	for i := range posts {
		if ref, ok := refs[posts[i].Author]; ok {
			r := ref
			posts[i].AuthorInfo = &r
		}
	}
	return nil
}
