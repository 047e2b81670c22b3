package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shravani101006/serene-write/models"
)

// ToggleLike flips the actor's membership in the post's liker set and
// returns the resulting count. Toggling twice restores the original
// state. The read-then-write races under concurrency, last write wins.
func (s *Service) ToggleLike(ctx context.Context, actor *models.User, idHex string) (int, error) {
	if actor == nil {
		return 0, &Error{kind: ErrUnauthenticated, msg: "No token"}
	}
	p, err := s.loadPost(ctx, idHex)
	if err != nil {
		return 0, err
	}

	idx := -1
	for i, id := range p.Likes {
		if id.Hex() == actor.ID.Hex() {
			idx = i
			break
		}
	}
	if idx == -1 {
		p.Likes = append(p.Likes, actor.ID)
	} else {
		p.Likes = append(p.Likes[:idx], p.Likes[idx+1:]...)
	}

	if err := s.store.UpdatePost(ctx, p); err != nil {
		return 0, err
	}
	return len(p.Likes), nil
}

// Likers lists the post's likers as {_id, name, avatar}, preserving
// the order in which the likes were recorded. Likers whose account no
// longer resolves are skipped.
func (s *Service) Likers(ctx context.Context, idHex string) ([]models.AuthorRef, error) {
	p, err := s.loadPost(ctx, idHex)
	if err != nil {
		return nil, err
	}

	users, err := s.store.UsersByIDs(ctx, p.Likes)
	if err != nil {
		return nil, err
	}
	byID := make(map[primitive.ObjectID]models.AuthorRef, len(users))
	for i := range users {
		byID[users[i].ID] = users[i].Ref()
	}

	likers := []models.AuthorRef{}
	for _, id := range p.Likes {
		if ref, ok := byID[id]; ok {
			likers = append(likers, ref)
		}
	}
	return likers, nil
}
