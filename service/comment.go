package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shravani101006/serene-write/models"
	"github.com/shravani101006/serene-write/store"
)

// CreateComment attaches a comment to an existing post. The post must
// exist at creation time.
func (s *Service) CreateComment(ctx context.Context, actor *models.User, postIDHex, text string) (*models.Comment, error) {
	if actor == nil {
		return nil, &Error{kind: ErrUnauthenticated, msg: "No token"}
	}

	postID, err := primitive.ObjectIDFromHex(postIDHex)
	if err != nil {
		return nil, notFound("Post not found")
	}
	if _, err := s.store.PostByID(ctx, postID); err != nil {
		if err == store.ErrNotFound {
			return nil, notFound("Post not found")
		}
		return nil, err
	}
	if text == "" {
		return nil, invalid("Text is required")
	}

	c := &models.Comment{
		ID:        primitive.NewObjectID(),
		Post:      postID,
		Author:    actor.ID,
		Text:      text,
		CreatedAt: time.Now(),
	}
	if err := s.store.CreateComment(ctx, c); err != nil {
		return nil, err
	}
	ref := actor.Ref()
	c.AuthorInfo = &ref
	return c, nil
}

func (s *Service) DeleteComment(ctx context.Context, actor *models.User, idHex string) error {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return notFound("Not found")
	}
	c, err := s.store.CommentByID(ctx, id)
	if err == store.ErrNotFound {
		return notFound("Not found")
	}
	if err != nil {
		return err
	}
	if err := ownerOnly(actor, c.Author); err != nil {
		return err
	}

	if err := s.store.DeleteComment(ctx, id); err != nil {
		if err == store.ErrNotFound {
			return notFound("Not found")
		}
		return err
	}
	return nil
}

// CommentsForPost lists a post's comments newest-first with author
// name and avatar joined in. A post with no comments (or one that was
// just deleted) yields an empty list, not an error.
func (s *Service) CommentsForPost(ctx context.Context, postIDHex string) ([]models.Comment, error) {
	postID, err := primitive.ObjectIDFromHex(postIDHex)
	if err != nil {
		return nil, notFound("Not found")
	}

	comments, err := s.store.CommentsByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return comments, nil
	}

	ids := make([]primitive.ObjectID, 0, len(comments))
	seen := map[primitive.ObjectID]bool{}
	for i := range comments {
		if !seen[comments[i].Author] {
			seen[comments[i].Author] = true
			ids = append(ids, comments[i].Author)
		}
	}
	users, err := s.store.UsersByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	refs := make(map[primitive.ObjectID]models.AuthorRef, len(users))
	for i := range users {
		refs[users[i].ID] = users[i].Ref()
	}
	for i := range comments {
		if ref, ok := refs[comments[i].Author]; ok {
			r := ref
			comments[i].AuthorInfo = &r
		}
	}
	return comments, nil
}
