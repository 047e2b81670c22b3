package service

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shravani101006/serene-write/models"
	"github.com/shravani101006/serene-write/store"
)

type CreatePostInput struct {
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	FeaturedImage string   `json:"featuredImage"`
	Tags          []string `json:"tags"`
	Mood          string   `json:"mood"`
}

func (s *Service) CreatePost(ctx context.Context, actor *models.User, in CreatePostInput) (*models.Post, error) {
	if actor == nil {
		return nil, &Error{kind: ErrUnauthenticated, msg: "No token"}
	}
	if in.Title == "" {
		return nil, invalid("Title is required")
	}

	image, err := saveDataURI(in.FeaturedImage)
	if err != nil {
		return nil, err
	}

	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	now := time.Now()
	p := &models.Post{
		ID:            primitive.NewObjectID(),
		Title:         in.Title,
		Content:       in.Content,
		FeaturedImage: image,
		Tags:          tags,
		Author:        actor.ID,
		Likes:         []primitive.ObjectID{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	// Unknown moods are dropped, not rejected.
	if m := models.Mood(in.Mood); m.Valid() {
		p.Mood = m
	}

	if err := s.store.CreatePost(ctx, p); err != nil {
		return nil, err
	}
	ref := actor.Ref()
	p.AuthorInfo = &ref
	return p, nil
}

type UpdatePostInput struct {
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	FeaturedImage string   `json:"featuredImage"`
	Tags          []string `json:"tags"`
	Mood          string   `json:"mood"`
}

// UpdatePost applies truthy-overwrite semantics: an empty incoming
// string leaves the stored field alone, so callers can never blank a
// field, only replace it. A present tags array replaces the set even
// when empty. This mirrors long-standing client expectations; do not
// "fix" it to support clearing.
func (s *Service) UpdatePost(ctx context.Context, actor *models.User, idHex string, in UpdatePostInput) (*models.Post, error) {
	p, err := s.loadPost(ctx, idHex)
	if err != nil {
		return nil, err
	}
	if err := ownerOnly(actor, p.Author); err != nil {
		return nil, err
	}

	if in.Title != "" {
		p.Title = in.Title
	}
	if in.Content != "" {
		p.Content = in.Content
	}
	if in.FeaturedImage != "" {
		image, err := saveDataURI(in.FeaturedImage)
		if err != nil {
			return nil, err
		}
		p.FeaturedImage = image
	}
	if in.Tags != nil {
		p.Tags = in.Tags
	}
	if m := models.Mood(in.Mood); m.Valid() {
		p.Mood = m
	}
	p.UpdatedAt = time.Now()

	if err := s.store.UpdatePost(ctx, p); err != nil {
		return nil, err
	}
	if err := s.attachAuthor(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// DeletePost removes the post and then sweeps its comments. The sweep
// is best-effort: a cascade failure is logged and the delete still
// succeeds.
func (s *Service) DeletePost(ctx context.Context, actor *models.User, idHex string) error {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return invalid("Invalid post id")
	}
	p, err := s.store.PostByID(ctx, id)
	if err == store.ErrNotFound {
		return notFound("Not found")
	}
	if err != nil {
		return err
	}
	if err := ownerOnly(actor, p.Author); err != nil {
		return err
	}

	if err := s.store.DeletePost(ctx, id); err != nil {
		if err == store.ErrNotFound {
			return notFound("Not found")
		}
		return err
	}

	if _, err := s.store.DeleteCommentsByPost(ctx, id); err != nil {
		log.Printf("cascade delete of comments for post %s failed: %v", id.Hex(), err)
	}
	return nil
}

// PostByID returns a single post and bumps its view counter. The
// read-then-write is not serialized; concurrent readers may lose an
// increment, which matches the store's last-write-wins model.
func (s *Service) PostByID(ctx context.Context, idHex string) (*models.Post, error) {
	p, err := s.loadPost(ctx, idHex)
	if err != nil {
		return nil, err
	}

	p.Views++
	if err := s.store.UpdatePost(ctx, p); err != nil {
		return nil, err
	}
	if err := s.attachAuthor(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Feed(ctx context.Context) ([]models.Post, error) {
	posts, err := s.store.FindPosts(ctx, store.PostFilter{})
	if err != nil {
		return nil, err
	}
	if err := s.attachAuthors(ctx, posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *Service) PostsByAuthor(ctx context.Context, idHex string) ([]models.Post, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, notFound("Not found")
	}
	posts, err := s.store.FindPosts(ctx, store.PostFilter{Authors: []primitive.ObjectID{id}})
	if err != nil {
		return nil, err
	}
	if err := s.attachAuthors(ctx, posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *Service) loadPost(ctx context.Context, idHex string) (*models.Post, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, notFound("Not found")
	}
	p, err := s.store.PostByID(ctx, id)
	if err == store.ErrNotFound {
		return nil, notFound("Not found")
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) attachAuthor(ctx context.Context, p *models.Post) error {
	u, err := s.store.UserByID(ctx, p.Author)
	if err == store.ErrNotFound {
		return nil
	}
	if err != nil {
		return err
	}
	ref := u.Ref()
	p.AuthorInfo = &ref
	return nil
}
