package service

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/shravani101006/serene-write/models"
	"github.com/shravani101006/serene-write/store"
)

const bcryptCost = 10

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Bio      string `json:"bio"`
	Avatar   string `json:"avatar"`
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, invalid("Missing fields")
	}

	email := strings.ToLower(in.Email)
	if _, err := s.store.UserByEmail(ctx, email); err == nil {
		return nil, invalid("Email already in use")
	} else if err != store.ErrNotFound {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	avatar, err := saveDataURI(in.Avatar)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	u := &models.User{
		ID:           primitive.NewObjectID(),
		Name:         in.Name,
		Email:        email,
		PasswordHash: string(hash),
		Bio:          in.Bio,
		Avatar:       avatar,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.store.CreateUser(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Authenticate checks credentials for login. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	u, err := s.store.UserByEmail(ctx, email)
	if err == store.ErrNotFound {
		return nil, invalid("Invalid credentials")
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, invalid("Invalid credentials")
	}
	return u, nil
}

// ProfileUpdate fields are applied when present, absent fields leave
// the stored value alone.
type ProfileUpdate struct {
	Name   *string `json:"name"`
	Bio    *string `json:"bio"`
	Avatar *string `json:"avatar"`
}

func (s *Service) UpdateProfile(ctx context.Context, actor *models.User, in ProfileUpdate) (*models.User, error) {
	if actor == nil {
		return nil, &Error{kind: ErrUnauthenticated, msg: "No token"}
	}

	u, err := s.store.UserByID(ctx, actor.ID)
	if err == store.ErrNotFound {
		return nil, notFound("Not found")
	}
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Bio != nil {
		u.Bio = *in.Bio
	}
	if in.Avatar != nil {
		avatar, err := saveDataURI(*in.Avatar)
		if err != nil {
			return nil, err
		}
		u.Avatar = avatar
	}
	u.UpdatedAt = time.Now()

	if err := s.store.UpdateUser(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) UserByID(ctx context.Context, idHex string) (*models.User, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, notFound("Not found")
	}
	u, err := s.store.UserByID(ctx, id)
	if err == store.ErrNotFound {
		return nil, notFound("Not found")
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
