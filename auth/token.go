// Package auth issues and verifies the bearer tokens that bind a
// request to a user. Tokens are HS256 JWTs carrying the user id and a
// 7-day expiry; there is no revocation list, a token stays valid for
// its full lifetime.
package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shravani101006/serene-write/models"
	"github.com/shravani101006/serene-write/store"
)

const tokenTTL = 7 * 24 * time.Hour

var (
	ErrInvalidToken    = errors.New("invalid or expired token")
	ErrUnauthenticated = errors.New("unauthenticated")
)

// TokenService signs and checks tokens with a process-wide secret
// loaded once at startup.
type TokenService struct {
	secret []byte
	store  store.Store
	now    func() time.Time
}

func NewTokenService(secret string, st store.Store) *TokenService {
	return &TokenService{secret: []byte(secret), store: st, now: time.Now}
}

func (s *TokenService) Issue(userID primitive.ObjectID) (string, error) {
	claims := jwt.MapClaims{
		"id":  userID.Hex(),
		"exp": s.now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks signature and expiry and returns the embedded user id.
// It never touches the store.
func (s *TokenService) Verify(tokenStr string) (primitive.ObjectID, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil || !token.Valid {
		return primitive.NilObjectID, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return primitive.NilObjectID, ErrInvalidToken
	}
	idHex, ok := claims["id"].(string)
	if !ok {
		return primitive.NilObjectID, ErrInvalidToken
	}
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidToken
	}
	return id, nil
}

// Resolve turns a token into the acting user. A valid token whose user
// no longer exists is treated the same as an invalid token.
func (s *TokenService) Resolve(ctx context.Context, tokenStr string) (*models.User, error) {
	id, err := s.Verify(tokenStr)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	u, err := s.store.UserByID(ctx, id)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	return u, nil
}
