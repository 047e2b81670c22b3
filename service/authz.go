package service

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shravani101006/serene-write/models"
)

// ownerOnly is the single mutation rule of the platform: the actor
// must be the resource owner. Ids are compared by their canonical hex
// form, never by struct identity, since they arrive from different
// representations (token claim strings vs. stored ObjectIDs).
func ownerOnly(actor *models.User, owner primitive.ObjectID) error {
	if actor == nil {
		return &Error{kind: ErrUnauthenticated, msg: "No token"}
	}
	if actor.ID.Hex() != owner.Hex() {
		return forbidden("Forbidden")
	}
	return nil
}
