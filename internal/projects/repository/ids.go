package repository

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ai-website-generator/backend/internal/projects/domain"
)

// ParseID converts an external project id into an ObjectID.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrInvalidID
	}
	return oid, nil
}

// FormatID renders an ObjectID in the external id format.
func FormatID(oid primitive.ObjectID) string {
	return oid.Hex()
}
