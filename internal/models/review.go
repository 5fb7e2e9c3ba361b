package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a visitor testimonial shown on the portfolio site.
type Review struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Role      string             `json:"role,omitempty" bson:"role,omitempty"`
	Message   string             `json:"message" bson:"message"`
	Rating    int                `json:"rating,omitempty" bson:"rating,omitempty"`
	CreatedAt time.Time          `json:"created_at,omitempty" bson:"created_at,omitempty"`
}
