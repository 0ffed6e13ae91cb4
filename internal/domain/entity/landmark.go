package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Landmark is a mapped service location. Coordinates are pointers because
// the schema keeps them optional; the HTTP boundary rejects create/edit
// requests that are missing either one.
type Landmark struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name" validate:"required"`
	Address     string             `bson:"address" json:"address" validate:"required"`
	Tel         string             `bson:"tel,omitempty" json:"tel,omitempty"`
	CL          string             `bson:"cl,omitempty" json:"cl,omitempty"`
	Lat         *float64           `bson:"lat,omitempty" json:"lat,omitempty"`
	Lng         *float64           `bson:"lng,omitempty" json:"lng,omitempty"`
	Categories  []string           `bson:"categories" json:"categories" validate:"required,min=1"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	UserID      primitive.ObjectID `bson:"user" json:"user" validate:"required"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
