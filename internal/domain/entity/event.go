package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventCategories is the closed set of accepted event categories.
var EventCategories = []string{
	"兒童", "青少年", "育兒", "長照", "精神", "照顧", "就學", "就業", "身障",
	"親職教育", "早療", "紓壓", "居住", "醫療", "司法", "社工", "其他",
}

// Event is a community activity post. Every field except the owner reference
// is required.
type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Image       string             `bson:"image" json:"image" validate:"required"`
	Title       string             `bson:"title" json:"title" validate:"required"`
	Date        string             `bson:"date" json:"date" validate:"required"`
	Address     string             `bson:"address" json:"address" validate:"required"`
	Category    []string           `bson:"category" json:"category" validate:"required,min=1,dive,eventcategory"`
	Organizer   string             `bson:"organizer" json:"organizer" validate:"required"`
	Description string             `bson:"description" json:"description" validate:"required"`
	UserID      primitive.ObjectID `bson:"user" json:"user"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
