package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaterialCategories is the closed set of accepted material categories.
var MaterialCategories = []string{
	"食品", "服飾配件", "日用品", "家具", "輔具", "教育用品", "嬰幼兒用品",
	"電器", "休閒用品", "其他",
}

// Material listing types: a unit either shares surplus goods or looks for
// donations.
const (
	MaterialTypeShare = "share"
	MaterialTypeFind  = "find"
)

// Donation is embedded in a material and has no independent lifecycle.
// Recording a donation never decrements the material's own quantity.
type Donation struct {
	Donator  string `bson:"donator" json:"donator" validate:"required"`
	Quantity int    `bson:"quantity" json:"quantity" validate:"required,min=1"`
	Phone    string `bson:"phone" json:"phone" validate:"required"`
}

// Material is a goods listing, either shared or requested.
type Material struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Image       string               `bson:"image" json:"image" validate:"required"`
	Name        string               `bson:"name" json:"name" validate:"required"`
	Quantity    int                  `bson:"quantity" json:"quantity" validate:"required,min=1"`
	Category    string               `bson:"category" json:"category" validate:"required,materialcategory"`
	Description string               `bson:"description" json:"description" validate:"required"`
	Organizer   string               `bson:"organizer" json:"organizer" validate:"required"`
	Type        string               `bson:"type" json:"type" validate:"required,oneof=share find"`
	UserID      primitive.ObjectID   `bson:"user" json:"user"`
	Donations   []Donation           `bson:"donations" json:"donations"`
	Comment     []primitive.ObjectID `bson:"comment" json:"comment"`
	CreatedAt   time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt" json:"updatedAt"`
}
