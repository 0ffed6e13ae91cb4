package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment annotates a material listing.
type Comment struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	MaterialID primitive.ObjectID `bson:"material" json:"material" validate:"required"`
	UserID     primitive.ObjectID `bson:"user" json:"user"`
	Content    string             `bson:"content" json:"content" validate:"required"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CommentAuthor is the author projection joined into a comment listing.
type CommentAuthor struct {
	Username string `bson:"username" json:"username"`
	Avatar   string `bson:"avatar" json:"avatar"`
}

// CommentMaterial is the material projection joined into a comment listing.
type CommentMaterial struct {
	Name  string `bson:"name" json:"name"`
	Image string `bson:"image" json:"image"`
}

// CommentDetail is a comment enriched with its author and material, the
// shape returned when listing a material's comments.
type CommentDetail struct {
	Comment  `bson:",inline"`
	User     CommentAuthor   `bson:"user_info" json:"user"`
	Material CommentMaterial `bson:"material_info" json:"materialInfo"`
}
