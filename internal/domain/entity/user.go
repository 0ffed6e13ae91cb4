package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultAvatar is assigned to users who never uploaded a picture.
const DefaultAvatar = "https://i1.wangminggu.com/f903571781a785df810d967a/be58/bc5a/bf5d164f88a3869f8e06c82ec0569761a6296fd4259bd3065c9ac8b927c8cf4672aeb8c2368d11.jpg"

// User represents a registered service unit. Password always holds a bcrypt
// hash once persisted; the plaintext never reaches the repository. Tokens is
// the list of currently valid session tokens, so logout and multi-device
// revocation are possible even though each token is a self-contained JWT.
type User struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Avatar    string               `bson:"avatar" json:"avatar"`
	Username  string               `bson:"username" json:"username" validate:"required,min=3,max=20"`
	Email     string               `bson:"email" json:"email" validate:"required,email"`
	Password  string               `bson:"password" json:"-" validate:"required"`
	Role      UserRole             `bson:"role" json:"role"`
	Tokens    []string             `bson:"tokens" json:"-"`
	Events    []primitive.ObjectID `bson:"events" json:"events"`
	Eventmark []primitive.ObjectID `bson:"eventmark" json:"eventmark"`
	Landmark  []primitive.ObjectID `bson:"landmark" json:"landmark"`
	Materials []primitive.ObjectID `bson:"materials" json:"materials"`
	Comment   []primitive.ObjectID `bson:"comment" json:"comment"`
	CreatedAt time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// UserRole is the numeric role enumeration.
type UserRole int

const (
	RoleUser UserRole = iota
	RoleAdmin
)

// HasFavorite reports whether the event is in the user's favorites list.
func (u *User) HasFavorite(eventID primitive.ObjectID) bool {
	for _, id := range u.Eventmark {
		if id == eventID {
			return true
		}
	}
	return false
}
