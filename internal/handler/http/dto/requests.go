package dto

// RegisterRequest creates an account.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest opens a session.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ChangeProfileRequest carries a partial profile edit. Empty fields are left
// untouched; the avatar comes from the upload middleware, not the body.
type ChangeProfileRequest struct {
	Username string `form:"username" json:"username"`
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

// ToggleFavoriteRequest flips an event's favored state.
type ToggleFavoriteRequest struct {
	EventID string `json:"eventId" binding:"required"`
}

// EventRequest carries the writable event fields. On create all fields are
// required (validated on the entity); on edit empty fields are left
// untouched.
type EventRequest struct {
	Title       string   `form:"title" json:"title"`
	Date        string   `form:"date" json:"date"`
	Address     string   `form:"address" json:"address"`
	Category    []string `form:"category" json:"category"`
	Organizer   string   `form:"organizer" json:"organizer"`
	Description string   `form:"description" json:"description"`
}

// MaterialRequest carries the writable material fields.
type MaterialRequest struct {
	Name        string `form:"name" json:"name"`
	Quantity    int    `form:"quantity" json:"quantity"`
	Category    string `form:"category" json:"category"`
	Description string `form:"description" json:"description"`
	Organizer   string `form:"organizer" json:"organizer"`
	Type        string `form:"type" json:"type"`
}

// DonateRequest pledges goods against a material listing.
type DonateRequest struct {
	ID       string `json:"id" binding:"required"`
	Donator  string `json:"donator" binding:"required"`
	Quantity int    `json:"quantity" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
}

// LandmarkRequest carries the writable landmark fields. Coordinates are
// pointers so a missing value is distinguishable from zero.
type LandmarkRequest struct {
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	Tel         string   `json:"tel"`
	CL          string   `json:"cl"`
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
	Categories  []string `json:"categories"`
	Description string   `json:"description"`
}

// CommentRequest creates a comment on a material.
type CommentRequest struct {
	MaterialID string `json:"materialId" binding:"required"`
	Content    string `json:"content" binding:"required"`
}

// CommentEditRequest edits a comment's content.
type CommentEditRequest struct {
	Content string `json:"content" binding:"required"`
}
