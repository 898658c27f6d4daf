package models

// Identity is the minimal authenticated principal attached to a request by
// the protect middleware.
type Identity struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}
