package types

// Claims is what the identity gateway yields for a verified bearer token:
// the authenticated user, a display name, and the role claim the catalog's
// authorization gates check.
type Claims struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}
