package types

// ContextUserKey is the gin context key under which the authenticated user
// is stored.
const ContextUserKey = "user"

type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
