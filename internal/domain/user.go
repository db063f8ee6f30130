package domain

// User represents a stored account used for authentication.
// Users are created by bootstrap seeding only; the role never
// changes at runtime.
type User struct {
	ID         int64
	Username   string
	Credential string
	Role       Role
}
