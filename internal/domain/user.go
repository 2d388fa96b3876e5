package domain

type User struct {
	ID           int32  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	PasswordHash string `json:"-"`
	CreatedOn    string `json:"created_on"`
}

type ProfileRole string

const (
	ProfileRoleOwner  ProfileRole = "owner"
	ProfileRoleRenter ProfileRole = "renter"
)

// Profile carries the marketplace-specific attributes of a user.
// Exactly one profile exists per user; the role is fixed at signup.
type Profile struct {
	ID          int32       `json:"id"`
	UserID      int32       `json:"user_id"`
	Role        ProfileRole `json:"role"`
	PhoneNumber string      `json:"phone_number"`
	Address     string      `json:"address"`
	CreatedOn   string      `json:"created_on"`
}
