package models

// Roles stored in the users table. Admin satisfies every Moderator check.
const (
	RoleUser      = "User"
	RoleModerator = "Moderator"
	RoleAdmin     = "Admin"
)

type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"unique;not null"`
	PhotoURL string `json:"photo_url"`
	Role     string `json:"role" gorm:"default:User"`
}

// ValidRole reports whether role is one of the enumerated roles.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleModerator || role == RoleAdmin
}
