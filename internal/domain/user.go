package domain

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (u *User) IsAdmin() bool { return u != nil && u.Role == RoleAdmin }
