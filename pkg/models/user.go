package models

type User struct {
	ID           int    `json:"id" db:"id"`
	Username     string `json:"username" db:"username"`
	Fullname     string `json:"fullname" db:"fullname"`
	Initials     string `json:"initials" db:"initials"`
	PasswordHash string `json:"-" db:"password_hash"`
	Role         string `json:"role" db:"role"`
}

type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Fullname string `json:"fullname" binding:"required"`
	Initials string `json:"initials"`
	Role     string `json:"role" binding:"required"`
}

type UpdateUserRequest struct {
	Fullname *string `json:"fullname"`
	Initials *string `json:"initials"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

// UserChanges carries only the columns that actually changed.
type UserChanges struct {
	Fullname     *string
	Initials     *string
	PasswordHash *string
	Role         *string
}

func (c *UserChanges) HasChanges() bool {
	return c.Fullname != nil || c.Initials != nil || c.PasswordHash != nil || c.Role != nil
}
