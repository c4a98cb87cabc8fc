package models

import "time"

// User is stored in the relational database. Password always holds a bcrypt
// hash, never plaintext, and is excluded from JSON.
type User struct {
	ID        uint      `gorm:"primarykey"                 json:"id"`
	Username  string    `gorm:"size:255;not null"          json:"username"`
	Email     string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password  string    `gorm:"size:255;not null"          json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PublicUser is the response projection for user endpoints.
type PublicUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Public returns the projection of u safe to serialize.
func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username, Email: u.Email}
}

// CreateUserInput is the body of POST /users and PUT /users/{id}.
type CreateUserInput struct {
	Username string `json:"username" validate:"required,max=255"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// PatchUserInput is the body of PATCH /users/{id}; every field is optional.
type PatchUserInput struct {
	Username *string `json:"username" validate:"nullable,max=255"`
	Email    *string `json:"email"    validate:"nullable,email"`
	Password *string `json:"password" validate:"nullable,min=6"`
}

// LoginInput is the body of POST /auth/login.
type LoginInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
