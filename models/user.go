// GORM models + simple DTOs used in handlers.

package models

// User is stored in T_USER under the implicit naming strategy.
// json tags control how fields are serialized in API responses.
type User struct {
	BaseEntity
	Name     string `gorm:"size:120;not null" json:"name"`
	Email    string `gorm:"size:180;uniqueIndex;not null" json:"email"` // unique across soft-deleted rows too
	Password string `gorm:"size:255;not null" json:"-"` // bcrypt hash
}

// RegisterRequest is the expected payload for the register endpoint.
// Gin's binding tags add basic validation rules automatically.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
}

// UpdateUserRequest allows partial updates: nil means "no change".
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}
