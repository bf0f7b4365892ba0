package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	Role         Role               `bson:"role" json:"role"`
	Salary       float64            `bson:"salary" json:"salary"`
	BankAccount  string             `bson:"bankAccount" json:"bankAccount"`
	Designation  string             `bson:"designation" json:"designation"`
	PhotoURL     string             `bson:"photoURL" json:"photoURL"`
	Verified     bool               `bson:"verified" json:"verified"`
	Fired        bool               `bson:"fired" json:"fired"`
	PasswordHash string             `bson:"passwordHash,omitempty" json:"-"` // Bcrypt hash - never expose
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// RegisterRequest is the payload accepted by POST /users.
type RegisterRequest struct {
	Name        string  `json:"name"`
	Email       string  `json:"email" binding:"required"`
	Password    string  `json:"password"`
	Role        string  `json:"role"`
	Salary      float64 `json:"salary"`
	BankAccount string  `json:"bankAccount"`
	Designation string  `json:"designation"`
	PhotoURL    string  `json:"photoURL"`
}

// LoginRequest is the payload accepted by POST /login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the redacted view returned to clients (password hash omitted).
type UserResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Role        Role      `json:"role"`
	Salary      float64   `json:"salary"`
	BankAccount string    `json:"bankAccount"`
	Designation string    `json:"designation"`
	PhotoURL    string    `json:"photoURL"`
	Verified    bool      `json:"verified"`
	Fired       bool      `json:"fired"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToResponse converts User to UserResponse (excludes the password hash).
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:          u.ID.Hex(),
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		Salary:      u.Salary,
		BankAccount: u.BankAccount,
		Designation: u.Designation,
		PhotoURL:    u.PhotoURL,
		Verified:    u.Verified,
		Fired:       u.Fired,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
