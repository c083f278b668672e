package domain

import (
	"errors"
	"time"
)

const (
	RoleLocatario = "locatario" // tenant
	RoleLocador   = "locador"   // owner / landlord
	RoleAdmin     = "admin"
)

// VerificationState is the tri-state identity verification status of a user.
type VerificationState string

const (
	VerificationNone     VerificationState = "sin_verificar"
	VerificationPending  VerificationState = "pendiente"
	VerificationApproved VerificationState = "aprobado"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidRole reports whether role is one the platform recognizes.
func ValidRole(role string) bool {
	return role == RoleLocatario || role == RoleLocador || role == RoleAdmin
}

// User models an authenticated actor: a tenant, a landlord, or an admin.
type User struct {
	ID           string            `json:"id" bson:"_id,omitempty"`
	Nombre       string            `json:"nombre" bson:"nombre"`
	Email        string            `json:"email" bson:"email"`
	PasswordHash string            `json:"-" bson:"password_hash"`
	Role         string            `json:"tipo" bson:"tipo"`
	Verification VerificationState `json:"verificacion" bson:"verificacion"`
	CreatedAt    time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at" bson:"updated_at"`
}
