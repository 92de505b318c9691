package entity

import "time"

// Ruoli validi per User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User rappresenta un utente del sistema.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // hash bcrypt, mai in chiaro dopo la persistenza
	FullName     string
	Avatar       string // iniziali, es. "MR"
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
