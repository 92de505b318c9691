package dto

// RegisterRequest input di registrazione (password in chiaro, hashata nel use case).
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"fullName" validate:"omitempty,max=200"`
}

// LoginRequest input di login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse output di un utente (senza password).
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Avatar   string `json:"avatar"`
	Role     string `json:"role"`
}

// LoginResponse output con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UpdateProfileRequest aggiornamento di email e nome completo.
type UpdateProfileRequest struct {
	Email    string `json:"email" validate:"omitempty,email"`
	FullName string `json:"fullName" validate:"omitempty,max=200"`
}

// ChangePasswordRequest cambio password (richiede quella attuale).
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}
