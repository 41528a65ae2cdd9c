package dto

// CreateUserRequest alta de usuario (solo admin).
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UpdateUserRequest actualización parcial de usuario (solo admin).
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Role     *string `json:"role"`
}

// PasswordChangeRequest cambio de contraseña. CurrentPassword se exige cuando
// el usuario cambia la suya propia; un admin puede omitirla para terceros.
type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// UserResponse representación pública de un usuario (sin hash).
type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

// UserListResponse listado de usuarios con total.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}
