package dto

// CreateUserRequest requires both fields present and non-empty.
type CreateUserRequest struct {
	Nome  string `json:"nome" binding:"required"`
	Email string `json:"email" binding:"required"`
}

// UpdateUserRequest is a partial body: absent fields are left untouched.
type UpdateUserRequest struct {
	Nome  *string `json:"nome"`
	Email *string `json:"email"`
}
