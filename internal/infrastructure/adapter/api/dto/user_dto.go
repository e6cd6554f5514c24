package dto

// CreateUserRequest is the POST /user payload
type CreateUserRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	GroupID string `json:"groupId"`
	NEuro   string `json:"nEuro"`
}

// UpdateUserRequest is the PATCH /user/:id payload; empty fields are left
// untouched
type UpdateUserRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	GroupID string `json:"groupId"`
	NEuro   string `json:"nEuro"`
}

// UpdateNEuroRequest is the PATCH /user/:id/nEuro payload
type UpdateNEuroRequest struct {
	NEuro string `json:"nEuro" binding:"required"`
}

// UserResponse mirrors a user row on the wire
type UserResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
	GroupID string `json:"groupId"`
	NEuro   string `json:"nEuro"`
}
