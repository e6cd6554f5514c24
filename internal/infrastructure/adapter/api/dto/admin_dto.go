package dto

// AdminData is the admin record returned on a successful login
type AdminData struct {
	ID   string `json:"id"`
	User string `json:"user"`
}

// AdminLoginResponse is the GET /admin/login response envelope
type AdminLoginResponse struct {
	Status  int       `json:"status"`
	Message string    `json:"message"`
	Data    AdminData `json:"data"`
}
