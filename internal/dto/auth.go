package dto

type LoginRequest struct {
	NIP      string `json:"nip" binding:"required,max=18"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the public-safe view of a user. The password hash never
// leaves the service layer.
type UserResponse struct {
	ID    uint   `json:"id"`
	NIP   string `json:"nip"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role"`
}

type LoginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}
