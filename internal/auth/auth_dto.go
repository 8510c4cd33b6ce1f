package auth

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
}

type RegisterRequest struct {
	EmployeeNumber string `json:"employeeNumber" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=8"`
	Role           string `json:"role" binding:"omitempty,oneof=admin employee"`
}

type AccountResponse struct {
	ID             string `json:"id"`
	EmployeeNumber string `json:"employeeNumber"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	IsActive       bool   `json:"isActive"`
	CreatedAt      string `json:"createdAt"`
}
