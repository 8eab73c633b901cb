package model

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=120"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=128"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ForgotPasswordResponse struct {
	OK                  bool   `json:"ok"`
	Message             string `json:"message"`
	ResetLink           string `json:"reset_link,omitempty"`
	TokenExpiresMinutes int    `json:"token_expires_minutes,omitempty"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required,min=10"`
	NewPassword string `json:"new_password" binding:"required,min=6,max=128"`
}

type OKResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}
