package dto

// LoginRequest credenciales de acceso
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest rotación de refresh token
type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// LogoutRequest revoca el refresh token entregado
type LogoutRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// VerifyRequest comprueba la validez de un token (access o refresh)
type VerifyRequest struct {
	Token string `json:"token" binding:"required"`
}

// TokenResponse par de tokens
type TokenResponse struct {
	Access    string       `json:"access"`
	Refresh   string       `json:"refresh"`
	ExpiresIn int          `json:"expires_in"` // vigencia del access token (segundos)
	User      UserResponse `json:"user"`
}

// UserResponse información básica del usuario (sin credenciales)
type UserResponse struct {
	ID          uint     `json:"id"`
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	IsStaff     bool     `json:"is_staff"`
	IsSuperuser bool     `json:"is_superuser"`
	Groups      []string `json:"groups"`
}
