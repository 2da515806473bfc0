package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/netrok/rh-api/internal/api/middleware"
	"github.com/netrok/rh-api/internal/dto"
	"github.com/netrok/rh-api/internal/service"
	"github.com/netrok/rh-api/pkg/response"
)

// AuthHandler handlers HTTP del módulo de autenticación
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler crea el AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login inicio de sesión
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorDeBind(c, err)
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrCredencialesInvalidas) {
			response.Error(c, http.StatusUnauthorized, 11001, "usuario o contraseña incorrectos")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Refresh rotación del par de tokens
// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorDeBind(c, err)
		return
	}

	result, err := h.authSvc.Refresh(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrRefreshInvalido) {
			response.Error(c, http.StatusUnauthorized, 11002, "refresh token inválido o revocado")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Logout revoca el refresh token entregado
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorDeBind(c, err)
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), &req); err != nil {
		if errors.Is(err, service.ErrRefreshInvalido) {
			response.Error(c, http.StatusUnauthorized, 11002, "refresh token inválido o revocado")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// Verify comprueba la validez de un token sin emitir uno nuevo
// POST /api/v1/auth/verify
func (h *AuthHandler) Verify(c *gin.Context) {
	var req dto.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorDeBind(c, err)
		return
	}

	if err := h.authSvc.Verify(c.Request.Context(), &req); err != nil {
		if errors.Is(err, service.ErrTokenInvalido) {
			response.Error(c, http.StatusUnauthorized, 11004, "token inválido o revocado")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// Me información del usuario autenticado
// GET /api/v1/me
func (h *AuthHandler) Me(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	if p == nil {
		response.Unauthorized(c, 10002, "no autenticado")
		return
	}

	user, err := h.authSvc.Me(c.Request.Context(), p.UserID)
	if err != nil {
		if errors.Is(err, service.ErrUsuarioNoEncontrado) {
			response.NotFound(c, 11003, "usuario no encontrado")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, user)
}
