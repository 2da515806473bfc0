package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/netrok/rh-api/config"
	"github.com/netrok/rh-api/internal/dto"
	"github.com/netrok/rh-api/internal/model"
	"github.com/netrok/rh-api/internal/repository"
	"github.com/netrok/rh-api/pkg/jwt"
)

var (
	ErrCredencialesInvalidas = errors.New("usuario o contraseña incorrectos")
	ErrUsuarioNoEncontrado   = errors.New("usuario no encontrado")
	ErrRefreshInvalido       = errors.New("refresh token inválido o revocado")
	ErrTokenInvalido         = errors.New("token inválido o revocado")
)

// TokenBlacklist lista negra de jti; la implementa pkg/redis.Client
type TokenBlacklist interface {
	BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
}

// AuthService autenticación y ciclo de vida de tokens
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	// Refresh rota el par de tokens; el refresh entregado queda revocado
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, req *dto.LogoutRequest) error
	// Verify valida firma y vigencia de cualquier token; para los
	// refresh también consulta la lista negra
	Verify(ctx context.Context, req *dto.VerifyRequest) error
	Me(ctx context.Context, userID uint) (*dto.UserResponse, error)
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    TokenBlacklist
	logger *zap.Logger
}

// NewAuthService crea la instancia de AuthService
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb TokenBlacklist,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:    cfg,
		repo:   repo,
		jwtMgr: jwtMgr,
		rdb:    rdb,
		logger: logger,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.repo.Usuario.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCredencialesInvalidas
		}
		s.logger.Error("consultar usuario falló", zap.Error(err))
		return nil, err
	}

	// Las cuentas desactivadas no distinguen su error del de credenciales
	if !user.Activo {
		return nil, ErrCredencialesInvalidas
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrCredencialesInvalidas
	}

	return s.emitirTokens(user)
}

func (s *authService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenResponse, error) {
	claims, err := s.validarRefresh(ctx, req.Refresh)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.Usuario.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRefreshInvalido
		}
		s.logger.Error("consultar usuario falló", zap.Error(err))
		return nil, err
	}
	if !user.Activo {
		return nil, ErrRefreshInvalido
	}

	// Rotación: el jti anterior queda en lista negra por su vigencia restante
	if err := s.revocar(ctx, claims); err != nil {
		s.logger.Error("revocar refresh token falló", zap.Error(err))
		return nil, err
	}

	return s.emitirTokens(user)
}

func (s *authService) Logout(ctx context.Context, req *dto.LogoutRequest) error {
	claims, err := s.validarRefresh(ctx, req.Refresh)
	if err != nil {
		return err
	}
	if err := s.revocar(ctx, claims); err != nil {
		s.logger.Error("revocar refresh token falló", zap.Error(err))
		return err
	}
	return nil
}

func (s *authService) Verify(ctx context.Context, req *dto.VerifyRequest) error {
	claims, err := s.jwtMgr.ParseToken(req.Token)
	if err != nil {
		return ErrTokenInvalido
	}
	if claims.TokenType != "refresh" || s.rdb == nil {
		return nil
	}
	revocado, err := s.rdb.IsBlacklisted(ctx, claims.ID)
	if err != nil {
		s.logger.Error("consultar lista negra falló", zap.Error(err))
		return err
	}
	if revocado {
		return ErrTokenInvalido
	}
	return nil
}

func (s *authService) Me(ctx context.Context, userID uint) (*dto.UserResponse, error) {
	user, err := s.repo.Usuario.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUsuarioNoEncontrado
		}
		s.logger.Error("consultar usuario falló", zap.Error(err))
		return nil, err
	}
	resp := s.toUserResponse(user)
	return &resp, nil
}

// ── Auxiliares internos ──

func (s *authService) validarRefresh(ctx context.Context, token string) (*jwt.Claims, error) {
	claims, err := s.jwtMgr.ParseToken(token)
	if err != nil {
		return nil, ErrRefreshInvalido
	}
	if claims.TokenType != "refresh" {
		return nil, ErrRefreshInvalido
	}
	// Sin Redis no hay lista negra; el token vale hasta su expiración
	if s.rdb == nil {
		return claims, nil
	}
	revocado, err := s.rdb.IsBlacklisted(ctx, claims.ID)
	if err != nil {
		s.logger.Error("consultar lista negra falló", zap.Error(err))
		return nil, err
	}
	if revocado {
		return nil, ErrRefreshInvalido
	}
	return claims, nil
}

func (s *authService) revocar(ctx context.Context, claims *jwt.Claims) error {
	if s.rdb == nil {
		return nil
	}
	restante := time.Until(claims.ExpiresAt.Time)
	if restante <= 0 {
		return nil
	}
	return s.rdb.BlacklistToken(ctx, claims.ID, restante)
}

func (s *authService) emitirTokens(user *model.Usuario) (*dto.TokenResponse, error) {
	access, err := s.jwtMgr.GenerateAccessToken(user.ID, user.Username, user.IsStaff, user.IsSuperuser)
	if err != nil {
		s.logger.Error("generar access token falló", zap.Error(err))
		return nil, err
	}
	refresh, err := s.jwtMgr.GenerateRefreshToken(user.ID, user.Username, user.IsStaff, user.IsSuperuser)
	if err != nil {
		s.logger.Error("generar refresh token falló", zap.Error(err))
		return nil, err
	}

	return &dto.TokenResponse{
		Access:    access,
		Refresh:   refresh,
		ExpiresIn: int(s.cfg.Auth.AccessTokenTTL.Seconds()),
		User:      s.toUserResponse(user),
	}, nil
}

func (s *authService) toUserResponse(user *model.Usuario) dto.UserResponse {
	return dto.UserResponse{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		IsStaff:     user.IsStaff,
		IsSuperuser: user.IsSuperuser,
		Groups:      user.GroupNames(),
	}
}
