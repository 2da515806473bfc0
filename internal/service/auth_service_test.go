package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/netrok/rh-api/config"
	"github.com/netrok/rh-api/internal/dto"
	"github.com/netrok/rh-api/internal/model"
	"github.com/netrok/rh-api/pkg/jwt"
)

// ── Lista negra en memoria ──

type mockBlacklist struct {
	revocados map[string]bool
}

func newMockBlacklist() *mockBlacklist {
	return &mockBlacklist{revocados: make(map[string]bool)}
}

func (m *mockBlacklist) BlacklistToken(_ context.Context, jti string, _ time.Duration) error {
	m.revocados[jti] = true
	return nil
}

func (m *mockBlacklist) IsBlacklisted(_ context.Context, jti string) (bool, error) {
	return m.revocados[jti], nil
}

// ── Auxiliares de prueba ──

func setupAuthService(t *testing.T) (AuthService, *testRepos, *mockBlacklist, *model.Usuario) {
	t.Helper()
	repos := newTestRepos()
	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "secreto-de-pruebas-suficiente"
	cfg.Auth.AccessTokenTTL = 15 * time.Minute
	cfg.Auth.RefreshTokenTTL = 24 * time.Hour

	hash, err := bcrypt.GenerateFromPassword([]byte("contraseña123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("generar hash falló: %v", err)
	}
	user := repos.usuarios.agregar(&model.Usuario{
		Username:     "rhadmin",
		Email:        "rhadmin@empresa.mx",
		PasswordHash: string(hash),
		Activo:       true,
		Grupos:       []model.Grupo{{ID: 1, Nombre: "Admin"}},
	})

	bl := newMockBlacklist()
	svc := NewAuthService(cfg, repos.repo, jwt.NewManager(&cfg.Auth), bl, zap.NewNop())
	return svc, repos, bl, user
}

// ── Login ──

func TestAuthService_Login_Exito(t *testing.T) {
	svc, _, _, _ := setupAuthService(t)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "rhadmin",
		Password: "contraseña123",
	})
	if err != nil {
		t.Fatalf("Login debería funcionar: %v", err)
	}
	if resp.Access == "" || resp.Refresh == "" {
		t.Error("Login debería entregar ambos tokens")
	}
	if resp.ExpiresIn != int((15 * time.Minute).Seconds()) {
		t.Errorf("expires_in incorrecto: %d", resp.ExpiresIn)
	}
	if resp.User.Username != "rhadmin" {
		t.Errorf("usuario incorrecto: %s", resp.User.Username)
	}
	if len(resp.User.Groups) != 1 || resp.User.Groups[0] != "Admin" {
		t.Errorf("grupos incorrectos: %v", resp.User.Groups)
	}
}

func TestAuthService_Login_PasswordIncorrecta(t *testing.T) {
	svc, _, _, _ := setupAuthService(t)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "rhadmin",
		Password: "otra",
	})
	if !errors.Is(err, ErrCredencialesInvalidas) {
		t.Errorf("se esperaba ErrCredencialesInvalidas, se obtuvo: %v", err)
	}
}

func TestAuthService_Login_UsuarioInexistente(t *testing.T) {
	svc, _, _, _ := setupAuthService(t)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "nadie",
		Password: "contraseña123",
	})
	if !errors.Is(err, ErrCredencialesInvalidas) {
		t.Errorf("se esperaba ErrCredencialesInvalidas, se obtuvo: %v", err)
	}
}

func TestAuthService_Login_UsuarioInactivo(t *testing.T) {
	svc, repos, _, user := setupAuthService(t)
	repos.usuarios.usuarios[user.ID].Activo = false

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "rhadmin",
		Password: "contraseña123",
	})
	if !errors.Is(err, ErrCredencialesInvalidas) {
		t.Errorf("una cuenta desactivada no distingue su error: %v", err)
	}
}

// ── Refresh ──

func TestAuthService_Refresh_RotaYRevoca(t *testing.T) {
	svc, _, bl, _ := setupAuthService(t)
	ctx := context.Background()

	login, err := svc.Login(ctx, &dto.LoginRequest{Username: "rhadmin", Password: "contraseña123"})
	if err != nil {
		t.Fatalf("Login debería funcionar: %v", err)
	}

	refreshed, err := svc.Refresh(ctx, &dto.RefreshRequest{Refresh: login.Refresh})
	if err != nil {
		t.Fatalf("Refresh debería funcionar: %v", err)
	}
	if refreshed.Refresh == login.Refresh {
		t.Error("Refresh debería entregar un refresh token nuevo")
	}
	if len(bl.revocados) != 1 {
		t.Errorf("el jti anterior debería quedar revocado, revocados=%d", len(bl.revocados))
	}

	// El refresh original ya no sirve
	_, err = svc.Refresh(ctx, &dto.RefreshRequest{Refresh: login.Refresh})
	if !errors.Is(err, ErrRefreshInvalido) {
		t.Errorf("un refresh rotado debería rechazarse, se obtuvo: %v", err)
	}
}

func TestAuthService_Refresh_RechazaAccessToken(t *testing.T) {
	svc, _, _, _ := setupAuthService(t)
	ctx := context.Background()

	login, err := svc.Login(ctx, &dto.LoginRequest{Username: "rhadmin", Password: "contraseña123"})
	if err != nil {
		t.Fatalf("Login debería funcionar: %v", err)
	}

	_, err = svc.Refresh(ctx, &dto.RefreshRequest{Refresh: login.Access})
	if !errors.Is(err, ErrRefreshInvalido) {
		t.Errorf("un access token no rota, se obtuvo: %v", err)
	}
}

func TestAuthService_Refresh_TokenBasura(t *testing.T) {
	svc, _, _, _ := setupAuthService(t)

	_, err := svc.Refresh(context.Background(), &dto.RefreshRequest{Refresh: "no-es-un-jwt"})
	if !errors.Is(err, ErrRefreshInvalido) {
		t.Errorf("se esperaba ErrRefreshInvalido, se obtuvo: %v", err)
	}
}

// ── Logout ──

func TestAuthService_Logout_Revoca(t *testing.T) {
	svc, _, _, _ := setupAuthService(t)
	ctx := context.Background()

	login, err := svc.Login(ctx, &dto.LoginRequest{Username: "rhadmin", Password: "contraseña123"})
	if err != nil {
		t.Fatalf("Login debería funcionar: %v", err)
	}

	if err := svc.Logout(ctx, &dto.LogoutRequest{Refresh: login.Refresh}); err != nil {
		t.Fatalf("Logout debería funcionar: %v", err)
	}

	_, err = svc.Refresh(ctx, &dto.RefreshRequest{Refresh: login.Refresh})
	if !errors.Is(err, ErrRefreshInvalido) {
		t.Errorf("tras Logout el refresh debería rechazarse, se obtuvo: %v", err)
	}
}

// ── Verify ──

func TestAuthService_Verify_AccessYRefresh(t *testing.T) {
	svc, _, _, _ := setupAuthService(t)
	ctx := context.Background()

	login, err := svc.Login(ctx, &dto.LoginRequest{Username: "rhadmin", Password: "contraseña123"})
	if err != nil {
		t.Fatalf("Login debería funcionar: %v", err)
	}

	if err := svc.Verify(ctx, &dto.VerifyRequest{Token: login.Access}); err != nil {
		t.Errorf("el access token debería validar: %v", err)
	}
	if err := svc.Verify(ctx, &dto.VerifyRequest{Token: login.Refresh}); err != nil {
		t.Errorf("el refresh token debería validar: %v", err)
	}
}

func TestAuthService_Verify_TokenBasura(t *testing.T) {
	svc, _, _, _ := setupAuthService(t)

	err := svc.Verify(context.Background(), &dto.VerifyRequest{Token: "no-es-un-jwt"})
	if !errors.Is(err, ErrTokenInvalido) {
		t.Errorf("se esperaba ErrTokenInvalido, se obtuvo: %v", err)
	}
}

func TestAuthService_Verify_RefreshRevocado(t *testing.T) {
	svc, _, _, _ := setupAuthService(t)
	ctx := context.Background()

	login, err := svc.Login(ctx, &dto.LoginRequest{Username: "rhadmin", Password: "contraseña123"})
	if err != nil {
		t.Fatalf("Login debería funcionar: %v", err)
	}
	if err := svc.Logout(ctx, &dto.LogoutRequest{Refresh: login.Refresh}); err != nil {
		t.Fatalf("Logout debería funcionar: %v", err)
	}

	err = svc.Verify(ctx, &dto.VerifyRequest{Token: login.Refresh})
	if !errors.Is(err, ErrTokenInvalido) {
		t.Errorf("tras Logout el refresh no debería validar, se obtuvo: %v", err)
	}
}

// ── Me ──

func TestAuthService_Me(t *testing.T) {
	svc, _, _, user := setupAuthService(t)

	resp, err := svc.Me(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("Me debería funcionar: %v", err)
	}
	if resp.Username != "rhadmin" || resp.Email != "rhadmin@empresa.mx" {
		t.Errorf("datos incorrectos: %+v", resp)
	}
}

func TestAuthService_Me_NoEncontrado(t *testing.T) {
	svc, _, _, _ := setupAuthService(t)

	_, err := svc.Me(context.Background(), 999)
	if !errors.Is(err, ErrUsuarioNoEncontrado) {
		t.Errorf("se esperaba ErrUsuarioNoEncontrado, se obtuvo: %v", err)
	}
}
