package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/apptest"
	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/pkg/jwt"
)

var testJWTCfg = auth.JWTConfig{
	Secret:     "test-secret-key-for-unit-tests",
	ExpMinutes: 60,
	Issuer:     "almacen-api-test",
}

func TestRegisterYLogin_FlujoCompleto(t *testing.T) {
	s := apptest.NewStore()
	uc := auth.NewAuthUseCase(s.UserRepo(), testJWTCfg)

	user, err := uc.RegisterUser(dto.RegisterRequest{
		Email:         "operario@almacen.local",
		Password:      "contraseña-segura",
		Name:          "Operario Uno",
		IsStaff:       true,
		CanMoveStocks: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "operario@almacen.local", user.Email)
	assert.True(t, user.IsStaff)

	resp, err := uc.Login(dto.LoginRequest{
		Email:    "operario@almacen.local",
		Password: "contraseña-segura",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	claims, err := jwt.Parse(testJWTCfg.Secret, resp.Token)
	require.NoError(t, err, "el token emitido debe validar con el mismo secret")
	assert.Equal(t, user.ID, claims.UserID)
	assert.True(t, claims.IsStaff, "los permisos viajan en los claims")
	assert.True(t, claims.CanMoveStocks)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	s := apptest.NewStore()
	uc := auth.NewAuthUseCase(s.UserRepo(), testJWTCfg)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "a@b.c", Password: "12345678"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "a@b.c", Password: "87654321"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	s := apptest.NewStore()
	uc := auth.NewAuthUseCase(s.UserRepo(), testJWTCfg)

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@almacen.local", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound, "email desconocido")

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "a@b.c", Password: "12345678"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "a@b.c", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "password incorrecta")
}

func TestRegister_NombrePorDefectoEsElEmail(t *testing.T) {
	s := apptest.NewStore()
	uc := auth.NewAuthUseCase(s.UserRepo(), testJWTCfg)

	user, err := uc.RegisterUser(dto.RegisterRequest{Email: "a@b.c", Password: "12345678"})
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", user.Name)
}
