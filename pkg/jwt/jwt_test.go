package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
	testIssuer = "almacen-api-test"
)

func TestGenerateParse_IdaYVuelta(t *testing.T) {
	token, err := jwt.Generate(testSecret, testUserID, true, false, testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := jwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, testUserID, claims.UserID)
	assert.Equal(t, testUserID, claims.Subject)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.True(t, claims.IsStaff)
	assert.False(t, claims.CanMoveStocks)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := jwt.Generate(testSecret, testUserID, false, false, testIssuer, 60)
	require.NoError(t, err)

	_, err = jwt.Parse("otro-secret", token)
	assert.Error(t, err, "un token firmado con otro secret no debe validar")
}

func TestParse_TokenExpirado(t *testing.T) {
	token, err := jwt.Generate(testSecret, testUserID, false, false, testIssuer, -5)
	require.NoError(t, err)

	_, err = jwt.Parse(testSecret, token)
	assert.Error(t, err, "un token vencido no debe validar")
}

func TestParse_Basura(t *testing.T) {
	_, err := jwt.Parse(testSecret, "no-es-un-jwt")
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", testUserID, false, false, testIssuer, 60)
	assert.Error(t, err, "sin secret no se emiten tokens")
}
