package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/almacen-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/almacen-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "almacen-api-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - el guard indicado (RequireStaff / RequireMover) para autorizar
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(guard fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		// Silenciar errores internos en los tests
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		guard,
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":      true,
				"user_id": apphttp.GetUserID(c),
			})
		},
	)
	return app
}

// tokenFor genera un JWT con los permisos indicados.
func tokenFor(t *testing.T, isStaff, canMoveStocks bool) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, isStaff, canMoveStocks, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: sin header Authorization → HTTP 401.
func TestAuthMiddleware_SinToken(t *testing.T) {
	app := buildTestApp(apphttp.RequireStaff())
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"sin token la petición debe rechazarse con 401")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN",
		"la respuesta de error debe incluir el código MISSING_TOKEN")
}

// Caso 2: token mal formado o con firma inválida → HTTP 401.
func TestAuthMiddleware_TokenInvalido(t *testing.T) {
	app := buildTestApp(apphttp.RequireStaff())

	resp := doRequest(t, app, "Bearer no-es-un-jwt")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp2 := doRequest(t, app, "Token abc")
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp2.StatusCode,
		"el esquema debe ser Bearer")
}

// Caso 3: token válido → los claims quedan en locals y el handler responde.
func TestAuthMiddleware_CargaLosClaims(t *testing.T) {
	app := buildTestApp(apphttp.RequireStaff())
	resp := doRequest(t, app, tokenFor(t, true, false))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"], "la respuesta debe incluir ok:true")
	assert.Equal(t, testUserID, body["user_id"], "el user_id debe salir de los claims")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireStaff / RequireMover
// ──────────────────────────────────────────────────────────────────────────────

// Caso 4: usuario staff accede a ruta de gestión → HTTP 200.
func TestRequireStaff_StaffAccede(t *testing.T) {
	app := buildTestApp(apphttp.RequireStaff())
	resp := doRequest(t, app, tokenFor(t, true, false))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"un usuario staff debe poder gestionar contenedores")
}

// Caso 5: usuario sin permiso de staff → HTTP 403 Forbidden.
func TestRequireStaff_NoStaffBloqueado(t *testing.T) {
	app := buildTestApp(apphttp.RequireStaff())
	resp := doRequest(t, app, tokenFor(t, false, true))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"sin permiso de staff la gestión debe rechazarse")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"la respuesta de error debe incluir el código FORBIDDEN")
}

// Caso 6: usuario con permiso de mover stocks → HTTP 200.
func TestRequireMover_MoverAccede(t *testing.T) {
	app := buildTestApp(apphttp.RequireMover())
	resp := doRequest(t, app, tokenFor(t, false, true))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"un usuario con can_move_stocks debe poder mover stocks")
}

// Caso 7: usuario sin permiso de mover stocks → HTTP 403.
func TestRequireMover_SinPermisoBloqueado(t *testing.T) {
	app := buildTestApp(apphttp.RequireMover())
	resp := doRequest(t, app, tokenFor(t, true, false))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"ser staff no implica poder mover stocks")
}
