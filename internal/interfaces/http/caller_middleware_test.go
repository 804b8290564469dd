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

	apphttp "github.com/stockpilot/stockpilot-api/internal/interfaces/http"
	pkgjwt "github.com/stockpilot/stockpilot-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "https://clerk.example.com"
	testSubject   = "user_123"
	testExpMin    = 60
)

// buildCallerApp construye una aplicación Fiber mínima con el CallerMiddleware
// y un handler que devuelve el token identifier resuelto.
func buildCallerApp() *fiber.App {
	app := fiber.New()
	app.Get("/whoami",
		apphttp.CallerMiddleware(testJWTSecret),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"tokenIdentifier": apphttp.GetCaller(c).TokenIdentifier,
			})
		},
	)
	return app
}

func doWhoami(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func whoamiBody(t *testing.T, resp *http.Response) map[string]string {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CallerMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Sin Authorization la petición sigue como caller anónimo.
func TestCallerMiddleware_SinHeaderPasaComoAnonimo(t *testing.T) {
	app := buildCallerApp()

	resp := doWhoami(t, app, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, whoamiBody(t, resp)["tokenIdentifier"], "el caller anónimo no tiene token identifier")
}

// Un token válido deja el token identifier "<issuer>|<subject>" en el contexto.
func TestCallerMiddleware_TokenValidoResuelveElCaller(t *testing.T) {
	app := buildCallerApp()

	tok, err := pkgjwt.Generate(testJWTSecret, testIssuer, testSubject, testExpMin)
	require.NoError(t, err, "debe generarse un token válido")

	resp := doWhoami(t, app, "Bearer "+tok)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, testIssuer+"|"+testSubject, whoamiBody(t, resp)["tokenIdentifier"])
}

// Un token presente pero inválido sí corta con 401.
func TestCallerMiddleware_TokenInvalidoDevuelve401(t *testing.T) {
	app := buildCallerApp()

	resp := doWhoami(t, app, "Bearer no-es-un-jwt")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Un token firmado con otro secreto se rechaza.
func TestCallerMiddleware_FirmaIncorrectaDevuelve401(t *testing.T) {
	app := buildCallerApp()

	tok, err := pkgjwt.Generate("otro-secreto", testIssuer, testSubject, testExpMin)
	require.NoError(t, err)

	resp := doWhoami(t, app, "Bearer "+tok)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCallerMiddleware_FormatoIncorrectoDevuelve401(t *testing.T) {
	app := buildCallerApp()

	resp := doWhoami(t, app, "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doWhoami(t, app, "Bearer ")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
