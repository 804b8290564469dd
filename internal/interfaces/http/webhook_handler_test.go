package http_test

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockpilot/stockpilot-api/internal/application/dto"
	"github.com/stockpilot/stockpilot-api/internal/application/identity"
	"github.com/stockpilot/stockpilot-api/internal/domain/entity"
	apphttp "github.com/stockpilot/stockpilot-api/internal/interfaces/http"
	"github.com/stockpilot/stockpilot-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// Secreto svix de prueba, en el mismo formato whsec_<base64> que entrega Clerk.
var testWebhookSecret = "whsec_" + base64.StdEncoding.EncodeToString([]byte("test-webhook-signing-key-123456"))

// bridgeRecorder registra lo que el puente de identidad recibe.
type bridgeRecorder struct {
	upserts int
}

func (r *bridgeRecorder) UpsertUser(dto.UpsertUserRequest) error { r.upserts++; return nil }

func (r *bridgeRecorder) HandleDeleteUser(string) error { return nil }

func (r *bridgeRecorder) AddOrgToUser(string, string, entity.Role) error { return nil }

func (r *bridgeRecorder) UpdateRoleInOrg(string, string, entity.Role) error { return nil }

func (r *bridgeRecorder) CreateOrganization(dto.CreateOrganizationRequest) (string, error) {
	return "org-interna", nil
}

func buildWebhookApp(t *testing.T) (*fiber.App, *bridgeRecorder) {
	t.Helper()
	rec := &bridgeRecorder{}
	log := logger.New(logger.Config{Level: "error"})
	bridge := identity.NewBridge("clerk.example.com", rec, rec, log)

	handler, err := apphttp.NewWebhookHandler(testWebhookSecret, bridge, log)
	require.NoError(t, err)

	app := fiber.New()
	app.Post("/clerk", handler.Handle)
	return app, rec
}

// signPayload firma el payload como lo hace svix: HMAC-SHA256 sobre
// "<msgId>.<timestamp>.<payload>" con el secreto decodificado.
func signPayload(t *testing.T, msgID, timestamp string, payload []byte) string {
	t.Helper()
	key, err := base64.StdEncoding.DecodeString(testWebhookSecret[len("whsec_"):])
	require.NoError(t, err)
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(msgID + "." + timestamp + "."))
	mac.Write(payload)
	return "v1," + base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func postWebhook(t *testing.T, app *fiber.App, payload []byte, sign bool) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/clerk", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if sign {
		msgID := "msg_test_1"
		ts := strconv.FormatInt(time.Now().Unix(), 10)
		req.Header.Set("svix-id", msgID)
		req.Header.Set("svix-timestamp", ts)
		req.Header.Set("svix-signature", signPayload(t, msgID, ts, payload))
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests WebhookHandler
// ──────────────────────────────────────────────────────────────────────────────

func TestWebhook_EventoFirmadoSeProcesa(t *testing.T) {
	app, rec := buildWebhookApp(t)

	payload := []byte(`{"type":"user.created","data":{"id":"user_123","first_name":"Ana","email_addresses":[{"email_address":"ana@acme.test"}]}}`)
	resp := postWebhook(t, app, payload, true)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, rec.upserts, "el evento debe llegar al puente de identidad")
}

func TestWebhook_SinFirmaDevuelve400ConCuerpoPlano(t *testing.T) {
	app, rec := buildWebhookApp(t)

	payload := []byte(`{"type":"user.created","data":{"id":"user_123"}}`)
	resp := postWebhook(t, app, payload, false)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "Webhook Error", string(body))
	assert.Zero(t, rec.upserts, "un payload sin verificar no debe procesarse")
}

func TestWebhook_FirmaManipuladaDevuelve400(t *testing.T) {
	app, rec := buildWebhookApp(t)

	payload := []byte(`{"type":"user.created","data":{"id":"user_123"}}`)
	req := httptest.NewRequest(http.MethodPost, "/clerk", bytes.NewReader(payload))
	ts := strconv.FormatInt(time.Now().Unix(), 10)
	req.Header.Set("svix-id", "msg_test_1")
	req.Header.Set("svix-timestamp", ts)
	// Firma calculada sobre otro payload.
	req.Header.Set("svix-signature", signPayload(t, "msg_test_1", ts, []byte(`{"type":"otro"}`)))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, rec.upserts)
}

func TestWebhook_PayloadIlegibleFirmadoDevuelve400(t *testing.T) {
	app, _ := buildWebhookApp(t)

	payload := []byte(`no es json`)
	resp := postWebhook(t, app, payload, true)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "Webhook Error", string(body))
}

func TestWebhook_TipoDesconocidoFirmadoDevuelve200(t *testing.T) {
	app, rec := buildWebhookApp(t)

	payload := []byte(`{"type":"session.created","data":{}}`)
	resp := postWebhook(t, app, payload, true)

	assert.Equal(t, http.StatusOK, resp.StatusCode, "los eventos desconocidos se aceptan y se ignoran")
	assert.Zero(t, rec.upserts)
}
