package http

import (
	"encoding/json"
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"
	svix "github.com/svix/svix-webhooks/go"

	"github.com/stockpilot/stockpilot-api/internal/application/identity"
	"github.com/stockpilot/stockpilot-api/pkg/logger"
)

// WebhookHandler recibe los eventos de Clerk en POST /clerk. La firma svix se
// verifica antes de tocar el payload; cualquier fallo responde 400 con el
// cuerpo plano "Webhook Error".
type WebhookHandler struct {
	wh     *svix.Webhook
	bridge *identity.Bridge
	log    *logger.Logger
}

// NewWebhookHandler construye el handler. secret es el signing secret svix del
// endpoint configurado en Clerk.
func NewWebhookHandler(secret string, bridge *identity.Bridge, log *logger.Logger) (*WebhookHandler, error) {
	wh, err := svix.NewWebhook(secret)
	if err != nil {
		return nil, err
	}
	return &WebhookHandler{wh: wh, bridge: bridge, log: log}, nil
}

// Handle verifica la firma y despacha el evento al puente de identidad.
func (h *WebhookHandler) Handle(c *fiber.Ctx) error {
	payload := c.Body()

	headers := nethttp.Header{}
	for _, k := range []string{"svix-id", "svix-timestamp", "svix-signature"} {
		if v := c.Get(k); v != "" {
			headers.Set(k, v)
		}
	}

	if err := h.wh.Verify(payload, headers); err != nil {
		h.log.Warn().Err(err).Msg("firma de webhook inválida")
		return c.Status(fiber.StatusBadRequest).SendString("Webhook Error")
	}

	var evt identity.Event
	if err := json.Unmarshal(payload, &evt); err != nil {
		h.log.Warn().Err(err).Msg("payload de webhook ilegible")
		return c.Status(fiber.StatusBadRequest).SendString("Webhook Error")
	}

	if err := h.bridge.HandleEvent(evt); err != nil {
		h.log.Error().Err(err).Str("type", evt.Type).Msg("error procesando evento de webhook")
		return c.Status(fiber.StatusBadRequest).SendString("Webhook Error")
	}

	return c.SendStatus(fiber.StatusOK)
}
