package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/stockpilot/stockpilot-api/internal/application/access"
	"github.com/stockpilot/stockpilot-api/internal/application/dto"
	"github.com/stockpilot/stockpilot-api/pkg/jwt"
)

// Local key para el token identifier del caller en Fiber.
const LocalTokenIdentifier = "token_identifier"

// CallerMiddleware valida el Bearer Token si viene presente y deja el token
// identifier en c.Locals. Una petición sin Authorization sigue como caller
// anónimo: cada caso de uso decide si la operación lo tolera. Un token
// presente pero inválido sí corta con 401.
func CallerMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		tokenIdentifier, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalTokenIdentifier, tokenIdentifier)
		return c.Next()
	}
}

// GetCaller devuelve el caller del contexto (después del middleware). Un
// caller sin token tiene TokenIdentifier vacío.
func GetCaller(c *fiber.Ctx) access.Caller {
	v := c.Locals(LocalTokenIdentifier)
	if v == nil {
		return access.Caller{}
	}
	s, _ := v.(string)
	return access.Caller{TokenIdentifier: s}
}
