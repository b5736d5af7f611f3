package middleware

import (
	"daidokoro-note/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		RequestIDMiddleware() fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

// CORSMiddleware allows the origins in CORS_ALLOW_ORIGINS, or any origin when
// unset.
func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: utils.GetConfigOrDefault("CORS_ALLOW_ORIGINS", "*"),
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
	})
}

func (m *middleware) RequestIDMiddleware() fiber.Handler {
	return requestid.New()
}
