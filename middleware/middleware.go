package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestLogger assigns every incoming request an id and logs it. The id is
// echoed back in the X-Request-ID header and kept in the request locals for
// handlers that want to tag their own logging with it.
func RequestLogger(log *zap.Logger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		requestID := uuid.NewString()
		ctx.Locals("requestID", requestID)
		ctx.Set("X-Request-ID", requestID)
		log.Info("incoming request",
			zap.String("method", ctx.Method()),
			zap.String("path", ctx.Path()),
			zap.String("request_id", requestID),
		)
		return ctx.Next()
	}
}
