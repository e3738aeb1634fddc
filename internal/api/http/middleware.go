package http

import (
	"context"
	"errors"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/chat-identity/internal/api/dto"
	"github.com/spec-kit/chat-identity/internal/observability"
	apperrors "github.com/spec-kit/chat-identity/pkg/util"
)

// RegisterMiddlewares attaches global middlewares such as error handling and logging.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics, timeout time.Duration) {
	if timeout > 0 {
		app.Use(requestTimeoutMiddleware(timeout))
	}
	app.Use(errorHandlingMiddleware(logger, metrics))
	app.Use(observability.RequestLogger(logger, metrics))
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

// errorHandlingMiddleware converts every failure into the uniform envelope.
// Internal errors are logged with full detail and surfaced generically.
func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = apperrors.NewInternalError(nil)
			}
			if err != nil {
				status, envelope := toEnvelope(err)
				if metrics != nil {
					metrics.RecordError(c.Path(), c.Method(), envelope.Code)
				}
				if status >= 500 {
					logger.Error("request failed", zap.Error(err))
				}
				c.Status(status)
				_ = c.JSON(envelope)
				err = nil
			}
		}()
		return c.Next()
	}
}

func toEnvelope(err error) (int, dto.Envelope) {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code, dto.Failure(fiberErr.Code, fiberErr.Message)
	}
	domainErr := apperrors.ToDomainError(err)
	return domainErr.HTTPStatus, dto.Failure(domainErr.HTTPStatus, domainErr.Message)
}
