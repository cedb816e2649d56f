package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"

	"epidash-service/internal/logger"
)

const RequestIDHeader = "X-Request-ID"

type Options struct {
	AppName    string
	EnableCORS bool
}

// New returns a fiber app with recovery, optional CORS, request ids and access logging.
func New(opts Options, log *logger.Logger) *fiber.App {
	if log == nil {
		log = logger.NewNop()
	}

	app := fiber.New(fiber.Config{
		AppName:      opts.AppName,
		ErrorHandler: errorHandler(log),
	})

	app.Use(recover.New())
	if opts.EnableCORS {
		app.Use(cors.New())
	}
	app.Use(RequestID())
	app.Use(AccessLog(log))

	return app
}

// RequestID keeps an incoming X-Request-ID or assigns a new uuid.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals("request_id", id)
		c.Set(RequestIDHeader, id)
		return c.Next()
	}
}

func AccessLog(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if err != nil {
			// let the error handler set the status before logging it
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		kv := []interface{}{
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"request_id", c.Locals("request_id"),
		}
		switch {
		case status >= http.StatusInternalServerError:
			log.Error("http request", kv...)
		case status >= http.StatusBadRequest:
			log.Warn("http request", kv...)
		default:
			log.Info("http request", kv...)
		}
		return nil
	}
}

func errorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}
		if code >= fiber.StatusInternalServerError {
			log.Error("unhandled error", "path", c.Path(), "error", err)
		}
		body := fiber.Map{"error": http.StatusText(code)}
		if code < fiber.StatusInternalServerError {
			body["message"] = err.Error()
		}
		return c.Status(code).JSON(body)
	}
}
