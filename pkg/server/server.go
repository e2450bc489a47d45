package server

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/jobboard/jobfilter/pkg/config"
	"github.com/jobboard/jobfilter/pkg/contract"
)

func newErrorHandler(log logrus.FieldLogger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var e *contract.Error
		if !errors.As(err, &e) {
			code := contract.InternalError

			var f *fiber.Error
			if errors.As(err, &f) {
				switch f.Code {
				case fiber.StatusBadRequest:
					code = contract.BadRequest
				case fiber.StatusServiceUnavailable:
					code = contract.ServiceUnderMaintenance
				case fiber.StatusNotFound:
					code = contract.EndpointNotFound
				}
			}

			e = contract.NewError(code, err.Error())
		}

		var fn func(format string, args ...any)

		switch e.StatusCode() {
		case fiber.StatusBadRequest:
			fn = log.Infof
		case fiber.StatusServiceUnavailable:
			fn = log.Warnf
		case fiber.StatusNotFound:
			fn = log.Debugf
		default:
			fn = log.Errorf
		}

		fn("Error encountered in %s %s: %s", c.Method(), c.Path(), err)

		return c.Status(e.StatusCode()).JSON(e)
	}
}

func NewApp(
	log *logrus.Logger, cfg *config.Config, service contract.JobService, gatherer prometheus.Gatherer,
) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		BodyLimit:             1024 * 1024,
		ReadBufferSize:        16384,
		ReadTimeout:           5 * time.Second,
		WriteTimeout:          60 * time.Second,
		IdleTimeout:           120 * time.Second,
		ServerHeader:          "jobfilter/" + cfg.Version,
		DisableStartupMessage: true,
		ErrorHandler:          newErrorHandler(log),
	})

	app.Use(compress.New())
	app.Use(recover.New(recover.Config{EnableStackTrace: true}))
	app.Use(logger.New(logger.Config{
		Format: "${status} - ${latency} ${method} ${path}\n",
		Output: log.Writer(),
	}))

	apiApp, err := newAPIApp(log, service)
	if err != nil {
		return nil, err
	}

	app.Mount("/api/v1", apiApp)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})
	app.Get("/version", func(c *fiber.Ctx) error {
		return c.SendString(cfg.Version)
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	return app, nil
}

func newAPIApp(log logrus.FieldLogger, service contract.JobService) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		ErrorHandler: newErrorHandler(log),
	})

	parser, err := NewHTTPRequestParser()
	if err != nil {
		return nil, err
	}

	registerJobServiceRoutes(service, parser, app)

	return app, nil
}
