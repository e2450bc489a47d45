package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jobboard/jobfilter/pkg/contract"
)

func registerJobServiceRoutes(service contract.JobService, parser contract.HTTPRequestParser, app *fiber.App) {
	app.Get("/jobs", func(ctx *fiber.Ctx) error {
		input := &contract.SearchJobs{}
		if err := parser.ParseQuery(ctx, input); err != nil {
			return err
		}

		output, err := service.SearchJobs(ctx.UserContext(), input)
		if err != nil {
			return err
		}

		return ctx.JSON(output.Jobs)
	})
	app.Post("/jobs/search", func(ctx *fiber.Ctx) error {
		input := &contract.SearchJobs{}
		if err := parser.ParseBody(ctx, input); err != nil {
			return err
		}

		output, err := service.SearchJobs(ctx.UserContext(), input)
		if err != nil {
			return err
		}

		return ctx.JSON(output.Jobs)
	})
}
