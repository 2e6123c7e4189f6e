package api

import (
	"cpu-scheduler/config"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp wires the /api/v1 routes. Scheduling invariant panics are turned
// into 500 responses by the recover middleware.
func NewApp(cfg *config.SchedulerConfig) *fiber.App {
	app := fiber.New()
	app.Use(recover.New())

	handler := NewSchedulerHandlerImpl(cfg)
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/srtf", handler.ShortestRemainingTimeFirst)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/npp", handler.NonPreemptivePriority)
		v1.Post("/pp", handler.PreemptivePriority)
		v1.Post("/simulate", handler.Simulate)
		v1.Post("/all", handler.AllAlgorithms)
		v1.Get("/algorithms", handler.ListAlgorithms)
	}

	return app
}
