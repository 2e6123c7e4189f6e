package api

import (
	"errors"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
	"github.com/gofiber/fiber/v2"
)

var log = logger.NewLogger(coloransi.Color(coloransi.ColorOrange, coloransi.ColorPurple, "api"))

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	NonPreemptivePriority(ctx *fiber.Ctx) error
	PreemptivePriority(ctx *fiber.Ctx) error
	Simulate(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	ListAlgorithms(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestRemainingTimeFirst)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) NonPreemptivePriority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.NonPreemptivePriority)
}

func (s *SchedulerHandlerImpl) PreemptivePriority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PreemptivePriority)
}

// Simulate takes the algorithm from the request body.
func (s *SchedulerHandlerImpl) Simulate(ctx *fiber.Ctx) error {
	request, err := s.parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	algorithm, err := schedulers.ParseAlgorithm(request.Algorithm)
	if err != nil {
		return badRequest(ctx, err)
	}
	return s.run(ctx, algorithm, request)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := s.parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	if err := request.Validate(schedulers.FirstComeFirstServe); err != nil {
		return badRequest(ctx, err)
	}

	set := request.ProcessSet()
	opts := request.Options()
	outcomes, err := schedulers.SimulateAll(set, opts)
	if err != nil {
		return badRequest(ctx, err)
	}

	response := responses.AllResponse{Results: make([]responses.ScheduleResponse, 0, len(outcomes))}
	for _, outcome := range outcomes {
		response.Results = append(response.Results, schedulers.GenerateResponse(outcome.Algorithm, set, opts, outcome.Result))
	}
	log.Infoln("all algorithms scheduled", set.Len(), "processes,", len(outcomes), "results")
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) ListAlgorithms(ctx *fiber.Ctx) error {
	type algorithmInfo struct {
		Name          string `json:"name"`
		Slug          string `json:"slug"`
		NeedsPriority bool   `json:"needs_priority"`
		NeedsQuantum  bool   `json:"needs_quantum"`
	}
	list := make([]algorithmInfo, 0, len(schedulers.Algorithms))
	for _, a := range schedulers.Algorithms {
		list = append(list, algorithmInfo{
			Name:          string(a),
			Slug:          a.Slug(),
			NeedsPriority: a.UsesPriority(),
			NeedsQuantum:  a == schedulers.RoundRobin,
		})
	}
	return ctx.JSON(list)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	request, err := s.parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	return s.run(ctx, algorithm, request)
}

func (s *SchedulerHandlerImpl) run(ctx *fiber.Ctx, algorithm schedulers.Algorithm, request *requests.ScheduleRequests) error {
	if err := request.Validate(algorithm); err != nil {
		return badRequest(ctx, err)
	}
	set := request.ProcessSet()
	opts := request.Options()
	result, err := schedulers.Simulate(algorithm, set, opts)
	if err != nil {
		return badRequest(ctx, err)
	}
	log.Infoln(algorithm, "scheduled", set.Len(), "processes")
	return ctx.JSON(schedulers.GenerateResponse(algorithm, set, opts, result))
}

// parseRequest decodes the body and fills the round robin defaults from config.
func (s *SchedulerHandlerImpl) parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequests, error) {
	request := new(requests.ScheduleRequests)
	if err := ctx.BodyParser(request); err != nil {
		log.Debugln("invalid request body:", err)
		return nil, errInvalidFormat
	}
	if request.TimeQuantum == 0 {
		request.TimeQuantum = s.config.RoundRobinTimeQuantum
	}
	if request.RoundRobinMode == "" {
		request.RoundRobinMode = s.config.RoundRobinMode
	}
	return request, nil
}

var errInvalidFormat = errors.New("invalid request format")

func badRequest(ctx *fiber.Ctx, err error) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(responses.ErrorResponse{Error: err.Error()})
}
