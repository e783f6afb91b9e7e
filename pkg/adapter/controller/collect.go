package controller

import (
	"errors"
	"net/http"
	"strings"

	"kwlab-go-backend/pkg/entity/model"
	"kwlab-go-backend/pkg/infrastructure/router/handler"
	"kwlab-go-backend/pkg/usecase/usecase/autocollect"
	"kwlab-go-backend/pkg/usecase/usecase/collector"
	"kwlab-go-backend/pkg/usecase/usecase/jobs"

	"github.com/labstack/echo/v4"
)

type Collect interface {
	Batch(c echo.Context) error
	Manual(c echo.Context) error
	AutoStart(c echo.Context) error
	AutoStop(c echo.Context) error
	AutoStatus(c echo.Context) error
}

type collectController struct {
	collector *collector.Collector
	registry  *jobs.Registry
	loop      *autocollect.Loop
}

func NewCollectController(
	col *collector.Collector,
	registry *jobs.Registry,
	loop *autocollect.Loop,
) Collect {
	return &collectController{
		collector: col,
		registry:  registry,
		loop:      loop,
	}
}

// Batch runs one collection round synchronously and returns its counts.
func (ctrl *collectController) Batch(c echo.Context) error {
	var input model.CollectBatchInput
	if err := c.Bind(&input); err != nil {
		return handler.HandleError(c, model.NewInvalidParamError(err))
	}

	res, err := ctrl.collector.RunBatch(c.Request().Context(), input)
	if err != nil {
		return handler.HandleError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

type manualCollectInput struct {
	Seeds      []string `json:"seeds"`
	Concurrent int      `json:"concurrent"`
}

// Manual enqueues a collection job for an explicit seed list and returns
// the job for polling.
func (ctrl *collectController) Manual(c echo.Context) error {
	var input manualCollectInput
	if err := c.Bind(&input); err != nil {
		return handler.HandleError(c, model.NewInvalidParamError(err))
	}

	seeds := make([]string, 0, len(input.Seeds))
	for _, s := range input.Seeds {
		if t := strings.TrimSpace(s); t != "" {
			seeds = append(seeds, t)
		}
	}
	if len(seeds) == 0 {
		return handler.HandleError(c, model.NewInvalidParamError(errors.New("seeds are required")))
	}

	job, err := ctrl.registry.Enqueue(model.JobTypeManualCollect, model.JobParams{
		Seeds:      seeds,
		Concurrent: input.Concurrent,
	})
	if err != nil {
		return handler.HandleError(c, err)
	}
	return c.JSON(http.StatusAccepted, job)
}

type autoStartInput struct {
	Limit          int `json:"limit"`
	Concurrent     int `json:"concurrent"`
	TargetKeywords int `json:"targetKeywords"`
}

func (ctrl *collectController) AutoStart(c echo.Context) error {
	var input autoStartInput
	if err := c.Bind(&input); err != nil {
		return handler.HandleError(c, model.NewInvalidParamError(err))
	}

	cfg := autocollect.ConfigFromApp(input.Limit, input.Concurrent, input.TargetKeywords)
	if err := ctrl.loop.Start(cfg); err != nil {
		return handler.HandleError(c, err)
	}
	return c.JSON(http.StatusOK, ctrl.loop.Snapshot())
}

func (ctrl *collectController) AutoStop(c echo.Context) error {
	ctrl.loop.Stop()
	return c.JSON(http.StatusOK, ctrl.loop.Snapshot())
}

func (ctrl *collectController) AutoStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, ctrl.loop.Snapshot())
}
