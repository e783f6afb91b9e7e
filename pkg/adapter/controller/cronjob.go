package controller

import (
	"context"
	"net/http"

	"kwlab-go-backend/pkg/entity/model"
	"kwlab-go-backend/pkg/infrastructure/router/handler"
	"kwlab-go-backend/pkg/usecase/repository"

	"github.com/labstack/echo/v4"
)

// ScheduleReloader re-registers a job's cron entry after its config
// changed.
type ScheduleReloader interface {
	ReloadSchedule(ctx context.Context, jobName string) error
}

type CronJob interface {
	List(c echo.Context) error
	Update(c echo.Context) error
	Toggle(c echo.Context) error
}

type cronJobController struct {
	repo      repository.CronJobConfig
	scheduler ScheduleReloader
}

func NewCronJobController(repo repository.CronJobConfig, scheduler ScheduleReloader) CronJob {
	return &cronJobController{
		repo:      repo,
		scheduler: scheduler,
	}
}

func (ctrl *cronJobController) List(c echo.Context) error {
	configs, err := ctrl.repo.List(c.Request().Context())
	if err != nil {
		return handler.HandleError(c, err)
	}
	return c.JSON(http.StatusOK, configs)
}

func (ctrl *cronJobController) Update(c echo.Context) error {
	var input model.UpdateCronJobConfigInput
	if err := c.Bind(&input); err != nil {
		return handler.HandleError(c, model.NewInvalidParamError(err))
	}

	name := c.Param("name")
	updated, err := ctrl.repo.Update(c.Request().Context(), name, input)
	if err != nil {
		return handler.HandleError(c, err)
	}

	if ctrl.scheduler != nil {
		if err := ctrl.scheduler.ReloadSchedule(c.Request().Context(), name); err != nil {
			return handler.HandleError(c, err)
		}
	}
	return c.JSON(http.StatusOK, updated)
}

func (ctrl *cronJobController) Toggle(c echo.Context) error {
	name := c.Param("name")
	updated, err := ctrl.repo.Toggle(c.Request().Context(), name)
	if err != nil {
		return handler.HandleError(c, err)
	}

	if ctrl.scheduler != nil {
		if err := ctrl.scheduler.ReloadSchedule(c.Request().Context(), name); err != nil {
			return handler.HandleError(c, err)
		}
	}
	return c.JSON(http.StatusOK, updated)
}
