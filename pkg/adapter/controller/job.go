package controller

import (
	"net/http"

	"kwlab-go-backend/pkg/entity/model"
	"kwlab-go-backend/pkg/infrastructure/router/handler"
	"kwlab-go-backend/pkg/usecase/usecase/jobs"

	"github.com/labstack/echo/v4"
)

type Job interface {
	List(c echo.Context) error
	Get(c echo.Context) error
	Create(c echo.Context) error
	Cancel(c echo.Context) error
}

type jobController struct {
	registry *jobs.Registry
}

func NewJobController(registry *jobs.Registry) Job {
	return &jobController{registry: registry}
}

func (ctrl *jobController) List(c echo.Context) error {
	return c.JSON(http.StatusOK, ctrl.registry.List())
}

func (ctrl *jobController) Get(c echo.Context) error {
	job, err := ctrl.registry.Get(model.ID(c.Param("id")))
	if err != nil {
		return handler.HandleError(c, err)
	}
	return c.JSON(http.StatusOK, job)
}

type createJobInput struct {
	Type   model.JobType   `json:"type"`
	Params model.JobParams `json:"params"`
}

func (ctrl *jobController) Create(c echo.Context) error {
	var input createJobInput
	if err := c.Bind(&input); err != nil {
		return handler.HandleError(c, model.NewInvalidParamError(err))
	}

	job, err := ctrl.registry.Enqueue(input.Type, input.Params)
	if err != nil {
		return handler.HandleError(c, err)
	}
	return c.JSON(http.StatusAccepted, job)
}

func (ctrl *jobController) Cancel(c echo.Context) error {
	if err := ctrl.registry.Cancel(model.ID(c.Param("id"))); err != nil {
		return handler.HandleError(c, err)
	}

	job, err := ctrl.registry.Get(model.ID(c.Param("id")))
	if err != nil {
		return handler.HandleError(c, err)
	}
	return c.JSON(http.StatusOK, job)
}
