package router

import (
	"net/http"

	"kwlab-go-backend/pkg/adapter/controller"
	appmiddleware "kwlab-go-backend/pkg/infrastructure/router/middleware"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Path of route
const (
	apiPath = "/api"
)

// Options of router
type Options struct {
	Auth bool
}

// New creates route endpoint
func New(ctrl controller.Controller, options Options) *echo.Echo {
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderXRequestedWith,
			echo.HeaderContentType,
			echo.HeaderAccept,
			appmiddleware.HeaderAdminKey,
		},
	}))

	e.GET("/health_check", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	api := e.Group(apiPath, appmiddleware.AdminKey(appmiddleware.AdminKeyOptions{Skip: !options.Auth}))

	api.POST("/collect/batch", ctrl.Collect.Batch)
	api.POST("/collect/manual", ctrl.Collect.Manual)
	api.POST("/collect/auto/start", ctrl.Collect.AutoStart)
	api.POST("/collect/auto/stop", ctrl.Collect.AutoStop)
	api.GET("/collect/auto/status", ctrl.Collect.AutoStatus)

	api.GET("/keywords", ctrl.Keyword.List)
	api.POST("/keywords", ctrl.Keyword.Create)
	api.GET("/keywords/export", ctrl.Keyword.Export)
	api.GET("/keywords/insights", ctrl.Keyword.Insights)
	api.GET("/keywords/:id", ctrl.Keyword.Get)
	api.DELETE("/keywords/:id", ctrl.Keyword.Delete)
	api.POST("/keywords/:id/doccounts", ctrl.Keyword.CollectDocCounts)

	api.GET("/jobs", ctrl.Job.List)
	api.POST("/jobs", ctrl.Job.Create)
	api.GET("/jobs/:id", ctrl.Job.Get)
	api.DELETE("/jobs/:id", ctrl.Job.Cancel)

	api.GET("/credentials", ctrl.Credential.Snapshot)

	api.GET("/cron", ctrl.CronJob.List)
	api.PUT("/cron/:name", ctrl.CronJob.Update)
	api.POST("/cron/:name/toggle", ctrl.CronJob.Toggle)

	return e
}
