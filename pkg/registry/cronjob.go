package registry

import (
	"kwlab-go-backend/pkg/adapter/controller"
)

func (r *registry) NewCronJobController() controller.CronJob {
	return controller.NewCronJobController(r.cronRepo, r.scheduler)
}
