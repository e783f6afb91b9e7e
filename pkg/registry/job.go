package registry

import (
	"kwlab-go-backend/pkg/adapter/controller"
)

func (r *registry) NewJobController() controller.Job {
	return controller.NewJobController(r.jobs)
}
