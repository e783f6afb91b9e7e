package registry

import (
	"kwlab-go-backend/pkg/adapter/controller"
)

func (r *registry) NewCollectController() controller.Collect {
	return controller.NewCollectController(r.collector, r.jobs, r.loop)
}
