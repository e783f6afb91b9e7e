package registry

import (
	"kwlab-go-backend/pkg/adapter/controller"
)

func (r *registry) NewCredentialController() controller.Credential {
	return controller.NewCredentialController(r.searchAdPool, r.openAPIPool)
}
