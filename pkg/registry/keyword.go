package registry

import (
	"kwlab-go-backend/pkg/adapter/controller"
)

func (r *registry) NewKeywordController() controller.Keyword {
	return controller.NewKeywordController(r.keywordRepo, r.docRepo, r.docCount)
}
