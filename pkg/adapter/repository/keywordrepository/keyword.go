package keywordrepository

import (
	"kwlab-go-backend/ent"
	ur "kwlab-go-backend/pkg/usecase/repository"
)

type keywordRepository struct {
	client *ent.Client
}

func NewKeywordRepository(client *ent.Client) ur.Keyword {
	return &keywordRepository{client}
}
