package controller

import (
	"net/http"

	"kwlab-go-backend/pkg/usecase/usecase/keypool"

	"github.com/labstack/echo/v4"
)

type Credential interface {
	Snapshot(c echo.Context) error
}

type credentialController struct {
	pools []*keypool.Pool
}

func NewCredentialController(pools ...*keypool.Pool) Credential {
	return &credentialController{pools: pools}
}

// Snapshot reports every pool's per-credential usage. Secrets never leave
// the pool; only names and counters are exposed.
func (ctrl *credentialController) Snapshot(c echo.Context) error {
	out := map[string]interface{}{}
	for _, p := range ctrl.pools {
		out[p.Provider()] = p.Snapshot()
	}
	return c.JSON(http.StatusOK, out)
}
