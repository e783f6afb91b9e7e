// Package e2e boots the full HTTP stack against the e2e database for
// end-to-end tests.
package e2e

import (
	"context"
	"net/http/httptest"
	"testing"

	"kwlab-go-backend/config"
	"kwlab-go-backend/ent"
	"kwlab-go-backend/pkg/infrastructure/datastore"
	"kwlab-go-backend/pkg/infrastructure/router"
	"kwlab-go-backend/pkg/registry"
	"kwlab-go-backend/testutil"

	"github.com/gavv/httpexpect/v2"
	"go.uber.org/zap"
)

// SetupOption configures Setup.
type SetupOption struct {
	TearDown func(t *testing.T, client *ent.Client)
}

// Setup reads the e2e config, migrates the schema, wires the registry and
// starts an in-process HTTP server. The returned teardown closes
// everything and runs the option's TearDown first.
func Setup(t *testing.T, opt SetupOption) (*httpexpect.Expect, *ent.Client, func()) {
	t.Helper()

	testutil.ReadConfigE2E()

	client, err := datastore.NewClient()
	if err != nil {
		t.Fatalf("failed to open db connection: %v", err)
	}

	ctx := context.Background()
	if err := client.Schema.Create(ctx); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	reg, err := registry.New(ctx, client, zap.NewNop().Sugar())
	if err != nil {
		t.Fatalf("failed to build registry: %v", err)
	}

	e := router.New(reg.NewController(), router.Options{Auth: true})
	srv := httptest.NewServer(e)

	expect := httpexpect.Default(t, srv.URL)

	teardown := func() {
		if opt.TearDown != nil {
			opt.TearDown(t, client)
		}
		srv.Close()
		client.Close()
	}

	return expect, client, teardown
}

// WithAdminKey adds the configured admin key to a request builder chain.
func WithAdminKey(req *httpexpect.Request) *httpexpect.Request {
	return req.WithHeader("X-Admin-Key", config.C.Server.AdminKey)
}
