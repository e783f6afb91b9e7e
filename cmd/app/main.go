package main

import (
	"context"
	"log"

	"kwlab-go-backend/config"
	"kwlab-go-backend/ent"
	_ "kwlab-go-backend/ent/runtime"
	"kwlab-go-backend/pkg/infrastructure/datastore"
	"kwlab-go-backend/pkg/infrastructure/router"
	"kwlab-go-backend/pkg/registry"
	"kwlab-go-backend/pkg/util/logger"
)

func main() {
	config.ReadConfig(config.ReadConfigOption{})

	// A server without provider credentials can only fail at the first
	// collection call. Refuse to start instead.
	if len(config.C.SearchAd.Credentials) == 0 {
		log.Fatal("no SearchAd credentials configured")
	}
	if len(config.C.OpenAPI.Credentials) == 0 {
		log.Fatal("no OpenAPI credentials configured")
	}

	l := logger.New()
	defer l.Sync()

	client := newDBClient()
	defer client.Close()

	ctx := context.Background()
	reg, err := registry.New(ctx, client, l)
	if err != nil {
		l.Fatalw("failed to build registry", "error", err)
	}

	if err := reg.Scheduler().Start(ctx); err != nil {
		l.Fatalw("failed to start scheduler", "error", err)
	}
	defer reg.Scheduler().Stop()

	e := router.New(reg.NewController(), router.Options{
		Auth: true,
	})

	e.Logger.Fatal(e.Start(":" + config.C.Server.Address))
}

func newDBClient() *ent.Client {
	client, err := datastore.NewClient()
	if err != nil {
		log.Fatalf("Failed to open db connection: %v", err)
	}
	return client
}
