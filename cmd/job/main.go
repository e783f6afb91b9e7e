package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"kwlab-go-backend/config"
	_ "kwlab-go-backend/ent/runtime"
	"kwlab-go-backend/pkg/entity/model"
	"kwlab-go-backend/pkg/infrastructure/datastore"
	"kwlab-go-backend/pkg/registry"
	"kwlab-go-backend/pkg/util/logger"
)

func main() {
	limit := flag.Int("limit", 0, "Seeds to process this run (0 uses the configured round size)")
	concurrent := flag.Int("concurrent", 5, "Seeds processed concurrently per chunk")
	target := flag.Int("target", 0, "Stop once this many new keywords were collected (0 = unlimited)")
	flag.Parse()

	config.ReadConfig(config.ReadConfigOption{})

	l := logger.New()
	defer l.Sync()

	client, err := datastore.NewClient()
	if err != nil {
		log.Fatalf("failed to open db connection: %v", err)
	}
	defer client.Close()

	ctx := context.Background()
	reg, err := registry.New(ctx, client, l)
	if err != nil {
		log.Fatalf("failed to build registry: %v", err)
	}

	res, err := reg.Collector().RunBatch(ctx, model.CollectBatchInput{
		Limit:          *limit,
		Concurrent:     *concurrent,
		TargetKeywords: *target,
	})
	if err != nil {
		log.Fatalf("collection run failed: %v", err)
	}

	fmt.Printf(
		"Collection run finished. processed: %d, new: %d, remaining: %d, success rate: %.0f%%, failed seeds: %d\n",
		res.Processed,
		res.TotalNewKeywords,
		res.Remaining,
		res.Stats.SuccessRate*100,
		len(res.Stats.FailedSeeds),
	)

	os.Exit(0)
}
