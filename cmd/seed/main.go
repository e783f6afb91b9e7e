// Seeds the collection backlog from a plain text file of seed keywords,
// one per line. Blank lines and lines starting with # are skipped.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"kwlab-go-backend/config"
	_ "kwlab-go-backend/ent/runtime"
	"kwlab-go-backend/pkg/adapter/repository/seedusagerepository"
	"kwlab-go-backend/pkg/infrastructure/datastore"
)

func main() {
	env := flag.String("env", "", "Environment (development, test, e2e, staging, production)")
	file := flag.String("file", "test-data/seeds.txt", "Path to the seed keyword file")
	truncate := flag.Bool("truncate", false, "Delete all seed usage rows before loading")
	flag.Parse()

	if *env != "" {
		os.Setenv("APP_ENV", *env)
	}
	config.ReadConfig(config.ReadConfigOption{})

	client, err := datastore.NewClient()
	if err != nil {
		log.Fatalf("failed to open db connection: %v", err)
	}
	defer client.Close()

	ctx := context.Background()

	if *truncate {
		n, err := client.SeedUsage.Delete().Exec(ctx)
		if err != nil {
			log.Fatalf("failed to truncate seed usage: %v", err)
		}
		fmt.Printf("Deleted %d seed usage rows\n", n)
	}

	f, err := os.Open(*file)
	if err != nil {
		log.Fatalf("failed to open seed file: %v", err)
	}
	defer f.Close()

	repo := seedusagerepository.NewSeedUsageRepository(client)

	loaded := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		seed := strings.TrimSpace(scanner.Text())
		if seed == "" || strings.HasPrefix(seed, "#") {
			continue
		}
		if err := repo.Ensure(ctx, seed); err != nil {
			log.Fatalf("failed to register seed %q: %v", seed, err)
		}
		loaded++
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("failed to read seed file: %v", err)
	}

	fmt.Printf("Loaded %d seeds from %s\n", loaded, *file)
}
