// Command audit-dex scans Redis Dex hashes for entries the server can no
// longer read and offers to delete them. Pass a dataset path or URL to also
// flag regions that are not in the dataset.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/celala99/cela-geo-quest/internal/clients/datasource"
)

type badField struct {
	key    string
	field  string
	reason string
}

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	var known map[string]bool
	if len(os.Args) > 1 {
		known = loadRegions(ctx, os.Args[1])
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning Dex entries...")

	iter := client.Scan(ctx, 0, "dex:*", 0).Iterator()

	var bad []badField
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		fields, err := client.HGetAll(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		for region, value := range fields {
			if ts, err := strconv.ParseInt(value, 10, 64); err != nil || ts <= 0 {
				bad = append(bad, badField{key: key, field: region, reason: fmt.Sprintf("capture time %q", value)})
				continue
			}
			if known != nil && !known[region] {
				bad = append(bad, badField{key: key, field: region, reason: "unknown region"})
			}
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d Dex hashes, found %d bad entries\n", checkedCount, len(bad))

	if len(bad) == 0 {
		fmt.Println("No bad entries found!")
		return
	}

	fmt.Println("\nBad entries:")
	for _, b := range bad {
		fmt.Printf("  - %s %s (%s)\n", b.key, b.field, b.reason)
	}

	fmt.Print("\nDo you want to DELETE these entries? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, b := range bad {
		if err := client.HDel(ctx, b.key, b.field).Err(); err != nil {
			fmt.Printf("Failed to delete %s %s: %v\n", b.key, b.field, err)
		} else {
			fmt.Printf("Deleted %s %s\n", b.key, b.field)
		}
	}
	fmt.Println("\nCleanup complete!")
}

func loadRegions(ctx context.Context, source string) map[string]bool {
	loader, err := datasource.New(&datasource.Config{Source: source, Timeout: 10 * time.Second})
	if err != nil {
		log.Fatal("Invalid dataset source:", err)
	}

	ds, err := loader.Load(ctx)
	if err != nil {
		log.Fatal("Failed to load dataset:", err)
	}

	known := make(map[string]bool, len(ds.Monsters))
	for _, id := range ds.RegionIDs() {
		known[id] = true
	}
	return known
}
