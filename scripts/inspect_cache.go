// +build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
)

// Dev helper: dumps the cached dashboard snapshot so you can eyeball what the
// API is currently serving without hitting the HTTP layer.
//
// Usage: go run scripts/inspect_cache.go -redis localhost:6379
func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	raw, err := client.Get(ctx, "snapshot:current").Result()
	if err == redis.Nil {
		fmt.Println("No snapshot cached. Run the pipeline or hit /api/v1/dashboard/snapshot first.")
		return
	}
	if err != nil {
		log.Fatalf("Failed to read snapshot: %v", err)
	}

	var pretty map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &pretty); err != nil {
		log.Fatalf("Cached snapshot is not valid JSON: %v", err)
	}

	out, err := json.MarshalIndent(pretty, "", "  ")
	if err != nil {
		log.Fatalf("Failed to format snapshot: %v", err)
	}

	fmt.Println(string(out))
	ttl, err := client.TTL(ctx, "snapshot:current").Result()
	if err == nil {
		fmt.Printf("\nTTL remaining: %s\n", ttl)
	}
}
