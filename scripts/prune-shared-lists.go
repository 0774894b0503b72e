package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

// storedList mirrors the fields a shared list must have for the mod to load it
type storedList struct {
	ID   string          `json:"listId"`
	List json.RawMessage `json:"listJson"`
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

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning for unreadable shared lists...")

	iter := client.Scan(ctx, 0, "list:*", 0).Iterator()

	var badKeys []string
	var checkedCount, noTTLCount int

	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		data, err := client.Get(ctx, key).Bytes()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var list storedList
		if err := json.Unmarshal(data, &list); err != nil {
			fmt.Printf("✗ Corrupted JSON in %s\n", key)
			badKeys = append(badKeys, key)
			continue
		}
		if list.ID == "" || len(list.List) == 0 || string(list.List) == "null" {
			fmt.Printf("✗ Missing list id or body in %s\n", key)
			badKeys = append(badKeys, key)
			continue
		}

		if ttl, err := client.TTL(ctx, key).Result(); err == nil && ttl < 0 {
			noTTLCount++
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d keys, found %d unreadable entries, %d without expiry\n",
		checkedCount, len(badKeys), noTTLCount)

	if len(badKeys) == 0 {
		fmt.Println("No unreadable lists found!")
		return
	}

	fmt.Println("\nUnreadable keys:")
	for _, key := range badKeys {
		fmt.Printf("  - %s\n", key)
	}

	fmt.Print("\nDo you want to DELETE these entries? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, key := range badKeys {
		if err := client.Del(ctx, key).Err(); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}
	fmt.Println("\nCleanup complete!")
}
