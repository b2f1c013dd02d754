package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/chore-quest/internal/avatar"
	"github.com/KirkDiggler/chore-quest/internal/entities"
)

const maxRepairAttempts = 5

// storedAvatar mirrors the value written by the avatar config repository.
type storedAvatar struct {
	PlayerID string                `json:"player_id"`
	Config   entities.AvatarConfig `json:"config"`
}

// problems lists what is wrong with a stored configuration.
func problems(cfg entities.AvatarConfig) []string {
	var out []string
	if cfg.Version == 0 {
		out = append(out, "missing schema version")
	}
	if cfg.PetXP < 0 {
		out = append(out, fmt.Sprintf("negative pet_xp %d", cfg.PetXP))
	}
	for _, key := range entities.PreviewFields() {
		if !strings.Contains(key, "color") {
			continue
		}
		if v, _ := cfg.Field(key); v != "" && !avatar.IsValidColor(v) {
			out = append(out, fmt.Sprintf("%s is not a colour: %q", key, v))
		}
	}
	return out
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
	fmt.Println("Scanning avatar configurations...")

	iter := client.Scan(ctx, 0, "avatar:config:*", 0).Iterator()

	var corruptedKeys []string
	var repairs []string
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var stored storedAvatar
		if err := json.Unmarshal([]byte(data), &stored); err != nil {
			fmt.Printf("✗ Corrupted JSON in %s\n", key)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}

		if found := problems(stored.Config); len(found) > 0 {
			fmt.Printf("✗ %s: %s\n", key, strings.Join(found, "; "))
			repairs = append(repairs, key)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d keys, %d corrupted, %d repairable\n", checkedCount, len(corruptedKeys), len(repairs))

	if len(corruptedKeys) == 0 && len(repairs) == 0 {
		fmt.Println("No problems found!")
		return
	}

	fmt.Print("\nRepair configurations and DELETE corrupted entries? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)
	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, key := range repairs {
		if err := repair(ctx, client, key); err != nil {
			fmt.Printf("Failed to repair %s: %v\n", key, err)
		} else {
			fmt.Printf("Repaired %s\n", key)
		}
	}
	for _, key := range corruptedKeys {
		if err := client.Del(ctx, key).Err(); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}
	fmt.Println("\nCleanup complete!")
}

// sanitize clears invalid colours so they fall back to defaults and fills in the rest.
func sanitize(stored storedAvatar) storedAvatar {
	cfg := stored.Config
	for _, key := range entities.PreviewFields() {
		if !strings.Contains(key, "color") {
			continue
		}
		if v, _ := cfg.Field(key); v != "" && !avatar.IsValidColor(v) {
			cfg.SetField(key, "")
		}
	}
	stored.Config = cfg.WithDefaults()
	return stored
}

// repair re-reads the key under WATCH and rewrites only the sanitized config,
// keeping revision and timestamps untouched. A write that lands between the
// scan and the repair is kept rather than overwritten with the scanned copy.
func repair(ctx context.Context, client *redis.Client, key string) error {
	txf := func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			return err
		}

		var raw map[string]json.RawMessage
		if err := json.Unmarshal(current, &raw); err != nil {
			return err
		}
		var stored storedAvatar
		if err := json.Unmarshal(current, &stored); err != nil {
			return err
		}

		cfg, err := json.Marshal(sanitize(stored).Config)
		if err != nil {
			return err
		}
		raw["config"] = cfg

		out, err := json.Marshal(raw)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, out, 0)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < maxRepairAttempts; attempt++ {
		err := client.Watch(ctx, txf, key)
		if err != redis.TxFailedErr {
			return err
		}
	}
	return fmt.Errorf("%s changed during %d repair attempts", key, maxRepairAttempts)
}
