package memory

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ZaguanLabs/goweft"
)

// fieldSep separates the target language from the source text inside a
// Redis hash field. It cannot occur in either part.
const fieldSep = "\x1f"

// RedisStore is a Redis-backed translation-memory store. Units are kept
// in one hash per base language, so a lookup for "fr_FR" and one for
// "fr" read the same key.
type RedisStore struct {
	client    *redis.Client
	keyPrefix string
}

// RedisConfig holds configuration for the Redis store.
type RedisConfig struct {
	URL       string // Redis connection URL (e.g. "redis://localhost:6379")
	KeyPrefix string // Prefix for all keys (default: "goweft:tm:")
}

// NewRedisStore creates a new Redis store with the given configuration.
func NewRedisStore(cfg RedisConfig) (*RedisStore, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return NewRedisStoreFromClient(client, cfg.KeyPrefix), nil
}

// NewRedisStoreFromClient creates a RedisStore from an existing client.
func NewRedisStoreFromClient(client *redis.Client, keyPrefix string) *RedisStore {
	if keyPrefix == "" {
		keyPrefix = "goweft:tm:"
	}
	return &RedisStore{client: client, keyPrefix: keyPrefix}
}

// Add stores a unit under its base-language hash.
func (s *RedisStore) Add(unit goweft.MemoryUnit) error {
	ctx := context.Background()
	key := s.keyPrefix + goweft.BaseLang(unit.TargetLang)
	field := goweft.NormalizeLocale(unit.TargetLang) + fieldSep + unit.SourceText
	if err := s.client.HSet(ctx, key, field, unit.TargetText).Err(); err != nil {
		return &goweft.MemoryError{Message: "storing unit", Cause: err}
	}
	return nil
}

// Units returns every unit stored under the target language's base key.
// All units under that key share the base language and therefore qualify.
func (s *RedisStore) Units(targetLang string) ([]goweft.MemoryUnit, error) {
	ctx := context.Background()
	key := s.keyPrefix + goweft.BaseLang(targetLang)
	fields, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, &goweft.MemoryError{Message: "loading units", Cause: err}
	}
	return decodeFields(fields), nil
}

// All enumerates every unit across all language keys.
func (s *RedisStore) All() ([]goweft.MemoryUnit, error) {
	ctx := context.Background()
	keys, err := s.client.Keys(ctx, s.keyPrefix+"*").Result()
	if err != nil {
		return nil, &goweft.MemoryError{Message: "listing keys", Cause: err}
	}

	var out []goweft.MemoryUnit
	for _, key := range keys {
		fields, err := s.client.HGetAll(ctx, key).Result()
		if err != nil {
			return nil, &goweft.MemoryError{Message: "loading units", Cause: err}
		}
		out = append(out, decodeFields(fields)...)
	}
	return out, nil
}

// decodeFields converts hash fields back into units. Fields without the
// separator are skipped; they were not written by this store.
func decodeFields(fields map[string]string) []goweft.MemoryUnit {
	var out []goweft.MemoryUnit
	for field, target := range fields {
		lang, source, ok := strings.Cut(field, fieldSep)
		if !ok {
			continue
		}
		out = append(out, goweft.MemoryUnit{
			SourceText: source,
			TargetLang: lang,
			TargetText: target,
		})
	}
	return out
}

// Verify interface compliance.
var (
	_ Store  = (*RedisStore)(nil)
	_ Dumper = (*RedisStore)(nil)
)
