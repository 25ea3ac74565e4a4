package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/actuallystonmai/movie-recommender/internal/domain"
)

const apiKeyKey = "settings:tmdb_api_key"

// KeyStore keeps the catalog API credential in Redis. The fallback key,
// usually from the environment, is used until one is stored.
type KeyStore struct {
	client   *redis.Client
	fallback string
}

func NewKeyStore(client *redis.Client, fallback string) *KeyStore {
	return &KeyStore{client: client, fallback: strings.TrimSpace(fallback)}
}

func (k *KeyStore) SetAPIKey(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return domain.ErrAPIKeyMissing
	}
	if err := k.client.Set(ctx, apiKeyKey, key, 0).Err(); err != nil {
		return fmt.Errorf("store api key: %w", err)
	}
	return nil
}

func (k *KeyStore) APIKey(ctx context.Context) (string, error) {
	val, err := k.client.Get(ctx, apiKeyKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("load api key: %w", err)
	}
	if val = strings.TrimSpace(val); val != "" {
		return val, nil
	}
	if k.fallback != "" {
		return k.fallback, nil
	}
	return "", domain.ErrAPIKeyMissing
}

func (k *KeyStore) IsConfigured(ctx context.Context) (bool, error) {
	_, err := k.APIKey(ctx)
	if errors.Is(err, domain.ErrAPIKeyMissing) {
		return false, nil
	}
	return err == nil, err
}
