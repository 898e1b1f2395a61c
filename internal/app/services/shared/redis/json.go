package redis

import (
	"context"
	"medintake-service/internal/app/contracts"
	"medintake-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

// GetJSON loads and decodes the value stored at key. It returns nil, nil
// when the key does not exist.
func GetJSON[T any](ctx context.Context, repo contracts.RedisRepository, key string) (*T, error) {
	raw, err := repo.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}

	value := new(T)
	if err := json.Unmarshal([]byte(raw), value); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return value, nil
}
