// Package redisstore implementa el almacén de sesiones revocadas sobre Redis.
// El TTL de cada entrada es el tiempo de vida restante del token, así Redis
// se limpia solo cuando el token habría expirado de todos modos.
package redisstore

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/savane-sarl/gestion-api/pkg/config"
)

const keyPrefix = "session:revoked:"

// Denylist marca jti de tokens cerrados por logout.
type Denylist struct {
	client *redis.Client
}

// New crea el cliente Redis y verifica la conexión.
func New(ctx context.Context, cfg config.RedisConfig) (*Denylist, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &Denylist{client: client}, nil
}

// Revoke marca el jti como revocado hasta que el token expire.
func (d *Denylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // token ya expirado, nada que revocar
	}
	if err := d.client.Set(ctx, keyPrefix+tokenID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("redis revoke: %w", err)
	}
	return nil
}

// IsRevoked indica si el jti fue revocado por un logout.
func (d *Denylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := d.client.Exists(ctx, keyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("redis exists: %w", err)
	}
	return n > 0, nil
}

// Close cierra la conexión a Redis.
func (d *Denylist) Close() error {
	return d.client.Close()
}
