package redis

import (
	"context"
	"crypto/sha256"
	"crypto/tls"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/inkmap/inkmap/auth"
)

type RedisInkmapCache struct {
	client redis.UniversalClient
}

func NewRedisInkmapCache(ctx context.Context, devMode bool, endpoint string) (*RedisInkmapCache, error) {
	var client redis.UniversalClient
	if devMode {
		client = redis.NewClient(&redis.Options{
			Addr: endpoint,
		})
	} else {
		client = redis.NewClient(&redis.Options{
			Addr: endpoint,
			// AWS elasticache endpoints require TLS
			TLSConfig: &tls.Config{},
		})
	}

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisInkmapCache{client: client}, nil
}

// Tokens are secrets; only their hash ever reaches Redis.
func identityKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "ident:" + hex.EncodeToString(sum[:])
}

const maxIdentityTTL = 5 * time.Minute

func (c *RedisInkmapCache) GetIdentity(ctx context.Context, token string) (auth.Identity, bool, error) {
	val, err := c.client.Get(ctx, identityKey(token)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return auth.Identity{}, false, nil
		}
		return auth.Identity{}, false, err
	}

	var identity auth.Identity
	if err := json.Unmarshal(val, &identity); err != nil {
		return auth.Identity{}, false, err
	}
	return identity, true, nil
}

func (c *RedisInkmapCache) SetIdentity(ctx context.Context, token string, identity auth.Identity, ttl time.Duration) error {
	// Never outlive the token: the cache entry must expire no later than
	// the credential it stands in for.
	if !identity.ExpiresAt.IsZero() {
		if until := time.Until(identity.ExpiresAt); until < ttl {
			ttl = until
		}
	}
	if ttl > maxIdentityTTL {
		ttl = maxIdentityTTL
	}
	if ttl <= 0 {
		return nil
	}

	data, err := json.Marshal(identity)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, identityKey(token), data, ttl).Err()
}
