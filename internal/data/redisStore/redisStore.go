package redisStore

import (
	"context"
	"sync"

	"github.com/akolanti/DocBridgeAPI/internal/config"
	"github.com/akolanti/DocBridgeAPI/pkg/logger_i"
	"github.com/redis/go-redis/v9"
)

var (
	instances = make(map[int]*Store)
	mu        sync.RWMutex
	logger    *logger_i.Logger
	once      sync.Once
)

type Store struct {
	client *redis.Client
	Type   int
}

// GetRedisStore returns the store for DBType, connecting on first use.
// It returns nil when redis cannot be reached.
func GetRedisStore(ctx context.Context, addr string, DBType int) *Store {
	mu.RLock()
	instance, exists := instances[DBType]
	mu.RUnlock()

	if exists {
		return instance
	}

	mu.Lock()
	defer mu.Unlock()

	if instance, exists = instances[DBType]; exists {
		return instance
	}
	return createNewStore(ctx, addr, DBType)
}

func initLogger() {
	if logger == nil {
		logger = logger_i.NewLogger("Redis Store")
	}
}

func closeRedisStores(ctx context.Context) {
	<-ctx.Done()
	logger.Info("Closing Redis Stores")
	mu.Lock()
	defer mu.Unlock()
	for dbType, store := range instances {
		if err := store.client.Close(); err != nil {
			logger.Error("Error closing redis client", "error", err)
		}
		delete(instances, dbType)
	}
	logger.Info("Redis Store Closed successfully")
}

func createNewStore(ctx context.Context, addr string, dbType int) *Store {
	initLogger()
	if addr == "" {
		addr = config.DefaultRedisAddr
	}
	newClient := redis.NewClient(&redis.Options{
		Addr:                  addr,
		DB:                    dbType,
		ContextTimeoutEnabled: true,
		DialTimeout:           config.RedisDialTimeout,
		ReadTimeout:           config.RedisDialTimeout,
		WriteTimeout:          config.RedisDialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, config.RedisDialTimeout)
	defer cancel()

	if err := newClient.Ping(pingCtx).Err(); err != nil {
		logger.Error("Redis is offline", "addr", addr, "error", err)
		_ = newClient.Close()
		return nil
	}

	logger.Info("Redis store init successfully", "addr", addr, "db", dbType)

	newStore := &Store{
		client: newClient,
		Type:   dbType,
	}

	instances[dbType] = newStore
	once.Do(func() {
		go closeRedisStores(ctx)
	})
	return newStore
}

// NewTestStore wraps an existing client, used against miniredis in tests.
func NewTestStore(client *redis.Client) *Store {
	return &Store{client: client}
}
