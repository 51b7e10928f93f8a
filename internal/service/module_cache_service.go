package service

import (
	"context"
	"encoding/json"
	"time"

	"medicit-backend/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Redis key for the cached module catalog
	moduleCatalogKey = "catalog:modulos"

	// Modules are near-static reference data; a long TTL is a backstop for
	// writes that bypass this process, not the invalidation mechanism.
	moduleCatalogTTL = 1 * time.Hour
)

// ModuleCacheService keeps the module catalog in Redis. Only reference data is
// cached here; permissions and credentials are re-read from Postgres on every
// request.
type ModuleCacheService interface {
	Get(ctx context.Context) ([]entity.Module, bool)
	Set(ctx context.Context, modules []entity.Module)
	Invalidate(ctx context.Context)
}

type moduleCacheService struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewModuleCacheService(redisClient *redis.Client, log *logrus.Logger) ModuleCacheService {
	return &moduleCacheService{
		redisClient: redisClient,
		log:         log,
	}
}

// Get returns the cached catalog. Cache problems are logged and reported as a
// miss so the caller falls back to the database.
func (s *moduleCacheService) Get(ctx context.Context) ([]entity.Module, bool) {
	payload, err := s.redisClient.Get(ctx, moduleCatalogKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.log.Warnf("Failed to read module catalog from Redis: %+v", err)
		}
		return nil, false
	}

	var modules []entity.Module
	if err := json.Unmarshal(payload, &modules); err != nil {
		s.log.Warnf("Failed to decode cached module catalog: %+v", err)
		return nil, false
	}

	return modules, true
}

func (s *moduleCacheService) Set(ctx context.Context, modules []entity.Module) {
	payload, err := json.Marshal(modules)
	if err != nil {
		s.log.Warnf("Failed to encode module catalog: %+v", err)
		return
	}

	if err := s.redisClient.Set(ctx, moduleCatalogKey, payload, moduleCatalogTTL).Err(); err != nil {
		s.log.Warnf("Failed to cache module catalog: %+v", err)
	}
}

func (s *moduleCacheService) Invalidate(ctx context.Context) {
	if err := s.redisClient.Del(ctx, moduleCatalogKey).Err(); err != nil {
		s.log.Warnf("Failed to invalidate module catalog: %+v", err)
	}
}
