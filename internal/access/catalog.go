package access

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	accesserrors "go-inspecta/internal/access/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	CatalogCacheKey = "permissions:catalog"
	catalogCacheTTL = time.Hour
)

//go:generate mockgen -source=catalog.go -destination=mock/catalog_mock.go -package=mock
type Catalog interface {
	Load(ctx context.Context) ([]Permission, error)
	Grouped(ctx context.Context) ([]PermissionGroup, error)
	Validate(ctx context.Context, tags []string) error
	Invalidate(ctx context.Context) error
}

type catalog struct {
	repo   CatalogRepository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewCatalog(repo CatalogRepository, rdb *redis.Client, logger ...*zap.Logger) Catalog {
	l := zap.L().Named("access.catalog")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("access.catalog")
	}
	return &catalog{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (c *catalog) Load(ctx context.Context) ([]Permission, error) {
	if c.rdb != nil {
		if cached, err := c.rdb.Get(ctx, CatalogCacheKey).Result(); err == nil {
			var perms []Permission
			if json.Unmarshal([]byte(cached), &perms) == nil {
				return perms, nil
			}
		}
	}

	v, err, _ := c.sf.Do(CatalogCacheKey, func() (interface{}, error) {
		perms, err := c.repo.FindAll(ctx)
		if err != nil {
			c.logger.Error("load permission catalog failed", zap.Error(err))
			return nil, accesserrors.ErrCatalogUnavailable
		}

		if c.rdb != nil {
			if data, err := json.Marshal(perms); err == nil {
				if err := c.rdb.Set(ctx, CatalogCacheKey, data, catalogCacheTTL).Err(); err != nil {
					c.logger.Warn("cache permission catalog failed", zap.Error(err))
				}
			}
		}
		return perms, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]Permission), nil
}

func (c *catalog) Grouped(ctx context.Context) ([]PermissionGroup, error) {
	perms, err := c.Load(ctx)
	if err != nil {
		return nil, err
	}
	return GroupByCategory(perms), nil
}

// Validate fails with ErrUnknownPermission listing every tag outside the catalog.
func (c *catalog) Validate(ctx context.Context, tags []string) error {
	if len(tags) == 0 {
		return nil
	}
	perms, err := c.Load(ctx)
	if err != nil {
		return err
	}

	known := make(map[string]struct{}, len(perms))
	for _, p := range perms {
		known[p.Tag] = struct{}{}
	}

	unknown := make([]string, 0)
	for _, tag := range NormalizeSet(tags) {
		if _, ok := known[tag]; !ok {
			unknown = append(unknown, tag)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return accesserrors.ErrUnknownPermission.WithDetails(unknown)
	}
	return nil
}

func (c *catalog) Invalidate(ctx context.Context) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, CatalogCacheKey).Err()
}

// CatalogTags is a convenience for building Defaults from a loaded catalog.
func CatalogTags(perms []Permission) []string {
	return tagsOf(perms)
}
