package repository

import (
	"context"
	"strings"

	redisrepo "github.com/freeeve/vscc-rating/internal/repository/redis"
	"github.com/freeeve/vscc-rating/internal/repository/sqlstore"
)

// Open connects to the scenario store named by url: redis:// or rediss://
// for Redis, anything else is handed to sqlstore.
func Open(ctx context.Context, url string) (ScenarioRepository, error) {
	if strings.HasPrefix(url, "redis://") || strings.HasPrefix(url, "rediss://") {
		c, err := redisrepo.NewClient(ctx, url)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
	repo, err := sqlstore.Open(ctx, url)
	if err != nil {
		return nil, err
	}
	return repo, nil
}
