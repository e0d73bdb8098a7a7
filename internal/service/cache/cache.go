// Package cache holds the result cache backends: an in-process TTL map and Redis.
package cache

import domrepo "PairScope/internal/domain/repository"

var (
	_ domrepo.ResultCache = (*TTLCache)(nil)
	_ domrepo.ResultCache = (*RedisCache)(nil)
)
