package expiringcache

import "errors"

var (
	ErrNegativeTTL = errors.New("ttl must not be negative")
)
