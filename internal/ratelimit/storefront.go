package ratelimit

import (
	"context"
)

// Defaults for the public storefront: generous enough for a shopper
// refreshing a page, tight enough to blunt scraping.
const (
	storefrontRate  = 10.0
	storefrontBurst = 30
)

// StorefrontLimiter throttles anonymous page views per client IP. With no
// Redis configured it is disabled and every request passes.
type StorefrontLimiter struct {
	bucket *TokenBucket
}

func NewStorefrontLimiter(bucket *TokenBucket) *StorefrontLimiter {
	return &StorefrontLimiter{bucket: bucket}
}

func (l *StorefrontLimiter) Enabled() bool {
	return l != nil && l.bucket != nil
}

func (l *StorefrontLimiter) Allow(ctx context.Context, clientIP string) (bool, error) {
	if !l.Enabled() {
		return true, nil
	}
	res, err := l.bucket.Allow(ctx, "rl:storefront:"+clientIP, storefrontRate, storefrontBurst)
	if err != nil {
		return false, err
	}
	return res.Allowed, nil
}
