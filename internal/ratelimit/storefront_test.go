package ratelimit

import (
	"context"
	"testing"
)

func TestDisabledLimiterAllowsEverything(t *testing.T) {
	l := NewStorefrontLimiter(nil)
	if l.Enabled() {
		t.Fatal("expected limiter disabled without a bucket")
	}
	allowed, err := l.Allow(context.Background(), "10.0.0.1")
	if err != nil || !allowed {
		t.Fatalf("allowed=%v err=%v", allowed, err)
	}
}

func TestNilTokenBucketErrors(t *testing.T) {
	var b *TokenBucket
	if _, err := b.Allow(context.Background(), "k", 1, 1); err == nil {
		t.Fatal("expected error from nil bucket")
	}
}

func TestBucketTTLFloor(t *testing.T) {
	if got := bucketTTL(1000, 1); got.Seconds() < 1 {
		t.Fatalf("ttl %v", got)
	}
}
