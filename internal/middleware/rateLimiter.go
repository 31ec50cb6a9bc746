package middleware

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// RateStore decides whether the client identified by key may proceed.
type RateStore interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type IPRateLimiter struct {
	ips       map[string]*rate.Limiter
	mu        sync.RWMutex
	rateLimit rate.Limit
	burstRate int
}

var _ RateStore = (*IPRateLimiter)(nil)

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{ips: make(map[string]*rate.Limiter), rateLimit: r, burstRate: b}
}

func (i *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	i.mu.RLock()
	limiter, exists := i.ips[ip]
	i.mu.RUnlock()
	if exists {
		return limiter
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	if limiter, exists = i.ips[ip]; !exists {
		limiter = rate.NewLimiter(i.rateLimit, i.burstRate)
		i.ips[ip] = limiter
	}
	return limiter
}

func (i *IPRateLimiter) Allow(_ context.Context, ip string) (bool, error) {
	return i.GetLimiter(ip).Allow(), nil
}
