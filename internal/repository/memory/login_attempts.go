package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// LoginAttemptRepository counts failed logins per key inside a fixed window
// that starts at the first failure.
type LoginAttemptRepository struct {
	cache       *cache.Cache
	maxAttempts int
}

func NewLoginAttemptRepository(maxAttempts int, window time.Duration) *LoginAttemptRepository {
	return &LoginAttemptRepository{
		cache:       cache.New(window, window*2),
		maxAttempts: maxAttempts,
	}
}

func (r *LoginAttemptRepository) Allowed(key string) bool {
	if r.maxAttempts <= 0 {
		return true
	}
	if x, found := r.cache.Get(key); found {
		return x.(int) < r.maxAttempts
	}
	return true
}

func (r *LoginAttemptRepository) Fail(key string) {
	if _, found := r.cache.Get(key); found {
		// Keeps the original expiration.
		_, _ = r.cache.IncrementInt(key, 1)
		return
	}
	r.cache.Set(key, 1, cache.DefaultExpiration)
}

func (r *LoginAttemptRepository) Reset(key string) {
	r.cache.Delete(key)
}
