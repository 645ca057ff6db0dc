package auth

import (
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"
)

type failedLogins struct {
	count int
	since time.Time
}

// LoginThrottle counts failed logins per key (client IP) in a fixed window
type LoginThrottle struct {
	MaxFailures int
	Window      time.Duration
	failures    cmap.ConcurrentMap[string, failedLogins]
	now         func() time.Time
}

func NewLoginThrottle(maxFailures int, window time.Duration) *LoginThrottle {
	return &LoginThrottle{
		MaxFailures: maxFailures,
		Window:      window,
		failures:    cmap.New[failedLogins](),
		now:         time.Now,
	}
}

// DefaultThrottle allows 5 failed logins per IP every 10 minutes
var DefaultThrottle = NewLoginThrottle(5, 10*time.Minute)

func (lt *LoginThrottle) Blocked(key string) bool {
	f, ok := lt.failures.Get(key)
	if !ok {
		return false
	}
	if lt.now().Sub(f.since) > lt.Window {
		lt.failures.Remove(key)
		return false
	}
	return f.count >= lt.MaxFailures
}

func (lt *LoginThrottle) Fail(key string) {
	now := lt.now()
	lt.failures.Upsert(key, failedLogins{1, now}, func(exist bool, valueInMap, newValue failedLogins) failedLogins {
		if !exist || now.Sub(valueInMap.since) > lt.Window {
			return newValue
		}
		valueInMap.count++
		return valueInMap
	})
}

func (lt *LoginThrottle) Reset(key string) {
	lt.failures.Remove(key)
}
