package middleware

import (
	"sync"
	"time"
)

// revocationList 已注销的 jti 及其原过期时间，过期后自动清除
type revocationList struct {
	mu      sync.Mutex
	entries map[string]time.Time
}

var revoked = &revocationList{entries: make(map[string]time.Time)}

// RevokeToken 注销 token，直到其自然过期
func RevokeToken(claims *Claims) {
	if claims == nil || claims.ID == "" {
		return
	}
	expiresAt := time.Now().Add(24 * time.Hour)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	revoked.add(claims.ID, expiresAt, time.Now())
}

func (r *revocationList) add(jti string, expiresAt, now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sweepLocked(now)
	r.entries[jti] = expiresAt
}

func (r *revocationList) contains(jti string, now time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	expiresAt, ok := r.entries[jti]
	if !ok {
		return false
	}
	if now.After(expiresAt) {
		delete(r.entries, jti)
		return false
	}
	return true
}

func (r *revocationList) sweepLocked(now time.Time) {
	for jti, expiresAt := range r.entries {
		if now.After(expiresAt) {
			delete(r.entries, jti)
		}
	}
}

func (r *revocationList) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
