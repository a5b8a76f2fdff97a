package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// slidingWindow 按 key 统计窗口内的请求次数
type slidingWindow struct {
	mu          sync.Mutex
	maxAttempts int
	window      time.Duration
	hits        map[string][]time.Time
}

func newSlidingWindow(maxAttempts int, window time.Duration) *slidingWindow {
	return &slidingWindow{
		maxAttempts: maxAttempts,
		window:      window,
		hits:        make(map[string][]time.Time),
	}
}

// allow 记录一次请求，超过上限返回 false（被拒绝的请求不计数）
func (w *slidingWindow) allow(key string, now time.Time) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	ts := prune(w.hits[key], now.Add(-w.window))
	if len(ts) >= w.maxAttempts {
		w.hits[key] = ts
		return false
	}
	w.hits[key] = append(ts, now)
	return true
}

// cleanup 清除窗口外的数据
func (w *slidingWindow) cleanup(now time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()

	cutoff := now.Add(-w.window)
	for key, ts := range w.hits {
		if ts = prune(ts, cutoff); len(ts) == 0 {
			delete(w.hits, key)
		} else {
			w.hits[key] = ts
		}
	}
}

func prune(ts []time.Time, cutoff time.Time) []time.Time {
	kept := ts[:0]
	for _, t := range ts {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	return kept
}

// RateLimit 按客户端 IP 限流，超过后返回 429 和 message
func RateLimit(maxAttempts int, window time.Duration, message string) gin.HandlerFunc {
	w := newSlidingWindow(maxAttempts, window)
	// 定期清理过期数据
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for now := range ticker.C {
			w.cleanup(now)
		}
	}()

	return func(c *gin.Context) {
		if !w.allow(c.ClientIP(), time.Now()) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"code":    http.StatusTooManyRequests,
				"message": message,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// LoginRateLimit 登录/注册接口限流
func LoginRateLimit(maxAttempts int, window time.Duration) gin.HandlerFunc {
	return RateLimit(maxAttempts, window, "登录尝试过于频繁，请稍后再试")
}
