package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Fiksni prozor po IP adresi, u memoriji procesa. Pod više instanci nije
// strogo tačan, ali je dovoljan za rad na jednoj instanci.

type windowEntry struct {
	count      int
	windowFrom time.Time
}

type RateLimiter struct {
	mu        sync.Mutex
	max       int
	window    time.Duration
	entries   map[string]*windowEntry
	now       func() time.Time
	lastSweep time.Time
}

func NewRateLimiter(max int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		max:     max,
		window:  window,
		entries: make(map[string]*windowEntry),
		now:     time.Now,
	}
}

// Allow broji pokušaj i kaže da li je ispod limita prozora.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.sweep(now)

	e, ok := rl.entries[key]
	if !ok || now.Sub(e.windowFrom) >= rl.window {
		rl.entries[key] = &windowEntry{count: 1, windowFrom: now}
		return true
	}
	e.count++
	return e.count <= rl.max
}

// sweep izbacuje istekle prozore, najviše jednom po trajanju prozora, da
// mapa klijenata ne raste neograničeno. Poziva se pod zaključanim mu.
func (rl *RateLimiter) sweep(now time.Time) {
	if now.Sub(rl.lastSweep) < rl.window {
		return
	}
	rl.lastSweep = now
	for key, e := range rl.entries {
		if now.Sub(e.windowFrom) >= rl.window {
			delete(rl.entries, key)
		}
	}
}

// Middleware vraća 429 sa RATE_LIMITED kodom kada je prozor potrošen, bez
// da zahtjev uopšte dođe do handlera.
func (rl *RateLimiter) Middleware(message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": message,
				"code":  "RATE_LIMITED",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// LoginRateLimiter: najviše 20 pokušaja prijave po klijentu u 15 minuta.
func LoginRateLimiter() gin.HandlerFunc {
	return NewRateLimiter(20, 15*time.Minute).
		Middleware("Previše pokušaja prijave. Pokušajte ponovo kasnije.")
}

// APIRateLimiter: opšti limit za API pozive.
func APIRateLimiter() gin.HandlerFunc {
	return NewRateLimiter(300, time.Minute).
		Middleware("Previše zahtjeva. Pokušajte ponovo kasnije.")
}
