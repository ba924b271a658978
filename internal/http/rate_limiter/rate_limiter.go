package rate_limiter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Defaults sized for periodic camera uploads: a fridge camera posts a
// handful of snapshots per minute at most, but profile imports and
// sensor updates can come in short bursts.
var (
	requestsPerSecond rate.Limit = 10
	burstSize                    = 20
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	visitors = make(map[string]*clientLimiter)
	mu       sync.Mutex
)

// SetLimits overrides the per-client rate. Call before serving traffic.
func SetLimits(rps float64, burst int) {
	mu.Lock()
	defer mu.Unlock()
	requestsPerSecond = rate.Limit(rps)
	burstSize = burst
	visitors = make(map[string]*clientLimiter)
}

func GetVisitor(ip string) *rate.Limiter {
	mu.Lock()
	defer mu.Unlock()

	v, exists := visitors[ip]
	if !exists {
		limiter := rate.NewLimiter(requestsPerSecond, burstSize)
		visitors[ip] = &clientLimiter{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

func StartVisitorCleanupLoop() {
	for {
		time.Sleep(time.Minute)
		mu.Lock()
		for ip, v := range visitors {
			if time.Since(v.lastSeen) > 5*time.Minute {
				delete(visitors, ip)
			}
		}
		mu.Unlock()
	}
}

func CleanupAllVisitors() {
	mu.Lock()
	defer mu.Unlock()
	visitors = make(map[string]*clientLimiter)
}
