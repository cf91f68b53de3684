package utils

import (
	"ilmhub/config"
	"sync"
	"time"
)

// otpThrottle limits OTP sends per address inside a sliding window. It is an
// in-process map with TTL, owned here and never referenced by the enrollment
// engine, which must stay a pure function of datastore state.
type otpThrottle struct {
	mu      sync.Mutex
	entries map[string]*throttleEntry
}

type throttleEntry struct {
	count       int
	windowStart time.Time
}

// OTPThrottle is the process-wide throttle for OTP sends.
var OTPThrottle = &otpThrottle{entries: make(map[string]*throttleEntry)}

// Allow reports whether another OTP may be sent to the address, counting the
// attempt if so.
func (t *otpThrottle) Allow(address string) bool {
	limit := config.AppConfig.OTPRequestLimit
	window := time.Duration(config.AppConfig.OTPWindowMinutes) * time.Minute

	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	entry, ok := t.entries[address]
	if !ok || now.Sub(entry.windowStart) > window {
		t.entries[address] = &throttleEntry{count: 1, windowStart: now}
		return true
	}

	if entry.count >= limit {
		return false
	}
	entry.count++
	return true
}
