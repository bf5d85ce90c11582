package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestTokenBucket_BurstThenDeny(t *testing.T) {
	bucket := newTokenBucket(5, 1.0) // export-tier burst, 1 token per second

	for i := 0; i < 5; i++ {
		if !bucket.allow() {
			t.Errorf("Expected request %d within burst to be allowed", i+1)
		}
	}

	if bucket.allow() {
		t.Error("Expected request after burst to be denied")
	}
}

func TestTokenBucket_Refill(t *testing.T) {
	bucket := newTokenBucket(5, 1.0) // 1 token per second

	for i := 0; i < 5; i++ {
		bucket.allow()
	}

	time.Sleep(1100 * time.Millisecond)

	if !bucket.allow() {
		t.Error("Expected request to be allowed after refill")
	}
	if bucket.allow() {
		t.Error("Expected request to be denied after consuming refilled token")
	}
}

func TestTokenBucket_GetStatus(t *testing.T) {
	bucket := newTokenBucket(10, 1.0)

	for i := 0; i < 4; i++ {
		bucket.allow()
	}

	remaining, resetTime := bucket.getStatus()
	if remaining != 6 {
		t.Errorf("Expected 6 remaining tokens, got %d", remaining)
	}
	if resetTime.Before(time.Now()) {
		t.Error("Reset time should be in the future")
	}
}

func TestLimiter_DefaultTierReads(t *testing.T) {
	// CV listing has no endpoint rule and falls through to the default tier.
	config := &Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	clientID := "203.0.113.7"

	for i := 0; i < 10; i++ {
		allowed, rateInfo := limiter.Allow(clientID, "/api/cvs", "GET")
		if !allowed {
			t.Errorf("Expected read %d to be allowed", i+1)
		}
		if rateInfo.Limit != 10 {
			t.Errorf("Expected limit 10, got %d", rateInfo.Limit)
		}
		if rateInfo.Remaining != 9-i {
			t.Errorf("Expected remaining %d, got %d", 9-i, rateInfo.Remaining)
		}
	}

	allowed, rateInfo := limiter.Allow(clientID, "/api/cvs", "GET")
	if allowed {
		t.Error("Expected read past the limit to be denied")
	}
	if rateInfo.Remaining != 0 {
		t.Errorf("Expected remaining 0, got %d", rateInfo.Remaining)
	}
	if rateInfo.RetryAfter <= 0 {
		t.Error("Expected retry after to be positive")
	}
}

func TestLimiter_LoginBruteForce(t *testing.T) {
	// The credential tier throttles login attempts per client well below
	// the default limit.
	config := &Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/api/auth/login", Method: "POST", Limit: 30, Window: 15 * time.Minute, Burst: 10},
		},
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	clientID := "203.0.113.7"

	for i := 0; i < 10; i++ {
		allowed, rateInfo := limiter.Allow(clientID, "/api/auth/login", "POST")
		if !allowed {
			t.Errorf("Expected login attempt %d to be allowed", i+1)
		}
		if rateInfo.Limit != 30 {
			t.Errorf("Expected limit 30, got %d", rateInfo.Limit)
		}
	}

	// Burst of 10 is exhausted; refill at 30 per 15 minutes is far too slow
	// to grant another token yet.
	allowed, _ := limiter.Allow(clientID, "/api/auth/login", "POST")
	if allowed {
		t.Error("Expected login attempt after burst to be denied")
	}

	// CV reads from the same client are unaffected.
	allowed, rateInfo := limiter.Allow(clientID, "/api/cvs", "GET")
	if !allowed {
		t.Error("Expected CV read to be allowed while login is throttled")
	}
	if rateInfo.Limit != 1000 {
		t.Errorf("Expected default limit 1000, got %d", rateInfo.Limit)
	}
}

func TestLimiter_ExportTier(t *testing.T) {
	// PDF export launches headless Chrome, so its suffix rule is the
	// strictest tier even though plain CV reads share the prefix.
	config := &Config{
		Enabled:         true,
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		EndpointConfigs: DefaultEndpointConfigs(),
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	clientID := "203.0.113.7"
	exportPath := "/api/cvs/4f9c1d2e/export"

	for i := 0; i < 5; i++ {
		allowed, rateInfo := limiter.Allow(clientID, exportPath, "GET")
		if !allowed {
			t.Errorf("Expected export %d to be allowed", i+1)
		}
		if rateInfo.Limit != 30 {
			t.Errorf("Expected export limit 30, got %d", rateInfo.Limit)
		}
	}

	allowed, _ := limiter.Allow(clientID, exportPath, "GET")
	if allowed {
		t.Error("Expected export past the burst to be denied")
	}

	// A plain read of the same CV is governed by the default tier.
	allowed, rateInfo := limiter.Allow(clientID, "/api/cvs/4f9c1d2e", "GET")
	if !allowed {
		t.Error("Expected CV read to be allowed after export throttling")
	}
	if rateInfo.Limit != 1000 {
		t.Errorf("Expected default limit 1000, got %d", rateInfo.Limit)
	}
}

func TestLimiter_Whitelist(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{"10.0.0.1": true},
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	// A whitelisted office IP is never throttled, even on the export path.
	for i := 0; i < 100; i++ {
		allowed, rateInfo := limiter.Allow("10.0.0.1", "/api/cvs/4f9c1d2e/export", "GET")
		if !allowed {
			t.Errorf("Expected whitelisted request %d to be allowed", i+1)
		}
		if rateInfo.Limit != 0 {
			t.Errorf("Expected limit 0 for whitelisted, got %d", rateInfo.Limit)
		}
	}
}

func TestLimiter_Blacklist(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Blacklist:     map[string]bool{"198.51.100.9": true},
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	allowed, _ := limiter.Allow("198.51.100.9", "/api/cvs", "GET")
	if allowed {
		t.Error("Expected blacklisted request to be denied")
	}
}

func TestLimiter_Disabled(t *testing.T) {
	config := &Config{
		Enabled: false,
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, rateInfo := limiter.Allow("203.0.113.7", "/api/auth/login", "POST")
		if !allowed {
			t.Errorf("Expected request %d to be allowed when disabled", i+1)
		}
		if rateInfo.Limit != 0 {
			t.Errorf("Expected limit 0 when disabled, got %d", rateInfo.Limit)
		}
	}
}

func TestLimiter_ConcurrentSaves(t *testing.T) {
	// Editors autosave aggressively; the PUT tier must count concurrent
	// saves exactly, never over-admitting under contention.
	config := &Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/api/cvs/", Method: "PUT", Limit: 100, Window: time.Minute, Burst: 100},
		},
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	clientID := "203.0.113.7"

	var wg sync.WaitGroup
	allowedCount := 0
	var mu sync.Mutex

	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			allowed, _ := limiter.Allow(clientID, "/api/cvs/4f9c1d2e", "PUT")
			if allowed {
				mu.Lock()
				allowedCount++
				mu.Unlock()
			}
		}()
	}

	wg.Wait()

	if allowedCount != 100 {
		t.Errorf("Expected 100 allowed saves, got %d", allowedCount)
	}
}

func TestLimiter_CleanupKeepsActiveClients(t *testing.T) {
	config := &Config{
		Enabled:         true,
		DefaultLimit:    10,
		DefaultWindow:   time.Minute,
		CleanupInterval: 100 * time.Millisecond,
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		clientID := fmt.Sprintf("203.0.113.%d", i+1)
		allowed, _ := limiter.Allow(clientID, "/api/cvs", "GET")
		if !allowed {
			t.Errorf("Expected request from %s to be allowed", clientID)
		}
	}

	time.Sleep(150 * time.Millisecond)

	// Keep half the clients active across a cleanup cycle.
	for i := 0; i < 5; i++ {
		clientID := fmt.Sprintf("203.0.113.%d", i+1)
		allowed, _ := limiter.Allow(clientID, "/api/cvs", "GET")
		if !allowed {
			t.Errorf("Expected request from %s to be allowed", clientID)
		}
	}

	time.Sleep(150 * time.Millisecond)

	// Recently active clients keep their buckets.
	for i := 0; i < 5; i++ {
		clientID := fmt.Sprintf("203.0.113.%d", i+1)
		allowed, _ := limiter.Allow(clientID, "/api/cvs", "GET")
		if !allowed {
			t.Errorf("Expected request from %s to still be allowed after cleanup", clientID)
		}
	}
}

func TestNewLimiter_NilConfig(t *testing.T) {
	limiter := NewLimiter(nil)
	defer limiter.Stop()

	if limiter == nil {
		t.Error("Expected limiter to be created with nil config")
	}

	allowed, rateInfo := limiter.Allow("203.0.113.7", "/api/cvs", "GET")
	if !allowed {
		t.Error("Expected request to be allowed with default config")
	}
	if rateInfo.Limit != 1000 {
		t.Errorf("Expected default limit 1000, got %d", rateInfo.Limit)
	}
}
