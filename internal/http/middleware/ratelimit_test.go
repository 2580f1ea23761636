package middleware

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiterAllow(t *testing.T) {
	limiter := NewRateLimiter()

	for i := 0; i < 3; i++ {
		if !limiter.Allow("key", 3, time.Minute) {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if limiter.Allow("key", 3, time.Minute) {
		t.Fatal("fourth request should be rejected")
	}
	if !limiter.Allow("other", 3, time.Minute) {
		t.Fatal("separate keys must not share a window")
	}
}

func TestRateLimiterWindowReset(t *testing.T) {
	limiter := NewRateLimiter()

	if !limiter.Allow("key", 1, 10*time.Millisecond) {
		t.Fatal("first request should be allowed")
	}
	if limiter.Allow("key", 1, 10*time.Millisecond) {
		t.Fatal("second request should be rejected")
	}
	time.Sleep(20 * time.Millisecond)
	if !limiter.Allow("key", 1, 10*time.Millisecond) {
		t.Fatal("request after window should be allowed")
	}
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	if got := ClientIP(req); got != "10.0.0.1" {
		t.Fatalf("expected 10.0.0.1, got %q", got)
	}

	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	if got := ClientIP(req); got != "203.0.113.7" {
		t.Fatalf("expected forwarded address, got %q", got)
	}
}
