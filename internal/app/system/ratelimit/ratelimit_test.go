package ratelimit

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestAllow_WithinBudget(t *testing.T) {
	l := New(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !l.Allow("10.0.0.1") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if l.Allow("10.0.0.1") {
		t.Error("request over budget should be denied")
	}
}

func TestAllow_KeysAreIndependent(t *testing.T) {
	l := New(1, time.Minute)

	if !l.Allow("10.0.0.1") {
		t.Fatal("first key should be allowed")
	}
	if !l.Allow("10.0.0.2") {
		t.Error("a different key has its own budget")
	}
	if l.Allow("10.0.0.1") {
		t.Error("exhausted key should stay denied")
	}
}

func TestAllow_WindowExpiry(t *testing.T) {
	l := New(1, 10*time.Millisecond)

	if !l.Allow("10.0.0.1") {
		t.Fatal("first request should be allowed")
	}
	if l.Allow("10.0.0.1") {
		t.Fatal("second request should be denied")
	}

	time.Sleep(20 * time.Millisecond)

	if !l.Allow("10.0.0.1") {
		t.Error("budget should refresh after the window expires")
	}
}

func TestReset(t *testing.T) {
	l := New(1, time.Minute)

	l.Allow("10.0.0.1")
	if l.Allow("10.0.0.1") {
		t.Fatal("budget should be exhausted")
	}

	l.Reset("10.0.0.1")

	if !l.Allow("10.0.0.1") {
		t.Error("reset should restore the budget")
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		xff        string
		xri        string
		want       string
	}{
		{"remote addr with port", "203.0.113.9:4321", "", "", "203.0.113.9"},
		{"remote addr without port", "203.0.113.9", "", "", "203.0.113.9"},
		{"forwarded-for wins", "10.0.0.1:80", "198.51.100.7, 10.0.0.2", "", "198.51.100.7"},
		{"real-ip fallback", "10.0.0.1:80", "", "198.51.100.8", "198.51.100.8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xri != "" {
				req.Header.Set("X-Real-IP", tt.xri)
			}
			if got := ClientIP(req); got != tt.want {
				t.Errorf("ClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
