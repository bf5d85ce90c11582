package ratelimit

import (
	"testing"
	"time"
)

func TestMatchEndpoint_Exact(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/api/auth/login", Method: "POST", Limit: 30, Window: 15 * time.Minute},
	}

	match := MatchEndpoint("/api/auth/login", "POST", configs)
	if match == nil {
		t.Fatal("Expected exact match")
	}
	if match.Limit != 30 {
		t.Errorf("Expected limit 30, got %d", match.Limit)
	}

	if MatchEndpoint("/api/auth/login", "GET", configs) != nil {
		t.Error("Expected no match for wrong method")
	}
}

func TestMatchEndpoint_Prefix(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/api/cvs/", Method: "PUT", Limit: 100, Window: time.Minute},
	}

	match := MatchEndpoint("/api/cvs/0b6f3a-id", "PUT", configs)
	if match == nil {
		t.Fatal("Expected prefix match")
	}
	if match.Limit != 100 {
		t.Errorf("Expected limit 100, got %d", match.Limit)
	}
}

func TestMatchEndpoint_Suffix(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/api/cvs/", Suffix: "/export", Method: "GET", Limit: 30, Window: time.Hour},
	}

	match := MatchEndpoint("/api/cvs/0b6f3a-id/export", "GET", configs)
	if match == nil {
		t.Fatal("Expected suffix rule to match export path")
	}
	if match.Limit != 30 {
		t.Errorf("Expected limit 30, got %d", match.Limit)
	}

	// Plain reads under the same prefix must not hit the export rule.
	if MatchEndpoint("/api/cvs/0b6f3a-id", "GET", configs) != nil {
		t.Error("Expected no match for non-export path")
	}
}

func TestMatchEndpoint_HealthUnlimited(t *testing.T) {
	match := MatchEndpoint("/health", "GET", nil)
	if match == nil {
		t.Fatal("Expected health special case")
	}
	if match.Limit != 0 {
		t.Errorf("Expected unlimited health endpoint, got limit %d", match.Limit)
	}
}
