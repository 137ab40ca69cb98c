package config

import (
	"testing"
	"time"
)

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("TEST_ENV_KEY", "value")
	if got := envOrDefault("TEST_ENV_KEY", "fallback"); got != "value" {
		t.Fatalf("expected value, got %s", got)
	}
	if got := envOrDefault("TEST_ENV_MISSING", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %s", got)
	}
}

func TestIntEnvOrDefault(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	if got := intEnvOrDefault("TEST_INT", 7); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}

	t.Setenv("TEST_INT_BAD", "zero")
	if got := intEnvOrDefault("TEST_INT_BAD", 7); got != 7 {
		t.Fatalf("expected fallback 7, got %d", got)
	}

	t.Setenv("TEST_INT_NEG", "-3")
	if got := intEnvOrDefault("TEST_INT_NEG", 7); got != 7 {
		t.Fatalf("expected fallback for non-positive, got %d", got)
	}
}

func TestDurationEnvOrDefault(t *testing.T) {
	t.Setenv("TEST_DUR", "250ms")
	if got := durationEnvOrDefault("TEST_DUR", time.Second); got != 250*time.Millisecond {
		t.Fatalf("expected 250ms, got %v", got)
	}

	t.Setenv("TEST_DUR_BAD", "soon")
	if got := durationEnvOrDefault("TEST_DUR_BAD", time.Second); got != time.Second {
		t.Fatalf("expected fallback, got %v", got)
	}
}

func TestBoolEnvOrDefault(t *testing.T) {
	tests := []struct {
		raw  string
		def  bool
		want bool
	}{
		{"1", false, true},
		{"true", false, true},
		{"YES", false, true},
		{"0", true, false},
		{"false", true, false},
		{"no", true, false},
		{"maybe", true, true},
		{"", false, false},
	}

	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			t.Setenv("TEST_BOOL", tc.raw)
			if got := boolEnvOrDefault("TEST_BOOL", tc.def); got != tc.want {
				t.Fatalf("raw=%q default=%v: expected %v, got %v", tc.raw, tc.def, got, tc.want)
			}
		})
	}
}
