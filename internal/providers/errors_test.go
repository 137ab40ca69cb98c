package providers

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestRateLimitErrorMessage(t *testing.T) {
	err := &RateLimitError{Provider: "apisports", StatusCode: 429}
	if got := err.Error(); got != "provider rate limited (status=429)" {
		t.Fatalf("unexpected message %q", got)
	}

	err = &RateLimitError{Message: "slow down"}
	if got := err.Error(); got != "slow down" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestAsRateLimitError(t *testing.T) {
	inner := &RateLimitError{Provider: "apisports", RetryAfter: 2 * time.Second}
	wrapped := fmt.Errorf("fetch failed: %w", inner)

	rl, ok := AsRateLimitError(wrapped)
	if !ok {
		t.Fatal("expected rate limit error")
	}
	if rl.RetryAfter != 2*time.Second {
		t.Fatalf("unexpected retry-after %v", rl.RetryAfter)
	}

	if _, ok := AsRateLimitError(errors.New("other")); ok {
		t.Fatal("did not expect rate limit error")
	}
}
