package utils

import (
	"context"
	"testing"
	"time"
)

func TestTruncateForLog(t *testing.T) {
	cases := []struct {
		in       string
		limit    int
		expected string
	}{
		{"short", 10, "short"},
		{"  padded  ", 10, "padded"},
		{"truncate me please", 8, "truncate..."},
		{"anything", 0, ""},
		{"", 5, ""},
	}

	for _, tc := range cases {
		if got := TruncateForLog(tc.in, tc.limit); got != tc.expected {
			t.Fatalf("TruncateForLog(%q, %d) = %q, expected %q", tc.in, tc.limit, got, tc.expected)
		}
	}
}

func TestWaitForZeroDuration(t *testing.T) {
	if err := WaitFor(context.Background(), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWaitForCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := WaitFor(ctx, time.Minute); err == nil {
		t.Fatalf("expected context error")
	}
}
