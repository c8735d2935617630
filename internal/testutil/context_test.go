package testutil

import (
	"testing"
	"time"
)

func TestContextHonoursTimeout(t *testing.T) {
	ctx := Context(t, 50*time.Millisecond)
	deadline, ok := ctx.Deadline()
	if !ok {
		t.Fatalf("expected a deadline")
	}
	if remaining := time.Until(deadline); remaining > 50*time.Millisecond {
		t.Fatalf("expected deadline within 50ms, got %s", remaining)
	}
}

func TestContextDefaultsThroughTB(t *testing.T) {
	var tb testing.TB = t
	ctx := Context(tb, 0)
	deadline, ok := ctx.Deadline()
	if !ok {
		t.Fatalf("expected a deadline")
	}
	if time.Until(deadline) > DefaultTimeout {
		t.Fatalf("expected default timeout, got %s", time.Until(deadline))
	}
}
