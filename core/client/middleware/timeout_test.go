package middleware

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/calcagent/calcagent/providers/ai"
)

func TestTimeoutMiddleware_SetsDeadline(t *testing.T) {
	config := NewTimeoutMiddleware(30 * time.Second)

	var sawDeadline bool
	send := config.Send(func(ctx context.Context, _ ai.ChatRequest) (*ai.ChatResponse, error) {
		_, sawDeadline = ctx.Deadline()
		return &ai.ChatResponse{Content: "ok"}, nil
	})

	if _, err := send(context.Background(), ai.ChatRequest{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sawDeadline {
		t.Error("expected the inner context to carry a deadline")
	}
}

func TestTimeoutMiddleware_ExpiresSlowCalls(t *testing.T) {
	config := NewTimeoutMiddleware(10 * time.Millisecond)

	send := config.Send(func(ctx context.Context, _ ai.ChatRequest) (*ai.ChatResponse, error) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(5 * time.Second):
			return &ai.ChatResponse{Content: "too late"}, nil
		}
	})

	_, err := send(context.Background(), ai.ChatRequest{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context.DeadlineExceeded, got %v", err)
	}
}

func TestTimeoutMiddleware_ShorterCallerDeadlineWins(t *testing.T) {
	config := NewTimeoutMiddleware(time.Hour)

	callerCtx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	send := config.Send(func(ctx context.Context, _ ai.ChatRequest) (*ai.ChatResponse, error) {
		deadline, ok := ctx.Deadline()
		if !ok {
			t.Fatal("expected a deadline")
		}
		if time.Until(deadline) > time.Second {
			t.Errorf("expected the caller's shorter deadline to win, got %v away", time.Until(deadline))
		}
		return &ai.ChatResponse{}, nil
	})

	if _, err := send(callerCtx, ai.ChatRequest{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
