package browser

import (
	"context"
	"errors"
	"testing"
	"time"
)

// The wait action and the pre-dispatch validation paths never touch the
// page, so they are testable without a running engine.

func TestRunActionsWait(t *testing.T) {
	w := NewWorker(Options{})

	start := time.Now()
	trace, err := w.runActions(context.Background(), nil, []Action{
		{Type: ActionTypeWait, Timeout: 50},
	})
	if err != nil {
		t.Fatalf("runActions failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
		t.Errorf("wait returned after %v, expected at least 50ms", elapsed)
	}
	if len(trace) != 1 || trace[0] != "Waited: 50ms" {
		t.Errorf("unexpected trace: %v", trace)
	}
}

func TestRunActionsWaitDefaultTimeout(t *testing.T) {
	w := NewWorker(Options{})

	trace, err := w.runActions(context.Background(), nil, []Action{
		{Type: ActionTypeWait},
	})
	if err != nil {
		t.Fatalf("runActions failed: %v", err)
	}
	if len(trace) != 1 || trace[0] != "Waited: 1000ms" {
		t.Errorf("unexpected trace: %v", trace)
	}
}

func TestRunActionsUnknownTypeSkipped(t *testing.T) {
	w := NewWorker(Options{})

	trace, err := w.runActions(context.Background(), nil, []Action{
		{Type: ActionTypeWait, Timeout: 10},
		{Type: "hover", Selector: "#btn"},
		{Type: ActionTypeWait, Timeout: 10},
	})
	if err != nil {
		t.Fatalf("runActions failed: %v", err)
	}
	if len(trace) != 2 {
		t.Errorf("expected unknown action to leave no trace, got %v", trace)
	}
}

func TestRunActionsMissingSelector(t *testing.T) {
	w := NewWorker(Options{})

	tests := []struct {
		name   string
		action Action
	}{
		{"click", Action{Type: ActionTypeClick}},
		{"type", Action{Type: ActionTypeType, Text: "hello"}},
		{"wait_for_selector", Action{Type: ActionTypeWaitForSelector}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trace, err := w.runActions(context.Background(), nil, []Action{tt.action})
			if err == nil {
				t.Fatal("expected error for missing selector")
			}
			var actErr *ActionError
			if !errors.As(err, &actErr) {
				t.Fatalf("expected ActionError, got %T", err)
			}
			if actErr.Index != 0 {
				t.Errorf("expected index 0, got %d", actErr.Index)
			}
			if actErr.Type != tt.action.Type {
				t.Errorf("expected type %s, got %s", tt.action.Type, actErr.Type)
			}
			if len(trace) != 0 {
				t.Errorf("expected empty trace, got %v", trace)
			}
		})
	}
}

func TestRunActionsFailureKeepsTrace(t *testing.T) {
	w := NewWorker(Options{})

	trace, err := w.runActions(context.Background(), nil, []Action{
		{Type: ActionTypeWait, Timeout: 10},
		{Type: ActionTypeClick},
	})
	if err == nil {
		t.Fatal("expected error")
	}
	var actErr *ActionError
	if !errors.As(err, &actErr) {
		t.Fatalf("expected ActionError, got %T", err)
	}
	if actErr.Index != 1 {
		t.Errorf("expected failure at index 1, got %d", actErr.Index)
	}
	if len(trace) != 1 || trace[0] != "Waited: 10ms" {
		t.Errorf("expected trace of completed actions, got %v", trace)
	}
}

func TestRunActionsCancelledContext(t *testing.T) {
	w := NewWorker(Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	trace, err := w.runActions(ctx, nil, []Action{
		{Type: ActionTypeWait, Timeout: 10},
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(trace) != 0 {
		t.Errorf("expected empty trace, got %v", trace)
	}
}

func TestRunActionsEmptyTrace(t *testing.T) {
	w := NewWorker(Options{})

	trace, err := w.runActions(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("runActions failed: %v", err)
	}
	if trace == nil {
		t.Fatal("expected non-nil trace for empty sequence")
	}
	if len(trace) != 0 {
		t.Errorf("expected empty trace, got %v", trace)
	}
}
