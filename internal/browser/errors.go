package browser

import "fmt"

// InitError means the browser engine failed to start. The worker stays
// uninitialized so a later task may retry the launch.
type InitError struct {
	Err error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("browser init failed: %v", e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// LoadError means the persisted browsing context could not be restored
// from its storage file.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("restore session from %s failed: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Navigation phases reported by NavigationError.
const (
	PhaseNavigate = "navigate"
	PhaseWait     = "wait"
)

// NavigationError means a page failed to reach the requested URL or its
// readiness state within the timeout. Phase distinguishes the goto itself
// from the load-state wait that follows it.
type NavigationError struct {
	URL   string
	Phase string
	Err   error
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("navigation to %s failed during %s: %v", e.URL, e.Phase, e.Err)
}

func (e *NavigationError) Unwrap() error { return e.Err }

// ActionError means one action in a sequence could not be executed.
// Index is the zero-based position of the failing action.
type ActionError struct {
	Index int
	Type  ActionType
	Err   error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("action %d (%s) failed: %v", e.Index, e.Type, e.Err)
}

func (e *ActionError) Unwrap() error { return e.Err }

// CaptureError means a screenshot could not be taken.
type CaptureError struct {
	Err error
}

func (e *CaptureError) Error() string {
	return fmt.Sprintf("screenshot failed: %v", e.Err)
}

func (e *CaptureError) Unwrap() error { return e.Err }
