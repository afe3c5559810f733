package browser

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/droverlabs/drover/internal/logging"
)

// ActionType identifies one kind of scripted UI action.
type ActionType string

const (
	ActionTypeClick           ActionType = "click"
	ActionTypeType            ActionType = "type"
	ActionTypeWait            ActionType = "wait"
	ActionTypeWaitForSelector ActionType = "wait_for_selector"
	ActionTypeScroll          ActionType = "scroll"
)

// Action is one scripted step in an action sequence. Selector is required
// for click, type, and wait_for_selector; Text is what type fills in;
// Timeout is the wait duration in milliseconds (0 means 1000).
type Action struct {
	Type     ActionType `json:"type"`
	Selector string     `json:"selector,omitempty"`
	Text     string     `json:"text,omitempty"`
	Timeout  int        `json:"timeout,omitempty"`
}

// ActionsTask scripts a sequence of UI actions against one page.
type ActionsTask struct {
	URL             string
	Actions         []Action
	ScreenshotAfter bool
}

// ActionOutcome reports what an action task did. Screenshot is a
// full-page PNG, set only when the task asked for one.
type ActionOutcome struct {
	Trace      []string
	Screenshot []byte
}

const scrollToBottom = "window.scrollTo(0, document.body.scrollHeight)"

// defaultActionTimeout bounds click and fill dispatch.
const defaultActionTimeout = 30 * time.Second

// PerformActions navigates to the task URL, waits for network idle, and
// executes the actions strictly in order. On an action failure the
// returned outcome still carries the trace of every completed action.
func (w *Worker) PerformActions(ctx context.Context, task ActionsTask) (outcome *ActionOutcome, err error) {
	start := time.Now()
	defer func() { observeTask("actions", start, err) }()

	if err = w.EnsureInitialized(ctx); err != nil {
		return nil, err
	}
	if err = w.acquire(ctx); err != nil {
		return nil, err
	}
	defer w.release()

	page, err := w.openPage(ctx, task.URL, pagePolicy{waitFor: "networkidle"})
	if err != nil {
		return nil, err
	}
	defer w.closePage(page)

	trace, err := w.runActions(ctx, page, task.Actions)
	outcome = &ActionOutcome{Trace: trace}
	if err != nil {
		return outcome, err
	}

	if task.ScreenshotAfter {
		shot, cerr := w.capture(page, true)
		if cerr != nil {
			err = cerr
			return outcome, err
		}
		outcome.Screenshot = shot
	}
	return outcome, nil
}

// runActions executes the sequence, appending one trace line per
// completed action and stopping at the first failure. Unknown action
// types are logged and skipped.
func (w *Worker) runActions(ctx context.Context, page playwright.Page, actions []Action) ([]string, error) {
	trace := make([]string, 0, len(actions))

	for i, action := range actions {
		if err := ctx.Err(); err != nil {
			return trace, err
		}

		switch action.Type {
		case ActionTypeClick:
			if action.Selector == "" {
				return trace, &ActionError{Index: i, Type: action.Type, Err: errors.New("selector is required")}
			}
			err := page.Locator(action.Selector).Click(playwright.LocatorClickOptions{
				Timeout: playwright.Float(float64(defaultActionTimeout.Milliseconds())),
			})
			if err != nil {
				return trace, &ActionError{Index: i, Type: action.Type, Err: err}
			}
			trace = append(trace, fmt.Sprintf("Clicked: %s", action.Selector))

		case ActionTypeType:
			if action.Selector == "" {
				return trace, &ActionError{Index: i, Type: action.Type, Err: errors.New("selector is required")}
			}
			err := page.Locator(action.Selector).Fill(action.Text, playwright.LocatorFillOptions{
				Timeout: playwright.Float(float64(defaultActionTimeout.Milliseconds())),
			})
			if err != nil {
				return trace, &ActionError{Index: i, Type: action.Type, Err: err}
			}
			trace = append(trace, fmt.Sprintf("Typed '%s' in: %s", action.Text, action.Selector))

		case ActionTypeWait:
			timeout := action.Timeout
			if timeout == 0 {
				timeout = 1000
			}
			select {
			case <-time.After(time.Duration(timeout) * time.Millisecond):
			case <-ctx.Done():
				return trace, ctx.Err()
			}
			trace = append(trace, fmt.Sprintf("Waited: %dms", timeout))

		case ActionTypeWaitForSelector:
			if action.Selector == "" {
				return trace, &ActionError{Index: i, Type: action.Type, Err: errors.New("selector is required")}
			}
			_, err := page.WaitForSelector(action.Selector, playwright.PageWaitForSelectorOptions{
				Timeout: playwright.Float(float64(w.opts.SelectorTimeout.Milliseconds())),
			})
			if err != nil {
				return trace, &ActionError{Index: i, Type: action.Type, Err: err}
			}
			trace = append(trace, fmt.Sprintf("Waited for selector: %s", action.Selector))

		case ActionTypeScroll:
			if _, err := page.Evaluate(scrollToBottom); err != nil {
				return trace, &ActionError{Index: i, Type: action.Type, Err: err}
			}
			trace = append(trace, "Scrolled to bottom")

		default:
			logging.Warnf("Skipping unknown action type %q at index %d", action.Type, i)
		}
	}

	return trace, nil
}
