package browser

import (
	"context"
	"errors"

	"github.com/playwright-community/playwright-go"

	"github.com/droverlabs/drover/internal/logging"
)

// pagePolicy bundles per-task page setup: an optional viewport and the
// readiness state applied after navigation.
type pagePolicy struct {
	viewport *playwright.Size
	waitFor  string
}

// loadState maps a wait_for value to its engine load state. Unrecognized
// values map to nil, which openPage treats as "no extra wait".
func loadState(waitFor string) *playwright.LoadState {
	switch waitFor {
	case "load":
		return playwright.LoadStateLoad
	case "domcontentloaded":
		return playwright.LoadStateDomcontentloaded
	case "networkidle":
		return playwright.LoadStateNetworkidle
	}
	return nil
}

// openPage creates a fresh page for one task, navigates it, and blocks
// until the requested readiness state holds. Every caller must close the
// page it got, on every exit path; pages leaked across tasks would bleed
// the shared browser dry over time.
func (w *Worker) openPage(ctx context.Context, url string, pol pagePolicy) (playwright.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	w.mu.Lock()
	browserCtx := w.context
	w.mu.Unlock()
	if browserCtx == nil {
		return nil, &InitError{Err: errors.New("no browser context")}
	}

	page, err := browserCtx.NewPage()
	if err != nil {
		return nil, &NavigationError{URL: url, Phase: PhaseNavigate, Err: err}
	}

	if pol.viewport != nil {
		if err := page.SetViewportSize(pol.viewport.Width, pol.viewport.Height); err != nil {
			w.closePage(page)
			return nil, &NavigationError{URL: url, Phase: PhaseNavigate, Err: err}
		}
	}

	if _, err := page.Goto(url, playwright.PageGotoOptions{
		Timeout: playwright.Float(float64(w.opts.NavTimeout.Milliseconds())),
	}); err != nil {
		w.closePage(page)
		return nil, &NavigationError{URL: url, Phase: PhaseNavigate, Err: err}
	}

	if state := loadState(pol.waitFor); state != nil {
		if err := page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
			State:   state,
			Timeout: playwright.Float(float64(w.opts.WaitTimeout.Milliseconds())),
		}); err != nil {
			w.closePage(page)
			return nil, &NavigationError{URL: url, Phase: PhaseWait, Err: err}
		}
	}

	return page, nil
}

// closePage closes a task's page; the shared browser stays up.
func (w *Worker) closePage(page playwright.Page) {
	if err := page.Close(); err != nil {
		logging.Warnf("Page close failed: %v", err)
	}
}
