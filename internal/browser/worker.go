// Package browser drives a single headless Chromium instance through
// Playwright. One Worker owns the engine connection and its persistent
// browsing context; all automation tasks are serialized onto that context
// one at a time, each against a fresh page.
package browser

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/playwright-community/playwright-go"
	"golang.org/x/sync/semaphore"

	"github.com/droverlabs/drover/internal/logging"
)

// launchArgs is the hardened flag set for containerized headless runs.
var launchArgs = []string{
	"--no-sandbox",
	"--disable-setuid-sandbox",
	"--disable-dev-shm-usage",
	"--disable-gpu",
	"--safebrowsing-disable-auto-update",
	"--disable-extensions",
	"--disable-sync",
	"--disable-web-security",
	"--disable-features=VizDisplayCompositor",
}

// Options configures a Worker.
type Options struct {
	// StoragePath is where the browsing context's cookies and local
	// storage are persisted. Restored on init when the file exists.
	StoragePath string

	Headless bool

	// NavTimeout bounds page navigation, WaitTimeout the load-state wait
	// after it, SelectorTimeout the wait_for_selector action.
	NavTimeout      time.Duration
	WaitTimeout     time.Duration
	SelectorTimeout time.Duration
}

func (o *Options) applyDefaults() {
	if o.NavTimeout == 0 {
		o.NavTimeout = 30 * time.Second
	}
	if o.WaitTimeout == 0 {
		o.WaitTimeout = 30 * time.Second
	}
	if o.SelectorTimeout == 0 {
		o.SelectorTimeout = 10 * time.Second
	}
}

// Worker owns the browser engine and serializes all automation against it.
type Worker struct {
	mu   sync.Mutex
	opts Options

	pw      *playwright.Playwright
	browser playwright.Browser
	context playwright.BrowserContext

	initialized bool

	// permit is the single-slot lane every task must hold while it
	// touches the shared context. Capacity is fixed at 1: one browser
	// context is not safe for concurrent page operations.
	permit *semaphore.Weighted
}

// NewWorker creates an uninitialized Worker. The engine is launched
// lazily by the first task.
func NewWorker(opts Options) *Worker {
	opts.applyDefaults()
	return &Worker{
		opts:   opts,
		permit: semaphore.NewWeighted(1),
	}
}

// EnsureInitialized launches the engine on first call and is a no-op
// afterwards. A failed launch leaves the worker uninitialized so the
// next task retries from scratch.
func (w *Worker) EnsureInitialized(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.initialized {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	// Downloads the driver and Chromium on first use; a no-op once they
	// are in place.
	if err := playwright.Install(&playwright.RunOptions{Browsers: []string{"chromium"}}); err != nil {
		return &InitError{Err: err}
	}

	pw, err := playwright.Run()
	if err != nil {
		return &InitError{Err: err}
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(w.opts.Headless),
		Args:     launchArgs,
	})
	if err != nil {
		pw.Stop()
		return &InitError{Err: err}
	}

	browserCtx, err := w.newContext(browser)
	if err != nil {
		browser.Close()
		pw.Stop()
		return err
	}

	w.pw = pw
	w.browser = browser
	w.context = browserCtx
	w.initialized = true
	metricBrowserUp.Set(1)
	logging.Info("Browser engine initialized")
	return nil
}

// newContext restores the persisted browsing context when a storage file
// exists, otherwise starts a fresh one.
func (w *Worker) newContext(browser playwright.Browser) (playwright.BrowserContext, error) {
	if w.opts.StoragePath != "" {
		if _, err := os.Stat(w.opts.StoragePath); err == nil {
			browserCtx, err := browser.NewContext(playwright.BrowserNewContextOptions{
				StorageStatePath: playwright.String(w.opts.StoragePath),
			})
			if err != nil {
				return nil, &LoadError{Path: w.opts.StoragePath, Err: err}
			}
			logging.Infof("Restored session from %s", w.opts.StoragePath)
			return browserCtx, nil
		}
	}

	browserCtx, err := browser.NewContext()
	if err != nil {
		return nil, &InitError{Err: err}
	}
	logging.Info("Created new browser context without session")
	return browserCtx, nil
}

// Initialized reports whether the engine is up. True only between a
// successful EnsureInitialized and an explicit Close.
func (w *Worker) Initialized() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.initialized
}

// SaveStorage persists the context's cookies and local storage to the
// configured path. No-op without a live context.
func (w *Worker) SaveStorage() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.context == nil || w.opts.StoragePath == "" {
		return nil
	}
	if _, err := w.context.StorageState(w.opts.StoragePath); err != nil {
		return err
	}
	logging.Infof("Storage state saved to %s", w.opts.StoragePath)
	return nil
}

// Close tears down context, browser, and engine in that order. Each step
// tolerates the resource being already gone; Close is safe to call again.
func (w *Worker) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.context != nil {
		_ = w.context.Close()
		w.context = nil
	}
	if w.browser != nil {
		_ = w.browser.Close()
		w.browser = nil
	}
	if w.pw != nil {
		_ = w.pw.Stop()
		w.pw = nil
	}
	if w.initialized {
		logging.Info("Browser engine closed")
	}
	w.initialized = false
	metricBrowserUp.Set(0)
	return nil
}

// acquire claims the single task lane, waiting behind any task already
// holding it. The wait aborts when ctx is cancelled.
func (w *Worker) acquire(ctx context.Context) error {
	metricQueueWaiting.Inc()
	defer metricQueueWaiting.Dec()
	return w.permit.Acquire(ctx, 1)
}

func (w *Worker) release() {
	w.permit.Release(1)
}
