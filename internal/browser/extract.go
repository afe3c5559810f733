package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
)

// ContentTask reads a page's title and markup, optionally scoped to the
// first element matching Selector.
type ContentTask struct {
	URL      string
	WaitFor  string
	Selector string
}

// PageContent is the extraction result for one page. SelectorMissed
// reports that the requested selector matched nothing and Content holds
// the sentinel message instead of markup.
type PageContent struct {
	Title          string
	Content        string
	SelectorMissed bool
}

// GetPageContent navigates to the task URL and extracts its title and
// markup. A selector that matches nothing yields a sentinel message in
// Content rather than an error.
func (w *Worker) GetPageContent(ctx context.Context, task ContentTask) (content *PageContent, err error) {
	start := time.Now()
	defer func() { observeTask("content", start, err) }()

	if err = w.EnsureInitialized(ctx); err != nil {
		return nil, err
	}
	if err = w.acquire(ctx); err != nil {
		return nil, err
	}
	defer w.release()

	page, err := w.openPage(ctx, task.URL, pagePolicy{waitFor: task.WaitFor})
	if err != nil {
		return nil, err
	}
	defer w.closePage(page)

	return w.extractContent(page, task.Selector)
}

func (w *Worker) extractContent(page playwright.Page, selector string) (*PageContent, error) {
	title, err := page.Title()
	if err != nil {
		return nil, fmt.Errorf("get title: %w", err)
	}

	if selector != "" {
		loc := page.Locator(selector)
		count, err := loc.Count()
		if err != nil {
			return nil, fmt.Errorf("query selector %q: %w", selector, err)
		}
		if count == 0 {
			return &PageContent{
				Title:          title,
				Content:        fmt.Sprintf("Element with selector '%s' not found", selector),
				SelectorMissed: true,
			}, nil
		}
		inner, err := loc.First().InnerHTML()
		if err != nil {
			return nil, fmt.Errorf("read selector %q: %w", selector, err)
		}
		return &PageContent{Title: title, Content: inner}, nil
	}

	html, err := page.Content()
	if err != nil {
		return nil, fmt.Errorf("get content: %w", err)
	}
	return &PageContent{Title: title, Content: html}, nil
}
