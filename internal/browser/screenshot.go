package browser

import (
	"context"
	"time"

	"github.com/playwright-community/playwright-go"
)

// Default viewport for screenshot tasks.
const (
	DefaultViewportWidth  = 1920
	DefaultViewportHeight = 1080
)

// ScreenshotTask captures one page as a PNG.
type ScreenshotTask struct {
	URL      string
	FullPage bool
	Width    int
	Height   int
	WaitFor  string
}

// TakeScreenshot navigates to the task URL and captures it as PNG bytes.
func (w *Worker) TakeScreenshot(ctx context.Context, task ScreenshotTask) (shot []byte, err error) {
	start := time.Now()
	defer func() { observeTask("screenshot", start, err) }()

	if task.Width == 0 {
		task.Width = DefaultViewportWidth
	}
	if task.Height == 0 {
		task.Height = DefaultViewportHeight
	}

	if err = w.EnsureInitialized(ctx); err != nil {
		return nil, err
	}
	if err = w.acquire(ctx); err != nil {
		return nil, err
	}
	defer w.release()

	page, err := w.openPage(ctx, task.URL, pagePolicy{
		viewport: &playwright.Size{Width: task.Width, Height: task.Height},
		waitFor:  task.WaitFor,
	})
	if err != nil {
		return nil, err
	}
	defer w.closePage(page)

	return w.capture(page, task.FullPage)
}

func (w *Worker) capture(page playwright.Page, fullPage bool) ([]byte, error) {
	data, err := page.Screenshot(playwright.PageScreenshotOptions{
		FullPage: playwright.Bool(fullPage),
		Type:     playwright.ScreenshotTypePng,
	})
	if err != nil {
		return nil, &CaptureError{Err: err}
	}
	return data, nil
}
