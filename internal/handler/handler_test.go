package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/droverlabs/drover/internal/config"
	"github.com/droverlabs/drover/internal/db"
	"github.com/droverlabs/drover/internal/httputil"
	"github.com/droverlabs/drover/internal/svc"
	"github.com/droverlabs/drover/internal/types"
)

func newTestSvc(t *testing.T) *svc.ServiceContext {
	t.Helper()

	var c config.Config
	c.Browser.StoragePath = filepath.Join(t.TempDir(), "storage.json")
	c.Browser.Headless = "true"
	c.Database.SQLitePath = filepath.Join(t.TempDir(), "tasks.db")
	c.Autosave.Enabled = "false"

	svcCtx := svc.NewServiceContext(c)
	if svcCtx.DB == nil {
		t.Fatal("expected a working task database")
	}
	t.Cleanup(svcCtx.Close)
	return svcCtx
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) httputil.ErrorResponse {
	t.Helper()
	var resp httputil.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	return resp
}

func TestIndexHandler(t *testing.T) {
	svcCtx := newTestSvc(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	IndexHandler(svcCtx).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp types.IndexResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Message != "Drover Worker API is running" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
	if resp.Status != "healthy" {
		t.Errorf("unexpected status: %q", resp.Status)
	}
	if !resp.AuthRequired {
		t.Error("expected auth_required true")
	}
}

func TestHealthHandler(t *testing.T) {
	svcCtx := newTestSvc(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	HealthHandler(svcCtx).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp types.HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "healthy" {
		t.Errorf("unexpected status: %q", resp.Status)
	}
	if resp.PlaywrightInitialized {
		t.Error("expected playwright_initialized false before the first task")
	}
	if !resp.Authenticated {
		t.Error("expected authenticated true")
	}
}

func TestScreenshotHandlerMissingURL(t *testing.T) {
	svcCtx := newTestSvc(t)

	req := httptest.NewRequest(http.MethodPost, "/screenshot", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	ScreenshotHandler(svcCtx).ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if resp := decodeError(t, w); resp.Message != "url is required" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

func TestScreenshotHandlerBadJSON(t *testing.T) {
	svcCtx := newTestSvc(t)

	req := httptest.NewRequest(http.MethodPost, "/screenshot", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	ScreenshotHandler(svcCtx).ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if resp := decodeError(t, w); !strings.Contains(resp.Message, "invalid request body") {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

func TestScreenshotHandlerInvalidWaitFor(t *testing.T) {
	svcCtx := newTestSvc(t)

	body := `{"url":"https://example.com","wait_for":"idle"}`
	req := httptest.NewRequest(http.MethodPost, "/screenshot", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	ScreenshotHandler(svcCtx).ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if resp := decodeError(t, w); !strings.Contains(resp.Message, "invalid wait_for") {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

func TestContentHandlerInvalidFormat(t *testing.T) {
	svcCtx := newTestSvc(t)

	body := `{"url":"https://example.com","format":"pdf"}`
	req := httptest.NewRequest(http.MethodPost, "/content", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	ContentHandler(svcCtx).ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if resp := decodeError(t, w); !strings.Contains(resp.Message, "invalid format") {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

func TestActionsHandlerMissingURL(t *testing.T) {
	svcCtx := newTestSvc(t)

	req := httptest.NewRequest(http.MethodPost, "/actions", strings.NewReader(`{"actions":[]}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	ActionsHandler(svcCtx).ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if resp := decodeError(t, w); resp.Message != "url is required" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

func TestTasksHandlerEmpty(t *testing.T) {
	svcCtx := newTestSvc(t)

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	w := httptest.NewRecorder()
	TasksHandler(svcCtx).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	// An empty trail must serialize as [], not null.
	if !strings.Contains(w.Body.String(), `"tasks":[]`) {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestTasksHandlerLimitParam(t *testing.T) {
	svcCtx := newTestSvc(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Minute)
	for i := 0; i < 3; i++ {
		err := svcCtx.DB.RecordTask(ctx, db.Task{
			Kind:      "screenshot",
			URL:       "https://example.com",
			Success:   true,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		})
		if err != nil {
			t.Fatalf("RecordTask failed: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/tasks?limit=2", nil)
	w := httptest.NewRecorder()
	TasksHandler(svcCtx).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp types.TasksResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Count != 2 {
		t.Errorf("expected count 2, got %d", resp.Count)
	}
	if len(resp.Tasks) != 2 {
		t.Errorf("expected 2 tasks, got %d", len(resp.Tasks))
	}
}
