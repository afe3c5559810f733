package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type parseTarget struct {
	Limit   int    `form:"limit"`
	Verbose bool   `form:"verbose"`
	Name    string `form:"name" json:"name"`
	Url     string `json:"url"`
}

func TestParseQueryParams(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/tasks?limit=25&verbose=true&name=drover", nil)

	var target parseTarget
	if err := Parse(req, &target); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if target.Limit != 25 {
		t.Errorf("expected limit 25, got %d", target.Limit)
	}
	if !target.Verbose {
		t.Error("expected verbose true")
	}
	if target.Name != "drover" {
		t.Errorf("expected name drover, got %q", target.Name)
	}
}

func TestParseQueryIgnoresBadInt(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/tasks?limit=abc", nil)

	var target parseTarget
	if err := Parse(req, &target); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if target.Limit != 0 {
		t.Errorf("expected unparsable int to be skipped, got %d", target.Limit)
	}
}

func TestParseJSONBody(t *testing.T) {
	body := `{"url":"https://example.com","name":"from-body"}`
	req := httptest.NewRequest(http.MethodPost, "/screenshot", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	var target parseTarget
	if err := Parse(req, &target); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if target.Url != "https://example.com" {
		t.Errorf("expected url from body, got %q", target.Url)
	}
	if target.Name != "from-body" {
		t.Errorf("expected name from body, got %q", target.Name)
	}
}

func TestParseBodyWithoutContentType(t *testing.T) {
	// Clients that omit Content-Type still get their JSON body decoded.
	body := `{"url":"https://example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/screenshot", strings.NewReader(body))

	var target parseTarget
	if err := Parse(req, &target); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if target.Url != "https://example.com" {
		t.Errorf("expected url from body, got %q", target.Url)
	}
}

func TestParseNonJSONBodyIgnored(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/screenshot", strings.NewReader("plain text"))
	req.Header.Set("Content-Type", "text/plain")

	var target parseTarget
	if err := Parse(req, &target); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if target.Url != "" {
		t.Errorf("expected no decode for text/plain, got %q", target.Url)
	}
}

func TestParseInvalidBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/screenshot", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")

	var target parseTarget
	err := Parse(req, &target)
	if err == nil {
		t.Fatal("expected error for malformed body")
	}
	if !strings.Contains(err.Error(), "invalid request body") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseEmptyBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/screenshot", nil)

	var target parseTarget
	if err := Parse(req, &target); err != nil {
		t.Fatalf("Parse failed for empty body: %v", err)
	}
}

func TestParseRequiresStructPointer(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	if err := Parse(req, parseTarget{}); err == nil {
		t.Error("expected error for non-pointer target")
	}
	var s string
	if err := Parse(req, &s); err == nil {
		t.Error("expected error for non-struct target")
	}
}

func TestOkJSON(t *testing.T) {
	w := httptest.NewRecorder()
	OkJSON(w, map[string]string{"status": "healthy"})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("unexpected content type: %s", ct)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestErrorWritesBadRequest(t *testing.T) {
	w := httptest.NewRecorder()
	Error(w, errors.New("url is required"))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if resp.Code != http.StatusBadRequest {
		t.Errorf("expected code 400 in body, got %d", resp.Code)
	}
	if resp.Message != "url is required" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

func TestUnauthorizedDefaultMessage(t *testing.T) {
	w := httptest.NewRecorder()
	Unauthorized(w, "")

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if resp.Message != "unauthorized" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}
