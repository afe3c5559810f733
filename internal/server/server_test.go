package server

import (
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCORSMiddleware(t *testing.T) {
	var nextCalled bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		fmt.Fprint(w, "ok")
	})
	h := corsMiddleware()(next)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if !nextCalled {
		t.Error("expected next handler to run")
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("unexpected allow-origin: %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Headers"); got != "Content-Type, Authorization, X-API-Key" {
		t.Errorf("unexpected allow-headers: %q", got)
	}
}

func TestCORSMiddlewarePreflight(t *testing.T) {
	var nextCalled bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	})
	h := corsMiddleware()(next)

	req := httptest.NewRequest(http.MethodOptions, "/screenshot", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if nextCalled {
		t.Error("preflight must not reach the next handler")
	}
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 for preflight, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Methods"); got != "GET, POST, OPTIONS" {
		t.Errorf("unexpected allow-methods: %q", got)
	}
}

func TestCheckPortAvailable(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	if err != nil {
		t.Fatalf("failed to grab a port: %v", err)
	}
	port := ln.Addr().(*net.TCPAddr).Port

	if err := checkPortAvailable(port); err == nil {
		t.Error("expected error for a port in use")
	}

	ln.Close()
	if err := checkPortAvailable(port); err != nil {
		t.Errorf("expected freed port to be available: %v", err)
	}
}
