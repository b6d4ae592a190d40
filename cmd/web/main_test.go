package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestPageHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	pageHandler(pageData{SSHHost: "play.example", SSHPort: "2222"}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "ssh -t play.example -p 2222") {
		t.Errorf("body missing ssh command")
	}
}

func TestPageEscapesHost(t *testing.T) {
	rec := httptest.NewRecorder()
	pageHandler(pageData{SSHHost: "<script>", SSHPort: "22"}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if strings.Contains(rec.Body.String(), "<script>") {
		t.Error("host not escaped")
	}
}
