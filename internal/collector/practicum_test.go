package collector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestPracticumFetcher_RequestShape(t *testing.T) {
	var gotPath, gotAuth, gotFrom string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotFrom = r.URL.Query().Get("from_date")
		w.Write([]byte(`{"homeworks":[],"current_date":1}`))
	}))
	defer srv.Close()

	f := NewPracticumFetcher(srv.URL, "secret-token", "")
	body, err := f.FetchStatuses(context.Background(), 1609459200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/api/user_api/homework_statuses/" {
		t.Errorf("unexpected path: %s", gotPath)
	}
	if gotAuth != "OAuth secret-token" {
		t.Errorf("expected OAuth header, got %q", gotAuth)
	}
	if gotFrom != "1609459200" {
		t.Errorf("expected from_date=1609459200, got %q", gotFrom)
	}
	if string(body) != `{"homeworks":[],"current_date":1}` {
		t.Errorf("unexpected body: %s", body)
	}
}

func TestPracticumFetcher_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"code":"not_authenticated"}`))
	}))
	defer srv.Close()

	f := NewPracticumFetcher(srv.URL, "bad-token", "")
	_, err := f.FetchStatuses(context.Background(), 0)
	if err == nil {
		t.Fatal("expected error for status 401")
	}
	if !strings.Contains(err.Error(), "status 401") {
		t.Errorf("error should carry the status code, got: %v", err)
	}
}

func TestPracticumFetcher_ServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	f := NewPracticumFetcher(srv.URL, "token", "")
	if _, err := f.FetchStatuses(context.Background(), 0); err == nil {
		t.Fatal("expected transport error for closed server")
	}
}
