package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSend_PostsMessage(t *testing.T) {
	var gotPath string
	var gotPayload map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotPayload)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	tn := NewTelegramNotifier("test-token", "42", "")
	tn.BaseURL = srv.URL
	if err := tn.Send(context.Background(), "привет"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/bottest-token/sendMessage" {
		t.Errorf("unexpected path: %s", gotPath)
	}
	if gotPayload["chat_id"] != "42" {
		t.Errorf("expected chat_id 42, got %q", gotPayload["chat_id"])
	}
	if gotPayload["text"] != "привет" {
		t.Errorf("expected text to pass through, got %q", gotPayload["text"])
	}
}

func TestSend_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"ok":false,"description":"chat not found"}`))
	}))
	defer srv.Close()

	tn := NewTelegramNotifier("tok", "42", "")
	tn.BaseURL = srv.URL
	err := tn.Send(context.Background(), "hi")
	if err == nil {
		t.Fatal("expected error for status 400")
	}
	if !strings.Contains(err.Error(), "chat not found") {
		t.Errorf("error should carry the API description, got: %v", err)
	}
}

func TestSend_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	tn := NewTelegramNotifier("tok", "42", "")
	tn.BaseURL = srv.URL
	if err := tn.Send(context.Background(), "hi"); err == nil {
		t.Fatal("expected transport error for closed server")
	}
}
