package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type echoPayload struct {
	Message string `json:"message"`
}

func TestDoPostSync_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("expected JSON content type, got %q", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("expected bearer auth, got %q", got)
		}
		w.Write([]byte(`{"message":"hello"}`))
	}))
	defer server.Close()

	res, parsed, err := DoPostSync[echoPayload](context.Background(), server.Client(), server.URL, "test-key", map[string]string{"q": "hi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", res.StatusCode)
	}
	if parsed == nil || parsed.Message != "hello" {
		t.Errorf("unexpected payload: %+v", parsed)
	}
}

func TestDoPostSync_NoAuthHeaderWithoutKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("expected no auth header, got %q", got)
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	if _, _, err := DoPostSync[echoPayload](context.Background(), server.Client(), server.URL, "", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDoPostSync_Non2xxStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid api key"}`))
	}))
	defer server.Close()

	res, parsed, err := DoPostSync[echoPayload](context.Background(), server.Client(), server.URL, "bad-key", nil)
	if err == nil {
		t.Fatal("expected an error for a 401 response")
	}
	if parsed != nil {
		t.Errorf("expected no parsed payload, got %+v", parsed)
	}
	if res == nil || res.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected the response to be returned for inspection")
	}
	if !strings.Contains(err.Error(), "invalid api key") {
		t.Errorf("expected the body in the error, got %v", err)
	}
}

func TestDoPostSync_MalformedResponseBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`<html>gateway error</html>`))
	}))
	defer server.Close()

	_, _, err := DoPostSync[echoPayload](context.Background(), server.Client(), server.URL, "", nil)
	if err == nil {
		t.Fatal("expected an error for non-JSON body")
	}
	if !strings.Contains(err.Error(), "gateway error") {
		t.Errorf("expected a response preview in the error, got %v", err)
	}
}

func TestDoPostSync_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, err := DoPostSync[echoPayload](ctx, server.Client(), server.URL, "", nil); err == nil {
		t.Fatal("expected an error for a canceled context")
	}
}
