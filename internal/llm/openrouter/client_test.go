package openrouter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"offerai-backend/internal/llm"
)

func TestCompleteSendsOrderedMessagesAndBearer(t *testing.T) {
	var gotAuth string
	var gotBody chatRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"generated resume"}}]}`))
	}))
	defer srv.Close()

	client, err := NewClient("test-key", WithAPIURL(srv.URL))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	content, err := client.Complete(context.Background(), "system text", "user text")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if content != "generated resume" {
		t.Fatalf("expected content from choices[0], got %q", content)
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
	if gotBody.Model != Model {
		t.Fatalf("expected model %q, got %q", Model, gotBody.Model)
	}
	if len(gotBody.Messages) != 2 ||
		gotBody.Messages[0].Role != "system" || gotBody.Messages[0].Content != "system text" ||
		gotBody.Messages[1].Role != "user" || gotBody.Messages[1].Content != "user text" {
		t.Fatalf("expected ordered system/user messages, got %+v", gotBody.Messages)
	}
}

func TestCompleteClassifiesNon2xxAsTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	client, err := NewClient("test-key", WithAPIURL(srv.URL))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	_, err = client.Complete(context.Background(), "s", "u")
	genErr := llm.Classify(err)
	if genErr.Kind != llm.KindTransport {
		t.Fatalf("expected transport error, got %s: %s", genErr.Kind, genErr.Message)
	}
	if !strings.Contains(genErr.Message, "API request failed") {
		t.Fatalf("expected message to mention API request failed, got %q", genErr.Message)
	}
}

func TestCompleteClassifiesConnectionErrorAsTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	client, err := NewClient("test-key", WithAPIURL(srv.URL))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	_, err = client.Complete(context.Background(), "s", "u")
	if genErr := llm.Classify(err); genErr.Kind != llm.KindTransport {
		t.Fatalf("expected transport error, got %s", genErr.Kind)
	}
}

func TestCompleteClassifiesMissingContentAsResponseShape(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty choices", `{"choices":[]}`},
		{"empty content", `{"choices":[{"message":{"role":"assistant","content":""}}]}`},
		{"not json", `<html>oops</html>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client, err := NewClient("test-key", WithAPIURL(srv.URL))
			if err != nil {
				t.Fatalf("NewClient: %v", err)
			}

			_, err = client.Complete(context.Background(), "s", "u")
			genErr := llm.Classify(err)
			if genErr.Kind != llm.KindResponseShape {
				t.Fatalf("expected response shape error, got %s: %s", genErr.Kind, genErr.Message)
			}
			if !strings.Contains(genErr.Message, "Error parsing API response") {
				t.Fatalf("unexpected message %q", genErr.Message)
			}
		})
	}
}

func TestNewClientRequiresKey(t *testing.T) {
	if _, err := NewClient("  "); err == nil {
		t.Fatal("expected error for blank key")
	}
}
