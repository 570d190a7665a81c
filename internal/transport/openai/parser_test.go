package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ishaan-jha021/ecomatch/internal/domain"
)

func TestNewParser_RequiresAPIKey(t *testing.T) {
	_, err := NewParser(&Config{Model: "gpt-4o-mini"})
	if err == nil {
		t.Fatal("expected error for empty API key")
	}
	if !errors.Is(err, domain.ErrParserUnavailable) {
		t.Errorf("error = %v, want wrapped ErrParserUnavailable", err)
	}
}

func TestDecodeFilters(t *testing.T) {
	tests := []struct {
		name       string
		completion string
		want       domain.ParsedFilters
	}{
		{
			name:       "plain JSON",
			completion: `{"type":"coworking","city":"Mumbai","minCapacity":20}`,
			want:       domain.ParsedFilters{Kind: domain.KindCoworking, City: "Mumbai", MinCapacity: 20},
		},
		{
			name: "markdown fenced",
			completion: "```json\n" +
				`{"type":"incubator","zeroEquity":true}` +
				"\n```",
			want: domain.ParsedFilters{Kind: domain.KindIncubator, ZeroEquity: true},
		},
		{
			name:       "leading prose",
			completion: `Here are the filters: {"city":"Delhi","governmentScheme":"AIM"}`,
			want:       domain.ParsedFilters{City: "Delhi", GovernmentScheme: "AIM"},
		},
		{
			name:       "unknown fields ignored",
			completion: `{"city":"Pune","confidence":0.9}`,
			want:       domain.ParsedFilters{City: "Pune"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeFilters(tt.completion)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("decodeFilters() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDecodeFilters_Errors(t *testing.T) {
	tests := []struct {
		name       string
		completion string
	}{
		{"no JSON object", "I cannot parse this query."},
		{"empty completion", ""},
		{"malformed JSON", `{"type": coworking}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeFilters(tt.completion)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, domain.ErrParserUnavailable) {
				t.Errorf("error = %v, want wrapped ErrParserUnavailable", err)
			}
		})
	}
}

// fakeCompletionServer returns a chat completion endpoint that always replies
// with the given message content.
func fakeCompletionServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			t.Errorf("encode response: %v", err)
		}
	}))
}

func TestParser_Parse(t *testing.T) {
	srv := fakeCompletionServer(t, `{"type":"coworking","city":"Bangalore","wifi":true}`)
	defer srv.Close()

	p, err := NewParser(&Config{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Model:   "gpt-4o-mini",
		Timeout: time.Second,
	})
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}

	parsed, err := p.Parse(context.Background(), "coworking in bangalore with wifi")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if parsed.Kind != domain.KindCoworking || parsed.City != "Bangalore" || !parsed.WiFi {
		t.Errorf("unexpected parse result: %+v", parsed)
	}
}

func TestParser_Parse_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	p, err := NewParser(&Config{APIKey: "test-key", BaseURL: srv.URL, Model: "gpt-4o-mini"})
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}

	_, err = p.Parse(context.Background(), "anything")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, domain.ErrParserUnavailable) {
		t.Errorf("error = %v, want wrapped ErrParserUnavailable", err)
	}
}
