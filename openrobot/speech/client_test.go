package speech

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openrobot/openrobot-go/internal/errors"
	"github.com/openrobot/openrobot-go/internal/transport"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	tc, err := transport.New(transport.Config{BaseURL: server.URL + "/api", Token: "test-token"})
	if err != nil {
		t.Fatalf("transport.New() error = %v", err)
	}

	return NewClient(tc)
}

func mustEncodeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("failed to encode response: %v", err)
	}
}

func TestSpeechToText_URL(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/speech/speech-to-text/azure" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("url") != "https://example.com/a.wav" {
			t.Errorf("url = %q", q.Get("url"))
		}
		if q.Get("source_language") != "en-US" {
			t.Errorf("source_language = %q", q.Get("source_language"))
		}
		mustEncodeJSON(t, w, map[string]any{"text": "hello world", "language": "en-US"})
	}))

	result, err := client.SpeechToText(context.Background(), ServiceAzure, AudioURL("https://example.com/a.wav"), WithSourceLanguage("en-US"))
	if err != nil {
		t.Fatalf("SpeechToText() error = %v", err)
	}
	if result.Text != "hello world" {
		t.Errorf("Text = %q, want %q", result.Text, "hello world")
	}
}

func TestSpeechToText_Bytes(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("upload_file")
		if err != nil {
			t.Errorf("FormFile() error = %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()

		if header.Filename != "clip.mp3" {
			t.Errorf("Filename = %q, want %q", header.Filename, "clip.mp3")
		}
		data, _ := io.ReadAll(file)
		if string(data) != "audio" {
			t.Errorf("uploaded %q", data)
		}
		if _, ok := r.URL.Query()["url"]; ok {
			t.Error("url should be omitted for uploads")
		}
		mustEncodeJSON(t, w, map[string]any{"text": "uploaded"})
	}))

	result, err := client.SpeechToText(context.Background(), ServiceDeepgram, AudioBytes([]byte("audio"), "clip.mp3"))
	if err != nil {
		t.Fatalf("SpeechToText() error = %v", err)
	}
	if result.Text != "uploaded" {
		t.Errorf("Text = %q", result.Text)
	}
}

func TestSpeechToText_EmptySource(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}))

	if _, err := client.SpeechToText(context.Background(), ServiceAzure, Source{}); err == nil {
		t.Fatal("expected error for empty source")
	}
}

func TestTextToSpeech(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/api/speech/text-to-speech/polly" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("text") != "hi" || q.Get("voice_id") != "Joanna" || q.Get("engine") != "neural" {
			t.Errorf("unexpected query: %v", q)
		}
		mustEncodeJSON(t, w, map[string]any{"url": "https://cdn.example.com/hi.mp3"})
	}))

	result, err := client.TextToSpeech(context.Background(), ServicePolly, "hi", "Joanna", WithEngine("neural"))
	if err != nil {
		t.Fatalf("TextToSpeech() error = %v", err)
	}
	if result.URL != "https://cdn.example.com/hi.mp3" {
		t.Errorf("URL = %q", result.URL)
	}
}

func TestTextToSpeech_Validation(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}))

	if _, err := client.TextToSpeech(context.Background(), ServicePolly, "", "Joanna"); err == nil {
		t.Error("expected error for empty text")
	}
	if _, err := client.TextToSpeech(context.Background(), ServicePolly, "hi", ""); err == nil {
		t.Error("expected error for empty voice")
	}
	if _, err := client.TextToSpeech(context.Background(), "", "hi", "Joanna"); err == nil {
		t.Error("expected error for empty service")
	}
}

func TestSupportedLanguagesAndVoices(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/speech/speech-to-text/azure/supports":
			mustEncodeJSON(t, w, map[string]any{
				"languages": []map[string]any{{"code": "en-US", "name": "English (US)"}},
			})
		case "/api/speech/text-to-speech/polly/supports":
			mustEncodeJSON(t, w, map[string]any{
				"voices": []map[string]any{{
					"id":                "Joanna",
					"name":              "Joanna",
					"gender":            "Female",
					"language_code":     "en-US",
					"supported_engines": []string{"standard", "neural"},
				}},
			})
		default:
			t.Errorf("unexpected path: %s", r.URL.Path)
			http.NotFound(w, r)
		}
	}))

	langs, err := client.SupportedLanguages(context.Background(), ServiceAzure)
	if err != nil {
		t.Fatalf("SupportedLanguages() error = %v", err)
	}
	if len(langs) != 1 || langs[0].Code != "en-US" {
		t.Errorf("unexpected languages: %+v", langs)
	}

	voices, err := client.SupportedVoices(context.Background(), ServicePolly)
	if err != nil {
		t.Fatalf("SupportedVoices() error = %v", err)
	}
	if len(voices) != 1 || len(voices[0].Engines) != 2 {
		t.Errorf("unexpected voices: %+v", voices)
	}
}

func TestSupportedVoices_Forbidden(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		mustEncodeJSON(t, w, map[string]any{"message": "quota exceeded"})
	}))

	_, err := client.SupportedVoices(context.Background(), ServicePolly)
	if !errors.IsForbidden(err) {
		t.Fatalf("expected forbidden error, got %v", err)
	}
}
