package whisper_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"voice-task-uploader/pkg/whisper"
)

func TestTranscribe(t *testing.T) {
	var calls atomic.Int64

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)

		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.FormValue("model") != "whisper-1" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.FormValue("response_format") != "text" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if r.FormValue("language") == "xx" {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("upstream exploded"))
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("kupić mleko i chleb\n"))
	}))
	defer ts.Close()

	client := whisper.New().WithBaseURL(ts.URL)
	ctx := context.Background()

	t.Run("Success Flow", func(t *testing.T) {
		text, err := client.Transcribe(ctx, whisper.TranscribeRequest{
			APIKey:       "test-key",
			Audio:        []byte("fake-webm-bytes"),
			Language:     "pl",
			ClipDuration: 10 * time.Second,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text != "kupić mleko i chleb" {
			t.Errorf("unexpected transcript: %q", text)
		}
	})

	t.Run("Upstream Error Flow", func(t *testing.T) {
		_, err := client.Transcribe(ctx, whisper.TranscribeRequest{
			APIKey:   "test-key",
			Audio:    []byte("fake"),
			Language: "xx",
		})
		if err == nil || !strings.Contains(err.Error(), "500") {
			t.Fatalf("expected 500 error, got %v", err)
		}
	})

	t.Run("Unauthorized Flow", func(t *testing.T) {
		_, err := client.Transcribe(ctx, whisper.TranscribeRequest{
			APIKey: "bad-key",
			Audio:  []byte("fake"),
		})
		if err == nil || !strings.Contains(err.Error(), "401") {
			t.Fatalf("expected 401 error, got %v", err)
		}
	})

	t.Run("Clip Too Long Rejected Before Upstream", func(t *testing.T) {
		before := calls.Load()
		_, err := client.Transcribe(ctx, whisper.TranscribeRequest{
			APIKey:       "test-key",
			Audio:        []byte("fake"),
			ClipDuration: 61 * time.Second,
		})
		if err != whisper.ErrClipTooLong {
			t.Fatalf("expected ErrClipTooLong, got %v", err)
		}
		if calls.Load() != before {
			t.Errorf("oversized clip must not reach the upstream")
		}
	})

	t.Run("Oversized Payload Rejected Before Upstream", func(t *testing.T) {
		before := calls.Load()
		_, err := client.Transcribe(ctx, whisper.TranscribeRequest{
			APIKey: "test-key",
			Audio:  make([]byte, whisper.MaxAudioBytes+1),
		})
		if err != whisper.ErrPayloadTooLarge {
			t.Fatalf("expected ErrPayloadTooLarge, got %v", err)
		}
		if calls.Load() != before {
			t.Errorf("oversized payload must not reach the upstream")
		}
	})

	t.Run("Empty Audio", func(t *testing.T) {
		_, err := client.Transcribe(ctx, whisper.TranscribeRequest{APIKey: "test-key"})
		if err != whisper.ErrEmptyAudio {
			t.Fatalf("expected ErrEmptyAudio, got %v", err)
		}
	})

	t.Run("Missing API Key", func(t *testing.T) {
		_, err := client.Transcribe(ctx, whisper.TranscribeRequest{Audio: []byte("fake")})
		if err != whisper.ErrMissingAPIKey {
			t.Fatalf("expected ErrMissingAPIKey, got %v", err)
		}
	})
}
