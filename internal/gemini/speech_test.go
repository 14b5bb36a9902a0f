package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSynthesizeSpeechReturnsPCM(t *testing.T) {
	pcm := []byte{0x01, 0x02, 0x03, 0x04}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "tts-model") {
			t.Errorf("expected tts model in path, got %q", r.URL.Path)
		}
		var req map[string]any
		json.NewDecoder(r.Body).Decode(&req)
		gc, _ := req["generationConfig"].(map[string]any)
		if gc == nil || gc["speechConfig"] == nil {
			t.Error("expected speechConfig in request")
		}
		resp := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{
					{"inlineData": map[string]any{
						"mimeType": "audio/L16;codec=pcm;rate=24000",
						"data":     base64.StdEncoding.EncodeToString(pcm),
					}},
				}}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("key", "text-model", "tts-model", 0, srv.URL)
	got, err := c.SynthesizeSpeech(context.Background(), "hello", "Algenib")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, pcm) {
		t.Errorf("expected pcm bytes to round-trip, got %v", got)
	}
}

func TestSynthesizeSpeechNoAudioIsInvocationError(t *testing.T) {
	srv := httptest.NewServer(fakeGenerate(t, "just text, no audio"))
	defer srv.Close()

	c := NewClientWithBaseURL("key", "text-model", "tts-model", 0, srv.URL)
	_, err := c.SynthesizeSpeech(context.Background(), "hello", "Algenib")
	if err == nil {
		t.Fatal("expected error when no audio part is returned")
	}
	var invErr *InvocationError
	if !errors.As(err, &invErr) {
		t.Fatalf("expected InvocationError, got %T", err)
	}
	if invErr.Task != "synthesizeSpeech" {
		t.Errorf("expected task synthesizeSpeech, got %q", invErr.Task)
	}
}
