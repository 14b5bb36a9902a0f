package audio

import (
	"encoding/base64"
	"encoding/binary"
	"errors"
	"strings"
	"testing"
)

func TestEncodeWAVHeader(t *testing.T) {
	pcm := make([]byte, 4800) // 100ms of silence
	uri, err := EncodeWAV(pcm)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	const prefix = "data:audio/wav;base64,"
	if !strings.HasPrefix(uri, prefix) {
		t.Fatalf("expected data uri prefix, got %q", uri[:30])
	}
	wav, err := base64.StdEncoding.DecodeString(uri[len(prefix):])
	if err != nil {
		t.Fatalf("payload is not valid base64: %v", err)
	}

	if len(wav) != headerSize+len(pcm) {
		t.Fatalf("expected %d bytes, got %d", headerSize+len(pcm), len(wav))
	}
	if string(wav[0:4]) != "RIFF" || string(wav[8:12]) != "WAVE" {
		t.Errorf("bad container magic: %q %q", wav[0:4], wav[8:12])
	}
	if got := binary.LittleEndian.Uint16(wav[22:24]); got != Channels {
		t.Errorf("expected %d channel(s), got %d", Channels, got)
	}
	if got := binary.LittleEndian.Uint32(wav[24:28]); got != SampleRate {
		t.Errorf("expected sample rate %d, got %d", SampleRate, got)
	}
	if got := binary.LittleEndian.Uint16(wav[34:36]); got != SampleWidth*8 {
		t.Errorf("expected %d bits per sample, got %d", SampleWidth*8, got)
	}
	if got := binary.LittleEndian.Uint32(wav[40:44]); got != uint32(len(pcm)) {
		t.Errorf("expected data size %d, got %d", len(pcm), got)
	}
}

func TestEncodeWAVEmptyBuffer(t *testing.T) {
	_, err := EncodeWAV(nil)
	if err == nil {
		t.Fatal("expected error for empty buffer")
	}
	var encErr *EncodingError
	if !errors.As(err, &encErr) {
		t.Fatalf("expected EncodingError, got %T", err)
	}
}
