// Package audio converts raw PCM from the speech model into a playable
// WAV container. The model's output format is fixed: mono 16-bit linear
// samples at 24000 Hz.
package audio

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"fmt"
)

const (
	Channels    = 1
	SampleRate  = 24000
	SampleWidth = 2 // bytes per sample

	headerSize = 44
)

// EncodingError indicates the synthesized audio buffer was empty or malformed.
type EncodingError struct {
	Reason string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("audio encoding failed: %s", e.Reason)
}

// EncodeWAV wraps raw PCM bytes in a WAV container and returns it
// base64-encoded with a data-URI prefix, ready for direct playback.
func EncodeWAV(pcm []byte) (string, error) {
	wav, err := wavBytes(pcm)
	if err != nil {
		return "", err
	}
	return "data:audio/wav;base64," + base64.StdEncoding.EncodeToString(wav), nil
}

func wavBytes(pcm []byte) ([]byte, error) {
	if len(pcm) == 0 {
		return nil, &EncodingError{Reason: "empty audio buffer"}
	}

	byteRate := SampleRate * Channels * SampleWidth
	blockAlign := Channels * SampleWidth

	buf := bytes.NewBuffer(make([]byte, 0, headerSize+len(pcm)))
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(36+len(pcm)))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(buf, binary.LittleEndian, uint16(Channels))
	binary.Write(buf, binary.LittleEndian, uint32(SampleRate))
	binary.Write(buf, binary.LittleEndian, uint32(byteRate))
	binary.Write(buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(buf, binary.LittleEndian, uint16(SampleWidth*8))

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, uint32(len(pcm)))
	buf.Write(pcm)

	return buf.Bytes(), nil
}
