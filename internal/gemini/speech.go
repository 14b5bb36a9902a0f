package gemini

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
)

type voiceConfig struct {
	PrebuiltVoiceConfig struct {
		VoiceName string `json:"voiceName"`
	} `json:"prebuiltVoiceConfig"`
}

type speechConfig struct {
	VoiceConfig voiceConfig `json:"voiceConfig"`
}

// SynthesizeSpeech asks the TTS model to read text aloud with the given
// prebuilt voice and returns the raw PCM payload (mono 16-bit linear
// samples at 24000 Hz). Container framing is the caller's concern.
func (c *Client) SynthesizeSpeech(ctx context.Context, text, voice string) ([]byte, error) {
	sc := &speechConfig{}
	sc.VoiceConfig.PrebuiltVoiceConfig.VoiceName = voice

	body := generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: text}}}},
		GenerationConfig: generationConfig{
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig:       sc,
		},
	}

	apiResp, err := c.post(ctx, c.ttsModel, body)
	if err != nil {
		return nil, &InvocationError{Task: "synthesizeSpeech", Err: err}
	}

	for _, cand := range apiResp.Candidates {
		for _, p := range cand.Content.Parts {
			if p.InlineData == nil || !strings.HasPrefix(p.InlineData.MimeType, "audio/") {
				continue
			}
			pcm, err := base64.StdEncoding.DecodeString(p.InlineData.Data)
			if err != nil {
				return nil, &InvocationError{Task: "synthesizeSpeech", Err: fmt.Errorf("decode audio: %w", err)}
			}
			return pcm, nil
		}
	}
	return nil, &InvocationError{Task: "synthesizeSpeech", Err: fmt.Errorf("no audio media returned")}
}
