package synthesizer

import (
	"context"

	"github.com/ironsupr/Guideflow/internal/models"
)

// mockVoices is the fixed catalog reported when the provider is unconfigured
// or unreachable.
func mockVoices() []models.Voice {
	return []models.Voice{
		{VoiceID: "21m00Tcm4TlvDq8ikWAM", Name: "Rachel", Category: "premade"},
		{VoiceID: "EXAVITQu4vr4xnSDxMaL", Name: "Bella", Category: "premade"},
		{VoiceID: "ErXwobaYiN019PkySvjV", Name: "Antoni", Category: "premade"},
		{VoiceID: "MF3mGyEYCl7XYWbV9V6O", Name: "Elli", Category: "premade"},
		{VoiceID: "TxGEqnHWrfWFTfGW9XjX", Name: "Josh", Category: "premade"},
	}
}

// ListVoices returns the provider catalog, degrading to the fixed catalog on
// any failure.
func (s *implSynthesizer) ListVoices(ctx context.Context) []models.Voice {
	if !s.client.Configured() {
		return mockVoices()
	}

	voices, err := s.client.Voices(ctx)
	if err != nil {
		s.logger.Warn(ctx, "Voice listing failed, using fallback catalog: %v", err)
		return mockVoices()
	}

	return voices
}
