package synthesizer

import (
	"context"

	"github.com/ironsupr/Guideflow/internal/models"
)

// Synthesizer converts text into an audio file under the output directory.
//
// Provider failures are absorbed: a placeholder artifact is written and a
// usable result returned. Only filesystem failures surface as errors.
type Synthesizer interface {
	// Synthesize writes audio for text to outputDir/outputName and returns
	// its URL path and estimated duration. Empty voiceID and modelID select
	// the configured defaults.
	Synthesize(ctx context.Context, text, outputName, voiceID, modelID string) (*models.SynthesisResult, error)

	// ListVoices returns the provider's voice catalog, or a fixed fallback
	// catalog when the provider is unconfigured or unreachable.
	ListVoices(ctx context.Context) []models.Voice

	Configured() bool
}

// SpeechClient abstracts the text-to-speech provider.
type SpeechClient interface {
	// Convert returns the synthesized audio bytes for text.
	Convert(ctx context.Context, text, voiceID, modelID string) ([]byte, error)

	// Voices returns the provider's available voices.
	Voices(ctx context.Context) ([]models.Voice, error)

	Configured() bool
}
