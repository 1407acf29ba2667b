package synthesizer

import (
	"github.com/ironsupr/Guideflow/internal/config"
	"github.com/ironsupr/Guideflow/internal/logger"
)

type implSynthesizer struct {
	client       SpeechClient
	outputDir    string
	defaultVoice string
	defaultModel string
	logger       logger.Logger
}

// New creates a Synthesizer writing artifacts into cfg-selected output
// directory. Pass the client from NewNoopClient to run in degraded mode.
func New(cfg *config.Config, client SpeechClient, log logger.Logger) Synthesizer {
	return &implSynthesizer{
		client:       client,
		outputDir:    cfg.Paths.Output,
		defaultVoice: cfg.ElevenLabs.VoiceID,
		defaultModel: cfg.ElevenLabs.ModelID,
		logger:       log,
	}
}

// Configured reports whether a real provider backs this synthesizer.
func (s *implSynthesizer) Configured() bool {
	return s.client.Configured()
}
