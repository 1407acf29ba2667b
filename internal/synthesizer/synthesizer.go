package synthesizer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ironsupr/Guideflow/internal/models"
)

// Speaking rate assumed for duration estimates. Duration is always derived
// from word count, never measured from the synthesized audio.
const wordsPerMinute = 150

// placeholderAudio is a minimal silent MP3 stub written when no provider is
// available, so downstream consumers always find a playable artifact.
var placeholderAudio = append([]byte{0xFF, 0xFB, 0x90, 0x00}, make([]byte, 100)...)

// Synthesize converts text to speech and writes the audio under the output
// directory. Provider failures fall back to the placeholder artifact; only
// filesystem errors propagate.
func (s *implSynthesizer) Synthesize(ctx context.Context, text, outputName, voiceID, modelID string) (*models.SynthesisResult, error) {
	if err := os.MkdirAll(s.outputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	destPath := filepath.Join(s.outputDir, outputName)
	duration := estimateDuration(text)

	if !s.client.Configured() {
		return s.mockSynthesis(ctx, destPath, outputName, duration)
	}

	voice := voiceID
	if voice == "" {
		voice = s.defaultVoice
	}
	model := modelID
	if model == "" {
		model = s.defaultModel
	}

	audio, err := s.client.Convert(ctx, text, voice, model)
	if err != nil {
		s.logger.Warn(ctx, "Synthesis call failed, writing placeholder: %v", err)
		return s.mockSynthesis(ctx, destPath, outputName, duration)
	}

	if err := os.WriteFile(destPath, audio, 0644); err != nil {
		return nil, fmt.Errorf("write audio file: %w", err)
	}

	s.logger.Debug(ctx, "Synthesized %d bytes to %s", len(audio), destPath)

	return &models.SynthesisResult{
		AudioPath:       audioURLPath(outputName),
		DurationSeconds: duration,
	}, nil
}

// mockSynthesis writes the silent placeholder and returns the same shape of
// result as the configured path.
func (s *implSynthesizer) mockSynthesis(ctx context.Context, destPath, outputName string, duration float64) (*models.SynthesisResult, error) {
	if err := os.WriteFile(destPath, placeholderAudio, 0644); err != nil {
		return nil, fmt.Errorf("write placeholder audio: %w", err)
	}

	s.logger.Debug(ctx, "Wrote placeholder audio to %s", destPath)

	return &models.SynthesisResult{
		AudioPath:       audioURLPath(outputName),
		DurationSeconds: duration,
	}, nil
}

// estimateDuration assumes a fixed speaking rate over the word count.
func estimateDuration(text string) float64 {
	wordCount := len(strings.Fields(text))
	return float64(wordCount) / wordsPerMinute * 60
}

// audioURLPath renders the externally reported artifact path. Always
// forward-slash, regardless of the host's path separator.
func audioURLPath(outputName string) string {
	return "/output/" + outputName
}
