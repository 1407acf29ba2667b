package synthesizer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ironsupr/Guideflow/internal/config"
	"github.com/ironsupr/Guideflow/internal/models"
)

var (
	// ErrNotConfigured is returned by the no-op client. It routes callers to
	// the placeholder path and is never surfaced outside this package.
	ErrNotConfigured = errors.New("speech provider not configured")
	// ErrProviderStatus is returned when the provider replies with a
	// non-success HTTP status.
	ErrProviderStatus = errors.New("speech provider error")
)

// Fixed voice-quality parameters sent with every synthesis call.
const (
	voiceStability       = 0.5
	voiceSimilarityBoost = 0.75
	voiceStyle           = 0.0
	useSpeakerBoost      = true
)

type elevenLabsClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewElevenLabsClient creates the SpeechClient variant backed by the
// ElevenLabs REST API.
func NewElevenLabsClient(cfg config.ElevenLabsConfig) SpeechClient {
	return &elevenLabsClient{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}
}

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
	Style           float64 `json:"style"`
	UseSpeakerBoost bool    `json:"use_speaker_boost"`
}

type convertRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

func (c *elevenLabsClient) Convert(ctx context.Context, text, voiceID, modelID string) ([]byte, error) {
	body, err := json.Marshal(convertRequest{
		Text:    text,
		ModelID: modelID,
		VoiceSettings: voiceSettings{
			Stability:       voiceStability,
			SimilarityBoost: voiceSimilarityBoost,
			Style:           voiceStyle,
			UseSpeakerBoost: useSpeakerBoost,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/text-to-speech/%s", c.baseURL, voiceID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("xi-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: HTTP %d: %s", ErrProviderStatus, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read audio stream: %w", err)
	}

	return audio, nil
}

type voicesResponse struct {
	Voices []struct {
		VoiceID     string `json:"voice_id"`
		Name        string `json:"name"`
		Category    string `json:"category"`
		Description string `json:"description"`
	} `json:"voices"`
}

func (c *elevenLabsClient) Voices(ctx context.Context) ([]models.Voice, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/voices", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("xi-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: HTTP %d: %s", ErrProviderStatus, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var parsed voicesResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode voices response: %w", err)
	}

	voices := make([]models.Voice, 0, len(parsed.Voices))
	for _, v := range parsed.Voices {
		voices = append(voices, models.Voice{
			VoiceID:     v.VoiceID,
			Name:        v.Name,
			Category:    v.Category,
			Description: v.Description,
		})
	}

	return voices, nil
}

func (c *elevenLabsClient) Configured() bool {
	return true
}

type noopClient struct{}

// NewNoopClient creates the client variant used when no API key is present.
// Every call reports ErrNotConfigured.
func NewNoopClient() SpeechClient {
	return noopClient{}
}

func (noopClient) Convert(_ context.Context, _, _, _ string) ([]byte, error) {
	return nil, ErrNotConfigured
}

func (noopClient) Voices(_ context.Context) ([]models.Voice, error) {
	return nil, ErrNotConfigured
}

func (noopClient) Configured() bool {
	return false
}
