package synthesizer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsupr/Guideflow/internal/config"
	"github.com/ironsupr/Guideflow/internal/logger"
	"github.com/ironsupr/Guideflow/internal/models"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{}
	require.NoError(t, cfg.Validate())
	cfg.Paths.Output = t.TempDir()

	return cfg
}

func testLogger() logger.Logger {
	return logger.New("error")
}

func TestSynthesizeUnconfiguredWritesPlaceholder(t *testing.T) {
	cfg := testConfig(t)
	synth := New(cfg, NewNoopClient(), testLogger())

	result, err := synth.Synthesize(context.Background(), "hello world out there", "test.mp3", "", "")

	require.NoError(t, err)
	assert.Equal(t, "/output/test.mp3", result.AudioPath)

	data, err := os.ReadFile(filepath.Join(cfg.Paths.Output, "test.mp3"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte{0xFF, 0xFB, 0x90, 0x00}))
	assert.Len(t, data, 104)
}

func TestSynthesizeDurationEstimate(t *testing.T) {
	cfg := testConfig(t)
	synth := New(cfg, NewNoopClient(), testLogger())

	// 150 words at 150 wpm is exactly one minute.
	words := bytes.Repeat([]byte("word "), 150)
	result, err := synth.Synthesize(context.Background(), string(words), "minute.mp3", "", "")

	require.NoError(t, err)
	assert.Equal(t, 60.0, result.DurationSeconds)
}

func TestSynthesizeIdempotentAcrossNames(t *testing.T) {
	cfg := testConfig(t)
	synth := New(cfg, NewNoopClient(), testLogger())
	ctx := context.Background()

	first, err := synth.Synthesize(ctx, "same text every time", "a.mp3", "", "")
	require.NoError(t, err)
	second, err := synth.Synthesize(ctx, "same text every time", "b.mp3", "", "")
	require.NoError(t, err)

	assert.Equal(t, first.DurationSeconds, second.DurationSeconds)

	infoA, err := os.Stat(filepath.Join(cfg.Paths.Output, "a.mp3"))
	require.NoError(t, err)
	infoB, err := os.Stat(filepath.Join(cfg.Paths.Output, "b.mp3"))
	require.NoError(t, err)
	assert.Equal(t, infoA.Size(), infoB.Size())
}

func TestAudioPathAlwaysURLStyle(t *testing.T) {
	pattern := regexp.MustCompile(`^/output/[^/\\]+$`)

	cfg := testConfig(t)
	synth := New(cfg, NewNoopClient(), testLogger())

	for _, name := range []string{"s1_synthesized.mp3", "voice_20240101_120000.mp3"} {
		result, err := synth.Synthesize(context.Background(), "text", name, "", "")
		require.NoError(t, err)
		assert.Regexp(t, pattern, result.AudioPath)
	}
}

type failingClient struct{}

func (failingClient) Convert(_ context.Context, _, _, _ string) ([]byte, error) {
	return nil, errors.New("provider down")
}

func (failingClient) Voices(_ context.Context) ([]models.Voice, error) {
	return nil, errors.New("provider down")
}

func (failingClient) Configured() bool { return true }

func TestSynthesizeProviderFailureFallsBack(t *testing.T) {
	cfg := testConfig(t)
	synth := New(cfg, failingClient{}, testLogger())

	result, err := synth.Synthesize(context.Background(), "one two three", "fallback.mp3", "", "")

	require.NoError(t, err)
	assert.Equal(t, "/output/fallback.mp3", result.AudioPath)

	data, err := os.ReadFile(filepath.Join(cfg.Paths.Output, "fallback.mp3"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte{0xFF, 0xFB}))
}

func TestListVoicesFallbackCatalog(t *testing.T) {
	cfg := testConfig(t)

	t.Run("unconfigured", func(t *testing.T) {
		synth := New(cfg, NewNoopClient(), testLogger())
		voices := synth.ListVoices(context.Background())
		require.Len(t, voices, 5)
		assert.Equal(t, "Rachel", voices[0].Name)
	})

	t.Run("provider failure", func(t *testing.T) {
		synth := New(cfg, failingClient{}, testLogger())
		voices := synth.ListVoices(context.Background())
		require.Len(t, voices, 5)
	})
}

func TestElevenLabsClientConvert(t *testing.T) {
	var gotPath, gotKey string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("xi-api-key")
		_ = jsonDecode(r, &gotBody)
		w.Write([]byte("AUDIOBYTES"))
	}))
	defer server.Close()

	client := NewElevenLabsClient(config.ElevenLabsConfig{
		APIKey:         "test-key",
		BaseURL:        server.URL,
		TimeoutSeconds: 5,
	})

	audio, err := client.Convert(context.Background(), "hello", "voice-1", "model-1")

	require.NoError(t, err)
	assert.Equal(t, []byte("AUDIOBYTES"), audio)
	assert.Equal(t, "/text-to-speech/voice-1", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "hello", gotBody["text"])
	assert.Equal(t, "model-1", gotBody["model_id"])

	settings, ok := gotBody["voice_settings"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 0.5, settings["stability"])
	assert.Equal(t, 0.75, settings["similarity_boost"])
	assert.Equal(t, true, settings["use_speaker_boost"])
}

func TestElevenLabsClientConvertErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "invalid key"}`))
	}))
	defer server.Close()

	client := NewElevenLabsClient(config.ElevenLabsConfig{
		APIKey:         "bad-key",
		BaseURL:        server.URL,
		TimeoutSeconds: 5,
	})

	_, err := client.Convert(context.Background(), "hello", "voice-1", "model-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProviderStatus)
}

func TestElevenLabsClientVoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"voices": [
			{"voice_id": "v1", "name": "Alpha", "category": "premade", "description": "calm"},
			{"voice_id": "v2", "name": "Beta", "category": "cloned"}
		]}`))
	}))
	defer server.Close()

	client := NewElevenLabsClient(config.ElevenLabsConfig{
		APIKey:         "test-key",
		BaseURL:        server.URL,
		TimeoutSeconds: 5,
	})

	voices, err := client.Voices(context.Background())

	require.NoError(t, err)
	require.Len(t, voices, 2)
	assert.Equal(t, models.Voice{VoiceID: "v1", Name: "Alpha", Category: "premade", Description: "calm"}, voices[0])
	assert.Equal(t, "Beta", voices[1].Name)
}

func jsonDecode(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
