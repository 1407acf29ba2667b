package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ironsupr/Guideflow/internal/logger"
	"github.com/ironsupr/Guideflow/internal/models"
	"github.com/ironsupr/Guideflow/internal/pipeline"
	"github.com/ironsupr/Guideflow/internal/refiner"
	"github.com/ironsupr/Guideflow/internal/synthesizer"
)

type (
	AudioProcessRequestDTO struct {
		SessionID      string            `json:"sessionId" minLength:"1"`
		RawTranscript  string            `json:"rawTranscript"`
		DomEvents      []models.DomEvent `json:"domEvents,omitempty"`
		TargetLanguage string            `json:"targetLanguage,omitempty"`
	}

	AudioProcessResponseDTO struct {
		SessionID            string                `json:"sessionId"`
		RefinedText          string                `json:"refinedText"`
		SynthesizedAudioPath string                `json:"synthesizedAudioPath"`
		Instructions         []models.Instruction  `json:"instructions"`
		ScriptMetadata       models.ScriptMetadata `json:"scriptMetadata"`
	}

	RefineTextRequestDTO struct {
		RawTranscript string            `json:"rawTranscript"`
		DomEvents     []models.DomEvent `json:"domEvents,omitempty"`
	}

	RefineTextResponseDTO struct {
		RefinedText    string                `json:"refinedText"`
		Instructions   []models.Instruction  `json:"instructions"`
		ScriptMetadata models.ScriptMetadata `json:"scriptMetadata"`
	}

	SynthesizeVoiceRequestDTO struct {
		Text    string `json:"text" minLength:"1"`
		VoiceID string `json:"voiceId,omitempty"`
	}

	SynthesizeVoiceResponseDTO struct {
		AudioPath string  `json:"audioPath"`
		Duration  float64 `json:"duration"`
	}

	TranslateSynthesizeRequestDTO struct {
		Text           string `json:"text" minLength:"1"`
		TargetLanguage string `json:"targetLanguage" minLength:"1"`
		VoiceID        string `json:"voiceId,omitempty"`
	}

	TranslateSynthesizeResponseDTO struct {
		TranslatedText string  `json:"translatedText"`
		AudioPath      string  `json:"audioPath"`
		Duration       float64 `json:"duration"`
	}
)

type (
	AudioProcessInput struct {
		Body AudioProcessRequestDTO
	}

	AudioProcessOutput struct {
		Body AudioProcessResponseDTO
	}

	RefineTextInput struct {
		Body RefineTextRequestDTO
	}

	RefineTextOutput struct {
		Body RefineTextResponseDTO
	}

	SynthesizeVoiceInput struct {
		Body SynthesizeVoiceRequestDTO
	}

	SynthesizeVoiceOutput struct {
		Body SynthesizeVoiceResponseDTO
	}

	TranslateSynthesizeInput struct {
		Body TranslateSynthesizeRequestDTO
	}

	TranslateSynthesizeOutput struct {
		Body TranslateSynthesizeResponseDTO
	}
)

// AudioHandler handles the transcript processing and synthesis operations.
type AudioHandler struct {
	pipeline    pipeline.Pipeline
	refiner     refiner.Refiner
	synthesizer synthesizer.Synthesizer
	logger      logger.Logger
}

// NewAudioHandler creates an AudioHandler and registers its operations.
func NewAudioHandler(api huma.API, pipe pipeline.Pipeline, ref refiner.Refiner, synth synthesizer.Synthesizer, log logger.Logger) *AudioHandler {
	h := &AudioHandler{
		pipeline:    pipe,
		refiner:     ref,
		synthesizer: synth,
		logger:      log,
	}

	huma.Register(api, huma.Operation{
		OperationID:   "audio-full-process",
		Method:        http.MethodPost,
		Path:          "/audio-full-process",
		Summary:       "Full processing pipeline: refine transcript, then synthesize voice",
		Tags:          []string{"audio"},
		DefaultStatus: http.StatusOK,
	}, h.handleFullProcess)

	huma.Register(api, huma.Operation{
		OperationID:   "refine-text",
		Method:        http.MethodPost,
		Path:          "/refine-text",
		Summary:       "Refine transcript text into a polished narration script",
		Tags:          []string{"audio"},
		DefaultStatus: http.StatusOK,
	}, h.handleRefineText)

	huma.Register(api, huma.Operation{
		OperationID:   "synthesize-voice",
		Method:        http.MethodPost,
		Path:          "/synthesize-voice",
		Summary:       "Generate a voice audio file from text",
		Tags:          []string{"audio"},
		DefaultStatus: http.StatusOK,
	}, h.handleSynthesizeVoice)

	huma.Register(api, huma.Operation{
		OperationID:   "translate-synthesize",
		Method:        http.MethodPost,
		Path:          "/translate-synthesize",
		Summary:       "Translate text and synthesize it in the target language",
		Tags:          []string{"audio"},
		DefaultStatus: http.StatusOK,
	}, h.handleTranslateSynthesize)

	return h
}

func (h *AudioHandler) handleFullProcess(ctx context.Context, input *AudioProcessInput) (*AudioProcessOutput, error) {
	result, err := h.pipeline.Process(ctx, pipeline.Request{
		SessionID:      input.Body.SessionID,
		RawTranscript:  input.Body.RawTranscript,
		DomEvents:      input.Body.DomEvents,
		TargetLanguage: input.Body.TargetLanguage,
	})
	if err != nil {
		h.logger.Error(ctx, "Full process failed for session %s: %v", input.Body.SessionID, err)
		return nil, huma.Error500InternalServerError("processing failed", err)
	}

	return &AudioProcessOutput{
		Body: AudioProcessResponseDTO{
			SessionID:            result.SessionID,
			RefinedText:          result.RefinedText,
			SynthesizedAudioPath: result.SynthesizedAudioPath,
			Instructions:         result.Instructions,
			ScriptMetadata:       result.ScriptMetadata,
		},
	}, nil
}

func (h *AudioHandler) handleRefineText(ctx context.Context, input *RefineTextInput) (*RefineTextOutput, error) {
	result := h.refiner.Refine(ctx, input.Body.RawTranscript, input.Body.DomEvents)

	return &RefineTextOutput{
		Body: RefineTextResponseDTO{
			RefinedText:    result.RefinedText,
			Instructions:   result.Instructions,
			ScriptMetadata: result.ScriptMetadata,
		},
	}, nil
}

func (h *AudioHandler) handleSynthesizeVoice(ctx context.Context, input *SynthesizeVoiceInput) (*SynthesizeVoiceOutput, error) {
	outputName := fmt.Sprintf("voice_%s.mp3", time.Now().Format("20060102_150405"))

	result, err := h.synthesizer.Synthesize(ctx, input.Body.Text, outputName, input.Body.VoiceID, "")
	if err != nil {
		h.logger.Error(ctx, "Voice synthesis failed: %v", err)
		return nil, huma.Error500InternalServerError("synthesis failed", err)
	}

	return &SynthesizeVoiceOutput{
		Body: SynthesizeVoiceResponseDTO{
			AudioPath: result.AudioPath,
			Duration:  result.DurationSeconds,
		},
	}, nil
}

func (h *AudioHandler) handleTranslateSynthesize(ctx context.Context, input *TranslateSynthesizeInput) (*TranslateSynthesizeOutput, error) {
	translated := h.refiner.Translate(ctx, input.Body.Text, input.Body.TargetLanguage)

	outputName := fmt.Sprintf("translated_%s_%s.mp3", input.Body.TargetLanguage, time.Now().Format("20060102_150405"))

	result, err := h.synthesizer.Synthesize(ctx, translated, outputName, input.Body.VoiceID, "")
	if err != nil {
		h.logger.Error(ctx, "Translate-synthesize failed: %v", err)
		return nil, huma.Error500InternalServerError("synthesis failed", err)
	}

	return &TranslateSynthesizeOutput{
		Body: TranslateSynthesizeResponseDTO{
			TranslatedText: translated,
			AudioPath:      result.AudioPath,
			Duration:       result.DurationSeconds,
		},
	}, nil
}
