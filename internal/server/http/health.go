package http

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ironsupr/Guideflow/internal/refiner"
	"github.com/ironsupr/Guideflow/internal/synthesizer"
)

type (
	HealthServicesDTO struct {
		Gemini     string `json:"gemini"`
		ElevenLabs string `json:"elevenlabs"`
	}

	HealthResponseDTO struct {
		Status    string            `json:"status"`
		Timestamp string            `json:"timestamp"`
		Services  HealthServicesDTO `json:"services"`
	}

	HealthOutput struct {
		Body HealthResponseDTO
	}
)

// HealthHandler reports service health and provider configuration state.
type HealthHandler struct {
	refiner     refiner.Refiner
	synthesizer synthesizer.Synthesizer
}

// NewHealthHandler creates a HealthHandler and registers its operations.
func NewHealthHandler(api huma.API, ref refiner.Refiner, synth synthesizer.Synthesizer) *HealthHandler {
	h := &HealthHandler{refiner: ref, synthesizer: synth}

	huma.Register(api, huma.Operation{
		OperationID:   "health",
		Method:        http.MethodGet,
		Path:          "/health",
		Summary:       "Service health and provider status",
		Tags:          []string{"health"},
		DefaultStatus: http.StatusOK,
	}, h.handleHealth)

	return h
}

func (h *HealthHandler) handleHealth(_ context.Context, _ *struct{}) (*HealthOutput, error) {
	return &HealthOutput{
		Body: HealthResponseDTO{
			Status:    "ok",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Services: HealthServicesDTO{
				Gemini:     configuredLabel(h.refiner.Configured()),
				ElevenLabs: configuredLabel(h.synthesizer.Configured()),
			},
		},
	}, nil
}

func configuredLabel(configured bool) string {
	if configured {
		return "configured"
	}
	return "not_configured"
}
