package http

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ironsupr/Guideflow/internal/models"
	"github.com/ironsupr/Guideflow/internal/synthesizer"
)

type (
	VoicesResponseDTO struct {
		Voices []models.Voice `json:"voices"`
	}

	VoicesOutput struct {
		Body VoicesResponseDTO
	}
)

// VoicesHandler exposes the available voice catalog.
type VoicesHandler struct {
	synthesizer synthesizer.Synthesizer
}

// NewVoicesHandler creates a VoicesHandler and registers its operations.
func NewVoicesHandler(api huma.API, synth synthesizer.Synthesizer) *VoicesHandler {
	h := &VoicesHandler{synthesizer: synth}

	huma.Register(api, huma.Operation{
		OperationID:   "list-voices",
		Method:        http.MethodGet,
		Path:          "/voices",
		Summary:       "List available synthesis voices",
		Tags:          []string{"voices"},
		DefaultStatus: http.StatusOK,
	}, h.handleListVoices)

	return h
}

func (h *VoicesHandler) handleListVoices(ctx context.Context, _ *struct{}) (*VoicesOutput, error) {
	voices := h.synthesizer.ListVoices(ctx)

	return &VoicesOutput{
		Body: VoicesResponseDTO{Voices: voices},
	}, nil
}
