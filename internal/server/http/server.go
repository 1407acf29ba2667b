package http

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"

	"github.com/ironsupr/Guideflow/internal/logger"
	"github.com/ironsupr/Guideflow/internal/pipeline"
	"github.com/ironsupr/Guideflow/internal/refiner"
	"github.com/ironsupr/Guideflow/internal/synthesizer"
)

const (
	serviceName    = "Guideflow Intelligence"
	serviceVersion = "1.0.0"
)

// Server exposes the processing API plus static serving of synthesized
// audio artifacts under /output/.
type Server struct {
	mux *http.ServeMux
}

// New assembles the API surface on a fresh mux.
func New(outputDir string, pipe pipeline.Pipeline, ref refiner.Refiner, synth synthesizer.Synthesizer, log logger.Logger) *Server {
	mux := http.NewServeMux()
	api := humago.New(mux, huma.DefaultConfig(serviceName, serviceVersion))

	NewAudioHandler(api, pipe, ref, synth, log)
	NewVoicesHandler(api, synth)
	NewHealthHandler(api, ref, synth)
	registerRoot(api)

	mux.Handle("GET /output/", http.StripPrefix("/output/", http.FileServer(http.Dir(outputDir))))

	return &Server{mux: mux}
}

// Handler returns the root handler for http.Server.
func (s *Server) Handler() http.Handler {
	return s.mux
}

type (
	RootResponseDTO struct {
		Name        string            `json:"name"`
		Version     string            `json:"version"`
		Description string            `json:"description"`
		Endpoints   map[string]string `json:"endpoints"`
	}

	RootOutput struct {
		Body RootResponseDTO
	}
)

func registerRoot(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "root",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Service info and endpoint index",
		Tags:        []string{"meta"},
	}, func(_ context.Context, _ *struct{}) (*RootOutput, error) {
		return &RootOutput{
			Body: RootResponseDTO{
				Name:        serviceName,
				Version:     serviceVersion,
				Description: "AI processing service - Gemini text refinement and ElevenLabs TTS",
				Endpoints: map[string]string{
					"POST /audio-full-process":   "Full processing pipeline (refine + synthesize)",
					"POST /refine-text":          "Refine transcript text with Gemini",
					"POST /synthesize-voice":     "Generate voice with ElevenLabs",
					"POST /translate-synthesize": "Translate and synthesize in target language",
					"GET /voices":                "List available voices",
					"GET /health":                "Health check endpoint",
				},
			},
		}, nil
	})
}
