package pipeline

import (
	"github.com/ironsupr/Guideflow/internal/logger"
	"github.com/ironsupr/Guideflow/internal/refiner"
	"github.com/ironsupr/Guideflow/internal/synthesizer"
)

type implPipeline struct {
	refiner     refiner.Refiner
	synthesizer synthesizer.Synthesizer
	logger      logger.Logger
}

// New creates a Pipeline over the given refiner and synthesizer.
func New(ref refiner.Refiner, synth synthesizer.Synthesizer, log logger.Logger) Pipeline {
	return &implPipeline{
		refiner:     ref,
		synthesizer: synth,
		logger:      log,
	}
}
