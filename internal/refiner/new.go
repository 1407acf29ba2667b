package refiner

import (
	"github.com/ironsupr/Guideflow/internal/logger"
)

type implRefiner struct {
	generator Generator
	logger    logger.Logger
}

// New creates a Refiner backed by the given text generator. Pass the
// generator from NewNoop to run in degraded mode.
func New(gen Generator, log logger.Logger) Refiner {
	return &implRefiner{
		generator: gen,
		logger:    log,
	}
}

// Configured reports whether a real provider backs this refiner.
func (r *implRefiner) Configured() bool {
	return r.generator.Configured()
}
