package refiner

import (
	"context"

	"github.com/ironsupr/Guideflow/internal/models"
)

// Refiner turns raw spoken transcripts into polished narration scripts with
// timed step instructions, and translates scripts between languages.
//
// Both operations are fail-open: a provider failure is absorbed into a
// deterministic degraded result, never surfaced to the caller.
type Refiner interface {
	Refine(ctx context.Context, rawTranscript string, domEvents []models.DomEvent) *models.RefinementResult
	Translate(ctx context.Context, text, targetLanguage string) string
	Configured() bool
}
