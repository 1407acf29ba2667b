package refiner

import (
	"context"
	"fmt"
	"strings"

	"github.com/ironsupr/Guideflow/internal/models"
)

// Refine turns a raw transcript plus captured interaction events into a
// polished narration script with timed instructions. It never fails: when the
// provider is unconfigured, unreachable, or replies with a payload that does
// not match the expected schema, the deterministic degraded result is
// returned instead.
func (r *implRefiner) Refine(ctx context.Context, rawTranscript string, domEvents []models.DomEvent) *models.RefinementResult {
	if !r.generator.Configured() {
		return fallbackRefinement(rawTranscript, domEvents)
	}

	prompt := buildRefinementPrompt(rawTranscript, domEvents)
	r.logger.Debug(ctx, "Built refinement prompt (%d chars, %d events)", len(prompt), len(domEvents))

	raw, err := r.generator.Generate(ctx, prompt)
	if err != nil {
		r.logger.Warn(ctx, "Refinement call failed, using degraded result: %v", err)
		return fallbackRefinement(rawTranscript, domEvents)
	}

	result, err := parseRefinementResponse(raw)
	if err != nil {
		r.logger.Warn(ctx, "Refinement response rejected, using degraded result: %v", err)
		return fallbackRefinement(rawTranscript, domEvents)
	}

	return result
}

// Translate translates a script into the target language. Unconfigured mode
// returns a bracketed passthrough; a provider failure returns the input
// unchanged.
func (r *implRefiner) Translate(ctx context.Context, text, targetLanguage string) string {
	if !r.generator.Configured() {
		return fmt.Sprintf("[Translation to %s]: %s", targetLanguage, text)
	}

	prompt := fmt.Sprintf(`Translate the following tutorial text to %s.
Keep the professional tone and technical accuracy.
Return ONLY the translated text, nothing else.

Text to translate:
%s
`, targetLanguage, text)

	translated, err := r.generator.Generate(ctx, prompt)
	if err != nil {
		r.logger.Warn(ctx, "Translation call failed, returning original text: %v", err)
		return text
	}

	return strings.TrimSpace(translated)
}
