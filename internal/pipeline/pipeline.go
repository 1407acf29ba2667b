package pipeline

import (
	"context"
	"fmt"
	"time"
)

// Process runs the full pipeline for one session: refine the transcript,
// then synthesize the refined text. The artifact name is derived from the
// session id, so repeated calls for the same session overwrite the previous
// audio file.
func (p *implPipeline) Process(ctx context.Context, req Request) (*Result, error) {
	startTime := time.Now()

	p.logger.Info(ctx, "Processing session %s (%d events, %d transcript chars)",
		req.SessionID, len(req.DomEvents), len(req.RawTranscript))

	refinement := p.refiner.Refine(ctx, req.RawTranscript, req.DomEvents)
	p.logger.Info(ctx, "Session %s refined: %d instructions, ~%.1fs narration",
		req.SessionID, len(refinement.Instructions), refinement.ScriptMetadata.EstimatedDuration)

	outputName := fmt.Sprintf("%s_synthesized.mp3", req.SessionID)
	synthesis, err := p.synthesizer.Synthesize(ctx, refinement.RefinedText, outputName, "", "")
	if err != nil {
		return nil, fmt.Errorf("synthesize: %w", err)
	}

	p.logger.Info(ctx, "Session %s completed in %s: %s",
		req.SessionID, time.Since(startTime), synthesis.AudioPath)

	return &Result{
		SessionID:            req.SessionID,
		RefinedText:          refinement.RefinedText,
		SynthesizedAudioPath: synthesis.AudioPath,
		Instructions:         refinement.Instructions,
		ScriptMetadata:       refinement.ScriptMetadata,
	}, nil
}
