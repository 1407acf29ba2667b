package pipeline

import (
	"context"

	"github.com/ironsupr/Guideflow/internal/models"
)

// Request carries one full-pipeline invocation. TargetLanguage is accepted
// for API compatibility; translation happens through the dedicated
// translate-and-synthesize operation, not here.
type Request struct {
	SessionID      string
	RawTranscript  string
	DomEvents      []models.DomEvent
	TargetLanguage string
}

// Result is the combined outcome of refinement followed by synthesis.
type Result struct {
	SessionID            string
	RefinedText          string
	SynthesizedAudioPath string
	Instructions         []models.Instruction
	ScriptMetadata       models.ScriptMetadata
}

// Pipeline composes the refiner and the synthesizer: refine first, then
// synthesize the refined text. One attempt per stage; each stage degrades
// internally instead of retrying.
type Pipeline interface {
	Process(ctx context.Context, req Request) (*Result, error)
}
