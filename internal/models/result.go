package models

// ScriptMetadata describes the tone and pacing of a generated script. Field
// names follow the provider contract (snake_case), and are passed through to
// API consumers unchanged.
type ScriptMetadata struct {
	Tone              string  `json:"tone"`
	Pace              string  `json:"pace"`
	TargetAudience    string  `json:"target_audience"`
	EstimatedDuration float64 `json:"estimated_duration"`
}

// RefinementResult is the outcome of refining a raw transcript: a polished
// narration plus timed step instructions.
type RefinementResult struct {
	RefinedText    string         `json:"refinedText"`
	Instructions   []Instruction  `json:"instructions"`
	ScriptMetadata ScriptMetadata `json:"scriptMetadata"`
}

// SynthesisResult is the outcome of a text-to-speech call. AudioPath is the
// URL path of the artifact (/output/<name>), not a filesystem path.
// DurationSeconds is estimated from word count, never measured from the audio.
type SynthesisResult struct {
	AudioPath       string  `json:"audioPath"`
	DurationSeconds float64 `json:"duration"`
}
