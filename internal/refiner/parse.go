package refiner

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/ironsupr/Guideflow/internal/models"
)

// refinementSchema is the contract the provider response must satisfy.
// A violation routes to the degraded path exactly like malformed JSON.
const refinementSchema = `{
	"type": "object",
	"required": ["refined_text", "instructions", "script_metadata"],
	"properties": {
		"refined_text": {"type": "string"},
		"instructions": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["text", "start_time", "end_time"],
				"properties": {
					"text": {"type": "string"},
					"start_time": {"type": "number"},
					"end_time": {"type": "number"},
					"dom_event_index": {"type": "integer"},
					"context": {"type": "string"}
				}
			}
		},
		"script_metadata": {
			"type": "object",
			"required": ["tone", "pace", "target_audience", "estimated_duration"],
			"properties": {
				"tone": {"type": "string"},
				"pace": {"type": "string"},
				"target_audience": {"type": "string"},
				"estimated_duration": {"type": "number"}
			}
		}
	}
}`

var compiledRefinementSchema = jsonschema.MustCompileString("refinement.schema.json", refinementSchema)

type wireInstruction struct {
	Text          string  `json:"text"`
	StartTime     float64 `json:"start_time"`
	EndTime       float64 `json:"end_time"`
	DomEventIndex *int    `json:"dom_event_index"`
	Context       string  `json:"context"`
}

type wireRefinement struct {
	RefinedText    string                `json:"refined_text"`
	Instructions   []wireInstruction     `json:"instructions"`
	ScriptMetadata models.ScriptMetadata `json:"script_metadata"`
}

// parseRefinementResponse validates and decodes the provider's JSON reply.
// One layer of Markdown code fencing is tolerated around the payload.
func parseRefinementResponse(raw string) (*models.RefinementResult, error) {
	cleaned := stripCodeFence(raw)

	var untyped any
	if err := json.Unmarshal([]byte(cleaned), &untyped); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	if err := compiledRefinementSchema.Validate(untyped); err != nil {
		return nil, fmt.Errorf("response schema violation: %w", err)
	}

	var wire wireRefinement
	if err := json.Unmarshal([]byte(cleaned), &wire); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	instructions := make([]models.Instruction, 0, len(wire.Instructions))
	for _, inst := range wire.Instructions {
		instructions = append(instructions, models.Instruction{
			Text:          inst.Text,
			StartTime:     inst.StartTime,
			EndTime:       inst.EndTime,
			DomEventIndex: inst.DomEventIndex,
			Context:       inst.Context,
		})
	}

	return &models.RefinementResult{
		RefinedText:    wire.RefinedText,
		Instructions:   instructions,
		ScriptMetadata: wire.ScriptMetadata,
	}, nil
}

// stripCodeFence removes one layer of ``` fencing, with or without a "json"
// language tag, from around the payload.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "```"); idx >= 0 {
		s = s[:idx]
	}
	s = strings.TrimPrefix(s, "json")

	return strings.TrimSpace(s)
}
