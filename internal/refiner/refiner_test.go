package refiner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsupr/Guideflow/internal/logger"
	"github.com/ironsupr/Guideflow/internal/models"
)

type stubGenerator struct {
	response string
	err      error
}

func (s *stubGenerator) Generate(_ context.Context, _ string) (string, error) {
	return s.response, s.err
}

func (s *stubGenerator) Configured() bool {
	return true
}

func testLogger() logger.Logger {
	return logger.New("error")
}

const validResponse = `{
	"refined_text": "Welcome! Let's click the Submit button together.",
	"instructions": [
		{"text": "Click Submit", "start_time": 1.0, "end_time": 3.5, "dom_event_index": 0, "context": "Saves the form"}
	],
	"script_metadata": {
		"tone": "friendly_professional",
		"pace": "conversational",
		"target_audience": "beginners_intermediate",
		"estimated_duration": 45
	}
}`

func TestRefineUnconfigured(t *testing.T) {
	ref := New(NewNoop(), testLogger())
	ctx := context.Background()

	result := ref.Refine(ctx, "Um, so now I click the button", nil)

	require.NotNil(t, result)
	assert.Equal(t, "so now I click the button", result.RefinedText)
	assert.False(t, ref.Configured())
}

func TestRefineParsesProviderResponse(t *testing.T) {
	ref := New(&stubGenerator{response: validResponse}, testLogger())

	result := ref.Refine(context.Background(), "raw words", nil)

	require.NotNil(t, result)
	assert.Equal(t, "Welcome! Let's click the Submit button together.", result.RefinedText)
	require.Len(t, result.Instructions, 1)
	assert.Equal(t, "Click Submit", result.Instructions[0].Text)
	assert.Equal(t, 1.0, result.Instructions[0].StartTime)
	assert.Equal(t, 3.5, result.Instructions[0].EndTime)
	require.NotNil(t, result.Instructions[0].DomEventIndex)
	assert.Equal(t, 0, *result.Instructions[0].DomEventIndex)
	assert.Equal(t, "Saves the form", result.Instructions[0].Context)
	assert.Equal(t, float64(45), result.ScriptMetadata.EstimatedDuration)
}

func TestRefineStripsCodeFence(t *testing.T) {
	fenced := "```json\n" + validResponse + "\n```"
	ref := New(&stubGenerator{response: fenced}, testLogger())

	result := ref.Refine(context.Background(), "raw words", nil)

	assert.Equal(t, "Welcome! Let's click the Submit button together.", result.RefinedText)
}

func TestRefineMalformedResponseDegrades(t *testing.T) {
	events := []models.DomEvent{
		{Type: "click", Timestamp: 4000, Target: &models.EventTarget{Text: "Submit"}},
	}
	transcript := "Um, so now I click the button"

	configured := New(&stubGenerator{response: "this is not json"}, testLogger())
	got := configured.Refine(context.Background(), transcript, events)

	// A malformed reply must produce exactly what the unconfigured path
	// would have produced for the same inputs.
	want := fallbackRefinement(transcript, events)
	assert.Equal(t, want, got)
}

func TestRefineSchemaViolationDegrades(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"missing script_metadata", `{"refined_text": "hi", "instructions": []}`},
		{"wrong instruction shape", `{"refined_text": "hi", "instructions": [{"text": "x"}], "script_metadata": {"tone": "t", "pace": "p", "target_audience": "a", "estimated_duration": 1}}`},
		{"refined_text wrong type", `{"refined_text": 5, "instructions": [], "script_metadata": {"tone": "t", "pace": "p", "target_audience": "a", "estimated_duration": 1}}`},
		{"top-level array", `[1, 2, 3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := New(&stubGenerator{response: tt.response}, testLogger())
			got := ref.Refine(context.Background(), "some transcript", nil)
			want := fallbackRefinement("some transcript", nil)
			assert.Equal(t, want, got)
		})
	}
}

func TestRefineProviderErrorDegrades(t *testing.T) {
	ref := New(&stubGenerator{err: errors.New("rate limited")}, testLogger())

	got := ref.Refine(context.Background(), "hello world", nil)
	want := fallbackRefinement("hello world", nil)

	assert.Equal(t, want, got)
}

func TestTranslateUnconfigured(t *testing.T) {
	ref := New(NewNoop(), testLogger())

	got := ref.Translate(context.Background(), "Hello there", "Spanish")

	assert.Contains(t, got, "Spanish")
	assert.Contains(t, got, "Hello there")
	assert.Equal(t, "[Translation to Spanish]: Hello there", got)
}

func TestTranslateProviderErrorReturnsOriginal(t *testing.T) {
	ref := New(&stubGenerator{err: errors.New("timeout")}, testLogger())

	got := ref.Translate(context.Background(), "Hello there", "French")

	assert.Equal(t, "Hello there", got)
}

func TestTranslateTrimsResponse(t *testing.T) {
	ref := New(&stubGenerator{response: "  Hola  \n"}, testLogger())

	got := ref.Translate(context.Background(), "Hello", "Spanish")

	assert.Equal(t, "Hola", got)
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no fence", `{"a": 1}`, `{"a": 1}`},
		{"plain fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"json fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"unterminated fence", "```json\n{\"a\": 1}", `{"a": 1}`},
		{"surrounding whitespace", "  ```json\n{\"a\": 1}\n```  ", `{"a": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripCodeFence(tt.input))
		})
	}
}
