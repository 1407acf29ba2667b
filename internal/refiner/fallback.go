package refiner

import (
	"fmt"
	"strings"

	"github.com/ironsupr/Guideflow/internal/models"
)

// welcomeScript replaces a transcript that is empty after filler removal so
// the degraded path never hands an empty narration to synthesis.
const welcomeScript = "Welcome to this tutorial! Let's walk through the steps together to help you get started."

const clickWindowMs = 2000

// fallbackRefinement is the deterministic degraded result used whenever the
// provider is unavailable or its response is unusable. Filler tokens are
// stripped from the transcript, and each click event becomes one instruction
// with a fixed two-second window starting at the event's timestamp.
func fallbackRefinement(rawTranscript string, domEvents []models.DomEvent) *models.RefinementResult {
	refined := rawTranscript
	refined = strings.ReplaceAll(refined, " um ", " ")
	refined = strings.ReplaceAll(refined, " uh ", " ")
	refined = strings.ReplaceAll(refined, "Um, ", "")
	refined = strings.ReplaceAll(refined, "Uh, ", "")
	refined = strings.TrimSpace(refined)

	if refined == "" {
		refined = welcomeScript
	}

	instructions := make([]models.Instruction, 0)
	for i, event := range domEvents {
		if event.Type != models.EventTypeClick {
			continue
		}

		text := "element"
		if event.Target != nil && event.Target.Text != "" {
			text = event.Target.Text
		}

		// Zero timestamp is treated as unset, matching the capture client
		// which never reports an event without a positive timestamp.
		timestamp := event.Timestamp
		if timestamp == 0 {
			timestamp = int64(i) * clickWindowMs
		}

		index := i
		instructions = append(instructions, models.Instruction{
			Text:          fmt.Sprintf("Click on '%s'", text),
			StartTime:     float64(timestamp) / 1000,
			EndTime:       float64(timestamp+clickWindowMs) / 1000,
			DomEventIndex: &index,
		})
	}

	wordCount := len(strings.Fields(rawTranscript))

	return &models.RefinementResult{
		RefinedText:  refined,
		Instructions: instructions,
		ScriptMetadata: models.ScriptMetadata{
			Tone:              "friendly_professional",
			Pace:              "conversational",
			TargetAudience:    "beginners",
			EstimatedDuration: 0.4 * float64(wordCount),
		},
	}
}
