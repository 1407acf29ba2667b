package refiner

import (
	"fmt"
	"strings"

	"github.com/ironsupr/Guideflow/internal/models"
)

// refinementSystemPrompt instructs the model to rewrite a raw recording into
// a presentable tutorial script and to return the structured JSON payload
// parsed by parseRefinementResponse.
const refinementSystemPrompt = `You are a master tutorial creator and professional video scriptwriter. Your expertise is transforming raw, imperfect recordings into polished, engaging, and highly presentable tutorial videos that feel natural and human.

CONTEXT:
- The user has recorded themselves demonstrating software/product features
- You receive their raw spoken words (often with "um", "uh", filler words, repetitions, pauses)
- You receive DOM events showing exactly what they're clicking and interacting with
- Your goal is to create a script that sounds like a professional, friendly expert guiding viewers

YOUR MISSION:
Transform awkward, imperfect recordings into smooth, engaging, professional tutorials that viewers actually WANT to watch.

SCRIPT REQUIREMENTS:
1. **Natural Flow**: Write conversationally, like you're sitting next to the viewer helping them
2. **Human Touch**: Include friendly transitions, encouragement, and relatable explanations
3. **Professional Polish**: Clear, concise instructions without being robotic
4. **Contextual Awareness**: Reference what the user is actually doing on screen
5. **Engaging Language**: Use active voice, varied sentence structure, and natural pacing
6. **Educational Value**: Explain WHY steps matter, not just WHAT to do
7. **Smooth Transitions**: Connect ideas naturally, anticipate user questions
8. **Encouraging Tone**: Make users feel capable and excited to learn

SCRIPT STRUCTURE:
- **Opening**: Warm welcome, overview of what they'll accomplish
- **Body**: Step-by-step guidance with context and explanations
- **Transitions**: Smooth connections between concepts
- **Closing**: Summary, encouragement, next steps

VOICE CHARACTERISTICS:
- Friendly and approachable (not corporate/formal)
- Knowledgeable but not condescending
- Patient and encouraging
- Conversational rhythm with varied pacing
- Natural pauses and emphasis points

EXAMPLES OF TRANSFORMATION:

BEFORE (Raw): "Um, so now I'm gonna click this button here, uh, the blue one"
AFTER (Polished): "Perfect! Now let's click that bright blue button right here. This is where the magic happens - it opens up all the customization options we'll need."

BEFORE (Raw): "Okay, so you type in your name"
AFTER (Polished): "Great! Now go ahead and type in your name. Feel free to use your real name or whatever you'd prefer to go by."

BEFORE (Raw): "And then it saves automatically"
AFTER (Polished): "And just like that, everything saves automatically in the background. No need to worry about losing your work!"

OUTPUT FORMAT:
Return a JSON object with:
{
    "refined_text": "The complete polished script as one flowing narrative",
    "instructions": [
        {
            "text": "Individual actionable step",
            "start_time": 0.0,
            "end_time": 3.5,
            "dom_event_index": 0,
            "context": "Additional context about why this step matters"
        }
    ],
    "script_metadata": {
        "tone": "friendly_professional",
        "pace": "conversational",
        "target_audience": "beginners_intermediate",
        "estimated_duration": 45
    }
}

Remember: You're not just cleaning up speech - you're creating an engaging, human experience that makes complex tasks feel approachable and enjoyable.`

// buildRefinementPrompt assembles the full prompt: system preamble, raw
// transcript, a derived transcript analysis, the rendered interaction events
// and the closing instructions.
func buildRefinementPrompt(rawTranscript string, domEvents []models.DomEvent) string {
	var b strings.Builder

	b.WriteString(refinementSystemPrompt)
	b.WriteString("\n\n---\nRAW TRANSCRIPT:\n")
	b.WriteString(rawTranscript)
	b.WriteString("\n\n---\nTRANSCRIPT ANALYSIS:\n")
	b.WriteString(analyzeTranscript(rawTranscript))
	b.WriteString("\n\n---\nDOM EVENTS (user interactions on screen):\n")
	b.WriteString(formatDomEvents(domEvents))
	b.WriteString(`

---
INSTRUCTIONS:
1. Analyze what the user is demonstrating based on their speech and actions
2. Create a flowing, engaging script that feels natural and human
3. Match instructions to DOM events where they align with user actions
4. Add context and explanations that make the tutorial more valuable
5. Use conversational language that guides viewers through the experience
6. Include smooth transitions and encouraging language

Return ONLY valid JSON with the specified format. No markdown code blocks or explanations.
`)

	return b.String()
}

// formatDomEvents renders one human-readable line per interaction event,
// with event-type-specific phrasing and the timestamp in seconds.
func formatDomEvents(domEvents []models.DomEvent) string {
	if len(domEvents) == 0 {
		return "No user interactions captured during recording"
	}

	lines := []string{"USER INTERACTIONS CAPTURED:"}
	for i, event := range domEvents {
		seconds := float64(event.Timestamp) / 1000
		lines = append(lines, fmt.Sprintf("%d. %s at %.1fs", i+1, describeEvent(event), seconds))
	}

	return strings.Join(lines, "\n")
}

// describeEvent produces the phrase for a single event. Missing type or
// target fields resolve to safe defaults instead of failing.
func describeEvent(event models.DomEvent) string {
	eventType := event.Type
	if eventType == "" {
		eventType = "unknown"
	}

	target := event.Target
	if target == nil {
		target = &models.EventTarget{}
	}
	text := strings.TrimSpace(target.Text)

	switch eventType {
	case models.EventTypeClick:
		switch {
		case text != "":
			return fmt.Sprintf("Clicked '%s' (%s)", text, target.Tag)
		case target.Placeholder != "":
			return fmt.Sprintf("Clicked input field '%s' (%s)", target.Placeholder, target.Tag)
		case target.ID != "":
			return fmt.Sprintf("Clicked element with ID '%s' (%s)", target.ID, target.Tag)
		default:
			return fmt.Sprintf("Clicked %s element", target.Tag)
		}
	case models.EventTypeInput:
		switch {
		case target.Placeholder != "":
			return fmt.Sprintf("Typed in '%s' field", target.Placeholder)
		case text != "":
			return fmt.Sprintf("Entered text in '%s' field", text)
		default:
			return "Typed in input field"
		}
	case models.EventTypeScroll:
		return "Scrolled through content"
	case models.EventTypeFocus:
		if text != "" {
			return fmt.Sprintf("Focused on '%s' (%s)", text, target.Tag)
		}
		return fmt.Sprintf("Focused on %s element", target.Tag)
	default:
		return fmt.Sprintf("%s interaction with %s", strings.ToUpper(eventType), target.Tag)
	}
}

var fillerWords = map[string]bool{
	"um":       true,
	"uh":       true,
	"like":     true,
	"you know": true,
	"so":       true,
	"well":     true,
}

// analyzeTranscript derives word metrics and pattern flags that give the
// model context about the recording's intent and style.
func analyzeTranscript(rawTranscript string) string {
	lower := strings.ToLower(rawTranscript)
	words := strings.Fields(lower)

	fillerCount := 0
	for _, word := range words {
		if fillerWords[word] {
			fillerCount++
		}
	}

	analysis := []string{
		"TRANSCRIPT ANALYSIS:",
		fmt.Sprintf("- Total words: %d", len(words)),
		fmt.Sprintf("- Filler words detected: %d", fillerCount),
	}

	if containsAny(lower, "click", "press", "tap") {
		analysis = append(analysis, "- Contains interaction instructions")
	}
	if containsAny(lower, "now", "next", "then", "after") {
		analysis = append(analysis, "- Sequential workflow detected")
	}
	if containsAny(lower, "here", "this", "that") {
		analysis = append(analysis, "- References visual elements on screen")
	}
	if containsAny(lower, "let me", "i'll", "we're") {
		analysis = append(analysis, "- Demonstrative language (showing how to do something)")
	}
	if containsAny(lower, "easy", "simple", "quick", "fast") {
		analysis = append(analysis, "- Emphasizes ease of use")
	}
	if containsAny(lower, "important", "remember", "note") {
		analysis = append(analysis, "- Includes important tips/warnings")
	}

	return strings.Join(analysis, "\n")
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
