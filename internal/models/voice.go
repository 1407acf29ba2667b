package models

// Voice is a selectable TTS voice as reported by the provider.
type Voice struct {
	VoiceID     string `json:"voiceId"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
}
