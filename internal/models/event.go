package models

// Recognized DOM event types. Events with any other type are still accepted
// and rendered with a generic description.
const (
	EventTypeClick  = "click"
	EventTypeInput  = "input"
	EventTypeScroll = "scroll"
	EventTypeFocus  = "focus"
)

// EventTarget describes the DOM element an event acted on. Every field is
// optional; the extension omits whatever it could not capture.
type EventTarget struct {
	Tag         string   `json:"tag,omitempty"`
	Text        string   `json:"text,omitempty"`
	ID          string   `json:"id,omitempty"`
	Classes     []string `json:"classes,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
	Href        string   `json:"href,omitempty"`
}

// DomEvent represents a user interaction captured by the browser extension
// during a recording. Timestamp is milliseconds from recording start.
type DomEvent struct {
	Type      string       `json:"type"`
	Timestamp int64        `json:"timestamp"`
	Target    *EventTarget `json:"target,omitempty"`
}
