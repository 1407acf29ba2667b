package models

// Instruction is a single timed step of the generated tutorial. Times are
// seconds from the start of the recording; StartTime <= EndTime.
type Instruction struct {
	Text          string  `json:"text"`
	StartTime     float64 `json:"startTime"`
	EndTime       float64 `json:"endTime"`
	DomEventIndex *int    `json:"domEventIndex,omitempty"`
	Context       string  `json:"context,omitempty"`
}
