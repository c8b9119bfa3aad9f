package scanner

// Entry is the per-file scan result.
type Entry struct {
	File               string   `json:"file"`
	Confidence         float64  `json:"confidence"`
	PlaceholderRatio   float64  `json:"placeholder_ratio"`
	PlaceholderCount   int      `json:"placeholder_count"`
	TokenCount         int      `json:"token_count"`
	RepetitionRatio    float64  `json:"repetition_ratio"`
	RemoveIntroText    string   `json:"remove_intro_text,omitempty"`
	RemoveOutroText    string   `json:"remove_outro_text,omitempty"`
	RepetitionDetected bool     `json:"repetition_detected,omitempty"`
	MarkdownArtifacts  []string `json:"markdown_artifacts,omitempty"`
	Issues             []string `json:"issues,omitempty"`
	Notes              []string `json:"notes,omitempty"`
}

// Result is the outcome of one scan pass. Over is present (possibly empty)
// only when a confidence threshold was configured; it holds the entries whose
// confidence is at or below it.
type Result struct {
	All  []Entry  `json:"all"`
	Over *[]Entry `json:"over,omitempty"`
}
