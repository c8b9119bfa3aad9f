package textqc

import (
	"strings"
	"testing"
)

func TestLooksLikeIntro(t *testing.T) {
	tests := []struct {
		name    string
		segment string
		want    bool
	}{
		{"known strong phrase", "Here is the transcription of your document:", true},
		{"self reference with keyword", "I'll transcribe the text from the image for you", true},
		{"strong phrase variant", "Sure, here's the text from the page:", true},
		{"failure report", "Unable to transcribe, the image is blurry", true},
		{"plain content", "The quarterly report shows strong growth.", false},
		{"keyword without lead", "Transcription services were discussed at length by the board members during review.", false},
		{"empty", "", false},
		{"too long", strings.Repeat("okay transcription ", 20) + ":", false},
	}

	a := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.LooksLikeIntro(tt.segment); got != tt.want {
				t.Errorf("LooksLikeIntro(%q) = %v, want %v", tt.segment, got, tt.want)
			}
		})
	}
}

func TestLooksLikeOutro(t *testing.T) {
	tests := []struct {
		name    string
		segment string
		want    bool
	}{
		{"known strong phrase", "Let me know if you need anything else.", true},
		{"happy to help", "Thanks, happy to help further!", true},
		{"anything else with offer", "Do you need anything else transcribed today?", true},
		{"polite plus keyword", "Thank you for your support", true},
		{"question with need", "Is there anything else?", true},
		{"plain content", "The meeting ended at noon.", false},
		{"empty", "", false},
		{"too long", strings.Repeat("anything else you need ", 15), false},
	}

	a := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.LooksLikeOutro(tt.segment); got != tt.want {
				t.Errorf("LooksLikeOutro(%q) = %v, want %v", tt.segment, got, tt.want)
			}
		})
	}
}

func TestHeuristicMaxCharsOption(t *testing.T) {
	segment := "Here is the transcription of this rather long introduction line for the heuristic:"

	strict := New(WithHeuristicMaxChars(20))
	if strict.LooksLikeIntro(segment) {
		t.Error("LooksLikeIntro() = true with a 20-char cutoff, want false")
	}
	if !New().LooksLikeIntro(segment) {
		t.Error("LooksLikeIntro() = false with the default cutoff, want true")
	}
}
