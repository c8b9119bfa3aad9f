package textqc

import "testing"

func TestPlaceholderStats(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantCount int
		wantTotal int
	}{
		{"empty", "", 0, 0},
		{"whitespace only", " \n\t ", 0, 0},
		{"no placeholders", "plain transcript words", 0, 3},
		{"standalone placeholders", "[unsure] middle [blank]", 2, 3},
		{"glued to text and punctuation", "foo[unsure] bar [BLANK].", 2, 5},
		{"mixed case", "[UnSure] ok", 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count, total := PlaceholderStats(tt.text)
			if count != tt.wantCount || total != tt.wantTotal {
				t.Errorf("PlaceholderStats(%q) = (%d, %d), want (%d, %d)",
					tt.text, count, total, tt.wantCount, tt.wantTotal)
			}
		})
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name             string
		placeholderRatio float64
		repetitionRatio  float64
		want             float64
	}{
		{"both zero", 0, 0, 100},
		{"placeholders only", 0.5, 0, 50},
		{"repetition only", 0, 0.25, 75},
		{"combined", 0.5, 0.25, 25},
		{"sum clamped to one", 0.6, 0.7, 0},
		{"negative input clamped", -1, 0, 100},
		{"oversized input clamped", 2, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.placeholderRatio, tt.repetitionRatio); got != tt.want {
				t.Errorf("Score(%v, %v) = %v, want %v", tt.placeholderRatio, tt.repetitionRatio, got, tt.want)
			}
		})
	}
}

func TestConfidence(t *testing.T) {
	a := New()

	// Zero word tokens score a full 100.
	if got := a.Confidence(""); got != 100 {
		t.Errorf("Confidence(\"\") = %v, want 100", got)
	}
	if got := a.Confidence("\n \t\n"); got != 100 {
		t.Errorf("Confidence(whitespace) = %v, want 100", got)
	}

	if got := a.Confidence("[unsure] [unsure] hello world"); got != 50 {
		t.Errorf("Confidence() = %v, want 50 for half placeholders", got)
	}

	if got := a.Confidence("a perfectly ordinary transcript line"); got != 100 {
		t.Errorf("Confidence() = %v, want 100 for clean text", got)
	}
}
