package textqc

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tokens := Tokenize("Hello, world_2!")
	want := []Token{
		{Start: 0, End: 5, Text: "Hello"},
		{Start: 7, End: 14, Text: "world_2"},
	}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("Tokenize() = %v, want %v", tokens, want)
	}

	if got := Tokenize(""); len(got) != 0 {
		t.Errorf("Tokenize(\"\") = %v, want empty", got)
	}
}

func TestWords(t *testing.T) {
	got := Words("Okay, Here IS the Text:")
	want := []string{"okay", "here", "is", "the", "text"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Words() = %v, want %v", got, want)
	}
}
