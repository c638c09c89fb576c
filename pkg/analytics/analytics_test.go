package analytics

import (
	"reflect"
	"testing"

	"github.com/dtnitsch/llm-citability/pkg/tokenizer"
)

func TestIsStopword(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{word: "the", want: true},
		{word: "The", want: true},
		{word: "don't", want: true},
		{word: "para", want: true},
		{word: "citation", want: false},
		{word: "", want: false},
	}

	for _, tt := range tests {
		if got := IsStopword(tt.word); got != tt.want {
			t.Errorf("IsStopword(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestTermFrequency(t *testing.T) {
	words := tokenizer.NormalizedWords("The model and the MODEL cite 2023 sources, model.")
	got := TermFrequency(words)
	want := map[string]int{"model": 3, "cite": 1, "sources": 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TermFrequency() = %v, want %v", got, want)
	}
}

func TestTopTerms(t *testing.T) {
	words := tokenizer.NormalizedWords("beta alpha gamma beta alpha beta delta")

	got := TopTerms(words, 3)
	want := []TermCount{{Term: "beta", Count: 3}, {Term: "alpha", Count: 2}, {Term: "delta", Count: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopTerms() = %v, want %v", got, want)
	}

	if got := TopTerms(words, 0); got != nil {
		t.Errorf("TopTerms(n=0) = %v, want nil", got)
	}
	if got := TopTerms(nil, 5); len(got) != 0 {
		t.Errorf("TopTerms(nil) = %v, want empty", got)
	}
}
