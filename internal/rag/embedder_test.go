package rag

import (
	"math"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"lowercases and splits", "Stainless Steel Tumbler", []string{"stainless", "steel", "tumbler"}},
		{"drops short tokens", "a an the cup", []string{"the", "cup"}},
		{"strips punctuation", "leak-proof, 500ml!", []string{"leak", "proof", "500ml"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenize(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestEmbedNormalized(t *testing.T) {
	e := NewEmbedder()
	e.Fit([]string{
		"stainless steel tumbler with lid",
		"glass cup with straw",
		"ceramic mug for coffee",
	})

	vec := e.Embed("steel tumbler")

	var sumSquares float64
	for _, v := range vec {
		sumSquares += v * v
	}
	if mag := math.Sqrt(sumSquares); math.Abs(mag-1.0) > 1e-9 {
		t.Errorf("expected unit vector, got magnitude %f", mag)
	}
}

func TestEmbedUnknownWords(t *testing.T) {
	e := NewEmbedder()
	e.Fit([]string{"stainless steel tumbler"})

	vec := e.Embed("completely unrelated words")
	for i, v := range vec {
		if v != 0 {
			t.Errorf("component %d = %f, want 0 for out-of-vocab query", i, v)
		}
	}
}

func TestSimilarity(t *testing.T) {
	e := NewEmbedder()
	e.Fit([]string{
		"stainless steel tumbler with lid",
		"glass cup with straw",
	})

	tumbler := e.Embed("steel tumbler")
	glass := e.Embed("glass straw")

	if got := Similarity(tumbler, tumbler); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("self similarity = %f, want 1", got)
	}
	if got := Similarity(tumbler, glass); got >= Similarity(tumbler, tumbler) {
		t.Errorf("cross similarity %f should not exceed self similarity", got)
	}
	if got := Similarity([]float64{1}, []float64{1, 0}); got != 0 {
		t.Errorf("mismatched lengths should yield 0, got %f", got)
	}
}
