package main

import "testing"

func TestSplitSentences(t *testing.T) {
	got := SplitSentences("This is one. This is two! Is this three?")
	if len(got) != 3 {
		t.Fatalf("got %d sentences, want 3: %v", len(got), got)
	}
}

func TestSplitSentencesDropsEmpty(t *testing.T) {
	got := SplitSentences("   ")
	if len(got) != 0 {
		t.Errorf("got %d sentences, want 0: %v", len(got), got)
	}
}
