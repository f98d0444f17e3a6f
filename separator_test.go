package tokenize

import "testing"

func TestSeparateWordLeftStrip(t *testing.T) {
	dict := englishFixtureNoWalls(t)
	sent := newSentenceFor(dict)
	separateWord(sent, "(test", false, dict, nil, nil)

	if len(sent.Positions) != 2 {
		t.Fatalf("got %d positions, want 2: %+v", len(sent.Positions), sent.Positions)
	}
	if got := alts(sent, 0); len(got) != 1 || got[0] != "(" {
		t.Errorf("position 0 = %v, want [\"(\"]", got)
	}
	if got := alts(sent, 1); len(got) != 1 || got[0] != "test" {
		t.Errorf("position 1 = %v, want [\"test\"]", got)
	}
}

func TestSeparateWordPrefixStemSuffixSplit(t *testing.T) {
	dict := englishFixtureNoWalls(t)
	sent := newSentenceFor(dict)
	separateWord(sent, "unrun", false, dict, nil, nil)

	if len(sent.Positions) != 3 {
		t.Fatalf("got %d positions, want 3: %+v", len(sent.Positions), sent.Positions)
	}
	if sent.Positions[0].UnsplitWord != "unrun" {
		t.Errorf("UnsplitWord = %q, want unrun", sent.Positions[0].UnsplitWord)
	}
	wantCol0 := []string{"unrun", "un="}
	if got := alts(sent, 0); !equalStrings(got, wantCol0) {
		t.Errorf("position 0 = %v, want %v", got, wantCol0)
	}
	wantCol1 := []string{EmptyWordMark, "run"}
	if got := alts(sent, 1); !equalStrings(got, wantCol1) {
		t.Errorf("position 1 = %v, want %v", got, wantCol1)
	}
	wantCol2 := []string{EmptyWordMark, "="}
	if got := alts(sent, 2); !equalStrings(got, wantCol2) {
		t.Errorf("position 2 = %v, want %v", got, wantCol2)
	}
}

func TestSeparateWordUnitSuffixStrip(t *testing.T) {
	dict := englishFixtureNoWalls(t)
	sent := newSentenceFor(dict)
	separateWord(sent, "86mm", false, dict, nil, nil)

	if len(sent.Positions) != 2 {
		t.Fatalf("got %d positions, want 2: %+v", len(sent.Positions), sent.Positions)
	}
	if got := alts(sent, 0); len(got) != 1 || got[0] != "86" {
		t.Errorf("position 0 = %v, want [\"86\"]", got)
	}
	if got := alts(sent, 1); len(got) != 1 || got[0] != "mm" {
		t.Errorf("position 1 = %v, want [\"mm\"]", got)
	}
}

func TestSeparateWordContractionSuffix(t *testing.T) {
	dict := englishFixtureNoWalls(t)
	sent := newSentenceFor(dict)
	separateWord(sent, "you've", false, dict, nil, nil)

	if len(sent.Positions) != 2 {
		t.Fatalf("got %d positions, want 2: %+v", len(sent.Positions), sent.Positions)
	}
	if got := alts(sent, 0); len(got) != 1 || got[0] != "you" {
		t.Errorf("position 0 = %v, want [\"you\"]", got)
	}
	if got := alts(sent, 1); len(got) != 1 || got[0] != "=ve" {
		t.Errorf("position 1 = %v, want [\"=ve\"]", got)
	}
}

func TestSeparateWordSpellcheckFallback(t *testing.T) {
	dict := englishFixtureNoWalls(t)
	spell := NewEditDistanceSpellchecker([]string{"surprise"}, 2)
	opts := &Options{UseSpellGuess: true}
	sent := newSentenceFor(dict)
	separateWord(sent, "surprize", false, dict, spell, opts)

	if len(sent.Positions) != 1 {
		t.Fatalf("got %d positions, want 1: %+v", len(sent.Positions), sent.Positions)
	}
	got := alts(sent, 0)
	found := false
	for _, a := range got {
		if a == "surprise"+SpellGuessTag {
			found = true
		}
	}
	if !found {
		t.Errorf("position 0 = %v, want it to contain %q", got, "surprise"+SpellGuessTag)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
