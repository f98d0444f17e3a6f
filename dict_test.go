package tokenize

import "testing"

func TestMapDictionaryExactLookup(t *testing.T) {
	at := NewAffixTable(nil, MultiPrefixPolicy{})
	d := NewMapDictionary(at)
	d.AddWords("this", "is", "a", "test")

	if !d.ExactLookup("test") {
		t.Error("expected test to be an exact lookup hit")
	}
	if d.ExactLookup("tests") {
		t.Error("tests should not be an exact lookup hit")
	}
}

func TestMapDictionaryFindViaRegex(t *testing.T) {
	at := NewAffixTable(nil, MultiPrefixPolicy{})
	d := NewMapDictionary(at)
	d.AddWord("NUMBER")
	if err := d.AddRegex("NUMBER", `^[0-9]+$`); err != nil {
		t.Fatalf("AddRegex: %v", err)
	}

	if !d.Find("1960") {
		t.Error("Find(1960) should succeed via the NUMBER regex")
	}
	if d.ExactLookup("1960") {
		t.Error("ExactLookup(1960) must not succeed — only Find may use regex")
	}
}

func TestMapDictionaryFindRequiresRegexNameEntry(t *testing.T) {
	at := NewAffixTable(nil, MultiPrefixPolicy{})
	d := NewMapDictionary(at)
	// NUMBER is never added as a word, so the regex name is undefined.
	if err := d.AddRegex("NUMBER", `^[0-9]+$`); err != nil {
		t.Fatalf("AddRegex: %v", err)
	}

	if d.Find("1960") {
		t.Error("Find must fail when the regex's name is not itself a dictionary entry")
	}
}

func TestMapDictionaryWordContains(t *testing.T) {
	at := NewAffixTable(nil, MultiPrefixPolicy{})
	d := NewMapDictionary(at)
	d.AddWord("Paris")
	d.AddMarker("Paris", "PLACE")

	if !d.WordContains("Paris", "PLACE") {
		t.Error("expected Paris to carry the PLACE marker")
	}
	if d.WordContains("Paris", "PERSON") {
		t.Error("Paris should not carry the PERSON marker")
	}
	if d.WordContains("Rome", "PLACE") {
		t.Error("Rome was never added, WordContains should be false")
	}
}

func TestMapDictionaryWords(t *testing.T) {
	at := NewAffixTable(nil, MultiPrefixPolicy{})
	d := NewMapDictionary(at)
	d.AddWords("test", "a", "this")

	got := d.Words()
	want := []string{"a", "test", "this"}
	if len(got) != len(want) {
		t.Fatalf("Words() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Words()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMapDictionarySetWalls(t *testing.T) {
	at := NewAffixTable(nil, MultiPrefixPolicy{})
	d := NewMapDictionary(at)
	d.SetWalls(true, false)

	if !d.LeftWallDefined() || !d.ExactLookup(LeftWallWord) {
		t.Error("expected LEFT-WALL to be defined and present")
	}
	if d.RightWallDefined() || d.ExactLookup(RightWallWord) {
		t.Error("RIGHT-WALL should not be defined")
	}
}

func TestMapDictionaryUnknownWordPolicy(t *testing.T) {
	at := NewAffixTable(nil, MultiPrefixPolicy{})
	d := NewMapDictionary(at)
	d.SetUnknownWordPolicy(true, true)

	if !d.UnknownWordDefined() || !d.UseUnknownWord() {
		t.Error("expected UNKNOWN-WORD to be defined and usable")
	}
	if !d.ExactLookup(UnknownWord) {
		t.Error("expected UNKNOWN-WORD itself to be added as an entry")
	}
}
