package tokenize

import "testing"

// englishFixture loads the minimal demo affix table and word list used by
// most of this package's tests, loaded fresh per test.
func englishFixture(t *testing.T) *MapDictionary {
	t.Helper()
	at, err := LoadAffixTable("testdata/affix.en.txt")
	if err != nil {
		t.Fatalf("LoadAffixTable: %v", err)
	}
	d, err := LoadDictionary("testdata/words.en.txt", at)
	if err != nil {
		t.Fatalf("LoadDictionary: %v", err)
	}
	d.SetWalls(true, true)
	return d
}

// englishFixtureNoWalls is englishFixture without LEFT-WALL/RIGHT-WALL, for
// tests that assert on raw position counts without wall bookkeeping.
func englishFixtureNoWalls(t *testing.T) *MapDictionary {
	t.Helper()
	at, err := LoadAffixTable("testdata/affix.en.txt")
	if err != nil {
		t.Fatalf("LoadAffixTable: %v", err)
	}
	d, err := LoadDictionary("testdata/words.en.txt", at)
	if err != nil {
		t.Fatalf("LoadDictionary: %v", err)
	}
	return d
}

func hebrewFixture(t *testing.T) *MapDictionary {
	t.Helper()
	at, err := LoadAffixTable("testdata/affix.he.txt")
	if err != nil {
		t.Fatalf("LoadAffixTable: %v", err)
	}
	d, err := LoadDictionary("testdata/words.he.txt", at)
	if err != nil {
		t.Fatalf("LoadDictionary: %v", err)
	}
	return d
}

// alts returns position i's alternatives as a plain []string slice, for
// readable test assertions.
func alts(sent *Sentence, i int) []string {
	return sent.Positions[i].Alternatives
}
