package tokenize

import "testing"

func TestAffixTableMPreDescendingLength(t *testing.T) {
	at := NewAffixTable(map[AffixClass][]string{
		ClassMPre: {"a", "abc", "ab"},
	}, MultiPrefixPolicy{})
	got := at.Get(ClassMPre)
	want := []string{"abc", "ab", "a"}
	if len(got) != len(want) {
		t.Fatalf("Get(MPRE) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Get(MPRE)[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAffixTableDedup(t *testing.T) {
	at := NewAffixTable(map[AffixClass][]string{
		ClassLPunc: {"(", "(", "["},
	}, MultiPrefixPolicy{})
	got := at.Get(ClassLPunc)
	if len(got) != 2 {
		t.Fatalf("Get(LPUNC) = %v, want 2 deduped entries", got)
	}
}

func TestAffixTableEmptyClass(t *testing.T) {
	at := NewAffixTable(map[AffixClass][]string{}, MultiPrefixPolicy{})
	if got := at.Get(ClassSuf); got != nil {
		t.Errorf("Get(SUF) on empty table = %v, want nil", got)
	}
}

func TestLoadAffixTable(t *testing.T) {
	at, err := LoadAffixTable("testdata/affix.en.txt")
	if err != nil {
		t.Fatalf("LoadAffixTable: %v", err)
	}
	if len(at.Get(ClassLPunc)) == 0 {
		t.Error("expected non-empty LPUNC class")
	}
	if len(at.Get(ClassSuf)) == 0 {
		t.Error("expected non-empty SUF class")
	}
}

func TestLoadAffixTableHebrewPolicy(t *testing.T) {
	at, err := LoadAffixTable("testdata/affix.he.txt")
	if err != nil {
		t.Fatalf("LoadAffixTable: %v", err)
	}
	policy := at.Policy()
	if !policy.InitialOnly["ו"] {
		t.Error("expected ו to be chain-initial-only")
	}
	if !policy.CollapseLeadingDuplicate["ו"] {
		t.Error("expected ו to collapse leading duplicates")
	}
}
