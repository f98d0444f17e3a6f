package tokenize

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Flat-file loaders for a toy affix table and word list: bufio.Scanner,
// "!"-prefixed comments, one directive per line. These are reference
// plumbing for driving and testing this package end to end; they are
// deliberately not a reimplementation of link-grammar's real affix-file
// and dictionary-file grammars.

// LoadAffixTable reads a flat affix file: each non-comment line is
// "TAG: entry entry ...", where TAG is one of the AffixClass tag names.
// Lines starting with "!" are comments; blank lines are skipped.
func LoadAffixTable(path string) (*AffixTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open affix file %s: %w", path, err)
	}
	defer f.Close()

	classes := make(map[AffixClass][]string)
	policy := MultiPrefixPolicy{
		InitialOnly:              make(map[string]bool),
		CollapseLeadingDuplicate: make(map[string]bool),
	}

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}
		idx := strings.Index(line, ":")
		if idx < 0 {
			continue
		}
		tag := strings.TrimSpace(line[:idx])
		rest := strings.Fields(line[idx+1:])

		switch tag {
		case "MPRE-INITIAL-ONLY":
			for _, w := range rest {
				policy.InitialOnly[w] = true
			}
		case "MPRE-COLLAPSE-DUP":
			for _, w := range rest {
				policy.CollapseLeadingDuplicate[w] = true
			}
		default:
			classes[AffixClass(tag)] = append(classes[AffixClass(tag)], rest...)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read affix file %s: %w", path, err)
	}
	return NewAffixTable(classes, policy), nil
}

// LoadDictionary reads a flat word list into a MapDictionary over at. Lines
// of the form "REGEX name: pattern" register a named regex entry (the name
// must also appear as a plain word line elsewhere to be usable via Find).
// Lines of the form "MARK word: marker" tag an entity marker onto word.
// Everything else is a plain exact-lookup word.
func LoadDictionary(path string, at *AffixTable) (*MapDictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary file %s: %w", path, err)
	}
	defer f.Close()

	d := NewMapDictionary(at)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}
		if strings.HasPrefix(line, "REGEX ") {
			rest := strings.TrimPrefix(line, "REGEX ")
			parts := strings.SplitN(rest, ":", 2)
			if len(parts) != 2 {
				continue
			}
			name := strings.TrimSpace(parts[0])
			pattern := strings.TrimSpace(parts[1])
			if err := d.AddRegex(name, pattern); err != nil {
				return nil, fmt.Errorf("dictionary file %s: bad regex %q: %w", path, name, err)
			}
			continue
		}
		if strings.HasPrefix(line, "MARK ") {
			rest := strings.TrimPrefix(line, "MARK ")
			parts := strings.SplitN(rest, ":", 2)
			if len(parts) != 2 {
				continue
			}
			d.AddMarker(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]))
			continue
		}
		d.AddWord(line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read dictionary file %s: %w", path, err)
	}
	return d, nil
}
