package heteronym

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// newCollator returns a collator for word ordering. Swedish places å, ä and ö
// after z, which a byte comparison gets wrong.
func newCollator() *collate.Collator {
	return collate.New(language.Swedish)
}

// GroupWords groups records by (language, word).
//
// Groups are ordered by language, then by sense count and variant count
// (both descending), then by word in Swedish collation order.
func GroupWords(records []Record) []WordGroup {
	type acc struct {
		group    WordGroup
		senses   map[string]bool
		ipas     map[string]bool
		readings map[Reading]bool
	}

	byKey := make(map[Key]*acc)
	var order []Key

	for _, r := range records {
		k := r.Key()
		a, ok := byKey[k]
		if !ok {
			a = &acc{
				group:    WordGroup{Language: r.Language, Word: r.Word},
				senses:   make(map[string]bool),
				ipas:     make(map[string]bool),
				readings: make(map[Reading]bool),
			}
			byKey[k] = a
			order = append(order, k)
		}

		a.senses[r.SenseID] = true
		if r.IPA != "" {
			a.ipas[r.IPA] = true
			if r.Meaning != "" {
				a.readings[Reading{IPA: r.IPA, Meaning: r.Meaning}] = true
			}
		}
	}

	groups := make([]WordGroup, 0, len(order))
	for _, k := range order {
		a := byKey[k]
		g := a.group
		g.Senses = len(a.senses)
		g.Variants = len(a.ipas)

		for ipa := range a.ipas {
			g.IPAs = append(g.IPAs, ipa)
		}
		sort.Strings(g.IPAs)

		for rd := range a.readings {
			g.Readings = append(g.Readings, rd)
		}
		sort.Slice(g.Readings, func(i, j int) bool {
			if g.Readings[i].IPA != g.Readings[j].IPA {
				return g.Readings[i].IPA < g.Readings[j].IPA
			}
			return g.Readings[i].Meaning < g.Readings[j].Meaning
		})

		groups = append(groups, g)
	}

	SortGroups(groups)
	return groups
}

// SortGroups orders groups in place by language, sense count, variant count
// and word.
func SortGroups(groups []WordGroup) {
	col := newCollator()
	sort.SliceStable(groups, func(i, j int) bool {
		a, b := groups[i], groups[j]
		if a.Language != b.Language {
			return a.Language < b.Language
		}
		if a.Senses != b.Senses {
			return a.Senses > b.Senses
		}
		if a.Variants != b.Variants {
			return a.Variants > b.Variants
		}
		if c := col.CompareString(a.Word, b.Word); c != 0 {
			return c < 0
		}
		return a.Word < b.Word
	})
}

// DuplicateSenses returns the records that repeat a sense_id already seen
// for the same (language, word), in input order. GroupWords counts such a
// sense once.
func DuplicateSenses(records []Record) []Record {
	type senseKey struct {
		Key
		SenseID string
	}

	seen := make(map[senseKey]bool)
	var dups []Record
	for _, r := range records {
		k := senseKey{Key: r.Key(), SenseID: r.SenseID}
		if seen[k] {
			dups = append(dups, r)
			continue
		}
		seen[k] = true
	}
	return dups
}

// FilterGroups applies the single-sense policy. Words with fewer than two
// senses are dropped unless includeSingleSense is set.
func FilterGroups(groups []WordGroup, includeSingleSense bool) []WordGroup {
	if includeSingleSense {
		return groups
	}

	var kept []WordGroup
	for _, g := range groups {
		if g.IsHeteronym() {
			kept = append(kept, g)
		}
	}
	return kept
}

// FilterRecords keeps the records whose (language, word) appears in groups.
func FilterRecords(records []Record, groups []WordGroup) []Record {
	keep := make(map[Key]bool, len(groups))
	for _, g := range groups {
		keep[Key{Language: g.Language, Word: g.Word}] = true
	}

	var out []Record
	for _, r := range records {
		if keep[r.Key()] {
			out = append(out, r)
		}
	}
	return out
}

// Languages returns the distinct languages of the groups in ascending order.
func Languages(groups []WordGroup) []string {
	seen := make(map[string]bool)
	var langs []string
	for _, g := range groups {
		if !seen[g.Language] {
			seen[g.Language] = true
			langs = append(langs, g.Language)
		}
	}
	sort.Strings(langs)
	return langs
}

// ByLanguage returns the groups of one language, keeping their order.
func ByLanguage(groups []WordGroup, lang string) []WordGroup {
	var out []WordGroup
	for _, g := range groups {
		if g.Language == lang {
			out = append(out, g)
		}
	}
	return out
}

// LanguageTotals counts words and senses per language.
func LanguageTotals(groups []WordGroup) []LanguageTotal {
	var totals []LanguageTotal
	for _, lang := range Languages(groups) {
		t := LanguageTotal{Language: lang}
		for _, g := range ByLanguage(groups, lang) {
			t.Words++
			t.Senses += g.Senses
		}
		totals = append(totals, t)
	}
	return totals
}

// SenseDistribution counts words per sense count, ascending by sense count.
func SenseDistribution(groups []WordGroup) []SenseBucket {
	counts := make(map[int]int)
	for _, g := range groups {
		counts[g.Senses]++
	}

	buckets := make([]SenseBucket, 0, len(counts))
	for senses, words := range counts {
		buckets = append(buckets, SenseBucket{Senses: senses, Words: words})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Senses < buckets[j].Senses
	})
	return buckets
}

// TopCards picks up to limit groups for the card view: most IPA variants first,
// then language and word. A non-positive limit returns all groups.
func TopCards(groups []WordGroup, limit int) []WordGroup {
	cards := make([]WordGroup, len(groups))
	copy(cards, groups)

	col := newCollator()
	sort.SliceStable(cards, func(i, j int) bool {
		a, b := cards[i], cards[j]
		if a.Variants != b.Variants {
			return a.Variants > b.Variants
		}
		if a.Language != b.Language {
			return a.Language < b.Language
		}
		return col.CompareString(a.Word, b.Word) < 0
	})

	if limit > 0 && len(cards) > limit {
		cards = cards[:limit]
	}
	return cards
}
