package inflection

import (
	"context"
	"sync"

	"github.com/mssola/mihi/internal/entity"
)

type catalogKey struct {
	kind   entity.Kind
	gender entity.Gender
}

// fakeCatalog is an in-memory catalog keyed by (kind, gender).
type fakeCatalog struct {
	mu      sync.RWMutex
	rows    map[catalogKey][]FormEntry
	err     error
	lookups int
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{rows: make(map[catalogKey][]FormEntry)}
}

func (f *fakeCatalog) Lookup(ctx context.Context, kind entity.Kind, gender entity.Gender) ([]FormEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lookups++
	if f.err != nil {
		return nil, f.err
	}
	return append([]FormEntry(nil), f.rows[catalogKey{kind, gender}]...), nil
}

// declension registers a paradigm: singular and plural hold one term per
// case from the nominative to the ablative.
func (f *fakeCatalog) declension(kind entity.Kind, gender entity.Gender, singular, plural []string, extra ...FormEntry) *fakeCatalog {
	var rows []FormEntry
	for i, term := range singular {
		rows = append(rows, FormEntry{Case: entity.Case(i), Number: entity.Singular, Term: term})
	}
	for i, term := range plural {
		rows = append(rows, FormEntry{Case: entity.Case(i), Number: entity.Plural, Term: term})
	}
	rows = append(rows, extra...)

	f.mu.Lock()
	defer f.mu.Unlock()
	key := catalogKey{kind, gender}
	f.rows[key] = append(f.rows[key], rows...)
	return f
}

func testCatalog() *fakeCatalog {
	c := newFakeCatalog()
	firstSg := []string{"a", "a", "am", "ae", "ae", "ā"}
	firstPl := []string{"ae", "ae", "ās", "ārum", "īs", "īs"}
	firstLoc := []FormEntry{
		{Case: entity.CaseLocative, Number: entity.Singular, Term: "ae"},
		{Case: entity.CaseLocative, Number: entity.Plural, Term: "īs"},
	}
	c.declension(entity.KindA, entity.GenderFeminine, firstSg, firstPl, firstLoc...)
	c.declension(entity.KindA, entity.GenderMasculine, firstSg, firstPl, firstLoc...)

	usSg := []string{"us", "e", "um", "ī", "ō", "ō"}
	usPl := []string{"ī", "ī", "ōs", "ōrum", "īs", "īs"}
	c.declension(entity.KindUs, entity.GenderMasculine, usSg, usPl)
	c.declension(entity.KindUm, entity.GenderNeuter,
		[]string{"um", "um", "um", "ī", "ō", "ō"}, []string{"a", "a", "a", "ōrum", "īs", "īs"})
	c.declension(entity.KindErIr, entity.GenderMasculine,
		[]string{"", "", "um", "ī", "ō", "ō"}, usPl)
	c.declension(entity.KindErIr, entity.GenderNeuter,
		[]string{"", "", "", "ī", "ō", "ō"}, []string{"a", "a", "a", "ōrum", "īs", "īs"})
	c.declension(entity.KindIus, entity.GenderMasculine,
		[]string{"us", "ī", "um", "ī", "ō", "ō"}, usPl)
	c.declension(entity.KindIs, entity.GenderFeminine,
		[]string{"", "", "em", "is", "ī", "e"}, []string{"ēs", "ēs", "ēs", "um", "ibus", "ibus"})
	c.declension(entity.KindIs, entity.GenderMasculine,
		[]string{"", "", "em", "is", "ī", "e"}, []string{"ēs", "ēs", "ēs", "um", "ibus", "ibus"})
	return c
}
