package inflection

import (
	"context"
	"fmt"

	"github.com/mssola/mihi/internal/entity"
)

// Row holds the candidate forms of a case: index 0 is the singular, index 1
// the plural.
type Row [2][]string

// Singular returns the singular candidates.
func (r Row) Singular() []string { return r[entity.Singular] }

// Plural returns the plural candidates.
func (r Row) Plural() []string { return r[entity.Plural] }

// DeclensionTable is the case by number grid of a word. Each cell keeps its
// candidates in the order they were produced.
type DeclensionTable struct {
	Gender entity.Gender
	rows   [entity.CaseCount]Row
}

// Row returns the row for the given case.
func (t *DeclensionTable) Row(c entity.Case) Row {
	if !c.Valid() {
		return Row{}
	}
	return t.rows[c]
}

// Cell returns the candidates for the given case and number.
func (t *DeclensionTable) Cell(c entity.Case, n entity.Number) []string {
	if n != entity.Singular && n != entity.Plural {
		return nil
	}
	return t.Row(c)[n]
}

// Empty reports whether no cell holds any form.
func (t *DeclensionTable) Empty() bool {
	for _, row := range t.rows {
		if len(row[entity.Singular]) > 0 || len(row[entity.Plural]) > 0 {
			return false
		}
	}
	return true
}

func (t *DeclensionTable) add(c entity.Case, n entity.Number, forms ...string) {
	t.rows[c][n] = append(t.rows[c][n], forms...)
}

func (t *DeclensionTable) reset(c entity.Case, n entity.Number) {
	t.rows[c][n] = nil
}

// Builder produces declension tables from a forms catalog. It holds no
// state besides the catalog, so it can be shared between goroutines as
// long as the catalog can.
type Builder struct {
	catalog Catalog
}

// NewBuilder returns a builder reading its paradigms from the given catalog.
func NewBuilder(catalog Catalog) *Builder {
	return &Builder{catalog: catalog}
}

// Build returns the declension table of the word for the given paradigm
// kind and gender, with the `sets` and `adds` overrides of the word
// applied on top of it.
func (b *Builder) Build(ctx context.Context, w *entity.Word, kind entity.Kind, gender entity.Gender) (*DeclensionTable, error) {
	entries, err := b.catalog.Lookup(ctx, kind, gender)
	if err != nil {
		return nil, fmt.Errorf("lookup forms for %q (%s): %w", kind, gender, err)
	}

	table := &DeclensionTable{Gender: gender}
	for _, e := range entries {
		if !e.Case.Valid() || (e.Number != entity.Singular && e.Number != entity.Plural) {
			return nil, fmt.Errorf("invalid catalog row for %q: %s %s", kind, e.Case, e.Number)
		}
		if skipEntry(w, e) {
			continue
		}
		table.add(e.Case, e.Number, Resolve(w, e.Case, e.Number, gender, kind, e.Term)...)
	}

	if err := table.apply(w, kind, gender, w.Flags.Sets, false); err != nil {
		return nil, err
	}
	if err := table.apply(w, kind, gender, w.Flags.Adds, true); err != nil {
		return nil, err
	}
	return table, nil
}

// NounTable returns the table of a noun. Nouns that can be either masculine
// or feminine are declined as masculine.
func (b *Builder) NounTable(ctx context.Context, w *entity.Word) (*DeclensionTable, error) {
	gender := w.Gender
	if gender == entity.GenderMasculineOrFeminine {
		gender = entity.GenderMasculine
	}
	return b.Build(ctx, w, w.Kind, gender)
}

// skipEntry filters out the rows the word cannot have. Locative plurals are
// only kept for plural-only nouns, since they only exist for place names
// such as "Athēnīs".
func skipEntry(w *entity.Word, e FormEntry) bool {
	onlyPlural := w.Flags.OnlyPlural
	if e.Number == entity.Singular && onlyPlural {
		return true
	}
	if e.Number == entity.Plural && w.Flags.OnlySingular {
		return true
	}
	return e.Case == entity.CaseLocative && e.Number == entity.Plural && !onlyPlural
}

// apply layers an override block on top of the table. Unscoped cases go
// first so that gender scoped ones have the final word.
func (t *DeclensionTable) apply(w *entity.Word, kind entity.Kind, gender entity.Gender, o *entity.Overrides, appendTerms bool) error {
	for _, block := range o.For(gender) {
		for _, c := range entity.SortedCases(block) {
			if !c.Valid() {
				return badCase(c)
			}
			co := block[c]
			for _, n := range []entity.Number{entity.Singular, entity.Plural} {
				// An empty list leaves the cell as the catalog built it.
				terms := co.Terms(n)
				if len(terms) == 0 {
					continue
				}
				if !appendTerms {
					t.reset(c, n)
				}
				for _, term := range terms {
					t.add(c, n, Resolve(w, c, n, gender, kind, term)...)
				}
			}
		}
	}
	return nil
}

func badCase(c entity.Case) error {
	return fmt.Errorf("bad key '%s' for a case: %w", c, entity.ErrBadOverrideKey)
}
