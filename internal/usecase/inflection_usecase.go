package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/mssola/mihi/internal/entity"
	"github.com/mssola/mihi/internal/inflection"
	"github.com/mssola/mihi/internal/repository"
)

// InflectionUsecase produces the declension tables of stored words.
type InflectionUsecase interface {
	Show(ctx context.Context, enunciated string) (*Inflection, error)
	Inflect(ctx context.Context, word *entity.Word) (*Inflection, error)
	InflectAll(ctx context.Context, words []*entity.Word) ([]*Inflection, error)
	Check(ctx context.Context, enunciated string, answers []Answer) ([]Mismatch, error)
}

// Cell is a row of the table for a single gender.
type Cell struct {
	Gender   entity.Gender `json:"gender"`
	Singular []string      `json:"singular,omitempty"`
	Plural   []string      `json:"plural,omitempty"`
	Rendered string        `json:"rendered"`
}

// InflectedRow holds the forms of a case: one cell for nouns, three for
// adjectives.
type InflectedRow struct {
	Case  entity.Case `json:"case"`
	Cells []Cell      `json:"cells"`
}

// Inflection is the printable result of inflecting a word.
type Inflection struct {
	Word        *entity.Word   `json:"word"`
	Rows        []InflectedRow `json:"rows"`
	Comparative string         `json:"comparative,omitempty"`
	Superlative string         `json:"superlative,omitempty"`
	Adverb      string         `json:"adverb,omitempty"`
}

// Row returns the row for the given case, if the inflection has it.
func (i *Inflection) Row(c entity.Case) (InflectedRow, bool) {
	for _, row := range i.Rows {
		if row.Case == c {
			return row, true
		}
	}
	return InflectedRow{}, false
}

const _inflectAllLimit = 8

type inflectionUsecase struct {
	words   repository.WordRepository
	builder *inflection.Builder
	order   entity.CaseOrder
}

func NewInflectionUsecase(words repository.WordRepository, forms inflection.Catalog, order entity.CaseOrder) InflectionUsecase {
	if order == "" {
		order = entity.CaseOrderEuropean
	}
	return &inflectionUsecase{words: words, builder: inflection.NewBuilder(forms), order: order}
}

func (u *inflectionUsecase) Show(ctx context.Context, enunciated string) (*Inflection, error) {
	w, err := u.words.FindByEnunciated(ctx, enunciated)
	if err != nil {
		return nil, err
	}
	return u.Inflect(ctx, w)
}

func (u *inflectionUsecase) Inflect(ctx context.Context, w *entity.Word) (*Inflection, error) {
	if w == nil {
		return nil, fmt.Errorf("%w: no word given", entity.ErrNotInflectable)
	}
	if !w.Inflectable() {
		return nil, fmt.Errorf("%w: '%s' (%s)", entity.ErrNotInflectable, w.Enunciated, w.Category)
	}

	var (
		tables  []*inflection.DeclensionTable
		genders []entity.Gender
	)
	switch w.Category {
	case entity.CategoryNoun:
		table, err := u.builder.NounTable(ctx, w)
		if err != nil {
			return nil, err
		}
		tables, genders = []*inflection.DeclensionTable{table}, []entity.Gender{w.Gender}
	default:
		adj, err := u.builder.AdjectiveTables(ctx, w)
		if err != nil {
			return nil, err
		}
		tables = []*inflection.DeclensionTable{adj.Masculine, adj.Feminine, adj.Neuter}
		genders = []entity.Gender{entity.GenderMasculine, entity.GenderFeminine, entity.GenderNeuter}
	}

	out := &Inflection{Word: w}
	for _, c := range u.order.Cases() {
		if c == entity.CaseLocative && !w.Locative {
			continue
		}
		row := InflectedRow{Case: c, Cells: make([]Cell, 0, len(tables))}
		for i, table := range tables {
			r := table.Row(c)
			row.Cells = append(row.Cells, Cell{
				Gender:   genders[i],
				Singular: r.Singular(),
				Plural:   r.Plural(),
				Rendered: inflection.Render(w, r),
			})
		}
		out.Rows = append(out.Rows, row)
	}

	if w.Category == entity.CategoryAdjective && !w.Flags.NotComparable {
		if err := u.degrees(ctx, w, out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (u *inflectionUsecase) degrees(ctx context.Context, w *entity.Word, out *Inflection) error {
	related := func(kind entity.RelationKind) ([]entity.Word, error) {
		if w.ID <= 0 {
			return nil, nil
		}
		words, err := u.words.Related(ctx, w.ID, kind)
		if err != nil {
			return nil, fmt.Errorf("%s of '%s': %w", kind, w.Enunciated, err)
		}
		return words, nil
	}

	comparatives, err := related(entity.RelationComparative)
	if err != nil {
		return err
	}
	superlatives, err := related(entity.RelationSuperlative)
	if err != nil {
		return err
	}
	adverbs, err := related(entity.RelationAdverb)
	if err != nil {
		return err
	}

	out.Comparative = inflection.Comparative(w, comparatives)
	out.Superlative = inflection.Superlative(w, superlatives)
	out.Adverb = inflection.Adverb(w, adverbs)
	return nil
}

// InflectAll inflects the given words concurrently. Results keep the order
// of the input and the first failure cancels the rest.
func (u *inflectionUsecase) InflectAll(ctx context.Context, words []*entity.Word) ([]*Inflection, error) {
	out := make([]*Inflection, len(words))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(_inflectAllLimit)
	for i, w := range words {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			inf, err := u.Inflect(ctx, w)
			if err != nil {
				return err
			}
			out[i] = inf
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (u *inflectionUsecase) Check(ctx context.Context, enunciated string, answers []Answer) ([]Mismatch, error) {
	inf, err := u.Show(ctx, enunciated)
	if err != nil {
		return nil, err
	}
	return CheckTable(inf, answers), nil
}
