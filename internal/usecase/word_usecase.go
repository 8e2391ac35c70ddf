package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/mssola/mihi/internal/entity"
	"github.com/mssola/mihi/internal/repository"
	"github.com/mssola/mihi/pkg/filterexpr"
)

// WordUsecase defines business logic for dictionary words.
type WordUsecase interface {
	Create(ctx context.Context, word *entity.Word) (*entity.Word, error)
	Update(ctx context.Context, word *entity.Word) (*entity.Word, error)
	Get(ctx context.Context, id int64) (*entity.Word, error)
	Find(ctx context.Context, enunciated string) (*entity.Word, error)
	List(ctx context.Context, query *repository.ListWordQuery, filter string) ([]*entity.Word, int64, error)
	Delete(ctx context.Context, enunciated string) error
	Poke(ctx context.Context, enunciated string) error
	Relate(ctx context.Context, source, destination string, kind entity.RelationKind) error
	Import(ctx context.Context, words []entity.Word) (*ImportReport, error)
	Export(ctx context.Context) ([]entity.Word, error)
}

const (
	_defaultLanguage = entity.LanguageLatin
	_maxLimit        = int32(10000)
)

// wordFilterSchema lists the variables a word filter expression can use.
var wordFilterSchema = filterexpr.Schema{
	"enunciated": filterexpr.KindString,
	"particle":   filterexpr.KindString,
	"kind":       filterexpr.KindString,
	"category":   filterexpr.KindString,
	"gender":     filterexpr.KindString,
	"declension": filterexpr.KindInt,
	"regular":    filterexpr.KindBool,
	"locative":   filterexpr.KindBool,
	"flags":      filterexpr.KindStringList,
	"weight":     filterexpr.KindInt,
}

// ImportFailure is a word that could not be imported.
type ImportFailure struct {
	Enunciated string
	Err        error
}

// ImportReport summarizes an import.
type ImportReport struct {
	Created  int
	Updated  int
	Failures []ImportFailure
}

type wordUsecase struct {
	repo repository.WordRepository
}

func NewWordUsecase(repo repository.WordRepository) WordUsecase {
	return &wordUsecase{repo: repo}
}

func (u *wordUsecase) Create(ctx context.Context, word *entity.Word) (*entity.Word, error) {
	norm, err := normalizeWordForUpsert(word)
	if err != nil {
		return nil, err
	}
	return u.repo.Create(ctx, norm)
}

func (u *wordUsecase) Update(ctx context.Context, word *entity.Word) (*entity.Word, error) {
	norm, err := normalizeWordForUpsert(word)
	if err != nil {
		return nil, err
	}
	if norm.ID <= 0 {
		return nil, entity.ErrInvalidWordID
	}
	return u.repo.Update(ctx, norm)
}

func (u *wordUsecase) Get(ctx context.Context, id int64) (*entity.Word, error) {
	if id <= 0 {
		return nil, entity.ErrInvalidWordID
	}
	return u.repo.GetByID(ctx, id)
}

func (u *wordUsecase) Find(ctx context.Context, enunciated string) (*entity.Word, error) {
	enunciated = strings.TrimSpace(enunciated)
	if enunciated == "" {
		return nil, fmt.Errorf("%w: empty enunciate", entity.ErrInvalidWord)
	}
	return u.repo.FindByEnunciated(ctx, enunciated)
}

// List returns the words matching the query. When a filter expression is
// given, matching happens after fetching so pagination is applied on the
// filtered result.
func (u *wordUsecase) List(ctx context.Context, query *repository.ListWordQuery, filter string) ([]*entity.Word, int64, error) {
	q := repository.ListWordQuery{}
	if query != nil {
		q = *query
	}
	if q.PageSize > _maxLimit {
		q.PageSize = _maxLimit
	}

	f, err := filterexpr.Compile(filter, wordFilterSchema)
	if err != nil {
		return nil, 0, err
	}
	if f == nil {
		return u.repo.List(ctx, &q)
	}

	all := q
	all.Pagination = repository.Pagination{}
	words, _, err := u.repo.List(ctx, &all)
	if err != nil {
		return nil, 0, err
	}

	matched := make([]*entity.Word, 0, len(words))
	for _, w := range words {
		ok, err := f.Match(filterVars(w))
		if err != nil {
			return nil, 0, fmt.Errorf("filter '%s': %w", w.Enunciated, err)
		}
		if ok {
			matched = append(matched, w)
		}
	}

	total := int64(len(matched))
	if q.PageSize > 0 {
		matched = lo.Subset(matched, int(q.Offset()), uint(q.PageSize))
	}
	return matched, total, nil
}

func filterVars(w *entity.Word) map[string]any {
	return map[string]any{
		"enunciated": w.Enunciated,
		"particle":   w.Particle,
		"kind":       string(w.Kind),
		"category":   w.Category.String(),
		"gender":     w.Gender.String(),
		"declension": int64(w.Declension),
		"regular":    w.Regular,
		"locative":   w.Locative,
		"flags":      w.Flags.Names(),
		"weight":     int64(w.Weight),
	}
}

func (u *wordUsecase) Delete(ctx context.Context, enunciated string) error {
	w, err := u.Find(ctx, enunciated)
	if err != nil {
		return err
	}
	return u.repo.Delete(ctx, w.ID)
}

func (u *wordUsecase) Poke(ctx context.Context, enunciated string) error {
	w, err := u.Find(ctx, enunciated)
	if err != nil {
		return err
	}
	return u.repo.Poke(ctx, w.ID)
}

func (u *wordUsecase) Relate(ctx context.Context, source, destination string, kind entity.RelationKind) error {
	if kind < entity.RelationComparative || kind > entity.RelationGendered {
		return fmt.Errorf("%w: %s", entity.ErrUnknownRelation, kind)
	}
	src, err := u.Find(ctx, source)
	if err != nil {
		return fmt.Errorf("source '%s': %w", source, err)
	}
	dst, err := u.Find(ctx, destination)
	if err != nil {
		return fmt.Errorf("destination '%s': %w", destination, err)
	}
	if src.ID == dst.ID {
		return fmt.Errorf("%w: '%s' cannot be related to itself", entity.ErrInvalidWord, source)
	}
	return u.repo.Relate(ctx, entity.WordRelation{SourceID: src.ID, DestinationID: dst.ID, Kind: kind})
}

// Import creates the given words, updating the ones that already exist.
// Invalid words are reported and skipped; only storage failures abort the
// import.
func (u *wordUsecase) Import(ctx context.Context, words []entity.Word) (*ImportReport, error) {
	report := &ImportReport{}
	for i := range words {
		w := words[i]
		norm, err := normalizeWordForUpsert(&w)
		if err != nil {
			report.Failures = append(report.Failures, ImportFailure{Enunciated: w.Enunciated, Err: err})
			continue
		}

		existing, err := u.repo.FindByEnunciated(ctx, norm.Enunciated)
		switch {
		case errors.Is(err, entity.ErrWordNotFound):
			norm.ID = 0
			if _, err := u.repo.Create(ctx, norm); err != nil {
				return report, fmt.Errorf("import '%s': %w", norm.Enunciated, err)
			}
			report.Created++
		case err != nil:
			return report, fmt.Errorf("import '%s': %w", norm.Enunciated, err)
		default:
			norm.ID = existing.ID
			if _, err := u.repo.Update(ctx, norm); err != nil {
				return report, fmt.Errorf("import '%s': %w", norm.Enunciated, err)
			}
			report.Updated++
		}
	}
	return report, nil
}

// Export returns every word in insertion order.
func (u *wordUsecase) Export(ctx context.Context) ([]entity.Word, error) {
	words, _, err := u.repo.List(ctx, &repository.ListWordQuery{OrderBy: "id"})
	if err != nil {
		return nil, err
	}
	return lo.Map(words, func(w *entity.Word, _ int) entity.Word {
		out := *w
		out.ID = 0
		return out
	}), nil
}

func normalizeWordForUpsert(in *entity.Word) (*entity.Word, error) {
	if in == nil {
		return nil, errors.New("word payload required")
	}
	out := *in
	out.Enunciated = strings.TrimSpace(out.Enunciated)
	out.Particle = strings.TrimSpace(out.Particle)
	out.Suffix = strings.TrimSpace(out.Suffix)
	if out.Language == entity.LanguageUnspecified {
		out.Language = _defaultLanguage
	}
	out.Language = entity.NormalizeLanguage(out.Language)
	out.Translation = normalizeTranslations(out.Translation)
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}

func normalizeTranslations(in map[entity.Language]string) map[entity.Language]string {
	out := lo.PickBy(in, func(_ entity.Language, v string) bool { return strings.TrimSpace(v) != "" })
	if len(out) == 0 {
		return nil
	}
	return lo.MapValues(out, func(v string, _ entity.Language) string { return strings.TrimSpace(v) })
}
