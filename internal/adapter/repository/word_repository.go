package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/samber/lo"

	"github.com/mssola/mihi/internal/entity"
	"github.com/mssola/mihi/internal/repository"
	"github.com/mssola/mihi/pkg/filterexpr"
)

const (
	wordsTable     = "words"
	relationsTable = "word_relations"
)

var wordColumns = []string{
	"id", "enunciated", "particle", "language", "declension", "conjugation",
	"kind", "category", "regular", "locative", "gender", "suffix",
	"translation", "flags", "succeeded", "steps", "weight",
	"created_at", "updated_at",
}

type wordRepository struct {
	drv dialect.Driver
	now func() time.Time
}

// NewWordRepository returns a WordRepository on top of an ent SQL driver.
func NewWordRepository(drv dialect.Driver) repository.WordRepository {
	return &wordRepository{drv: drv, now: time.Now}
}

func (r *wordRepository) builder() *entsql.DialectBuilder {
	return entsql.Dialect(r.drv.Dialect())
}

func (r *wordRepository) Create(ctx context.Context, word *entity.Word) (*entity.Word, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	translation, flags, err := encodeWordJSON(word)
	if err != nil {
		return nil, err
	}

	now := r.now().UTC()
	query, args := r.builder().Insert(wordsTable).
		Columns(wordColumns[1:]...).
		Values(
			word.Enunciated, word.Particle, entity.NormalizeLanguage(word.Language).Code(),
			int(word.Declension), word.Conjugation, string(word.Kind), int(word.Category),
			word.Regular, word.Locative, int(word.Gender), word.Suffix,
			translation, flags, word.Succeeded, word.Steps, word.Weight,
			now, now,
		).
		Returning("id").
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, translateWordError(err)
	}
	id, err := entsql.ScanInt64(rows)
	if closeErr := rows.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return nil, translateWordError(err)
	}
	return r.GetByID(ctx, id)
}

func (r *wordRepository) Update(ctx context.Context, word *entity.Word) (*entity.Word, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	translation, flags, err := encodeWordJSON(word)
	if err != nil {
		return nil, err
	}

	query, args := r.builder().Update(wordsTable).
		Set("enunciated", word.Enunciated).
		Set("particle", word.Particle).
		Set("language", entity.NormalizeLanguage(word.Language).Code()).
		Set("declension", int(word.Declension)).
		Set("conjugation", word.Conjugation).
		Set("kind", string(word.Kind)).
		Set("category", int(word.Category)).
		Set("regular", word.Regular).
		Set("locative", word.Locative).
		Set("gender", int(word.Gender)).
		Set("suffix", word.Suffix).
		Set("translation", translation).
		Set("flags", flags).
		Set("succeeded", word.Succeeded).
		Set("steps", word.Steps).
		Set("weight", word.Weight).
		Set("updated_at", r.now().UTC()).
		Where(entsql.EQ("id", word.ID)).
		Query()

	if err := r.execAffectingOne(ctx, query, args); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, word.ID)
}

func (r *wordRepository) GetByID(ctx context.Context, id int64) (*entity.Word, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, entity.ErrInvalidWordID
	}
	return r.findOne(ctx, entsql.EQ("id", id))
}

func (r *wordRepository) FindByEnunciated(ctx context.Context, enunciated string) (*entity.Word, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.findOne(ctx, entsql.EQ("enunciated", enunciated))
}

func (r *wordRepository) findOne(ctx context.Context, p *entsql.Predicate) (*entity.Word, error) {
	query, args := r.builder().Select(wordColumns...).
		From(entsql.Table(wordsTable)).
		Where(p).
		Limit(1).
		Query()

	words, err := r.queryWords(ctx, query, args)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, entity.ErrWordNotFound
	}
	return words[0], nil
}

func (r *wordRepository) List(ctx context.Context, q *repository.ListWordQuery) ([]*entity.Word, int64, error) {
	if q == nil {
		q = &repository.ListWordQuery{}
	}
	order, err := filterexpr.ParseOrderBy(q.OrderBy, listWordsOrder)
	if err != nil {
		return nil, 0, fmt.Errorf("order_by: %w", err)
	}

	preds := r.listPredicates(q)

	sel := r.builder().Select(wordColumns...).From(entsql.Table(wordsTable))
	count := r.builder().Select().Count().From(entsql.Table(wordsTable))
	if len(preds) > 0 {
		sel.Where(entsql.And(preds...))
		count.Where(entsql.And(preds...))
	}
	sel.OrderBy(orderTerm(order.PrimaryKey, order.PrimaryDesc), orderTerm(order.SecondaryKey, order.SecondaryDesc))
	if q.PageSize > 0 {
		sel.Limit(int(q.PageSize)).Offset(int(q.Offset()))
	}

	query, args := sel.Query()
	words, err := r.queryWords(ctx, query, args)
	if err != nil {
		return nil, 0, fmt.Errorf("list words: %w", err)
	}

	query, args = count.Query()
	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, 0, fmt.Errorf("count words: %w", err)
	}
	defer rows.Close()
	total, err := entsql.ScanInt64(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("count words: %w", err)
	}
	return words, total, nil
}

func (r *wordRepository) listPredicates(q *repository.ListWordQuery) []*entsql.Predicate {
	var preds []*entsql.Predicate
	if q.Category != entity.CategoryUnknown {
		preds = append(preds, entsql.EQ("category", int(q.Category)))
	}
	if q.Declension != entity.DeclensionNone {
		preds = append(preds, entsql.EQ("declension", int(q.Declension)))
	}
	if q.Kind != "" {
		preds = append(preds, entsql.EQ("kind", string(q.Kind)))
	}
	if q.Keyword != "" {
		preds = append(preds, entsql.Contains("enunciated", q.Keyword))
	}
	if names := normalizeTagNames(q.Tags); len(names) > 0 {
		b := r.builder()
		wordTags := b.Table(wordTagsTable)
		tags := b.Table(tagsTable)
		tagged := b.Select(wordTags.C("word_id")).
			From(wordTags).
			Join(tags).On(wordTags.C("tag_id"), tags.C("id")).
			Where(entsql.In(tags.C("name"), lo.ToAnySlice(names)...))
		preds = append(preds, entsql.In("id", tagged))
	}
	return preds
}

func orderTerm(column string, desc bool) string {
	if desc {
		return entsql.Desc(column)
	}
	return entsql.Asc(column)
}

func (r *wordRepository) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// Relations go first so drivers without cascading deletes stay clean.
	query, args := r.builder().Delete(relationsTable).
		Where(entsql.Or(entsql.EQ("source_id", id), entsql.EQ("destination_id", id))).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("delete word relations: %w", err)
	}
	query, args = r.builder().Delete(wordTagsTable).Where(entsql.EQ("word_id", id)).Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("delete word tags: %w", err)
	}

	query, args = r.builder().Delete(wordsTable).Where(entsql.EQ("id", id)).Query()
	return r.execAffectingOne(ctx, query, args)
}

// Poke bumps the weight of the word so it shows up earlier, and refreshes
// its timestamp.
func (r *wordRepository) Poke(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	query, args := r.builder().Update(wordsTable).
		Add("weight", 1).
		Set("updated_at", r.now().UTC()).
		Where(entsql.EQ("id", id)).
		Query()
	return r.execAffectingOne(ctx, query, args)
}

func (r *wordRepository) Relate(ctx context.Context, rel entity.WordRelation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	query, args := r.builder().Insert(relationsTable).
		Columns("relation_type", "source_id", "destination_id").
		Values(int(rel.Kind), rel.SourceID, rel.DestinationID).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return translateWordError(err)
	}
	return nil
}

func (r *wordRepository) Related(ctx context.Context, id int64, kind entity.RelationKind) ([]entity.Word, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b := r.builder()
	rel := b.Table(relationsTable)
	words := b.Table(wordsTable)
	columns := make([]string, 0, len(wordColumns))
	for _, c := range wordColumns {
		columns = append(columns, words.C(c))
	}
	query, args := b.Select(columns...).
		From(words).
		Join(rel).On(words.C("id"), rel.C("destination_id")).
		Where(entsql.And(
			entsql.EQ(rel.C("source_id"), id),
			entsql.EQ(rel.C("relation_type"), int(kind)),
		)).
		OrderBy(entsql.Asc(rel.C("id"))).
		Query()

	found, err := r.queryWords(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("related words: %w", err)
	}
	out := make([]entity.Word, 0, len(found))
	for _, w := range found {
		out = append(out, *w)
	}
	return out, nil
}

func (r *wordRepository) execAffectingOne(ctx context.Context, query string, args []any) error {
	var res entsql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return translateWordError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return entity.ErrWordNotFound
	}
	return nil
}

func (r *wordRepository) queryWords(ctx context.Context, query string, args []any) ([]*entity.Word, error) {
	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []*entity.Word
	for rows.Next() {
		word, err := scanWord(rows)
		if err != nil {
			return nil, err
		}
		words = append(words, word)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

func scanWord(rows entsql.Rows) (*entity.Word, error) {
	var (
		w                       entity.Word
		language, kind          string
		declension, category    int
		gender                  int
		translation, flagsBytes []byte
	)
	err := rows.Scan(
		&w.ID, &w.Enunciated, &w.Particle, &language, &declension, &w.Conjugation,
		&kind, &category, &w.Regular, &w.Locative, &gender, &w.Suffix,
		&translation, &flagsBytes, &w.Succeeded, &w.Steps, &w.Weight,
		&w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scan word: %w", err)
	}

	w.Language = entity.ParseLanguage(language)
	w.Declension = entity.Declension(declension)
	w.Kind = entity.Kind(kind)
	w.Category = entity.Category(category)
	w.Gender = entity.Gender(gender)

	if len(translation) > 0 {
		if err := json.Unmarshal(translation, &w.Translation); err != nil {
			return nil, fmt.Errorf("decode translation of '%s': %w", w.Enunciated, err)
		}
	}
	w.Flags, err = entity.ParseFlags(flagsBytes)
	if err != nil {
		return nil, fmt.Errorf("decode flags of '%s': %w", w.Enunciated, err)
	}
	return &w, nil
}

// encodeWordJSON returns the JSON columns as strings, which every supported
// driver accepts for both json and jsonb columns.
func encodeWordJSON(word *entity.Word) (string, string, error) {
	translation := "{}"
	if len(word.Translation) > 0 {
		data, err := json.Marshal(word.Translation)
		if err != nil {
			return "", "", fmt.Errorf("encode translation: %w", err)
		}
		translation = string(data)
	}
	flags, err := json.Marshal(word.Flags)
	if err != nil {
		return "", "", fmt.Errorf("encode flags: %w", err)
	}
	return translation, string(flags), nil
}
