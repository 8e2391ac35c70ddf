package repository

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/samber/lo"

	"github.com/mssola/mihi/internal/entity"
	"github.com/mssola/mihi/internal/repository"
)

const (
	tagsTable     = "tags"
	wordTagsTable = "word_tags"
)

var tagColumns = []string{"id", "name", "created_at", "updated_at"}

type tagRepository struct {
	drv dialect.Driver
	now func() time.Time
}

// NewTagRepository returns a TagRepository on top of an ent SQL driver.
// Names are stored trimmed and lowercased.
func NewTagRepository(drv dialect.Driver) repository.TagRepository {
	return &tagRepository{drv: drv, now: time.Now}
}

func (r *tagRepository) builder() *entsql.DialectBuilder {
	return entsql.Dialect(r.drv.Dialect())
}

func (r *tagRepository) Create(ctx context.Context, name string) (*entity.Tag, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name = normalizeTagName(name)
	if err := entity.ValidateTagName(name); err != nil {
		return nil, err
	}

	now := r.now().UTC()
	query, args := r.builder().Insert(tagsTable).
		Columns("name", "created_at", "updated_at").
		Values(name, now, now).
		Returning("id").
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("create tag '%s': %w", name, translateTagError(err))
	}
	id, err := entsql.ScanInt64(rows)
	if closeErr := rows.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return nil, fmt.Errorf("create tag '%s': %w", name, translateTagError(err))
	}
	return &entity.Tag{ID: id, Name: name, CreatedAt: now, UpdatedAt: now}, nil
}

func (r *tagRepository) List(ctx context.Context, filter string) ([]entity.Tag, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sel := r.builder().Select(tagColumns...).
		From(entsql.Table(tagsTable)).
		OrderBy(entsql.Asc("name"))
	if f := normalizeTagName(filter); f != "" {
		sel.Where(entsql.Contains("name", f))
	}
	query, args := sel.Query()
	return r.queryTags(ctx, query, args)
}

func (r *tagRepository) ForWord(ctx context.Context, wordID int64) ([]entity.Tag, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b := r.builder()
	tags := b.Table(tagsTable)
	wordTags := b.Table(wordTagsTable)
	columns := lo.Map(tagColumns, func(c string, _ int) string { return tags.C(c) })

	query, args := b.Select(columns...).
		From(tags).
		Join(wordTags).On(tags.C("id"), wordTags.C("tag_id")).
		Where(entsql.EQ(wordTags.C("word_id"), wordID)).
		OrderBy(entsql.Asc(tags.C("name"))).
		Query()
	return r.queryTags(ctx, query, args)
}

// Delete removes the tag and detaches it from every word.
func (r *tagRepository) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ids, err := r.tagIDs(ctx, []string{normalizeTagName(name)})
	if err != nil {
		return err
	}

	query, args := r.builder().Delete(wordTagsTable).Where(entsql.EQ("tag_id", ids[0])).Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("detach tag '%s': %w", name, err)
	}

	var res entsql.Result
	query, args = r.builder().Delete(tagsTable).Where(entsql.EQ("id", ids[0])).Query()
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return fmt.Errorf("delete tag '%s': %w", name, err)
	}
	if affected, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("rows affected: %w", err)
	} else if affected == 0 {
		return fmt.Errorf("%w: '%s'", entity.ErrTagNotFound, name)
	}
	return nil
}

// Attach tags the word with every given name. Tags the word already has are
// left alone, and unknown names fail before anything is written.
func (r *tagRepository) Attach(ctx context.Context, wordID int64, names []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ids, err := r.tagIDs(ctx, normalizeTagNames(names))
	if err != nil || len(ids) == 0 {
		return err
	}
	current, err := r.ForWord(ctx, wordID)
	if err != nil {
		return err
	}
	attached := lo.SliceToMap(current, func(t entity.Tag) (int64, bool) { return t.ID, true })

	now := r.now().UTC()
	insert := r.builder().Insert(wordTagsTable).Columns("word_id", "tag_id", "created_at")
	pending := 0
	for _, id := range ids {
		if attached[id] {
			continue
		}
		insert.Values(wordID, id, now)
		pending++
	}
	if pending == 0 {
		return nil
	}

	query, args := insert.Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return translateTagError(err)
	}
	return nil
}

// Detach removes the given tags from the word. Tags the word does not have
// are ignored, unknown names are not.
func (r *tagRepository) Detach(ctx context.Context, wordID int64, names []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ids, err := r.tagIDs(ctx, normalizeTagNames(names))
	if err != nil || len(ids) == 0 {
		return err
	}

	query, args := r.builder().Delete(wordTagsTable).
		Where(entsql.And(
			entsql.EQ("word_id", wordID),
			entsql.In("tag_id", lo.ToAnySlice(ids)...),
		)).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("detach tags: %w", err)
	}
	return nil
}

// tagIDs returns the ids of the given normalized names in the same order.
func (r *tagRepository) tagIDs(ctx context.Context, names []string) ([]int64, error) {
	if len(names) == 0 {
		return nil, nil
	}
	for _, name := range names {
		if err := entity.ValidateTagName(name); err != nil {
			return nil, err
		}
	}

	query, args := r.builder().Select("id", "name").
		From(entsql.Table(tagsTable)).
		Where(entsql.In("name", lo.ToAnySlice(names)...)).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query tags: %w", err)
	}
	defer rows.Close()

	found := make(map[string]int64, len(names))
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		found[name] = id
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tags: %w", err)
	}

	ids := make([]int64, 0, len(names))
	for _, name := range names {
		id, ok := found[name]
		if !ok {
			return nil, fmt.Errorf("%w: '%s'", entity.ErrTagNotFound, name)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *tagRepository) queryTags(ctx context.Context, query string, args []any) ([]entity.Tag, error) {
	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query tags: %w", err)
	}
	defer rows.Close()

	var tags []entity.Tag
	for rows.Next() {
		var t entity.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tags: %w", err)
	}
	return tags, nil
}
