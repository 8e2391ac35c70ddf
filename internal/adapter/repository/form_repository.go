package repository

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/mssola/mihi/internal/entity"
	"github.com/mssola/mihi/internal/inflection"
	"github.com/mssola/mihi/internal/repository"
)

const (
	formsTable     = "forms"
	formsBatchSize = 500
)

type formRepository struct{ drv dialect.Driver }

// NewFormRepository returns the SQL backed forms catalog.
func NewFormRepository(drv dialect.Driver) repository.FormRepository {
	return &formRepository{drv: drv}
}

func (r *formRepository) Lookup(ctx context.Context, kind entity.Kind, gender entity.Gender) ([]inflection.FormEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	query, args := entsql.Dialect(r.drv.Dialect()).
		Select("case", "number", "term").
		From(entsql.Table(formsTable)).
		Where(entsql.And(entsql.EQ("kind", string(kind)), entsql.EQ("gender", int(gender)))).
		OrderBy("id").
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query forms: %w", err)
	}
	defer rows.Close()

	var entries []inflection.FormEntry
	for rows.Next() {
		var c, n int
		var term string
		if err := rows.Scan(&c, &n, &term); err != nil {
			return nil, fmt.Errorf("scan form: %w", err)
		}
		entries = append(entries, inflection.FormEntry{Case: entity.Case(c), Number: entity.Number(n), Term: term})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate forms: %w", err)
	}
	return entries, nil
}

// Replace wipes the catalog and stores the given rows in order inside of a
// single transaction.
func (r *formRepository) Replace(ctx context.Context, forms []entity.Form) (err error) {
	tx, err := r.drv.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, tx.Rollback())
		}
	}()

	b := entsql.Dialect(r.drv.Dialect())
	query, args := b.Delete(formsTable).Query()
	if err = tx.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("clear forms: %w", err)
	}

	for start := 0; start < len(forms); start += formsBatchSize {
		end := min(start+formsBatchSize, len(forms))
		insert := b.Insert(formsTable).Columns("kind", "gender", "case", "number", "term")
		for _, f := range forms[start:end] {
			insert.Values(string(f.Kind), int(f.Gender), int(f.Case), int(f.Number), f.Term)
		}
		query, args = insert.Query()
		if err = tx.Exec(ctx, query, args, nil); err != nil {
			return fmt.Errorf("insert forms: %w", err)
		}
	}
	return tx.Commit()
}

func (r *formRepository) Count(ctx context.Context) (int64, error) {
	query, args := entsql.Dialect(r.drv.Dialect()).
		Select().Count().
		From(entsql.Table(formsTable)).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return 0, fmt.Errorf("count forms: %w", err)
	}
	defer rows.Close()
	return entsql.ScanInt64(rows)
}
