package database

import (
	"context"
	"fmt"

	"github.com/mssola/mihi/internal/infrastructure/database/seed"
	"github.com/mssola/mihi/internal/repository"
)

// Seed replaces the forms catalog with the embedded paradigms and returns
// how many rows were stored.
func Seed(ctx context.Context, forms repository.FormRepository) (int, error) {
	paradigms, err := seed.Paradigms()
	if err != nil {
		return 0, err
	}
	rows := seed.Rows(paradigms)
	if err := forms.Replace(ctx, rows); err != nil {
		return 0, fmt.Errorf("seed forms catalog: %w", err)
	}
	return len(rows), nil
}
