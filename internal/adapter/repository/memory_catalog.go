package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/mssola/mihi/internal/entity"
	"github.com/mssola/mihi/internal/inflection"
	"github.com/mssola/mihi/internal/repository"
)

type paradigmKey struct {
	kind   entity.Kind
	gender entity.Gender
}

type memoryFormRepository struct {
	mu    sync.RWMutex
	rows  map[paradigmKey][]inflection.FormEntry
	count int64
}

// NewMemoryFormRepository returns a forms catalog held in memory, useful
// when no database is at hand.
func NewMemoryFormRepository(forms []entity.Form) repository.FormRepository {
	r := &memoryFormRepository{}
	r.load(forms)
	return r
}

func (r *memoryFormRepository) load(forms []entity.Form) {
	rows := make(map[paradigmKey][]inflection.FormEntry)
	for _, f := range forms {
		key := paradigmKey{kind: f.Kind, gender: f.Gender}
		rows[key] = append(rows[key], inflection.FormEntry{Case: f.Case, Number: f.Number, Term: f.Term})
	}
	r.rows = rows
	r.count = int64(len(forms))
}

func (r *memoryFormRepository) Lookup(ctx context.Context, kind entity.Kind, gender entity.Gender) ([]inflection.FormEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := r.rows[paradigmKey{kind: kind, gender: gender}]
	out := make([]inflection.FormEntry, len(rows))
	copy(out, rows)
	return out, nil
}

func (r *memoryFormRepository) Replace(ctx context.Context, forms []entity.Form) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, f := range forms {
		if !f.Case.Valid() {
			return fmt.Errorf("invalid form for %q: %s", f.Kind, f.Case)
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.load(forms)
	return nil
}

func (r *memoryFormRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.count, nil
}
