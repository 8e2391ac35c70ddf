package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/mssola/mihi/internal/entity"
	"github.com/mssola/mihi/internal/repository"
)

// memWordRepo is an in-memory word repository that keeps insertion order.
type memWordRepo struct {
	mu        sync.Mutex
	nextID    int64
	words     []*entity.Word
	relations []entity.WordRelation
	listErr   error
	lists     int
}

func newMemWordRepo(words ...*entity.Word) *memWordRepo {
	r := &memWordRepo{}
	for _, w := range words {
		if _, err := r.Create(context.Background(), w); err != nil {
			panic(err)
		}
	}
	return r
}

func (r *memWordRepo) Create(_ context.Context, word *entity.Word) (*entity.Word, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, w := range r.words {
		if w.Enunciated == word.Enunciated {
			return nil, entity.ErrDuplicateWord
		}
	}
	r.nextID++
	cp := *word
	cp.ID = r.nextID
	r.words = append(r.words, &cp)
	out := cp
	return &out, nil
}

func (r *memWordRepo) Update(_ context.Context, word *entity.Word) (*entity.Word, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, w := range r.words {
		if w.ID == word.ID {
			cp := *word
			r.words[i] = &cp
			out := cp
			return &out, nil
		}
	}
	return nil, entity.ErrWordNotFound
}

func (r *memWordRepo) GetByID(_ context.Context, id int64) (*entity.Word, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, w := range r.words {
		if w.ID == id {
			out := *w
			return &out, nil
		}
	}
	return nil, entity.ErrWordNotFound
}

func (r *memWordRepo) FindByEnunciated(_ context.Context, enunciated string) (*entity.Word, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, w := range r.words {
		if w.Enunciated == enunciated {
			out := *w
			return &out, nil
		}
	}
	return nil, entity.ErrWordNotFound
}

func (r *memWordRepo) List(_ context.Context, q *repository.ListWordQuery) ([]*entity.Word, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lists++
	if r.listErr != nil {
		return nil, 0, r.listErr
	}

	var out []*entity.Word
	for _, w := range r.words {
		if q.Kind != "" && w.Kind != q.Kind {
			continue
		}
		if q.Keyword != "" && !strings.Contains(w.Enunciated, q.Keyword) {
			continue
		}
		cp := *w
		out = append(out, &cp)
	}
	if q.OrderBy != "id" {
		sort.SliceStable(out, func(i, j int) bool { return out[i].Enunciated < out[j].Enunciated })
	}

	total := int64(len(out))
	if q.PageSize > 0 {
		start := int(q.Offset())
		if start > len(out) {
			start = len(out)
		}
		end := start + int(q.PageSize)
		if end > len(out) {
			end = len(out)
		}
		out = out[start:end]
	}
	return out, total, nil
}

func (r *memWordRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, w := range r.words {
		if w.ID == id {
			r.words = append(r.words[:i], r.words[i+1:]...)
			return nil
		}
	}
	return entity.ErrWordNotFound
}

func (r *memWordRepo) Poke(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, w := range r.words {
		if w.ID == id {
			w.Weight++
			return nil
		}
	}
	return entity.ErrWordNotFound
}

func (r *memWordRepo) Relate(_ context.Context, rel entity.WordRelation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.relations {
		if existing == rel {
			return entity.ErrDuplicateWord
		}
	}
	r.relations = append(r.relations, rel)
	return nil
}

func (r *memWordRepo) Related(_ context.Context, id int64, kind entity.RelationKind) ([]entity.Word, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Word
	for _, rel := range r.relations {
		if rel.SourceID != id || rel.Kind != kind {
			continue
		}
		for _, w := range r.words {
			if w.ID == rel.DestinationID {
				out = append(out, *w)
			}
		}
	}
	return out, nil
}

var errBoom = errors.New("boom")
