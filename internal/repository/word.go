package repository

import (
	"context"

	"github.com/mssola/mihi/internal/entity"
	"github.com/mssola/mihi/internal/inflection"
)

// ListWordQuery narrows down a word listing. Zero values mean "any".
type ListWordQuery struct {
	Pagination

	Category   entity.Category
	Declension entity.Declension
	Kind       entity.Kind
	Keyword    string   // substring of the enunciate
	Tags       []string // words carrying any of these tags
	OrderBy    string // e.g. "weight desc, enunciated"
}

// WordRepository defines data access for dictionary words.
type WordRepository interface {
	Create(ctx context.Context, word *entity.Word) (*entity.Word, error)
	Update(ctx context.Context, word *entity.Word) (*entity.Word, error)
	GetByID(ctx context.Context, id int64) (*entity.Word, error)
	FindByEnunciated(ctx context.Context, enunciated string) (*entity.Word, error)
	List(ctx context.Context, query *ListWordQuery) ([]*entity.Word, int64, error)
	Delete(ctx context.Context, id int64) error
	Poke(ctx context.Context, id int64) error

	Relate(ctx context.Context, relation entity.WordRelation) error
	Related(ctx context.Context, id int64, kind entity.RelationKind) ([]entity.Word, error)
}

// FormRepository is the forms catalog plus the operations needed to seed
// it.
type FormRepository interface {
	inflection.Catalog

	Replace(ctx context.Context, forms []entity.Form) error
	Count(ctx context.Context) (int64, error)
}
