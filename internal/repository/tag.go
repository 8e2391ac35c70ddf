package repository

import (
	"context"

	"github.com/mssola/mihi/internal/entity"
)

// TagRepository stores tags and the words they are attached to. Tag names
// are compared case insensitively.
type TagRepository interface {
	Create(ctx context.Context, name string) (*entity.Tag, error)
	// List returns the tags whose name contains filter, ordered by name.
	List(ctx context.Context, filter string) ([]entity.Tag, error)
	ForWord(ctx context.Context, wordID int64) ([]entity.Tag, error)
	Delete(ctx context.Context, name string) error

	Attach(ctx context.Context, wordID int64, names []string) error
	Detach(ctx context.Context, wordID int64, names []string) error
}
