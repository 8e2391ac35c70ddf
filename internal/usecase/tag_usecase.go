package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/mssola/mihi/internal/entity"
	"github.com/mssola/mihi/internal/repository"
)

// TagUsecase manages tags and the words they group.
type TagUsecase interface {
	Create(ctx context.Context, name string) (*entity.Tag, error)
	List(ctx context.Context, filter string) ([]entity.Tag, error)
	Delete(ctx context.Context, name string) error
	For(ctx context.Context, enunciated string) ([]entity.Tag, error)
	Attach(ctx context.Context, enunciated string, names ...string) error
	Detach(ctx context.Context, enunciated string, names ...string) error
}

type tagUsecase struct {
	tags  repository.TagRepository
	words repository.WordRepository
}

func NewTagUsecase(tags repository.TagRepository, words repository.WordRepository) TagUsecase {
	return &tagUsecase{tags: tags, words: words}
}

func (u *tagUsecase) Create(ctx context.Context, name string) (*entity.Tag, error) {
	if err := entity.ValidateTagName(name); err != nil {
		return nil, err
	}
	return u.tags.Create(ctx, name)
}

func (u *tagUsecase) List(ctx context.Context, filter string) ([]entity.Tag, error) {
	return u.tags.List(ctx, filter)
}

func (u *tagUsecase) Delete(ctx context.Context, name string) error {
	if err := entity.ValidateTagName(name); err != nil {
		return err
	}
	return u.tags.Delete(ctx, name)
}

func (u *tagUsecase) For(ctx context.Context, enunciated string) ([]entity.Tag, error) {
	w, err := u.word(ctx, enunciated)
	if err != nil {
		return nil, err
	}
	return u.tags.ForWord(ctx, w.ID)
}

func (u *tagUsecase) Attach(ctx context.Context, enunciated string, names ...string) error {
	w, err := u.wordAndNames(ctx, enunciated, names)
	if err != nil {
		return err
	}
	return u.tags.Attach(ctx, w.ID, names)
}

func (u *tagUsecase) Detach(ctx context.Context, enunciated string, names ...string) error {
	w, err := u.wordAndNames(ctx, enunciated, names)
	if err != nil {
		return err
	}
	return u.tags.Detach(ctx, w.ID, names)
}

func (u *tagUsecase) wordAndNames(ctx context.Context, enunciated string, names []string) (*entity.Word, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no tags given", entity.ErrInvalidTag)
	}
	for _, name := range names {
		if err := entity.ValidateTagName(name); err != nil {
			return nil, err
		}
	}
	return u.word(ctx, enunciated)
}

func (u *tagUsecase) word(ctx context.Context, enunciated string) (*entity.Word, error) {
	enunciated = strings.TrimSpace(enunciated)
	if enunciated == "" {
		return nil, fmt.Errorf("%w: empty enunciate", entity.ErrInvalidWord)
	}
	return u.words.FindByEnunciated(ctx, enunciated)
}
