package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/samber/lo"

	"github.com/mssola/mihi/internal/entity"
	"github.com/mssola/mihi/internal/repository"
)

func tagNames(tags []entity.Tag) []string {
	return lo.Map(tags, func(t entity.Tag, _ int) string { return t.Name })
}

func TestTagRepository(t *testing.T) {
	ctx := context.Background()
	drv := newTestDriver(t)
	words := NewWordRepository(drv)
	tags := NewTagRepository(drv)

	rosa, err := words.Create(ctx, newWord("rosa, rosae", "ros", entity.DeclensionFirst, entity.KindA, entity.GenderFeminine))
	if err != nil {
		t.Fatalf("Create word: %v", err)
	}
	lupus, err := words.Create(ctx, newWord("lupus, lupī", "lup", entity.DeclensionSecond, entity.KindUs, entity.GenderMasculine))
	if err != nil {
		t.Fatalf("Create word: %v", err)
	}

	for _, name := range []string{" Lesson 1 ", "lesson 2", "animals"} {
		if _, err := tags.Create(ctx, name); err != nil {
			t.Fatalf("Create tag %q: %v", name, err)
		}
	}
	if _, err := tags.Create(ctx, "LESSON 1"); !errors.Is(err, entity.ErrDuplicateTag) {
		t.Fatalf("expected ErrDuplicateTag, got %v", err)
	}

	all, err := tags.List(ctx, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if diff := cmp.Diff([]string{"animals", "lesson 1", "lesson 2"}, tagNames(all)); diff != "" {
		t.Fatalf("tags mismatch (-want +got):\n%s", diff)
	}
	filtered, err := tags.List(ctx, "Less")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if diff := cmp.Diff([]string{"lesson 1", "lesson 2"}, tagNames(filtered)); diff != "" {
		t.Fatalf("filtered tags mismatch (-want +got):\n%s", diff)
	}

	if err := tags.Attach(ctx, rosa.ID, []string{"lesson 1", "Lesson 1"}); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	// Attaching twice is a no-op.
	if err := tags.Attach(ctx, rosa.ID, []string{"lesson 1", "lesson 2"}); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	if err := tags.Attach(ctx, lupus.ID, []string{"animals", "lesson 2"}); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	if err := tags.Attach(ctx, lupus.ID, []string{"lesson 3"}); !errors.Is(err, entity.ErrTagNotFound) {
		t.Fatalf("expected ErrTagNotFound, got %v", err)
	}

	got, err := tags.ForWord(ctx, rosa.ID)
	if err != nil {
		t.Fatalf("ForWord: %v", err)
	}
	if diff := cmp.Diff([]string{"lesson 1", "lesson 2"}, tagNames(got)); diff != "" {
		t.Fatalf("tags of rosa (-want +got):\n%s", diff)
	}

	listed := func(q *repository.ListWordQuery) []string {
		t.Helper()
		found, total, err := words.List(ctx, q)
		if err != nil {
			t.Fatalf("List words: %v", err)
		}
		if total != int64(len(found)) {
			t.Fatalf("expected total %d, got %d", len(found), total)
		}
		return lo.Map(found, func(w *entity.Word, _ int) string { return w.Enunciated })
	}
	if diff := cmp.Diff([]string{"rosa, rosae"}, listed(&repository.ListWordQuery{Tags: []string{"Lesson 1"}})); diff != "" {
		t.Fatalf("words in lesson 1 (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"lupus, lupī", "rosa, rosae"}, listed(&repository.ListWordQuery{Tags: []string{"lesson 1", "animals"}})); diff != "" {
		t.Fatalf("words in any tag (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"lupus, lupī"}, listed(&repository.ListWordQuery{Tags: []string{"lesson 2"}, Category: entity.CategoryNoun, Keyword: "lup"})); diff != "" {
		t.Fatalf("tags combined with other predicates (-want +got):\n%s", diff)
	}

	if err := tags.Detach(ctx, rosa.ID, []string{"lesson 1", "animals"}); err != nil {
		t.Fatalf("Detach: %v", err)
	}
	got, _ = tags.ForWord(ctx, rosa.ID)
	if diff := cmp.Diff([]string{"lesson 2"}, tagNames(got)); diff != "" {
		t.Fatalf("tags of rosa after detaching (-want +got):\n%s", diff)
	}

	if err := tags.Delete(ctx, "Lesson 2"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := tags.Delete(ctx, "lesson 2"); !errors.Is(err, entity.ErrTagNotFound) {
		t.Fatalf("expected ErrTagNotFound, got %v", err)
	}
	got, _ = tags.ForWord(ctx, lupus.ID)
	if diff := cmp.Diff([]string{"animals"}, tagNames(got)); diff != "" {
		t.Fatalf("tags of lupus after deleting a tag (-want +got):\n%s", diff)
	}

	// Removing a word drops its tags but keeps the tag itself.
	if err := words.Delete(ctx, lupus.ID); err != nil {
		t.Fatalf("Delete word: %v", err)
	}
	if got := listed(&repository.ListWordQuery{Tags: []string{"animals"}}); len(got) != 0 {
		t.Fatalf("expected no tagged words, got %v", got)
	}
	all, _ = tags.List(ctx, "")
	if diff := cmp.Diff([]string{"animals", "lesson 1"}, tagNames(all)); diff != "" {
		t.Fatalf("tags after deleting a word (-want +got):\n%s", diff)
	}
}

func TestTagRepositoryRejectsInvalidNames(t *testing.T) {
	tags := NewTagRepository(newTestDriver(t))
	for _, name := range []string{"", "   ", "a,b"} {
		if _, err := tags.Create(context.Background(), name); !errors.Is(err, entity.ErrInvalidTag) {
			t.Fatalf("Create(%q): expected ErrInvalidTag, got %v", name, err)
		}
	}
}

func TestNormalizeTagNames(t *testing.T) {
	tests := []struct {
		in   []string
		want []string
	}{
		{nil, nil},
		{[]string{" ", ""}, nil},
		{[]string{"Lesson 1", "lesson 1 ", "Animals", "LESSON 1"}, []string{"lesson 1", "animals"}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, normalizeTagNames(tt.in)); diff != "" {
			t.Fatalf("normalizeTagNames(%q) (-want +got):\n%s", tt.in, diff)
		}
	}
}
