package app

import (
	"context"
	"testing"

	"github.com/mssola/mihi/internal/entity"
	"github.com/mssola/mihi/internal/infrastructure/database"
)

func TestInitialize(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("MIHI_DATABASE", "")
	t.Setenv("MIHI_DATABASE_PATH", "")

	c, cleanup, err := Initialize("")
	if err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	defer cleanup()

	ctx := context.Background()
	if err := database.Migrate(ctx, c.Driver); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	if _, err := database.Seed(ctx, c.Forms); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	rosa := entity.NewWord()
	rosa.Enunciated, rosa.Particle = "rosa, rosae", "ros"
	rosa.Category, rosa.Declension, rosa.Kind, rosa.Gender = entity.CategoryNoun, entity.DeclensionFirst, entity.KindA, entity.GenderFeminine
	if _, err := c.Words.Create(ctx, &rosa); err != nil {
		t.Fatalf("Create: %v", err)
	}

	inf, err := c.Inflections.Show(ctx, "rosa, rosae")
	if err != nil {
		t.Fatalf("Show: %v", err)
	}
	row, ok := inf.Row(entity.CaseGenitive)
	if !ok || row.Cells[0].Rendered != "rosae, rosārum" {
		t.Fatalf("unexpected genitive %+v", row)
	}
	if c.Server == nil || c.Logger == nil {
		t.Fatalf("expected the server and logger to be wired")
	}
}

func TestInitializeRejectsBadConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("MIHI_INFLECTION_CASE_ORDER", "alphabetical")

	if _, _, err := Initialize(""); err == nil {
		t.Fatalf("expected an invalid case order to be rejected")
	}
}
