package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	adapter "github.com/mssola/mihi/internal/adapter/repository"
	"github.com/mssola/mihi/internal/entity"
	"github.com/mssola/mihi/internal/inflection"
	"github.com/mssola/mihi/internal/infrastructure/database/seed"
)

func seededCatalog(t *testing.T) inflection.Catalog {
	t.Helper()
	paradigms, err := seed.Paradigms()
	if err != nil {
		t.Fatalf("load paradigms: %v", err)
	}
	return adapter.NewMemoryFormRepository(seed.Rows(paradigms))
}

func mustFlags(t *testing.T, raw string) entity.Flags {
	t.Helper()
	flags, err := entity.ParseFlags([]byte(raw))
	if err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return flags
}

func rendered(t *testing.T, inf *Inflection, c entity.Case, g entity.Gender) string {
	t.Helper()
	row, ok := inf.Row(c)
	if !ok {
		t.Fatalf("no %s row", c)
	}
	for _, cell := range row.Cells {
		if cell.Gender == g {
			return cell.Rendered
		}
	}
	t.Fatalf("no %s cell for the %s row", g, c)
	return ""
}

func TestInflect_Nouns(t *testing.T) {
	vir := noun("vir, virī", "vir", entity.DeclensionSecond, entity.KindUs, entity.GenderMasculine)
	vir.Flags = mustFlags(t, `{"sets": {"nominative": {"singular": [""]}, "vocative": {"singular": [""]}}}`)

	liber := noun("liber, librī", "liber", entity.DeclensionSecond, entity.KindErIr, entity.GenderMasculine)
	liber.Flags.ContractedRoot = true

	filius := noun("fīlius, fīliī", "fīli", entity.DeclensionSecond, entity.KindIus, entity.GenderMasculine)
	filius.Flags.ContractedVocative = true

	turris := noun("turris, turris", "turr", entity.DeclensionThird, entity.KindIStem, entity.GenderFeminine)
	turris.Flags = mustFlags(t, `{"adds": {"accusative": {"singular": ["im"]}}}`)

	tests := []struct {
		word *entity.Word
		c    entity.Case
		want string
	}{
		{noun("rosa, rosae", "ros", entity.DeclensionFirst, entity.KindA, entity.GenderFeminine), entity.CaseNominative, "rosa, rosae"},
		{noun("rosa, rosae", "ros", entity.DeclensionFirst, entity.KindA, entity.GenderFeminine), entity.CaseAblative, "rosā, rosīs"},
		{noun("lupus, lupī", "lup", entity.DeclensionSecond, entity.KindUs, entity.GenderMasculine), entity.CaseVocative, "lupe, lupī"},
		{noun("templum, templī", "templ", entity.DeclensionSecond, entity.KindUm, entity.GenderNeuter), entity.CaseAccusative, "templum, templa"},
		{vir, entity.CaseNominative, "vir, virī"},
		{vir, entity.CaseGenitive, "virī, virōrum"},
		{liber, entity.CaseNominative, "liber, librī"},
		{liber, entity.CaseGenitive, "librī, librōrum"},
		{filius, entity.CaseVocative, "fīlī, fīliī"},
		{filius, entity.CaseGenitive, "fīlī/fīliī, fīliōrum"},
		{noun("leō, leōnis", "leōn", entity.DeclensionThird, entity.KindIs, entity.GenderMasculine), entity.CaseNominative, "leō, leōnēs"},
		{turris, entity.CaseAccusative, "turrem/turrim, turrēs/turrīs"},
	}

	uc := NewInflectionUsecase(newMemWordRepo(), seededCatalog(t), entity.CaseOrderEuropean)
	for _, tt := range tests {
		t.Run(tt.word.Enunciated+" "+tt.c.String(), func(t *testing.T) {
			inf, err := uc.Inflect(context.Background(), tt.word)
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if got := rendered(t, inf, tt.c, tt.word.Gender); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestInflect_CaseOrderAndLocative(t *testing.T) {
	catalog := seededCatalog(t)
	rosa := noun("rosa, rosae", "ros", entity.DeclensionFirst, entity.KindA, entity.GenderFeminine)

	cases := func(inf *Inflection) []entity.Case {
		out := make([]entity.Case, 0, len(inf.Rows))
		for _, row := range inf.Rows {
			out = append(out, row.Case)
		}
		return out
	}

	european, err := NewInflectionUsecase(newMemWordRepo(), catalog, "").Inflect(context.Background(), rosa)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := []entity.Case{
		entity.CaseNominative, entity.CaseVocative, entity.CaseAccusative,
		entity.CaseGenitive, entity.CaseDative, entity.CaseAblative,
	}
	if diff := cmp.Diff(want, cases(european)); diff != "" {
		t.Fatalf("european order (-want +got):\n%s", diff)
	}

	roma := noun("Rōma, Rōmae", "Rōm", entity.DeclensionFirst, entity.KindA, entity.GenderFeminine)
	roma.Locative = true
	roma.Flags.OnlySingular = true
	english, err := NewInflectionUsecase(newMemWordRepo(), catalog, entity.CaseOrderEnglish).Inflect(context.Background(), roma)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want = []entity.Case{
		entity.CaseNominative, entity.CaseGenitive, entity.CaseDative,
		entity.CaseAccusative, entity.CaseAblative, entity.CaseVocative,
		entity.CaseLocative,
	}
	if diff := cmp.Diff(want, cases(english)); diff != "" {
		t.Fatalf("english order (-want +got):\n%s", diff)
	}
	if got := rendered(t, english, entity.CaseLocative, entity.GenderFeminine); got != "Rōmae" {
		t.Fatalf("expected the singular-only locative 'Rōmae', got %q", got)
	}
}

func TestInflect_Adjective(t *testing.T) {
	ctx := context.Background()
	novus := adjective("novus, nova, novum", "nov", entity.DeclensionSecond, entity.KindUs)
	repo := newMemWordRepo(novus)
	stored, err := repo.FindByEnunciated(ctx, "novus, nova, novum")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	uc := NewInflectionUsecase(repo, seededCatalog(t), entity.CaseOrderEuropean)
	inf, err := uc.Show(ctx, "novus, nova, novum")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	row, _ := inf.Row(entity.CaseNominative)
	want := []Cell{
		{Gender: entity.GenderMasculine, Singular: []string{"novus"}, Plural: []string{"novī"}, Rendered: "novus, novī"},
		{Gender: entity.GenderFeminine, Singular: []string{"nova"}, Plural: []string{"novae"}, Rendered: "nova, novae"},
		{Gender: entity.GenderNeuter, Singular: []string{"novum"}, Plural: []string{"nova"}, Rendered: "novum, nova"},
	}
	if diff := cmp.Diff(want, row.Cells); diff != "" {
		t.Fatalf("nominative (-want +got):\n%s", diff)
	}
	if inf.Comparative != "novior, novius" {
		t.Fatalf("unexpected comparative %q", inf.Comparative)
	}
	if inf.Superlative != "novissimus, novissima, novissimum" {
		t.Fatalf("unexpected superlative %q", inf.Superlative)
	}
	if inf.Adverb != "novē" {
		t.Fatalf("unexpected adverb %q", inf.Adverb)
	}

	// Explicit relations win over the regular formation.
	melior, err := repo.Create(ctx, adjective("melior, melius", "melior", entity.DeclensionSecond, entity.KindUs))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := repo.Relate(ctx, entity.WordRelation{SourceID: stored.ID, DestinationID: melior.ID, Kind: entity.RelationComparative}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	inf, err = uc.Show(ctx, "novus, nova, novum")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if inf.Comparative != "melior, melius" {
		t.Fatalf("expected the related comparative, got %q", inf.Comparative)
	}

	notComparable := adjective("aureus, aurea, aureum", "aure", entity.DeclensionSecond, entity.KindUs)
	notComparable.Flags.NotComparable = true
	inf, err = uc.Inflect(ctx, notComparable)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if inf.Comparative != "" || inf.Superlative != "" || inf.Adverb != "" {
		t.Fatalf("expected no degrees, got %+v", inf)
	}
}

func TestInflect_Rejections(t *testing.T) {
	uc := NewInflectionUsecase(newMemWordRepo(), seededCatalog(t), entity.CaseOrderEuropean)
	ctx := context.Background()

	verb := entity.NewWord()
	verb.Enunciated = "amō, amāre, amāvī, amātum"
	verb.Category = entity.CategoryVerb
	verb.Conjugation = 1

	indeclinable := noun("fās", "", entity.DeclensionOther, entity.KindIndeclinable, entity.GenderNeuter)

	for _, w := range []*entity.Word{&verb, indeclinable, nil} {
		if _, err := uc.Inflect(ctx, w); !errors.Is(err, entity.ErrNotInflectable) {
			t.Fatalf("expected ErrNotInflectable, got %v", err)
		}
	}
	if _, err := uc.Show(ctx, "nēmō"); !errors.Is(err, entity.ErrWordNotFound) {
		t.Fatalf("expected ErrWordNotFound, got %v", err)
	}

	bad := noun("rosa, rosae", "ros", entity.DeclensionFirst, entity.KindA, entity.GenderFeminine)
	bad.Flags.Sets = &entity.Overrides{Cases: map[entity.Case]entity.CaseOverride{entity.Case(9): {}}}
	if _, err := uc.Inflect(ctx, bad); !errors.Is(err, entity.ErrBadOverrideKey) {
		t.Fatalf("expected ErrBadOverrideKey, got %v", err)
	}
}

func TestInflectAll_KeepsOrder(t *testing.T) {
	uc := NewInflectionUsecase(newMemWordRepo(), seededCatalog(t), entity.CaseOrderEuropean)
	words := []*entity.Word{
		noun("rosa, rosae", "ros", entity.DeclensionFirst, entity.KindA, entity.GenderFeminine),
		noun("lupus, lupī", "lup", entity.DeclensionSecond, entity.KindUs, entity.GenderMasculine),
		noun("templum, templī", "templ", entity.DeclensionSecond, entity.KindUm, entity.GenderNeuter),
		adjective("novus, nova, novum", "nov", entity.DeclensionSecond, entity.KindUs),
	}

	got, err := uc.InflectAll(context.Background(), words)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != len(words) {
		t.Fatalf("expected %d inflections, got %d", len(words), len(got))
	}
	for i, inf := range got {
		if inf.Word != words[i] {
			t.Fatalf("result %d belongs to %q", i, inf.Word.Enunciated)
		}
	}

	verb := entity.NewWord()
	verb.Category = entity.CategoryVerb
	if _, err := uc.InflectAll(context.Background(), append(words, &verb)); !errors.Is(err, entity.ErrNotInflectable) {
		t.Fatalf("expected ErrNotInflectable, got %v", err)
	}
}

func TestCheck(t *testing.T) {
	rosa := noun("rosa, rosae", "ros", entity.DeclensionFirst, entity.KindA, entity.GenderFeminine)
	uc := NewInflectionUsecase(newMemWordRepo(rosa), seededCatalog(t), entity.CaseOrderEuropean)

	answers := []Answer{
		{Case: entity.CaseNominative, Value: "rosa,rosae"},
		{Case: entity.CaseVocative, Value: "rosa, rosae"},
		{Case: entity.CaseAccusative, Value: "rosam, rosās"},
		{Case: entity.CaseGenitive, Value: "rosae, rosarum"},
		{Case: entity.CaseDative, Value: "rosae, rosīs"},
		{Case: entity.CaseAblative, Value: "rosā, rosīs"},
		{Case: entity.CaseLocative, Gender: entity.GenderFeminine, Value: "rosae"},
	}
	got, err := uc.Check(context.Background(), "rosa, rosae", answers)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := []Mismatch{
		{Case: entity.CaseGenitive, Gender: entity.GenderFeminine, Expected: "rosae, rosārum", Got: "rosae, rosarum"},
		{Case: entity.CaseLocative, Gender: entity.GenderFeminine, Got: "rosae"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatches (-want +got):\n%s", diff)
	}
}
