package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/mssola/mihi/internal/entity"
	"github.com/mssola/mihi/internal/usecase"
)

func parseWordFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	f := pflag.NewFlagSet("create", pflag.ContinueOnError)
	addWordFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return f
}

func Test_wordFromFlags_guess(t *testing.T) {
	w, err := wordFromFlags("rosa, rosae", parseWordFlags(t, "--translation", "en=rose"))
	if err != nil {
		t.Fatal(err)
	}
	if w.Particle != "ros" || w.Kind != entity.KindA || w.Gender != entity.GenderFeminine || w.Category != entity.CategoryNoun {
		t.Fatalf("unexpected guess %+v", w)
	}
	if w.Weight != 5 || !w.Regular || w.Translation[entity.LanguageEnglish] != "rose" {
		t.Fatalf("unexpected defaults %+v", w)
	}
}

func Test_wordFromFlags_explicit(t *testing.T) {
	f := parseWordFlags(t,
		"--category", "noun", "--declension", "2", "--kind", "er/ir", "--gender", "masculine",
		"--particle", "liber", "--flag", "contracted_root", "--weight", "7", "--irregular",
	)
	w, err := wordFromFlags("liber, librī", f)
	if err != nil {
		t.Fatal(err)
	}
	if w.Category != entity.CategoryNoun || w.Declension != entity.DeclensionSecond || w.Kind != entity.KindErIr {
		t.Fatalf("unexpected word %+v", w)
	}
	if w.RealParticle() != "libr" || w.Weight != 7 || w.Regular {
		t.Fatalf("unexpected word %+v", w)
	}
}

func Test_wordFromFlags_errors(t *testing.T) {
	cases := []struct {
		args []string
		want error
	}{
		{[]string{"--gender", "both"}, entity.ErrUnknownGender},
		{[]string{"--category", "particle"}, entity.ErrUnknownCategory},
		{[]string{"--declension", "9"}, entity.ErrUnknownDeclension},
		{[]string{"--flag", "nope"}, entity.ErrMalformedFlags},
		{[]string{"--translation", "xx=foo"}, entity.ErrInvalidWord},
	}
	for _, c := range cases {
		if _, err := wordFromFlags("rosa, rosae", parseWordFlags(t, c.args...)); !errors.Is(err, c.want) {
			t.Fatalf("%v -> got %v want %v", c.args, err, c.want)
		}
	}
}

func Test_decodeWords_defaults(t *testing.T) {
	in := `
- enunciated: lupus, lupī
  particle: lup
  category: noun
  declension: 2
  kind: us
  gender: masculine
  translation:
    en: wolf
- enunciated: semper
  category: adverb
  weight: 3
`
	words, err := decodeWords(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(words) != 2 {
		t.Fatalf("expected 2 words got %d", len(words))
	}
	lupus := words[0]
	if lupus.Gender != entity.GenderMasculine || lupus.Weight != 5 || !lupus.Regular || lupus.Language != entity.LanguageLatin {
		t.Fatalf("bad lupus: %+v", lupus)
	}
	if lupus.Translation[entity.LanguageEnglish] != "wolf" {
		t.Fatalf("bad translation: %+v", lupus.Translation)
	}
	if semper := words[1]; semper.Gender != entity.GenderNone || semper.Weight != 3 || semper.Category != entity.CategoryAdverb {
		t.Fatalf("bad semper: %+v", semper)
	}

	if words, err := decodeWords(strings.NewReader("")); err != nil || len(words) != 0 {
		t.Fatalf("empty input -> (%v, %v)", words, err)
	}
	if _, err := decodeWords(strings.NewReader("- gender: both\n")); err == nil {
		t.Fatal("expected an unknown gender to be rejected")
	}
}

func Test_encodeWords_keepsMasculine(t *testing.T) {
	w := entity.NewWord()
	w.Enunciated, w.Particle, w.Category = "lupus, lupī", "lup", entity.CategoryNoun
	w.Declension, w.Kind, w.Gender = entity.DeclensionSecond, entity.KindUs, entity.GenderMasculine

	var buf bytes.Buffer
	if err := encodeWords(&buf, []entity.Word{w}); err != nil {
		t.Fatal(err)
	}
	words, err := decodeWords(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(words) != 1 || words[0].Gender != entity.GenderMasculine || words[0].Kind != entity.KindUs {
		t.Fatalf("unexpected words %+v", words)
	}
}

func Test_readAnswers(t *testing.T) {
	in := `
- case: genitive
  value: rosae, rosārum
- case: ablative
  gender: feminine
  value: rosā, rosīs
`
	answers, err := readAnswers(strings.NewReader(in), "-")
	if err != nil {
		t.Fatal(err)
	}
	if len(answers) != 2 || answers[0].Case != entity.CaseGenitive || answers[1].Gender != entity.GenderFeminine {
		t.Fatalf("unexpected answers %+v", answers)
	}

	if _, err := readAnswers(strings.NewReader(""), "-"); err == nil {
		t.Fatal("expected an error without answers")
	}
	if _, err := readAnswers(strings.NewReader("- case: instrumental\n"), "-"); err == nil {
		t.Fatal("expected an unknown case to be rejected")
	}
}

func Test_printInflection_adjective(t *testing.T) {
	w := entity.NewWord()
	w.Enunciated, w.Category = "novus, nova, novum", entity.CategoryAdjective
	inf := &usecase.Inflection{
		Word: &w,
		Rows: []usecase.InflectedRow{{
			Case: entity.CaseNominative,
			Cells: []usecase.Cell{
				{Gender: entity.GenderMasculine, Rendered: "novus, novī"},
				{Gender: entity.GenderFeminine, Rendered: "nova, novae"},
				{Gender: entity.GenderNeuter, Rendered: "novum, nova"},
			},
		}},
		Comparative: "novior, novius",
	}

	var buf bytes.Buffer
	if err := printInflection(&buf, inf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"masculine", "neuter", "nominative", "novum, nova", "comparative:", "novior, novius"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}
