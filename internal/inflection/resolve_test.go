package inflection

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mssola/mihi/internal/entity"
)

func word(enunciated, particle string, kind entity.Kind, gender entity.Gender) *entity.Word {
	w := entity.NewWord()
	w.Enunciated = enunciated
	w.Particle = particle
	w.Kind = kind
	w.Gender = gender
	w.Category = entity.CategoryNoun
	return &w
}

func TestResolve(t *testing.T) {
	liber := word("liber, librī", "liber", entity.KindErIr, entity.GenderMasculine)
	liber.Flags.ContractedRoot = true

	pulcher := word("pulcher, pulchra, pulchrum", "pulcher", entity.KindErIr, entity.GenderMasculine)
	pulcher.Flags.ContractedRoot = true

	filius := word("fīlius, fīliī", "fīli", entity.KindIus, entity.GenderMasculine)
	filiusContracted := word("fīlius, fīliī", "fīli", entity.KindIus, entity.GenderMasculine)
	filiusContracted.Flags.ContractedVocative = true

	iuppiter := word("Iuppiter, Iovis", "", entity.KindIuppiterIovis, entity.GenderMasculine)
	iuppiter.Regular = false

	turris := word("turris, turris", "turr", entity.KindIs, entity.GenderFeminine)
	mare := word("mare, maris", "mar", entity.KindPureIStem, entity.GenderNeuter)

	cases := []struct {
		name   string
		word   *entity.Word
		c      entity.Case
		n      entity.Number
		g      entity.Gender
		term   string
		expect []string
	}{
		{"irregular keeps the term", iuppiter, entity.CaseAccusative, entity.Singular, entity.GenderMasculine, "Iovem", []string{"Iovem"}},
		{"default concatenation", word("rosa, rosae", "ros", entity.KindA, entity.GenderFeminine), entity.CaseGenitive, entity.Plural, entity.GenderFeminine, "ārum", []string{"rosārum"}},
		{"contracted plural", liber, entity.CaseNominative, entity.Plural, entity.GenderMasculine, "ī", []string{"librī"}},
		{"contracted masculine nominative keeps root", liber, entity.CaseNominative, entity.Singular, entity.GenderMasculine, "", []string{"liber"}},
		{"contracted masculine accusative", liber, entity.CaseAccusative, entity.Singular, entity.GenderMasculine, "um", []string{"librum"}},
		{"contracted genitive singular", liber, entity.CaseGenitive, entity.Singular, entity.GenderMasculine, "ī", []string{"librī"}},
		{"contracted feminine nominative", pulcher, entity.CaseNominative, entity.Singular, entity.GenderFeminine, "a", []string{"pulchra"}},
		{"contracted neuter accusative keeps root", pulcher, entity.CaseAccusative, entity.Singular, entity.GenderNeuter, "", []string{"pulcher"}},
		{"first root on the nominative", turris, entity.CaseNominative, entity.Singular, entity.GenderFeminine, "", []string{"turris"}},
		{"no first root on the accusative unless neuter", turris, entity.CaseAccusative, entity.Singular, entity.GenderFeminine, "em", []string{"turrem"}},
		{"first root on the neuter accusative", mare, entity.CaseAccusative, entity.Singular, entity.GenderNeuter, "", []string{"mare"}},
		{"never first root on the plural", mare, entity.CaseNominative, entity.Plural, entity.GenderNeuter, "ia", []string{"maria"}},
		{"ius vocative", filius, entity.CaseVocative, entity.Singular, entity.GenderMasculine, "ī", []string{"fīliī"}},
		{"ius contracted vocative", filiusContracted, entity.CaseVocative, entity.Singular, entity.GenderMasculine, "ī", []string{"fīlī"}},
		{"ius genitive has two candidates", filius, entity.CaseGenitive, entity.Singular, entity.GenderMasculine, "ī", []string{"fīlī", "fīliī"}},
		{"ius genitive ignores contracted vocative", filiusContracted, entity.CaseGenitive, entity.Singular, entity.GenderMasculine, "ī", []string{"fīlī", "fīliī"}},
		{"ius plural", filius, entity.CaseGenitive, entity.Plural, entity.GenderMasculine, "ōrum", []string{"fīliōrum"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Resolve(tc.word, tc.c, tc.n, tc.g, tc.word.Kind, tc.term)
			if diff := cmp.Diff(tc.expect, got); diff != "" {
				t.Fatalf("Resolve mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolve_ContractionNeedsErIrKind(t *testing.T) {
	w := word("lupus, lupī", "lup", entity.KindUs, entity.GenderMasculine)
	w.Flags.ContractedRoot = true

	got := Resolve(w, entity.CaseGenitive, entity.Singular, entity.GenderMasculine, w.Kind, "ī")
	if diff := cmp.Diff([]string{"lupī"}, got); diff != "" {
		t.Fatalf("unexpected contraction (-want +got):\n%s", diff)
	}
}

func TestResolve_MultibyteRoots(t *testing.T) {
	// The dropped letters are runes, not bytes.
	w := word("*, *", "gladiī", entity.KindIus, entity.GenderMasculine)
	got := Resolve(w, entity.CaseGenitive, entity.Singular, entity.GenderMasculine, w.Kind, "x")
	if diff := cmp.Diff([]string{"gladix", "gladiīx"}, got); diff != "" {
		t.Fatalf("Resolve mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_FirstRootFollowsParadigm(t *testing.T) {
	w := word("ācer, ācris, ācre", "ācr", entity.KindErIr, entity.GenderNone)

	got := Resolve(w, entity.CaseNominative, entity.Singular, entity.GenderMasculine, entity.KindIs, "")
	if diff := cmp.Diff([]string{"ācer"}, got); diff != "" {
		t.Fatalf("Resolve mismatch (-want +got):\n%s", diff)
	}

	got = Resolve(w, entity.CaseNominative, entity.Singular, entity.GenderMasculine, entity.KindErIr, "is")
	if diff := cmp.Diff([]string{"ācris"}, got); diff != "" {
		t.Fatalf("Resolve mismatch (-want +got):\n%s", diff)
	}
}
