package inflection

import (
	"context"

	"github.com/mssola/mihi/internal/entity"
)

// AdjectiveTables holds the three tables of an adjective.
type AdjectiveTables struct {
	Masculine *DeclensionTable
	Feminine  *DeclensionTable
	Neuter    *DeclensionTable
}

// ByGender returns the table for the given gender, nil for any gender
// other than masculine, feminine or neuter.
func (a *AdjectiveTables) ByGender(g entity.Gender) *DeclensionTable {
	switch g {
	case entity.GenderMasculine:
		return a.Masculine
	case entity.GenderFeminine:
		return a.Feminine
	case entity.GenderNeuter:
		return a.Neuter
	default:
		return nil
	}
}

// AdjectiveKinds returns the paradigm used for each gender of an adjective.
// Adjectives of the first and second declension take their feminine from
// the "a" paradigm, except for the "ūnus nauta" ones. Neuters of the "us"
// paradigm follow "um".
func AdjectiveKinds(w *entity.Word) (masculine, feminine, neuter entity.Kind) {
	masculine, feminine, neuter = w.Kind, w.Kind, w.Kind

	if w.Kind != entity.KindUnusNauta {
		switch w.Declension {
		case entity.DeclensionFirst, entity.DeclensionSecond:
			feminine = entity.KindA
		}
	}
	if w.Kind == entity.KindUs {
		neuter = entity.KindUm
	}
	return masculine, feminine, neuter
}

// AdjectiveTables builds the masculine, feminine and neuter tables of the
// given adjective.
func (b *Builder) AdjectiveTables(ctx context.Context, w *entity.Word) (*AdjectiveTables, error) {
	kindM, kindF, kindN := AdjectiveKinds(w)

	masculine, err := b.Build(ctx, w, kindM, entity.GenderMasculine)
	if err != nil {
		return nil, err
	}
	feminine, err := b.Build(ctx, w, kindF, entity.GenderFeminine)
	if err != nil {
		return nil, err
	}
	neuter, err := b.Build(ctx, w, kindN, entity.GenderNeuter)
	if err != nil {
		return nil, err
	}
	return &AdjectiveTables{Masculine: masculine, Feminine: feminine, Neuter: neuter}, nil
}
