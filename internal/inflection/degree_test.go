package inflection

import (
	"testing"

	"github.com/mssola/mihi/internal/entity"
)

func TestDegrees(t *testing.T) {
	altus := adjective("altus, alta, altum", "alt", entity.KindUs, entity.DeclensionFirst)

	pulcher := adjective("pulcher, pulchra, pulchrum", "pulcher", entity.KindErIr, entity.DeclensionSecond)
	pulcher.Flags.ContractedRoot = true

	facilis := adjective("facilis, facile", "facil", entity.KindTwo, entity.DeclensionThird)
	facilis.Flags.IrregularSup = true

	idoneus := adjective("idōneus, idōnea, idōneum", "idōne", entity.KindUs, entity.DeclensionFirst)
	idoneus.Flags.CompSupPrefix = true

	duo := adjective("duo, duae, duo", "", entity.KindDuo, entity.DeclensionOther)

	cases := []struct {
		name           string
		word           *entity.Word
		comp, sup, adv string
	}{
		{"regular", altus, "altior, altius", "altissimus, altissima, altissimum", "altē"},
		{"contracted root", pulcher, "pulchrior, pulchrius", "pulcherrimus, pulcherrima, pulcherrimum", "pulchrē"},
		{"irregular superlative", facilis, "facilior, facilius", "facillimus, facillima, facillimum", "faciliter"},
		{"prefixed", idoneus, "magis idōneus", "maximē idōneus", "idōneē"},
		{"unknown adverb", duo, "ior, ius", "issimus, issima, issimum", UnknownForm},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Comparative(tc.word, nil); got != tc.comp {
				t.Fatalf("comparative: got %q want %q", got, tc.comp)
			}
			if got := Superlative(tc.word, nil); got != tc.sup {
				t.Fatalf("superlative: got %q want %q", got, tc.sup)
			}
			if got := Adverb(tc.word, nil); got != tc.adv {
				t.Fatalf("adverb: got %q want %q", got, tc.adv)
			}
		})
	}
}

func TestDegrees_RelatedWordsWin(t *testing.T) {
	bonus := adjective("bonus, bona, bonum", "bon", entity.KindUs, entity.DeclensionFirst)
	related := []entity.Word{{Enunciated: "melior, melius"}, {Enunciated: "potior, potius"}}

	if got := Comparative(bonus, related); got != "melior, melius; potior, potius" {
		t.Fatalf("comparative: got %q", got)
	}
	if got := Superlative(bonus, related[:1]); got != "melior, melius" {
		t.Fatalf("superlative: got %q", got)
	}
	if got := Adverb(bonus, []entity.Word{{Enunciated: "bene"}}); got != "bene" {
		t.Fatalf("adverb: got %q", got)
	}
}
