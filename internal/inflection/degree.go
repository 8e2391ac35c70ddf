package inflection

import (
	"strings"

	"github.com/samber/lo"

	"github.com/mssola/mihi/internal/entity"
)

// UnknownForm is returned when a derived form cannot be guessed.
const UnknownForm = "<unknown>"

func joinRelated(related []entity.Word) string {
	return strings.Join(lo.Map(related, func(w entity.Word, _ int) string { return w.Enunciated }), "; ")
}

// Comparative returns the enunciate of the comparative of an adjective.
// Explicitly related words take precedence over the regular formation.
func Comparative(w *entity.Word, related []entity.Word) string {
	if len(related) > 0 {
		return joinRelated(related)
	}
	if w.Flags.CompSupPrefix {
		return "magis " + w.SingularNominative()
	}
	part := w.RealParticle()
	return part + "ior, " + part + "ius"
}

// Superlative returns the enunciate of the superlative of an adjective.
func Superlative(w *entity.Word, related []entity.Word) string {
	if len(related) > 0 {
		return joinRelated(related)
	}
	if w.Flags.CompSupPrefix {
		return "maximē " + w.SingularNominative()
	}

	p := w.Particle
	switch {
	case w.Flags.IrregularSup:
		return p + "limus, " + p + "lima, " + p + "limum"
	case w.Flags.ContractedRoot:
		return p + "rimus, " + p + "rima, " + p + "rimum"
	default:
		return p + "issimus, " + p + "issima, " + p + "issimum"
	}
}

// Adverb returns the adverb derived from an adjective.
func Adverb(w *entity.Word, related []entity.Word) string {
	if len(related) > 0 {
		return joinRelated(related)
	}

	part := w.RealParticle()
	switch w.Declension {
	case entity.DeclensionFirst, entity.DeclensionSecond:
		return part + "ē"
	case entity.DeclensionThird:
		return part + "iter"
	default:
		return UnknownForm
	}
}
