package inflection

import "github.com/mssola/mihi/internal/entity"

// firstRootKinds use the first principal part of the enunciate for the
// nominative and vocative singular (and the neuter accusative singular).
var firstRootKinds = map[entity.Kind]bool{
	entity.KindIs:          true,
	entity.KindIStem:       true,
	entity.KindPureIStem:   true,
	entity.KindOne:         true,
	entity.KindOneNonIStem: true,
}

// Resolve returns the candidate forms for the given term when applied to
// the word for the given case, number and gender. The kind is the paradigm
// the term was taken from, which for adjectives may differ from the kind of
// the word. It returns two candidates only for the genitive singular of the
// "-ius" paradigm.
func Resolve(w *entity.Word, c entity.Case, n entity.Number, g entity.Gender, kind entity.Kind, term string) []string {
	if !w.Regular {
		return []string{term}
	}

	if contractRoot(w, c, n, g) {
		return []string{dropLast(w.Particle, 2) + "r" + term}
	}

	if useFirstRoot(kind, c, n, g) {
		return []string{w.SingularNominative() + term}
	}

	if w.Kind == entity.KindIus && n == entity.Singular {
		switch {
		case c == entity.CaseVocative && w.Flags.ContractedVocative:
			return []string{dropLast(w.Particle, 1) + term}
		case c == entity.CaseGenitive:
			return []string{dropLast(w.Particle, 1) + term, w.Particle + term}
		}
	}

	return []string{w.Particle + term}
}

func contractRoot(w *entity.Word, c entity.Case, n entity.Number, g entity.Gender) bool {
	if !w.Flags.ContractedRoot {
		return false
	}
	if w.Kind != entity.KindErIr && w.Kind != entity.KindUnusNautaErIr {
		return false
	}
	if n == entity.Plural {
		return true
	}

	switch c {
	case entity.CaseNominative, entity.CaseVocative:
		return g == entity.GenderFeminine
	case entity.CaseAccusative:
		return g != entity.GenderNeuter
	default:
		return true
	}
}

func useFirstRoot(kind entity.Kind, c entity.Case, n entity.Number, g entity.Gender) bool {
	if n == entity.Plural {
		return false
	}

	switch c {
	case entity.CaseNominative, entity.CaseVocative:
	case entity.CaseAccusative:
		if g != entity.GenderNeuter {
			return false
		}
	default:
		return false
	}
	return firstRootKinds[kind]
}

// dropLast removes the last n runes of s.
func dropLast(s string, n int) string {
	runes := []rune(s)
	if n >= len(runes) {
		return ""
	}
	return string(runes[:len(runes)-n])
}
