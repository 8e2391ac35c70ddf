package entity

import "strings"

// guessRule matches the last letters of the first two principal parts.
type guessRule struct {
	first, second string
	trim          int // runes dropped from the part the particle comes from
	fromSecond    bool
	declension    Declension
	gender        Gender
	kind          Kind
}

var guessRules = []guessRule{
	{first: "a", second: "ae", trim: 1, declension: DeclensionFirst, gender: GenderFeminine, kind: KindA},
	{first: "us", second: "ī", trim: 2, declension: DeclensionSecond, gender: GenderMasculine, kind: KindUs},
	{first: "um", second: "ī", trim: 2, declension: DeclensionSecond, gender: GenderNeuter, kind: KindUm},
	{first: "us", second: "ūs", trim: 2, declension: DeclensionFourth, gender: GenderMasculine, kind: KindFus},
	{first: "ū", second: "ūs", trim: 1, declension: DeclensionFourth, gender: GenderNeuter, kind: KindFus},
	{first: "iēs", second: "ēī", trim: 2, declension: DeclensionFifth, gender: GenderMasculine, kind: KindIes},
	{first: "ēs", second: "eī", trim: 2, declension: DeclensionFifth, gender: GenderFeminine, kind: KindEs},
	{second: "is", trim: 2, fromSecond: true, declension: DeclensionThird, gender: GenderMasculine, kind: KindIs},
}

// GuessFromEnunciate returns a word with the fields that can be guessed from
// a noun enunciate such as "rosa, rosae". Anything else yields a word of
// unknown category that only carries the enunciate.
func GuessFromEnunciate(enunciated string) Word {
	w := NewWord()
	w.Enunciated = strings.TrimSpace(enunciated)

	parts := strings.Split(w.Enunciated, ",")
	if len(parts) != 2 {
		return w
	}
	first, second := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])

	for _, r := range guessRules {
		if !strings.HasSuffix(first, r.first) || !strings.HasSuffix(second, r.second) {
			continue
		}
		source := first
		if r.fromSecond {
			source = second
		}
		runes := []rune(source)
		if len(runes) <= r.trim {
			continue
		}

		w.Particle = string(runes[:len(runes)-r.trim])
		w.Category = CategoryNoun
		w.Declension = r.declension
		w.Gender = r.gender
		w.Kind = r.kind
		return w
	}
	return w
}
