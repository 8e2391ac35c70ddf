package entity

import (
	"fmt"
	"strings"
)

// Case is one of the seven Latin grammatical cases.
type Case int

const (
	CaseNominative Case = iota
	CaseVocative
	CaseAccusative
	CaseGenitive
	CaseDative
	CaseAblative
	CaseLocative
)

// CaseCount is the number of cases a declension table holds.
const CaseCount = 7

var caseNames = [CaseCount]string{
	"nominative",
	"vocative",
	"accusative",
	"genitive",
	"dative",
	"ablative",
	"locative",
}

// Valid reports whether c is one of the seven known cases.
func (c Case) Valid() bool { return c >= CaseNominative && c <= CaseLocative }

func (c Case) String() string {
	if !c.Valid() {
		return fmt.Sprintf("case(%d)", int(c))
	}
	return caseNames[c]
}

// ParseCase maps a case name into a Case. Any other string is a bad
// override key.
func ParseCase(name string) (Case, error) {
	for i, n := range caseNames {
		if n == name {
			return Case(i), nil
		}
	}
	return 0, fmt.Errorf("bad key '%s' for a case: %w", name, ErrBadOverrideKey)
}

func (c Case) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Case) UnmarshalText(text []byte) error {
	parsed, err := ParseCase(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// AllCases returns the cases in their canonical order.
func AllCases() []Case {
	return []Case{
		CaseNominative, CaseVocative, CaseAccusative, CaseGenitive,
		CaseDative, CaseAblative, CaseLocative,
	}
}

// Number is the grammatical number of a form.
type Number int

const (
	Singular Number = iota
	Plural
)

func (n Number) String() string {
	switch n {
	case Singular:
		return "singular"
	case Plural:
		return "plural"
	default:
		return fmt.Sprintf("number(%d)", int(n))
	}
}

// ParseNumber maps "singular" or "plural" into a Number.
func ParseNumber(s string) (Number, error) {
	switch strings.TrimSpace(s) {
	case "singular":
		return Singular, nil
	case "plural":
		return Plural, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownNumber, s)
	}
}

// Gender of a word. The integer values are persisted and must not change.
type Gender int

const (
	GenderMasculine Gender = iota
	GenderFeminine
	GenderMasculineOrFeminine
	GenderNeuter
	GenderNone
)

func (g Gender) String() string {
	switch g {
	case GenderMasculine:
		return "masculine"
	case GenderFeminine:
		return "feminine"
	case GenderMasculineOrFeminine:
		return "masculine or feminine"
	case GenderNeuter:
		return "neuter"
	default:
		return "none"
	}
}

// ParseGender accepts the names produced by Gender.String. "common" is
// accepted for masculine or feminine.
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "masculine", "m":
		return GenderMasculine, nil
	case "feminine", "f":
		return GenderFeminine, nil
	case "masculine or feminine", "common", "c":
		return GenderMasculineOrFeminine, nil
	case "neuter", "n":
		return GenderNeuter, nil
	case "none", "":
		return GenderNone, nil
	default:
		return GenderNone, fmt.Errorf("%w: %q", ErrUnknownGender, s)
	}
}

func (g Gender) MarshalText() ([]byte, error) { return []byte(g.String()), nil }

func (g *Gender) UnmarshalText(text []byte) error {
	parsed, err := ParseGender(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// Category is the part of speech of a word.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryNoun
	CategoryAdjective
	CategoryVerb
	CategoryPronoun
	CategoryAdverb
	CategoryPreposition
	CategoryConjunction
	CategoryInterjection
	CategoryDeterminer
)

var categoryNames = []string{
	"unknown", "noun", "adjective", "verb", "pronoun", "adverb",
	"preposition", "conjunction", "interjection", "determiner",
}

func (c Category) String() string {
	if c < CategoryUnknown || int(c) >= len(categoryNames) {
		return "unknown"
	}
	return categoryNames[c]
}

// ParseCategory maps a category name into a Category.
func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range categoryNames {
		if n == s {
			return Category(i), nil
		}
	}
	return CategoryUnknown, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

func (c Category) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Declension identifies the declension of a noun or adjective. The zero
// value means the word has no declension at all.
type Declension int

const (
	DeclensionNone Declension = iota
	DeclensionFirst
	DeclensionSecond
	DeclensionThird
	DeclensionFourth
	DeclensionFifth
	DeclensionOther
)

func (d Declension) String() string {
	switch d {
	case DeclensionFirst:
		return "1st (-ae)"
	case DeclensionSecond:
		return "2nd (-ī)"
	case DeclensionThird:
		return "3rd (-is)"
	case DeclensionFourth:
		return "4th (-ūs)"
	case DeclensionFifth:
		return "5th (-eī/-ēī)"
	case DeclensionOther:
		return "other"
	default:
		return "none"
	}
}

// Valid reports whether d names an actual declension.
func (d Declension) Valid() bool { return d >= DeclensionFirst && d <= DeclensionOther }

// CaseOrder is the order in which the cases of a table are listed.
type CaseOrder string

const (
	CaseOrderEuropean CaseOrder = "european"
	CaseOrderEnglish  CaseOrder = "english"
)

// ParseCaseOrder validates a configured case order, defaulting to the
// european one when empty.
func ParseCaseOrder(s string) (CaseOrder, error) {
	switch CaseOrder(strings.ToLower(strings.TrimSpace(s))) {
	case "", CaseOrderEuropean:
		return CaseOrderEuropean, nil
	case CaseOrderEnglish:
		return CaseOrderEnglish, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidCaseOrder, s)
	}
}

// Cases returns every case in this order.
func (o CaseOrder) Cases() []Case {
	if o == CaseOrderEnglish {
		return []Case{
			CaseNominative, CaseGenitive, CaseDative, CaseAccusative,
			CaseAblative, CaseVocative, CaseLocative,
		}
	}
	return AllCases()
}
